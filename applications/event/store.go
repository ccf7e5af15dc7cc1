package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yaeboye/cityspark-events/db"

	"github.com/google/uuid"
)

// Store is the persistence surface the aggregator needs. Kept small so the
// search use case can be tested against a fake.
type Store interface {
	UpsertEvents(ctx context.Context, events []*Event) ([]*Event, error)
}

// PostgresStore implements Store on the global database handle.
type PostgresStore struct{}

const upsertEventSQL = `
	INSERT INTO events (id, external_id, name, description, category, start_date, end_date,
	                    city, venue, address, latitude, longitude, is_paid, price_min, price_max,
	                    ticket_url, image_url, source, approved, approved_by, verified, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	ON CONFLICT (external_id) DO UPDATE SET
		name = EXCLUDED.name,
		description = EXCLUDED.description,
		category = EXCLUDED.category,
		start_date = EXCLUDED.start_date,
		end_date = EXCLUDED.end_date,
		city = EXCLUDED.city,
		venue = EXCLUDED.venue,
		address = EXCLUDED.address,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		is_paid = EXCLUDED.is_paid,
		price_min = EXCLUDED.price_min,
		price_max = EXCLUDED.price_max,
		ticket_url = EXCLUDED.ticket_url,
		image_url = EXCLUDED.image_url,
		updated_at = EXCLUDED.updated_at
	RETURNING ` + eventColumns

const eventColumns = `id, external_id, name, description, category, start_date, end_date,
	city, venue, address, latitude, longitude, is_paid, price_min, price_max,
	ticket_url, image_url, source, approved, approved_by, verified, created_at, updated_at`

// UpsertEvents inserts or refreshes each event keyed on external_id and
// returns the stored rows with their durable ids. Moderation state
// (approved, verified, source, approved_by) is deliberately absent from the
// conflict update list: a refetch must never undo an admin decision.
func (PostgresStore) UpsertEvents(ctx context.Context, events []*Event) ([]*Event, error) {
	stored := make([]*Event, 0, len(events))
	now := time.Now()

	for _, ev := range events {
		id := ev.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		row := db.DB.QueryRowContext(ctx, upsertEventSQL,
			id, ev.ExternalID, ev.Name, nullString(ev.Description), ev.Category,
			nullTime(ev.StartDate), nullTime(ev.EndDate),
			ev.City, nullString(ev.Venue), nullString(ev.Address),
			nullFloat(ev.Latitude), nullFloat(ev.Longitude),
			ev.IsPaid, nullInt(ev.PriceMin), nullInt(ev.PriceMax),
			nullString(ev.TicketURL), nullString(ev.ImageURL),
			ev.Source, ev.Approved, nullString(ev.ApprovedBy), ev.Verified,
			now, now,
		)

		persisted, err := scanEvent(row)
		if err != nil {
			return nil, fmt.Errorf("upsert failed for external_id %s: %w", ev.ExternalID, err)
		}
		stored = append(stored, persisted)
	}

	return stored, nil
}

// rowScanner lets scanEvent work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*Event, error) {
	ev := &Event{}
	var (
		description, venue, address, ticketURL, imageURL, approvedBy sql.NullString
		startDate, endDate                                           sql.NullTime
		latitude, longitude                                          sql.NullFloat64
		priceMin, priceMax                                           sql.NullInt64
	)

	err := row.Scan(
		&ev.ID, &ev.ExternalID, &ev.Name, &description, &ev.Category,
		&startDate, &endDate,
		&ev.City, &venue, &address,
		&latitude, &longitude,
		&ev.IsPaid, &priceMin, &priceMax,
		&ticketURL, &imageURL,
		&ev.Source, &ev.Approved, &approvedBy, &ev.Verified,
		&ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ev.Description = description.String
	ev.Venue = venue.String
	ev.Address = address.String
	ev.TicketURL = ticketURL.String
	ev.ImageURL = imageURL.String
	ev.ApprovedBy = approvedBy.String
	if startDate.Valid {
		t := startDate.Time
		ev.StartDate = &t
	}
	if endDate.Valid {
		t := endDate.Time
		ev.EndDate = &t
	}
	if latitude.Valid {
		v := latitude.Float64
		ev.Latitude = &v
	}
	if longitude.Valid {
		v := longitude.Float64
		ev.Longitude = &v
	}
	if priceMin.Valid {
		v := priceMin.Int64
		ev.PriceMin = &v
	}
	if priceMax.Valid {
		v := priceMax.Int64
		ev.PriceMax = &v
	}
	return ev, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullInt(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
