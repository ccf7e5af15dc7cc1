package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

// CreateEventParams is the admin event-creation payload.
type CreateEventParams struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	City        string     `json:"city" validate:"required"`
	Venue       string     `json:"venue,omitempty"`
	Address     string     `json:"address,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	IsPaid      bool       `json:"is_paid"`
	PriceMin    *int64     `json:"price_min,omitempty"`
	PriceMax    *int64     `json:"price_max,omitempty"`
	TicketURL   string     `json:"ticket_url,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Verified    bool       `json:"verified"`
}

// AddEvent creates an admin-curated event. Admin rows are approved
// immediately and are the only rows allowed to carry verified=true.
func AddEvent(payload []byte, createdBy string) (*Event, error) {
	var p CreateEventParams

	logger.Log.Info("[create-event-uc] Starting admin event creation.")

	if err := json.Unmarshal(payload, &p); err != nil {
		logger.Log.Error(fmt.Sprintf("[create-event-uc] Failed to unmarshal payload: %v", err))
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if p.Name == "" || p.City == "" {
		return nil, fmt.Errorf("name and city are required")
	}
	if p.PriceMin != nil && p.PriceMax != nil && *p.PriceMin > *p.PriceMax {
		return nil, fmt.Errorf("price_min cannot exceed price_max")
	}

	category := p.Category
	if category == "" {
		category = "general"
	}

	id := uuid.New()
	ev := &Event{
		ID:          id,
		ExternalID:  "admin_" + id.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    category,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		City:        p.City,
		Venue:       p.Venue,
		Address:     p.Address,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		IsPaid:      p.IsPaid,
		PriceMin:    p.PriceMin,
		PriceMax:    p.PriceMax,
		TicketURL:   p.TicketURL,
		ImageURL:    p.ImageURL,
		Source:      SourceAdmin,
		Approved:    true,
		ApprovedBy:  createdBy,
		Verified:    p.Verified,
	}

	const insertSQL = `
		INSERT INTO events (id, external_id, name, description, category, start_date, end_date,
		                    city, venue, address, latitude, longitude, is_paid, price_min, price_max,
		                    ticket_url, image_url, source, approved, approved_by, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	_, err := db.DB.ExecContext(context.Background(), insertSQL,
		ev.ID, ev.ExternalID, ev.Name, nullString(ev.Description), ev.Category,
		nullTime(ev.StartDate), nullTime(ev.EndDate),
		ev.City, nullString(ev.Venue), nullString(ev.Address),
		nullFloat(ev.Latitude), nullFloat(ev.Longitude),
		ev.IsPaid, nullInt(ev.PriceMin), nullInt(ev.PriceMax),
		nullString(ev.TicketURL), nullString(ev.ImageURL),
		ev.Source, ev.Approved, nullString(ev.ApprovedBy), ev.Verified,
		now, now,
	)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[create-event-uc] Failed to insert event %s: %v", ev.ID, err))
		return nil, fmt.Errorf("failed to insert event into database: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[create-event-uc] Admin event %s created in %s (verified: %t).", ev.ID, ev.City, ev.Verified))
	return ev, nil
}
