package event

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

// PartialUpdateEventParams carries only the fields an admin wants to change.
// Pointers distinguish "not provided" from zero values.
type PartialUpdateEventParams struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	City        *string    `json:"city,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	Address     *string    `json:"address,omitempty"`
	IsPaid      *bool      `json:"is_paid,omitempty"`
	PriceMin    *int64     `json:"price_min,omitempty"`
	PriceMax    *int64     `json:"price_max,omitempty"`
	TicketURL   *string    `json:"ticket_url,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
}

// UpdateEvent performs a partial update of event details based on the payload.
func UpdateEvent(eventID string, payload []byte) (*Event, error) {
	logger.Log.Info(fmt.Sprintf("[update-event-uc] Starting update for EventID: %s", eventID))

	var p PartialUpdateEventParams
	if err := json.Unmarshal(payload, &p); err != nil {
		logger.Log.Error(fmt.Sprintf("[update-event-uc] Failed to unmarshal payload for %s: %v", eventID, err))
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	// Build the dynamic SET clause from the provided fields.
	sets := []string{}
	args := []interface{}{id}
	argCounter := 2

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCounter))
		args = append(args, value)
		argCounter++
	}

	if p.Name != nil {
		addSet("name", *p.Name)
	}
	if p.Description != nil {
		addSet("description", *p.Description)
	}
	if p.Category != nil {
		addSet("category", *p.Category)
	}
	if p.StartDate != nil {
		addSet("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		addSet("end_date", *p.EndDate)
	}
	if p.City != nil {
		addSet("city", *p.City)
	}
	if p.Venue != nil {
		addSet("venue", *p.Venue)
	}
	if p.Address != nil {
		addSet("address", *p.Address)
	}
	if p.IsPaid != nil {
		addSet("is_paid", *p.IsPaid)
	}
	if p.PriceMin != nil {
		addSet("price_min", *p.PriceMin)
	}
	if p.PriceMax != nil {
		addSet("price_max", *p.PriceMax)
	}
	if p.TicketURL != nil {
		addSet("ticket_url", *p.TicketURL)
	}
	if p.ImageURL != nil {
		addSet("image_url", *p.ImageURL)
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("no fields provided for update")
	}

	addSet("updated_at", time.Now())

	updateSQL := fmt.Sprintf(`UPDATE events SET %s WHERE id = $1`, strings.Join(sets, ", "))

	result, err := db.DB.Exec(updateSQL, args...)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[update-event-uc] Update failed for %s: %v", eventID, err))
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrEventNotFound
	}

	logger.Log.Info(fmt.Sprintf("[update-event-uc] Event %s updated (%d fields).", eventID, len(sets)-1))
	return GetEvent(eventID)
}
