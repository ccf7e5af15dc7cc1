package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Event is the unified record both the admin panel and the search
// aggregator operate on. Monetary fields are integer minor units (paise).
type Event struct {
	ID          uuid.UUID  `json:"id"`
	ExternalID  string     `json:"external_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	City        string     `json:"city"`
	Venue       string     `json:"venue,omitempty"`
	Address     string     `json:"address,omitempty"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	IsPaid      bool       `json:"is_paid"`
	PriceMin    *int64     `json:"price_min"`
	PriceMax    *int64     `json:"price_max"`
	TicketURL   string     `json:"ticket_url,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Source      string     `json:"source"`
	Approved    bool       `json:"approved"`
	ApprovedBy  string     `json:"approved_by,omitempty"`
	Verified    bool       `json:"verified"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Provenance of an event row. Only admin-sourced events may ever carry
// verified=true.
const (
	SourceAdmin    = "admin"
	SourceAPI      = "api"
	SourceFallback = "fallback"
)

var (
	ErrEventNotFound = errors.New("event not found")
	// ErrVerifyNonAdmin rejects the verified flag on api/fallback rows.
	ErrVerifyNonAdmin = errors.New("only admin-sourced events can be verified")
)
