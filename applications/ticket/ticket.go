package ticket

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ticket is one purchase record against an event. TotalPrice is integer
// minor units, derived as unit price x quantity at purchase time.
type Ticket struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"event_id"`
	UserID        uuid.UUID `json:"user_id"`
	TicketCode    string    `json:"ticket_code"`
	TicketType    string    `json:"ticket_type"`
	Quantity      int       `json:"quantity"`
	TotalPrice    int64     `json:"total_price"`
	PaymentStatus string    `json:"payment_status"`
	PurchasedAt   time.Time `json:"purchased_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Payment status state machine: pending->paid, pending->failed,
// paid->refunded. Free events are written as paid directly.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusFailed   = "failed"
	StatusRefunded = "refunded"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTransition   = errors.New("invalid payment status transition")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrEventNotPurchasable = errors.New("event is not open for ticket purchase")
)

var allowedTransitions = map[string][]string{
	StatusPending: {StatusPaid, StatusFailed},
	StatusPaid:    {StatusRefunded},
}

// InitialStatus picks the status a fresh ticket is written with. Paid
// events start pending; free events have nothing to collect and go
// straight to paid with no observable pending state.
func InitialStatus(isPaid bool, total int64) string {
	if !isPaid || total == 0 {
		return StatusPaid
	}
	return StatusPending
}

// CanTransition reports whether a payment status change is legal.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NewTicketCode generates a unique human-readable ticket code like
// TKT-9F4A2C1B.
func NewTicketCode() string {
	id := uuid.New().String()
	return "TKT-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
