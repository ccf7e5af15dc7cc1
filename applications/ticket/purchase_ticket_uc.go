package ticket

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaeboye/cityspark-events/applications/event"
	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

// PurchaseTicketParams is the purchase payload.
type PurchaseTicketParams struct {
	EventID    string `json:"event_id" validate:"required"`
	TicketType string `json:"ticket_type,omitempty"`
	Quantity   int    `json:"quantity" validate:"required"`
}

// PurchaseTicket orchestrates a ticket purchase inside a database
// transaction: load the event, derive the total, generate the code, and
// insert the ticket row. Free events skip pending and are written paid.
func PurchaseTicket(userID string, payload []byte) (*Ticket, error) {
	var p PurchaseTicketParams
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[purchase-ticket-uc] Purchase started: user %s, event %s, qty %d", userID, p.EventID, p.Quantity))

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	eventID, err := uuid.Parse(p.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}
	if p.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	tx, err := db.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback() // Rollback is safe to call even after Commit

	// --- 1. Load the event and derive the unit price ---
	var (
		isPaid   bool
		approved bool
		priceMin sql.NullInt64
	)
	const eventSQL = `SELECT is_paid, approved, price_min FROM events WHERE id = $1`
	if err := tx.QueryRow(eventSQL, eventID).Scan(&isPaid, &approved, &priceMin); err != nil {
		if err == sql.ErrNoRows {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if !approved {
		return nil, ErrEventNotPurchasable
	}

	unitPrice := int64(0)
	if isPaid && priceMin.Valid {
		unitPrice = priceMin.Int64
	}
	total := unitPrice * int64(p.Quantity)

	// --- 2. Build the ticket record ---
	status := InitialStatus(isPaid, total)

	ticketType := p.TicketType
	if ticketType == "" {
		ticketType = "general"
	}

	now := time.Now()
	tk := &Ticket{
		ID:            uuid.New(),
		EventID:       eventID,
		UserID:        uid,
		TicketCode:    NewTicketCode(),
		TicketType:    ticketType,
		Quantity:      p.Quantity,
		TotalPrice:    total,
		PaymentStatus: status,
		PurchasedAt:   now,
		UpdatedAt:     now,
	}

	// --- 3. Insert and commit ---
	const insertSQL = `
		INSERT INTO tickets (id, event_id, user_id, ticket_code, ticket_type, quantity,
		                     total_price, payment_status, purchased_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err := tx.Exec(insertSQL,
		tk.ID, tk.EventID, tk.UserID, tk.TicketCode, tk.TicketType, tk.Quantity,
		tk.TotalPrice, tk.PaymentStatus, tk.PurchasedAt, tk.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("ticket insertion failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[purchase-ticket-uc] Ticket %s issued with status %s (total %d).", tk.TicketCode, tk.PaymentStatus, tk.TotalPrice))
	return tk, nil
}
