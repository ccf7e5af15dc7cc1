package ticket

import (
	"encoding/json"
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

type UpdatePaymentStatusParams struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// UpdatePaymentStatus moves a ticket through the payment state machine.
// Illegal transitions are rejected before any write.
func UpdatePaymentStatus(ticketID string, payload []byte) (*Ticket, error) {
	var p UpdatePaymentStatusParams
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket ID format: %w", err)
	}

	tk, err := GetTicket(ticketID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(tk.PaymentStatus, p.PaymentStatus) {
		logger.Log.Warn(fmt.Sprintf("[ticket-status-uc] Rejected transition %s -> %s for ticket %s.", tk.PaymentStatus, p.PaymentStatus, ticketID))
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, tk.PaymentStatus, p.PaymentStatus)
	}

	const updateSQL = `UPDATE tickets SET payment_status = $2, updated_at = NOW() WHERE id = $1`
	if _, err := db.DB.Exec(updateSQL, id, p.PaymentStatus); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[ticket-status-uc] Ticket %s moved %s -> %s.", ticketID, tk.PaymentStatus, p.PaymentStatus))
	tk.PaymentStatus = p.PaymentStatus
	return tk, nil
}
