package ticket

import (
	"database/sql"
	"fmt"

	"github.com/yaeboye/cityspark-events/db"

	"github.com/google/uuid"
)

const ticketColumns = `id, event_id, user_id, ticket_code, ticket_type, quantity,
	total_price, payment_status, purchased_at, updated_at`

// GetTicket retrieves a single ticket by its ID.
func GetTicket(ticketID string) (*Ticket, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket ID format: %w", err)
	}

	row := db.DB.QueryRow(`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
	tk, err := scanTicket(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return tk, nil
}

// GetTicketsByUser lists a user's own tickets, newest first.
func GetTicketsByUser(userID string) ([]*Ticket, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	return queryTickets(`SELECT `+ticketColumns+` FROM tickets WHERE user_id = $1 ORDER BY purchased_at DESC`, uid)
}

// GetAllTickets lists every ticket for the admin panel, newest first.
func GetAllTickets() ([]*Ticket, error) {
	return queryTickets(`SELECT ` + ticketColumns + ` FROM tickets ORDER BY purchased_at DESC`)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row rowScanner) (*Ticket, error) {
	tk := &Ticket{}
	err := row.Scan(
		&tk.ID, &tk.EventID, &tk.UserID, &tk.TicketCode, &tk.TicketType, &tk.Quantity,
		&tk.TotalPrice, &tk.PaymentStatus, &tk.PurchasedAt, &tk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tk, nil
}

func queryTickets(query string, args ...interface{}) ([]*Ticket, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var tickets []*Ticket
	for rows.Next() {
		tk, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket row: %w", err)
		}
		tickets = append(tickets, tk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return tickets, nil
}
