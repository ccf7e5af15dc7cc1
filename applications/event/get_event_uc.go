package event

import (
	"database/sql"
	"fmt"

	"github.com/yaeboye/cityspark-events/db"

	"github.com/google/uuid"
)

// GetEvent retrieves a single event by its internal ID.
func GetEvent(eventID string) (*Event, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	selectSQL := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	ev, err := scanEvent(db.DB.QueryRow(selectSQL, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return ev, nil
}
