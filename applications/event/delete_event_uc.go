package event

import (
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

// DeleteEvent removes an event row by its ID. Returns the number of rows
// affected.
func DeleteEvent(eventID string) (int64, error) {
	logger.Log.Info(fmt.Sprintf("[delete-event-uc] Deletion initiated for EventID: %s", eventID))

	id, err := uuid.Parse(eventID)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[delete-event-uc] Deletion failed for %s: Invalid UUID format.", eventID))
		return 0, fmt.Errorf("invalid event ID format: %w", err)
	}

	const deleteSQL = `DELETE FROM events WHERE id = $1`

	result, err := db.DB.Exec(deleteSQL, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return 0, ErrEventNotFound
	}

	logger.Log.Info(fmt.Sprintf("[delete-event-uc] Event %s deleted.", eventID))
	return rows, nil
}
