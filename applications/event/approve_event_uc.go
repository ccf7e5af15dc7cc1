package event

import (
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

// SetApproved flips the public-visibility flag on an event and records who
// made the call.
func SetApproved(eventID string, approved bool, approvedBy string) (*Event, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	const updateSQL = `
		UPDATE events SET approved = $2, approved_by = $3, updated_at = NOW()
		WHERE id = $1`

	result, err := db.DB.Exec(updateSQL, id, approved, nullString(approvedBy))
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[approve-event-uc] Approval update failed for %s: %v", eventID, err))
		return nil, fmt.Errorf("failed to update approval: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrEventNotFound
	}

	logger.Log.Info(fmt.Sprintf("[approve-event-uc] Event %s approved=%t by %s.", eventID, approved, approvedBy))
	return GetEvent(eventID)
}

// SetVerified marks an event as admin-curated "trusted" tier. The verified
// flag is reserved for admin-sourced rows; api/fallback rows are rejected.
func SetVerified(eventID string, verified bool) (*Event, error) {
	ev, err := GetEvent(eventID)
	if err != nil {
		return nil, err
	}

	if verified && ev.Source != SourceAdmin {
		logger.Log.Warn(fmt.Sprintf("[approve-event-uc] Refusing to verify %s-sourced event %s.", ev.Source, eventID))
		return nil, ErrVerifyNonAdmin
	}

	const updateSQL = `UPDATE events SET verified = $2, updated_at = NOW() WHERE id = $1`

	if _, err := db.DB.Exec(updateSQL, ev.ID, verified); err != nil {
		logger.Log.Error(fmt.Sprintf("[approve-event-uc] Verify update failed for %s: %v", eventID, err))
		return nil, fmt.Errorf("failed to update verified flag: %w", err)
	}

	ev.Verified = verified
	return ev, nil
}
