package bookmark

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AddBookmarkParams struct {
	EventID string `json:"event_id" validate:"required"`
}

// AddBookmark saves an event for a user. A second add of the same pair is
// rejected via the unique constraint rather than a pre-read.
func AddBookmark(userID string, payload []byte) (*Bookmark, error) {
	var p AddBookmarkParams
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	eventID, err := uuid.Parse(p.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	bm := &Bookmark{
		ID:           uuid.New(),
		UserID:       uid,
		EventID:      eventID,
		BookmarkedAt: time.Now(),
	}

	const insertSQL = `
		INSERT INTO user_bookmarks (id, user_id, event_id, bookmarked_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := db.DB.Exec(insertSQL, bm.ID, bm.UserID, bm.EventID, bm.BookmarkedAt); err != nil {
		// 23505 is unique_violation: the (user, event) pair already exists.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAlreadyBookmarked
		}
		logger.Log.Error(fmt.Sprintf("[add-bookmark-uc] Insert failed for user %s, event %s: %v", userID, p.EventID, err))
		return nil, fmt.Errorf("failed to insert bookmark: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[add-bookmark-uc] User %s bookmarked event %s.", userID, p.EventID))
	return bm, nil
}
