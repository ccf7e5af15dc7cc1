package bookmark

import (
	"fmt"

	"github.com/yaeboye/cityspark-events/applications/event"
	"github.com/yaeboye/cityspark-events/db"

	"github.com/google/uuid"
)

// BookmarkedEvent pairs a bookmark with its event for the saved-events page.
type BookmarkedEvent struct {
	Bookmark *Bookmark    `json:"bookmark"`
	Event    *event.Event `json:"event"`
}

// GetBookmarksByUser lists a user's saved events, most recently saved first.
func GetBookmarksByUser(userID string) ([]*BookmarkedEvent, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	const selectSQL = `
		SELECT b.id, b.user_id, b.event_id, b.bookmarked_at
		FROM user_bookmarks b
		WHERE b.user_id = $1
		ORDER BY b.bookmarked_at DESC`

	rows, err := db.DB.Query(selectSQL, uid)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var result []*BookmarkedEvent
	for rows.Next() {
		bm := &Bookmark{}
		if err := rows.Scan(&bm.ID, &bm.UserID, &bm.EventID, &bm.BookmarkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		result = append(result, &BookmarkedEvent{Bookmark: bm})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// Attach the event rows. Missing events (deleted since bookmarking)
	// leave Event nil rather than failing the whole listing.
	for _, be := range result {
		if ev, err := event.GetEvent(be.Bookmark.EventID.String()); err == nil {
			be.Event = ev
		}
	}
	return result, nil
}
