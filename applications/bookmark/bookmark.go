package bookmark

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Bookmark is a (user, event) pairing. The pair is unique; deleting is
// owner-only.
type Bookmark struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	EventID      uuid.UUID `json:"event_id"`
	BookmarkedAt time.Time `json:"bookmarked_at"`
}

var (
	ErrBookmarkNotFound  = errors.New("bookmark not found")
	ErrAlreadyBookmarked = errors.New("event already bookmarked")
)
