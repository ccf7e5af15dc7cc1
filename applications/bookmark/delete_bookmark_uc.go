package bookmark

import (
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

// DeleteBookmark removes a bookmark, but only for its owner: the delete is
// scoped by both bookmark ID and user ID so one user can never remove
// another's saved events.
func DeleteBookmark(userID, bookmarkID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format: %w", err)
	}
	id, err := uuid.Parse(bookmarkID)
	if err != nil {
		return fmt.Errorf("invalid bookmark ID format: %w", err)
	}

	const deleteSQL = `DELETE FROM user_bookmarks WHERE id = $1 AND user_id = $2`

	result, err := db.DB.Exec(deleteSQL, id, uid)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrBookmarkNotFound
	}

	logger.Log.Info(fmt.Sprintf("[delete-bookmark-uc] User %s removed bookmark %s.", userID, bookmarkID))
	return nil
}
