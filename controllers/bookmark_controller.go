package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/yaeboye/cityspark-events/applications/bookmark"

	"github.com/labstack/echo/v4"
)

// AddBookmarkController saves an event for the authenticated user.
func AddBookmarkController(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	userID, _ := c.Get("userID").(string)
	bm, err := bookmark.AddBookmark(userID, payload)
	if err != nil {
		if errors.Is(err, bookmark.ErrAlreadyBookmarked) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, bm)
}

// GetBookmarksController lists the authenticated user's saved events.
func GetBookmarksController(c echo.Context) error {
	userID, _ := c.Get("userID").(string)
	items, err := bookmark.GetBookmarksByUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list bookmarks: " + err.Error()})
	}
	if items == nil {
		items = []*bookmark.BookmarkedEvent{}
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteBookmarkController removes one of the authenticated user's
// bookmarks. Owner scoping happens inside the use case.
func DeleteBookmarkController(c echo.Context) error {
	userID, _ := c.Get("userID").(string)
	if err := bookmark.DeleteBookmark(userID, c.Param("bookmarkID")); err != nil {
		if errors.Is(err, bookmark.ErrBookmarkNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Bookmark not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
