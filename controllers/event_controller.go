package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/yaeboye/cityspark-events/applications/event"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/labstack/echo/v4"
)

// errorEnvelope is the {success:false, error} shape both provider-backed
// endpoints answer with on any failure.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SearchEventsController handles POST /api/search-events. Every failure
// mode (validation, configuration, provider) comes back as the same
// envelope with the message intended for direct display.
func SearchEventsController(c echo.Context) error {
	var params event.SearchParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Success: false, Error: "Invalid request payload."})
	}

	result, err := EventAggregator.Search(c.Request().Context(), params)
	if err != nil {
		logger.Log.Error("[search-events] " + err.Error())
		return c.JSON(http.StatusBadRequest, errorEnvelope{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// GetAllEventsController serves the public listing; approved events only.
func GetAllEventsController(c echo.Context) error {
	events, err := event.GetApprovedEvents(c.QueryParam("city"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list events: " + err.Error()})
	}
	if events == nil {
		events = []*event.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

func GetEventController(c echo.Context) error {
	ev, err := event.GetEvent(c.Param("eventID"))
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ev)
}

// CreateEventController handles admin event creation.
func CreateEventController(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	createdBy, _ := c.Get("userEmail").(string)
	ev, err := event.AddEvent(payload, createdBy)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ev)
}

func UpdateEventController(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	ev, err := event.UpdateEvent(c.Param("eventID"), payload)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ev)
}

type moderationParams struct {
	Approved *bool `json:"approved,omitempty"`
	Verified *bool `json:"verified,omitempty"`
}

// ApproveEventController flips the public-visibility flag.
func ApproveEventController(c echo.Context) error {
	var p moderationParams
	if err := c.Bind(&p); err != nil || p.Approved == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "approved flag is required"})
	}

	approvedBy, _ := c.Get("userEmail").(string)
	ev, err := event.SetApproved(c.Param("eventID"), *p.Approved, approvedBy)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ev)
}

// VerifyEventController flips the trusted tier flag; only admin-sourced
// events are eligible.
func VerifyEventController(c echo.Context) error {
	var p moderationParams
	if err := c.Bind(&p); err != nil || p.Verified == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "verified flag is required"})
	}

	ev, err := event.SetVerified(c.Param("eventID"), *p.Verified)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
		case errors.Is(err, event.ErrVerifyNonAdmin):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, ev)
}

func GetPendingEventsController(c echo.Context) error {
	events, err := event.GetPendingEvents()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list pending events: " + err.Error()})
	}
	if events == nil {
		events = []*event.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

func DeleteEventController(c echo.Context) error {
	if _, err := event.DeleteEvent(c.Param("eventID")); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
