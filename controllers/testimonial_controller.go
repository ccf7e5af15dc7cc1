package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/yaeboye/cityspark-events/applications/testimonial"

	"github.com/labstack/echo/v4"
)

// SubmitTestimonialController accepts a testimonial from an authenticated
// user; it stays hidden until approved.
func SubmitTestimonialController(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	userID, _ := c.Get("userID").(string)
	t, err := testimonial.AddTestimonial(userID, payload)
	if err != nil {
		if errors.Is(err, testimonial.ErrInvalidRating) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

// GetTestimonialsController serves the public, approved-only list.
func GetTestimonialsController(c echo.Context) error {
	items, err := testimonial.GetApprovedTestimonials()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list testimonials: " + err.Error()})
	}
	if items == nil {
		items = []*testimonial.Testimonial{}
	}
	return c.JSON(http.StatusOK, items)
}

// GetAllTestimonialsAdminController serves the moderation list.
func GetAllTestimonialsAdminController(c echo.Context) error {
	items, err := testimonial.GetAllTestimonials()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list testimonials: " + err.Error()})
	}
	if items == nil {
		items = []*testimonial.Testimonial{}
	}
	return c.JSON(http.StatusOK, items)
}

type approveTestimonialParams struct {
	Approved *bool `json:"approved"`
}

// ApproveTestimonialController flips the public-visibility flag.
func ApproveTestimonialController(c echo.Context) error {
	var p approveTestimonialParams
	if err := c.Bind(&p); err != nil || p.Approved == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "approved flag is required"})
	}

	if err := testimonial.SetApproved(c.Param("testimonialID"), *p.Approved); err != nil {
		if errors.Is(err, testimonial.ErrTestimonialNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Testimonial not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func DeleteTestimonialController(c echo.Context) error {
	if err := testimonial.DeleteTestimonial(c.Param("testimonialID")); err != nil {
		if errors.Is(err, testimonial.ErrTestimonialNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Testimonial not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
