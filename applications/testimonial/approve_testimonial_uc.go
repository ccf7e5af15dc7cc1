package testimonial

import (
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

// SetApproved flips the public-visibility flag on a testimonial.
func SetApproved(testimonialID string, approved bool) error {
	id, err := uuid.Parse(testimonialID)
	if err != nil {
		return fmt.Errorf("invalid testimonial ID format: %w", err)
	}

	const updateSQL = `UPDATE testimonials SET approved = $2 WHERE id = $1`

	result, err := db.DB.Exec(updateSQL, id, approved)
	if err != nil {
		return fmt.Errorf("failed to update testimonial approval: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrTestimonialNotFound
	}

	logger.Log.Info(fmt.Sprintf("[approve-testimonial-uc] Testimonial %s approved=%t.", testimonialID, approved))
	return nil
}

// DeleteTestimonial removes a testimonial row.
func DeleteTestimonial(testimonialID string) error {
	id, err := uuid.Parse(testimonialID)
	if err != nil {
		return fmt.Errorf("invalid testimonial ID format: %w", err)
	}

	result, err := db.DB.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
