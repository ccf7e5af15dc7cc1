package testimonial

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Testimonial is user-submitted feedback gated behind admin approval
// before public display.
type Testimonial struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)
