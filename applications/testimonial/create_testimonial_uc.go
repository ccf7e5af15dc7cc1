package testimonial

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
)

type CreateTestimonialParams struct {
	AuthorName string `json:"author_name" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Rating     int    `json:"rating" validate:"required"`
}

// AddTestimonial stores a user's testimonial. New rows start unapproved
// and stay hidden from the public listing until an admin approves them.
func AddTestimonial(userID string, payload []byte) (*Testimonial, error) {
	var p CreateTestimonialParams
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	if p.Rating < 1 || p.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(p.Content) == "" || strings.TrimSpace(p.AuthorName) == "" {
		return nil, fmt.Errorf("author name and content are required")
	}

	t := &Testimonial{
		ID:         uuid.New(),
		UserID:     uid,
		AuthorName: p.AuthorName,
		Content:    p.Content,
		Rating:     p.Rating,
		Approved:   false,
		CreatedAt:  time.Now(),
	}

	const insertSQL = `
		INSERT INTO testimonials (id, user_id, author_name, content, rating, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := db.DB.Exec(insertSQL, t.ID, t.UserID, t.AuthorName, t.Content, t.Rating, t.Approved, t.CreatedAt); err != nil {
		logger.Log.Error(fmt.Sprintf("[create-testimonial-uc] Insert failed for user %s: %v", userID, err))
		return nil, fmt.Errorf("failed to insert testimonial: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[create-testimonial-uc] Testimonial %s submitted (rating %d), awaiting approval.", t.ID, t.Rating))
	return t, nil
}
