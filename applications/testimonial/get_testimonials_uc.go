package testimonial

import (
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
)

const testimonialColumns = `id, user_id, author_name, content, rating, approved, created_at`

// GetApprovedTestimonials returns the public list: approved rows only,
// newest first.
func GetApprovedTestimonials() ([]*Testimonial, error) {
	return queryTestimonials(`SELECT ` + testimonialColumns + ` FROM testimonials WHERE approved = TRUE ORDER BY created_at DESC`)
}

// GetAllTestimonials returns every row for the admin moderation list.
func GetAllTestimonials() ([]*Testimonial, error) {
	return queryTestimonials(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`)
}

func queryTestimonials(query string, args ...interface{}) ([]*Testimonial, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var items []*Testimonial
	for rows.Next() {
		t := &Testimonial{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.AuthorName, &t.Content, &t.Rating, &t.Approved, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return items, nil
}
