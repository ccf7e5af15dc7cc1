package event

import (
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"
)

// GetApprovedEvents returns the public listing: approved rows only,
// verified (admin-curated) events first, soonest start date first.
func GetApprovedEvents(city string) ([]*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE approved = TRUE`
	args := []interface{}{}
	if city != "" {
		query += ` AND LOWER(city) = LOWER($1)`
		args = append(args, city)
	}
	query += ` ORDER BY verified DESC, start_date ASC NULLS LAST`

	return queryEvents(query, args...)
}

// GetPendingEvents returns unapproved rows for the admin moderation queue.
func GetPendingEvents() ([]*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE approved = FALSE ORDER BY created_at DESC`
	return queryEvents(query)
}

func queryEvents(query string, args ...interface{}) ([]*Event, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[get-all-events-uc] Query failed: %v", err))
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return events, nil
}
