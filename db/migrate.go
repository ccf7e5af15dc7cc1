// db/migrate.go
package db

import "fmt"

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
    user_id UUID PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`

const createEventsTableSQL = `
CREATE TABLE IF NOT EXISTS events (
    id UUID PRIMARY KEY,
    external_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    description TEXT,
    category TEXT NOT NULL DEFAULT 'general',
    start_date TIMESTAMP WITH TIME ZONE,
    end_date TIMESTAMP WITH TIME ZONE,
    city TEXT NOT NULL,
    venue TEXT,
    address TEXT,
    latitude DOUBLE PRECISION,
    longitude DOUBLE PRECISION,
    is_paid BOOLEAN NOT NULL DEFAULT FALSE,
    price_min BIGINT,
    price_max BIGINT,
    ticket_url TEXT,
    image_url TEXT,
    source TEXT NOT NULL,
    approved BOOLEAN NOT NULL DEFAULT FALSE,
    approved_by TEXT,
    verified BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL
);`

const createTicketsTableSQL = `
CREATE TABLE IF NOT EXISTS tickets (
    id UUID PRIMARY KEY,
    event_id UUID REFERENCES events(id),
    user_id UUID,
    ticket_code TEXT NOT NULL UNIQUE,
    ticket_type TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    total_price BIGINT NOT NULL,
    payment_status TEXT NOT NULL,
    purchased_at TIMESTAMP WITH TIME ZONE NOT NULL,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL
);`

const createBookmarksTableSQL = `
CREATE TABLE IF NOT EXISTS user_bookmarks (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    event_id UUID NOT NULL REFERENCES events(id),
    bookmarked_at TIMESTAMP WITH TIME ZONE NOT NULL,
    UNIQUE (user_id, event_id)
);`

const createTestimonialsTableSQL = `
CREATE TABLE IF NOT EXISTS testimonials (
    id UUID PRIMARY KEY,
    user_id UUID,
    author_name TEXT NOT NULL,
    content TEXT NOT NULL,
    rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
    approved BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`

// RunMigrations executes all necessary database structure changes.
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection is nil, call InitDB first")
	}

	if _, err := DB.Exec(createUsersTableSQL); err != nil {
		return fmt.Errorf("error running users table migration: %w", err)
	}

	if _, err := DB.Exec(createEventsTableSQL); err != nil {
		return fmt.Errorf("error running events table migration: %w", err)
	}

	if _, err := DB.Exec(createTicketsTableSQL); err != nil {
		return fmt.Errorf("error running tickets table migration: %w", err)
	}

	if _, err := DB.Exec(createBookmarksTableSQL); err != nil {
		return fmt.Errorf("error running bookmarks table migration: %w", err)
	}

	if _, err := DB.Exec(createTestimonialsTableSQL); err != nil {
		return fmt.Errorf("error running testimonials table migration: %w", err)
	}

	fmt.Println("Migrations completed successfully.")
	return nil
}
