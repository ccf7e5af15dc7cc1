package db

import (
	"database/sql"
	"fmt"
	"net/url"

	"github.com/yaeboye/cityspark-events/logger"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB

// InitDB opens the database connection and assigns it to the global DB variable.
func InitDB(connStr string) error {
	var err error

	logger.Log.Info("[db] Attempting to open database connection...")

	// lib/pq chokes on binary parameters with some prepared statements, so
	// force them off when the DSN is URL-shaped.
	if u, parseErr := url.Parse(connStr); parseErr == nil && u.Scheme != "" {
		q := u.Query()
		q.Set("binary_parameters", "no")
		u.RawQuery = q.Encode()
		connStr = u.String()
	}

	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[db] Error opening database: %v", err))
		return fmt.Errorf("error opening database: %w", err)
	}

	// Connection pool tuning
	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)

	logger.Log.Info("[db] Pinging database to verify connection...")
	if err = DB.Ping(); err != nil {
		logger.Log.Error(fmt.Sprintf("[db] Failed to ping database: %v", err))
		return fmt.Errorf("error pinging database: %w", err)
	}

	logger.Log.Info("[db] Successfully connected to PostgreSQL!")
	return nil
}
