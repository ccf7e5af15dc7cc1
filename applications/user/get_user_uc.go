package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/yaeboye/cityspark-events/db"
)

var ErrUserNotFound = errors.New("user not found")

// GetUserByEmail retrieves an account by email, including the password
// hash for login comparison.
func GetUserByEmail(email string) (*User, error) {
	const selectSQL = `
		SELECT user_id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1`

	u := &User{}
	err := db.DB.QueryRow(selectSQL, email).Scan(&u.UserID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return u, nil
}
