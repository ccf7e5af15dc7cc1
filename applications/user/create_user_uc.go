package user

import (
	"fmt"
	"time"

	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser inserts a new account with a bcrypt-hashed password.
func CreateUser(email, password, role string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if role != RoleAdmin && role != RoleUser {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		UserID:    uuid.New(),
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CreatedAt: time.Now(),
	}

	const insertSQL = `
		INSERT INTO users (user_id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := db.DB.Exec(insertSQL, u.UserID, u.Email, u.Password, u.Role, u.CreatedAt); err != nil {
		logger.Log.Error(fmt.Sprintf("[create-user-uc] Failed to insert user %s: %v", email, err))
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[create-user-uc] User %s created with role %s.", email, role))
	return u, nil
}

// EnsureAdmin seeds the configured admin account at startup if it does not
// exist yet.
func EnsureAdmin(email, password string) error {
	if _, err := GetUserByEmail(email); err == nil {
		logger.Log.Info(fmt.Sprintf("[create-user-uc] Admin account %s already present.", email))
		return nil
	}

	if _, err := CreateUser(email, password, RoleAdmin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	logger.Log.Info(fmt.Sprintf("[create-user-uc] Seeded admin account %s.", email))
	return nil
}
