package auth

import (
	"errors"
	"fmt"

	"github.com/yaeboye/cityspark-events/applications/user"
	"github.com/yaeboye/cityspark-events/logger"

	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials and issues a JWT carrying the user's role.
func Login(email, password string) (token string, role string, err error) {
	logger.Log.Info(fmt.Sprintf("[auth] Login attempt started for email: %s", email))

	u, err := user.GetUserByEmail(email)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[auth] Login failed for %s: User not found or DB error: %v", email, err))
		return "", "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		logger.Log.Warn(fmt.Sprintf("[auth] Login failed for %s: Password mismatch.", email))
		return "", "", errors.New("invalid credentials")
	}

	token, err = GenerateJWT(u.UserID.String(), u.Email, u.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[auth] Login successful for %s (role %s). JWT issued.", email, u.Role))
	return token, u.Role, nil
}
