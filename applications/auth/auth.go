package auth

import (
	"fmt"
	"time"

	"github.com/yaeboye/cityspark-events/logger"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecret is set from config at startup; the default only exists so
// tests can run without wiring.
var jwtSecret = []byte("dev-only-insecure-secret")

// SetSigningKey installs the JWT signing key from configuration. Call once
// at startup before any token is issued or validated.
func SetSigningKey(secret string) {
	jwtSecret = []byte(secret)
	logger.Log.Info("[auth] JWT signing key configured.")
}

// UserClaims stores user info in the token.
type UserClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a new signed JWT for the user.
func GenerateJWT(userID, email, role string) (string, error) {
	claims := UserClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)), // 24-hour expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[auth] Failed to sign JWT for user %s (%s): %v", userID, email, err))
		return "", err
	}

	logger.Log.Info(fmt.Sprintf("[auth] Generated JWT for user %s (Role: %s).", userID, role))
	return tokenString, nil
}
