package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/yaeboye/cityspark-events/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware validates the bearer token and stashes the user's
// identity on the request context.
func JWTAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := ""

		// Prefer the Authorization header.
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		// Fallback: ?token= in the query (useful for download links).
		if tokenString == "" {
			tokenString = c.QueryParam("token")
		}

		if tokenString == "" {
			logger.Log.Warn("[auth] JWT check failed: No token in header or query.")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization token missing"})
		}

		token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			logger.Log.Warn(fmt.Sprintf("[auth] Invalid or expired JWT: %v", err))
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(*UserClaims)
		if !ok {
			logger.Log.Error("[auth] JWT claims extraction failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Invalid token claims"})
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("userEmail", claims.Email)

		return next(c)
	}
}

// AdminOnlyMiddleware checks the role set by JWTAuthMiddleware.
func AdminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role := c.Get("userRole")

		if role == nil || role != "admin" {
			logger.Log.Warn(fmt.Sprintf("[auth] RBAC check failed for UserID %v: Access Forbidden.", c.Get("userID")))
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Access Forbidden: Admin privileges required"})
		}

		return next(c)
	}
}
