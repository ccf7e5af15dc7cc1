package controllers

import (
	"net/http"

	"github.com/yaeboye/cityspark-events/applications/auth"
	"github.com/yaeboye/cityspark-events/applications/user"

	"github.com/labstack/echo/v4"
)

// LoginHandler exchanges email/password credentials for a JWT.
func LoginHandler(c echo.Context) error {
	var p user.LoginParams
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}
	if p.Email == "" || p.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required."})
	}

	token, role, err := auth.Login(p.Email, p.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token": token,
		"role":  role,
	})
}

// RegisterHandler creates a regular user account.
func RegisterHandler(c echo.Context) error {
	var p user.LoginParams
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	u, err := user.CreateUser(p.Email, p.Password, user.RoleUser)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, u)
}
