package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/yaeboye/cityspark-events/applications/event"
	"github.com/yaeboye/cityspark-events/applications/ticket"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/labstack/echo/v4"
)

// PurchaseTicketController handles POST /api/v1/tickets for the
// authenticated user.
func PurchaseTicketController(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	userID, _ := c.Get("userID").(string)
	tk, err := ticket.PurchaseTicket(userID, payload)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[ticket] Purchase failed for user %s: %v", userID, err))
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
		case errors.Is(err, ticket.ErrEventNotPurchasable), errors.Is(err, ticket.ErrInvalidQuantity):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusCreated, tk)
}

// GetMyTicketsController lists the authenticated user's tickets.
func GetMyTicketsController(c echo.Context) error {
	userID, _ := c.Get("userID").(string)
	tickets, err := ticket.GetTicketsByUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list tickets: " + err.Error()})
	}
	if tickets == nil {
		tickets = []*ticket.Ticket{}
	}
	return c.JSON(http.StatusOK, tickets)
}

// DownloadETicketController streams the PDF eTicket for a paid ticket the
// user owns.
func DownloadETicketController(c echo.Context) error {
	userID, _ := c.Get("userID").(string)

	tk, err := ticket.GetTicket(c.Param("ticketID"))
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Ticket not found."})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if tk.UserID.String() != userID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "This ticket belongs to another user."})
	}

	tk, pdfBytes, err := ticket.GenerateTicketPDF(tk.ID.String())
	if err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="ticket-%s.pdf"`, tk.TicketCode))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

// GetAllTicketsAdminController lists every ticket record for the admin
// panel.
func GetAllTicketsAdminController(c echo.Context) error {
	tickets, err := ticket.GetAllTickets()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list tickets: " + err.Error()})
	}
	if tickets == nil {
		tickets = []*ticket.Ticket{}
	}
	return c.JSON(http.StatusOK, tickets)
}

// UpdatePaymentStatusController moves a ticket through the payment state
// machine (admin only).
func UpdatePaymentStatusController(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	tk, err := ticket.UpdatePaymentStatus(c.Param("ticketID"), payload)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrTicketNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Ticket not found."})
		case errors.Is(err, ticket.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, tk)
}
