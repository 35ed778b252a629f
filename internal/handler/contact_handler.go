package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hubsite/internal/service"
)

// ContactHandler handles contact form submissions. No login required.
type ContactHandler struct {
	contact service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contact service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// ContactSubmitRequest represents a contact form submission.
type ContactSubmitRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Submit stores the message and notifies the site owner best-effort.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactSubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.contact.Submit(c.Request().Context(), service.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "message sent successfully"})
}
