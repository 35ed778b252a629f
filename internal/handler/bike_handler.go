package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hubsite/internal/service"
)

// BikeHandler handles the bike rental flow.
type BikeHandler struct {
	catalog  service.CatalogService
	bookings service.BookingService
}

// NewBikeHandler creates a new bike handler.
func NewBikeHandler(catalog service.CatalogService, bookings service.BookingService) *BikeHandler {
	return &BikeHandler{catalog: catalog, bookings: bookings}
}

// BookBikeRequest represents a bike booking form submission.
type BookBikeRequest struct {
	CustomerName string `json:"customer_name" form:"customer_name" validate:"required"`
	Email        string `json:"email" form:"email" validate:"required,email"`
	Phone        string `json:"phone" form:"phone" validate:"required"`
	StartDate    string `json:"start_date" form:"start_date" validate:"required"`
	EndDate      string `json:"end_date" form:"end_date" validate:"required"`
}

// List returns the bike catalog.
func (h *BikeHandler) List(c echo.Context) error {
	bikes, err := h.catalog.ListBikes(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"bikes": bikes})
}

// Get returns one bike's detail.
func (h *BikeHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	bike, err := h.catalog.GetBike(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"bike": bike})
}

// Book creates a booking for the bike in the path.
func (h *BikeHandler) Book(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req BookBikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.BookBike(c.Request().Context(), id, service.BookingRequest{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "booking confirmed",
		"booking": booking,
	})
}

// Confirmation returns a persisted booking.
func (h *BikeHandler) Confirmation(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	booking, err := h.bookings.GetBooking(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"booking": booking})
}
