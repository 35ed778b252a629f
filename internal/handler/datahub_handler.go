package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hubsite/internal/service"
)

// DataHubHandler handles the shared record log.
type DataHubHandler struct {
	datahub service.DataHubService
}

// NewDataHubHandler creates a new datahub handler.
func NewDataHubHandler(datahub service.DataHubService) *DataHubHandler {
	return &DataHubHandler{datahub: datahub}
}

// CreateRecordRequest represents a new record submission.
type CreateRecordRequest struct {
	Title   string `json:"title" form:"title" validate:"required"`
	Content string `json:"content" form:"content" validate:"required"`
}

// List returns all records, most recent first.
func (h *DataHubHandler) List(c echo.Context) error {
	records, err := h.datahub.ListRecords(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"records": records})
}

// Create adds a record.
func (h *DataHubHandler) Create(c echo.Context) error {
	var req CreateRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.datahub.CreateRecord(c.Request().Context(), req.Title, req.Content)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "record added",
		"record":  record,
	})
}

// Delete removes a record by id.
func (h *DataHubHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.datahub.DeleteRecord(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "record deleted"})
}
