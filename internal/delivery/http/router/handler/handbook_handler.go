package handler

import (
	"net/http"

	"krvt/internal/delivery/http/response"
	"krvt/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HandbookHandler serves the static community handbook.
type HandbookHandler struct{}

// NewHandbookHandler creates a new HandbookHandler instance
func NewHandbookHandler() *HandbookHandler {
	return &HandbookHandler{}
}

// Handbook returns the knowledge sections and the severity legend
func (h *HandbookHandler) Handbook(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"sections":        entity.HandbookSections,
		"severity_guides": entity.SeverityGuides,
	}, "")
}

// HealthCheck reports process liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
