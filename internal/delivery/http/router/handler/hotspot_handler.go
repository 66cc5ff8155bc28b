// Package handler contains the echo handlers of the HTTP delivery. Handlers
// bind and validate request bodies, call the usecase layer and render the
// unified response envelope.
package handler

import (
	"log/slog"
	"net/http"

	"krvt/internal/delivery/http/response"
	"krvt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HotspotHandlerParams holds dependencies for HotspotHandler, injected by Fx.
type HotspotHandlerParams struct {
	fx.In

	HotspotUC usecase.HotspotUsecase
	Logger    *slog.Logger
}

// HotspotHandler holds dependencies for hotspot-related handlers
type HotspotHandler struct {
	hotspotUC usecase.HotspotUsecase
	logger    *slog.Logger
}

// NewHotspotHandler is the constructor for HotspotHandler
func NewHotspotHandler(params HotspotHandlerParams) *HotspotHandler {
	return &HotspotHandler{
		hotspotUC: params.HotspotUC,
		logger:    params.Logger,
	}
}

// AddHotspotRequest represents the request body for registering a hotspot
type AddHotspotRequest struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level"`
	Note  string `json:"note"`
}

// SetLevelRequest represents the request body for updating a pollution level
type SetLevelRequest struct {
	Level int `json:"level"`
}

// ListHotspots returns the hotspot registry
func (h *HotspotHandler) ListHotspots(c echo.Context) error {
	spots := h.hotspotUC.ListHotspots(c.Request().Context())

	return response.Success(c, http.StatusOK, spots, "")
}

// AddHotspot registers a new hotspot
func (h *HotspotHandler) AddHotspot(c echo.Context) error {
	var req AddHotspotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hotspot input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	spot, err := h.hotspotUC.AddHotspot(c.Request().Context(), &usecase.AddHotspotInput{
		Name:  req.Name,
		Level: req.Level,
		Note:  req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, spot, "Hotspot registered")
}

// SetLevel updates a hotspot's pollution level
func (h *HotspotHandler) SetLevel(c echo.Context) error {
	var req SetLevelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid level input")
	}

	if err := h.hotspotUC.SetLevel(c.Request().Context(), c.Param("id"), req.Level); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Level updated")
}

// RemoveHotspot deletes a hotspot
func (h *HotspotHandler) RemoveHotspot(c echo.Context) error {
	if err := h.hotspotUC.RemoveHotspot(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Hotspot removed")
}

// Overview returns the registry summary
func (h *HotspotHandler) Overview(c echo.Context) error {
	overview := h.hotspotUC.Overview(c.Request().Context())

	return response.Success(c, http.StatusOK, overview, "")
}
