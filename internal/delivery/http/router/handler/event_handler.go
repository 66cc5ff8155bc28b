package handler

import (
	"log/slog"
	"net/http"

	"krvt/internal/delivery/http/response"
	"krvt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for event-related handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEventRequest represents the request body for creating a cleanup event
type CreateEventRequest struct {
	Name                string `json:"name" validate:"required"`
	Date                string `json:"date" validate:"required"`
	Description         string `json:"description"`
	PointsPerAttendance int    `json:"points_per_attendance"`
}

// ToggleAttendanceRequest represents the request body for toggling attendance
type ToggleAttendanceRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

// ListEvents returns the event roster
func (h *EventHandler) ListEvents(c echo.Context) error {
	events := h.eventUC.ListEvents(c.Request().Context())

	return response.Success(c, http.StatusOK, events, "")
}

// CreateEvent creates a new cleanup event
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		Name:                req.Name,
		Date:                req.Date,
		Description:         req.Description,
		PointsPerAttendance: req.PointsPerAttendance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created")
}

// ToggleAttendance flips a participant's roster membership
func (h *EventHandler) ToggleAttendance(c echo.Context) error {
	var req ToggleAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attendance input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.eventUC.ToggleAttendance(c.Request().Context(), c.Param("id"), req.ParticipantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Attendance toggled")
}

// AwardPoints credits every living roster member of the event
func (h *EventHandler) AwardPoints(c echo.Context) error {
	output, err := h.eventUC.AwardPoints(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Points awarded")
}
