package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"krvt/internal/delivery/http/response"
	"krvt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Leaderboard rows returned when the query does not say otherwise.
const defaultLeaderboardLimit = 10

// ParticipantHandlerParams holds dependencies for ParticipantHandler, injected by Fx.
type ParticipantHandlerParams struct {
	fx.In

	ParticipantUC usecase.ParticipantUsecase
	Logger        *slog.Logger
}

// ParticipantHandler holds dependencies for participant-related handlers
type ParticipantHandler struct {
	participantUC usecase.ParticipantUsecase
	logger        *slog.Logger
}

// NewParticipantHandler is the constructor for ParticipantHandler
func NewParticipantHandler(params ParticipantHandlerParams) *ParticipantHandler {
	return &ParticipantHandler{
		participantUC: params.ParticipantUC,
		logger:        params.Logger,
	}
}

// AddParticipantRequest represents the request body for registering a participant
type AddParticipantRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// ListParticipants returns the participant ledger
func (h *ParticipantHandler) ListParticipants(c echo.Context) error {
	participants := h.participantUC.ListParticipants(c.Request().Context())

	return response.Success(c, http.StatusOK, participants, "")
}

// AddParticipant registers a new participant
func (h *ParticipantHandler) AddParticipant(c echo.Context) error {
	var req AddParticipantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid participant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	participant, err := h.participantUC.AddParticipant(c.Request().Context(), &usecase.AddParticipantInput{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, participant, "Participant registered")
}

// Leaderboard returns the top participants by balance
func (h *ParticipantHandler) Leaderboard(c echo.Context) error {
	limit := defaultLeaderboardLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
		}
		limit = parsed
	}

	board := h.participantUC.Leaderboard(c.Request().Context(), limit)

	return response.Success(c, http.StatusOK, board, "")
}
