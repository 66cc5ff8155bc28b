package handler

import (
	"log/slog"
	"net/http"

	"krvt/internal/delivery/http/response"
	"krvt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RewardHandlerParams holds dependencies for RewardHandler, injected by Fx.
type RewardHandlerParams struct {
	fx.In

	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

// RewardHandler holds dependencies for reward-related handlers
type RewardHandler struct {
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	return &RewardHandler{
		rewardUC: params.RewardUC,
		logger:   params.Logger,
	}
}

// AddRewardRequest represents the request body for adding a catalog item
type AddRewardRequest struct {
	Name string `json:"name" validate:"required"`
	Cost int    `json:"cost" validate:"required,gt=0"`
}

// RedeemRequest represents the request body for redeeming a reward
type RedeemRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

// ListRewards returns the reward catalog
func (h *RewardHandler) ListRewards(c echo.Context) error {
	rewards := h.rewardUC.ListRewards(c.Request().Context())

	return response.Success(c, http.StatusOK, rewards, "")
}

// AddReward adds a new catalog item
func (h *RewardHandler) AddReward(c echo.Context) error {
	var req AddRewardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reward input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reward, err := h.rewardUC.AddReward(c.Request().Context(), &usecase.AddRewardInput{
		Name: req.Name,
		Cost: req.Cost,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reward, "Reward added")
}

// Redeem exchanges a participant's points for the reward
func (h *RewardHandler) Redeem(c echo.Context) error {
	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.rewardUC.Redeem(c.Request().Context(), &usecase.RedeemInput{
		ParticipantID: req.ParticipantID,
		RewardID:      c.Param("id"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Reward redeemed")
}
