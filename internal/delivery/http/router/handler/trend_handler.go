package handler

import (
	"log/slog"
	"net/http"

	"krvt/internal/delivery/http/response"
	"krvt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrendHandlerParams holds dependencies for TrendHandler, injected by Fx.
type TrendHandlerParams struct {
	fx.In

	TrendUC usecase.TrendUsecase
	Logger  *slog.Logger
}

// TrendHandler holds dependencies for trend and weather-alert handlers
type TrendHandler struct {
	trendUC usecase.TrendUsecase
	logger  *slog.Logger
}

// NewTrendHandler is the constructor for TrendHandler
func NewTrendHandler(params TrendHandlerParams) *TrendHandler {
	return &TrendHandler{
		trendUC: params.TrendUC,
		logger:  params.Logger,
	}
}

// SetWeatherAlertRequest represents the request body for the weather alert
type SetWeatherAlertRequest struct {
	BadWeatherRisk bool   `json:"bad_weather_risk"`
	Note           string `json:"note"`
}

// Overview returns the trend window and its bag total
func (h *TrendHandler) Overview(c echo.Context) error {
	overview := h.trendUC.Overview(c.Request().Context())

	return response.Success(c, http.StatusOK, overview, "")
}

// SimulateDay appends one synthetic day to the trend window
func (h *TrendHandler) SimulateDay(c echo.Context) error {
	overview := h.trendUC.SimulateDay(c.Request().Context())

	return response.Success(c, http.StatusOK, overview, "Day simulated")
}

// WeatherAlert returns the current weather alert state
func (h *TrendHandler) WeatherAlert(c echo.Context) error {
	alert := h.trendUC.WeatherAlert(c.Request().Context())

	return response.Success(c, http.StatusOK, alert, "")
}

// SetWeatherAlert replaces the weather alert state
func (h *TrendHandler) SetWeatherAlert(c echo.Context) error {
	var req SetWeatherAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	alert := h.trendUC.SetWeatherAlert(c.Request().Context(), &usecase.SetWeatherAlertInput{
		BadWeatherRisk: req.BadWeatherRisk,
		Note:           req.Note,
	})

	return response.Success(c, http.StatusOK, alert, "Weather alert updated")
}
