package usecase

import (
	"context"

	"krvt/internal/domain/entity"
)

// TrendOverview is the current trend window with its aggregate, recomputed on
// demand so it always matches exactly the visible entries.
type TrendOverview struct {
	History   []entity.TrendPoint `json:"history"`
	TotalBags int                 `json:"total_bags"`
}

// SetWeatherAlertInput defines the manually edited weather alert state.
type SetWeatherAlertInput struct {
	BadWeatherRisk bool   `json:"bad_weather_risk"`
	Note           string `json:"note"`
}

// TrendUsecase defines the operations on the rolling collection trend log and
// the weather alert flag.
type TrendUsecase interface {
	// SimulateDay appends one synthetic entry, evicting the oldest entries
	// beyond the fixed window, and returns the resulting overview.
	SimulateDay(ctx context.Context) *TrendOverview

	// Overview returns the current window and its bag total.
	Overview(ctx context.Context) *TrendOverview

	// TotalBags returns the sum of bags over exactly the current window.
	TotalBags(ctx context.Context) int

	// SetWeatherAlert replaces the weather alert state.
	SetWeatherAlert(ctx context.Context, input *SetWeatherAlertInput) entity.WeatherAlert

	// WeatherAlert returns the current weather alert state.
	WeatherAlert(ctx context.Context) entity.WeatherAlert
}
