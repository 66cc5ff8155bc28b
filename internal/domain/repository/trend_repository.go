package repository

import (
	"context"

	"krvt/internal/domain/entity"
)

// TrendRepository owns the rolling trend window and the weather alert state.
// Both persist under the same snapshot key.
type TrendRepository interface {
	// History returns the current window, oldest first.
	History(ctx context.Context) []entity.TrendPoint

	// Append adds a new point and evicts the oldest entries until the window
	// is back to entity.TrendWindowSize. It returns the resulting window.
	Append(ctx context.Context, point entity.TrendPoint) []entity.TrendPoint

	// Alert returns the current weather alert state.
	Alert(ctx context.Context) entity.WeatherAlert

	// SetAlert replaces the weather alert state.
	SetAlert(ctx context.Context, alert entity.WeatherAlert)
}
