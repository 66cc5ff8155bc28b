// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"krvt/internal/domain/entity"
)

// AddHotspotInput defines the data required to register a new observation
// point.
type AddHotspotInput struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Note  string `json:"note"`
}

// HotspotOverview summarizes the registry: the mean pollution level (rounded
// to the nearest integer) and its severity band.
type HotspotOverview struct {
	Count        int             `json:"count"`
	AverageLevel int             `json:"average_level"`
	Severity     entity.Severity `json:"severity"`
	Label        string          `json:"label"`
	Color        string          `json:"color"`
}

// HotspotUsecase defines the operations on the pollution hotspot registry.
type HotspotUsecase interface {
	// AddHotspot registers a new hotspot with a generated id. The name is
	// required; the level is clamped to [0,100].
	AddHotspot(ctx context.Context, input *AddHotspotInput) (*entity.Hotspot, error)

	// SetLevel replaces a hotspot's pollution level, clamped to [0,100].
	// An unknown id is a silent no-op (a harmless stale reference).
	SetLevel(ctx context.Context, id string, level int) error

	// RemoveHotspot deletes a hotspot. An unknown id is a silent no-op.
	RemoveHotspot(ctx context.Context, id string) error

	// ListHotspots returns the registry in insertion order.
	ListHotspots(ctx context.Context) []*entity.Hotspot

	// Overview returns the registry summary. An empty registry averages to
	// zero rather than dividing by zero.
	Overview(ctx context.Context) *HotspotOverview
}
