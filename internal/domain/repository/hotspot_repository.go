package repository

import (
	"context"

	"krvt/internal/domain/entity"
)

// HotspotRepository owns the hotspot collection. Mutations persist the whole
// collection as a fire-and-forget snapshot; persistence failures are logged by
// the implementation, never surfaced.
type HotspotRepository interface {
	// List returns the hotspots in insertion order.
	List(ctx context.Context) []*entity.Hotspot

	// Insert appends a new hotspot to the collection.
	Insert(ctx context.Context, hotspot *entity.Hotspot)

	// SetLevel replaces the stored pollution level. It reports false when the
	// id is unknown, in which case nothing changes.
	SetLevel(ctx context.Context, id string, level int) bool

	// Remove deletes the hotspot. It reports false when the id is unknown.
	Remove(ctx context.Context, id string) bool
}
