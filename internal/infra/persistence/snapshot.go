// Package persistence contains the aggregate repositories. Each repository
// owns its collection in memory and mirrors every mutation into the snapshot
// store as a whole-collection write. Store failures degrade: loads fall back
// to the built-in defaults, saves are logged and dropped.
package persistence

import (
	"context"
	"log/slog"

	"krvt/internal/domain/repository"
)

// loadSnapshot reads the snapshot under key into a slice of models. A missing
// key or a decode failure both report found=false; the caller seeds defaults.
func loadSnapshot[M any](ctx context.Context, store repository.SnapshotStore, logger *slog.Logger, key string) ([]M, bool) {
	var models []M
	found, err := store.Load(ctx, key, &models)
	if err != nil {
		logger.Warn("Snapshot load failed, falling back to defaults",
			slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return models, found
}

// saveSnapshot writes the snapshot under key. Persistence is fire-and-forget:
// a failed save is logged, never propagated to the mutation that caused it.
func saveSnapshot(ctx context.Context, store repository.SnapshotStore, logger *slog.Logger, key string, value any) {
	if err := store.Save(ctx, key, value); err != nil {
		logger.Error("Snapshot save failed",
			slog.String("key", key), slog.Any("error", err))
	}
}
