// Package kv contains the snapshot store backends. Every backend persists
// whole-collection JSON snapshots under opaque string keys.
package kv

import (
	"log/slog"

	"krvt/config"
	"krvt/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the snapshot store, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the snapshot store selected by storage.provider.
func New(params Params) (repository.SnapshotStore, error) {
	provider := params.Config.Storage.Provider

	switch provider {
	case "", config.StorageMemory:
		return NewMemory(), nil
	case config.StorageRedis:
		return NewRedis(params.Config.Storage.Redis)
	case config.StoragePostgres:
		return NewPostgres(params.Config.Storage.Postgres, params.Logger)
	default:
		return nil, errors.Errorf("unknown storage provider: %s", provider)
	}
}
