package persistence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"krvt/config"
	"krvt/internal/domain/entity"
	"krvt/internal/domain/repository"
	"krvt/internal/domain/service"
	"krvt/internal/infra/persistence/model"
)

type trendRepository struct {
	mu      sync.RWMutex
	alert   entity.WeatherAlert
	history []entity.TrendPoint
	store   repository.SnapshotStore
	logger  *slog.Logger
}

// NewTrendRepository loads the alert state and trend history from the
// snapshot store. On first start the history is seeded with synthetic days
// drawn by the simulator.
func NewTrendRepository(ctx context.Context, store repository.SnapshotStore, logger *slog.Logger, sim service.TrendSimulator, cfg *config.Config) repository.TrendRepository {
	repo := &trendRepository{store: store, logger: logger}

	var state model.AlertStateModel
	found, err := store.Load(ctx, repository.KeyAlerts, &state)
	if err != nil {
		logger.Warn("Snapshot load failed, falling back to defaults",
			slog.String("key", repository.KeyAlerts), slog.Any("error", err))
		found = false
	}

	if !found {
		repo.alert = entity.WeatherAlert{}
		repo.history = sim.SeedHistory(time.Now(), cfg.Simulation.SeedDays)
		repo.persist(ctx)

		return repo
	}

	repo.alert = entity.WeatherAlert{
		BadWeatherRisk: state.BadWeatherRisk,
		Note:           state.WeatherNote,
	}
	repo.history = make([]entity.TrendPoint, 0, len(state.TrashHistory))
	for _, p := range state.TrashHistory {
		repo.history = append(repo.history, entity.TrendPoint{
			Date:     p.Date,
			Bags:     p.Bags,
			Rainfall: p.Rainfall,
		})
	}

	return repo
}

func (repo *trendRepository) History(_ context.Context) []entity.TrendPoint {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return append([]entity.TrendPoint(nil), repo.history...)
}

func (repo *trendRepository) Append(ctx context.Context, point entity.TrendPoint) []entity.TrendPoint {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.history = append(repo.history, point)
	if excess := len(repo.history) - entity.TrendWindowSize; excess > 0 {
		repo.history = append([]entity.TrendPoint(nil), repo.history[excess:]...)
	}
	repo.persist(ctx)

	return append([]entity.TrendPoint(nil), repo.history...)
}

func (repo *trendRepository) Alert(_ context.Context) entity.WeatherAlert {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.alert
}

func (repo *trendRepository) SetAlert(ctx context.Context, alert entity.WeatherAlert) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.alert = alert
	repo.persist(ctx)
}

// persist snapshots the alert state together with the history. Callers hold
// the write lock.
func (repo *trendRepository) persist(ctx context.Context) {
	history := make([]model.TrendPointModel, 0, len(repo.history))
	for _, p := range repo.history {
		history = append(history, model.TrendPointModel{
			Date:     p.Date,
			Bags:     p.Bags,
			Rainfall: p.Rainfall,
		})
	}

	state := model.AlertStateModel{
		BadWeatherRisk: repo.alert.BadWeatherRisk,
		WeatherNote:    repo.alert.Note,
		TrashHistory:   history,
	}

	saveSnapshot(ctx, repo.store, repo.logger, repository.KeyAlerts, state)
}
