package persistence

import (
	"context"
	"log/slog"
	"sync"

	"krvt/internal/domain/entity"
	"krvt/internal/domain/repository"
	"krvt/internal/infra/persistence/model"
)

type hotspotRepository struct {
	mu     sync.RWMutex
	items  []*entity.Hotspot
	store  repository.SnapshotStore
	logger *slog.Logger
}

// NewHotspotRepository loads the hotspot collection from the snapshot store,
// seeding the built-in defaults when no usable snapshot exists.
func NewHotspotRepository(ctx context.Context, store repository.SnapshotStore, logger *slog.Logger) repository.HotspotRepository {
	repo := &hotspotRepository{store: store, logger: logger}

	models, found := loadSnapshot[model.HotspotModel](ctx, store, logger, repository.KeyHotspots)
	if !found {
		repo.items = defaultHotspots()
		repo.persist(ctx)

		return repo
	}

	repo.items = make([]*entity.Hotspot, 0, len(models))
	for _, m := range models {
		repo.items = append(repo.items, toHotspotDomain(m))
	}

	return repo
}

func (repo *hotspotRepository) List(_ context.Context) []*entity.Hotspot {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := make([]*entity.Hotspot, 0, len(repo.items))
	for _, h := range repo.items {
		copied := *h
		items = append(items, &copied)
	}

	return items
}

func (repo *hotspotRepository) Insert(ctx context.Context, hotspot *entity.Hotspot) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *hotspot
	repo.items = append(repo.items, &copied)
	repo.persist(ctx)
}

func (repo *hotspotRepository) SetLevel(ctx context.Context, id string, level int) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, h := range repo.items {
		if h.ID == id {
			h.PollutionLevel = level
			repo.persist(ctx)

			return true
		}
	}

	return false
}

func (repo *hotspotRepository) Remove(ctx context.Context, id string) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, h := range repo.items {
		if h.ID == id {
			repo.items = append(repo.items[:i], repo.items[i+1:]...)
			repo.persist(ctx)

			return true
		}
	}

	return false
}

// persist snapshots the whole collection. Callers hold the write lock.
func (repo *hotspotRepository) persist(ctx context.Context) {
	models := make([]model.HotspotModel, 0, len(repo.items))
	for _, h := range repo.items {
		models = append(models, fromHotspotDomain(h))
	}

	saveSnapshot(ctx, repo.store, repo.logger, repository.KeyHotspots, models)
}

func toHotspotDomain(data model.HotspotModel) *entity.Hotspot {
	return &entity.Hotspot{
		ID:             data.ID,
		Name:           data.Name,
		PollutionLevel: entity.ClampLevel(data.Pollution),
		Note:           data.Note,
	}
}

func fromHotspotDomain(data *entity.Hotspot) model.HotspotModel {
	return model.HotspotModel{
		ID:        data.ID,
		Name:      data.Name,
		Pollution: data.PollutionLevel,
		Note:      data.Note,
	}
}
