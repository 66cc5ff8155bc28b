package persistence

import (
	"context"
	"log/slog"
	"sync"

	"krvt/internal/domain/entity"
	"krvt/internal/domain/repository"
	"krvt/internal/infra/persistence/model"
)

type rewardRepository struct {
	mu     sync.RWMutex
	items  []*entity.Reward
	store  repository.SnapshotStore
	logger *slog.Logger
}

// NewRewardRepository loads the catalog from the snapshot store, seeding the
// built-in defaults when no usable snapshot exists.
func NewRewardRepository(ctx context.Context, store repository.SnapshotStore, logger *slog.Logger) repository.RewardRepository {
	repo := &rewardRepository{store: store, logger: logger}

	models, found := loadSnapshot[model.RewardModel](ctx, store, logger, repository.KeyRewards)
	if !found {
		repo.items = defaultRewards()
		repo.persist(ctx)

		return repo
	}

	repo.items = make([]*entity.Reward, 0, len(models))
	for _, m := range models {
		repo.items = append(repo.items, toRewardDomain(m))
	}

	return repo
}

func (repo *rewardRepository) List(_ context.Context) []*entity.Reward {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := make([]*entity.Reward, 0, len(repo.items))
	for _, r := range repo.items {
		copied := *r
		items = append(items, &copied)
	}

	return items
}

func (repo *rewardRepository) Insert(ctx context.Context, reward *entity.Reward) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *reward
	repo.items = append(repo.items, &copied)
	repo.persist(ctx)
}

func (repo *rewardRepository) FindByID(_ context.Context, id string) (*entity.Reward, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, r := range repo.items {
		if r.ID == id {
			copied := *r

			return &copied, true
		}
	}

	return nil, false
}

// persist snapshots the whole catalog. Callers hold the write lock.
func (repo *rewardRepository) persist(ctx context.Context) {
	models := make([]model.RewardModel, 0, len(repo.items))
	for _, r := range repo.items {
		models = append(models, fromRewardDomain(r))
	}

	saveSnapshot(ctx, repo.store, repo.logger, repository.KeyRewards, models)
}

func toRewardDomain(data model.RewardModel) *entity.Reward {
	return &entity.Reward{
		ID:   data.ID,
		Name: data.Name,
		Cost: data.Cost,
	}
}

func fromRewardDomain(data *entity.Reward) model.RewardModel {
	return model.RewardModel{
		ID:   data.ID,
		Name: data.Name,
		Cost: data.Cost,
	}
}
