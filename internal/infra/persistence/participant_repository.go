package persistence

import (
	"context"
	"log/slog"
	"sync"

	"krvt/internal/domain/entity"
	"krvt/internal/domain/repository"
	"krvt/internal/infra/persistence/model"
)

type participantRepository struct {
	mu     sync.Mutex
	items  []*entity.Participant
	store  repository.SnapshotStore
	logger *slog.Logger
}

// NewParticipantRepository loads the ledger from the snapshot store, seeding
// the built-in defaults when no usable snapshot exists.
func NewParticipantRepository(ctx context.Context, store repository.SnapshotStore, logger *slog.Logger) repository.ParticipantRepository {
	repo := &participantRepository{store: store, logger: logger}

	models, found := loadSnapshot[model.ParticipantModel](ctx, store, logger, repository.KeyParticipants)
	if !found {
		repo.items = defaultParticipants()
		repo.persist(ctx)

		return repo
	}

	repo.items = make([]*entity.Participant, 0, len(models))
	for _, m := range models {
		repo.items = append(repo.items, toParticipantDomain(m))
	}

	return repo
}

func (repo *participantRepository) List(_ context.Context) []*entity.Participant {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	items := make([]*entity.Participant, 0, len(repo.items))
	for _, p := range repo.items {
		copied := *p
		items = append(items, &copied)
	}

	return items
}

func (repo *participantRepository) FindByID(_ context.Context, id string) (*entity.Participant, bool) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, p := range repo.items {
		if p.ID == id {
			copied := *p

			return &copied, true
		}
	}

	return nil, false
}

func (repo *participantRepository) Insert(ctx context.Context, participant *entity.Participant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, p := range repo.items {
		if p.ID == participant.ID {
			return repository.ErrParticipantExists
		}
	}

	copied := *participant
	repo.items = append(repo.items, &copied)
	repo.persist(ctx)

	return nil
}

func (repo *participantRepository) Credit(ctx context.Context, id string, amount int) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, p := range repo.items {
		if p.ID == id {
			p.Points += amount
			repo.persist(ctx)

			return true
		}
	}

	return false
}

// Debit checks and subtracts under one lock, so a concurrent redemption can
// never observe a stale balance between the comparison and the write.
func (repo *participantRepository) Debit(ctx context.Context, id string, amount int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, p := range repo.items {
		if p.ID == id {
			if p.Points < amount {
				return repository.ErrInsufficientPoints
			}

			p.Points -= amount
			repo.persist(ctx)

			return nil
		}
	}

	return repository.ErrParticipantNotFound
}

// persist snapshots the whole ledger. Callers hold the lock.
func (repo *participantRepository) persist(ctx context.Context) {
	models := make([]model.ParticipantModel, 0, len(repo.items))
	for _, p := range repo.items {
		models = append(models, fromParticipantDomain(p))
	}

	saveSnapshot(ctx, repo.store, repo.logger, repository.KeyParticipants, models)
}

func toParticipantDomain(data model.ParticipantModel) *entity.Participant {
	return &entity.Participant{
		ID:     data.ID,
		Name:   data.Name,
		Points: data.Points,
	}
}

func fromParticipantDomain(data *entity.Participant) model.ParticipantModel {
	return model.ParticipantModel{
		ID:     data.ID,
		Name:   data.Name,
		Points: data.Points,
	}
}
