package persistence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"krvt/internal/domain/entity"
	"krvt/internal/domain/repository"
	"krvt/internal/domain/service"
	"krvt/internal/infra/persistence/model"
)

type eventRepository struct {
	mu     sync.RWMutex
	items  []*entity.Event
	store  repository.SnapshotStore
	logger *slog.Logger
}

// NewEventRepository loads the event collection from the snapshot store. The
// default seed is a single upcoming "Chủ nhật xanh" event dated next Sunday,
// which is why the constructor needs the id generator.
func NewEventRepository(ctx context.Context, store repository.SnapshotStore, logger *slog.Logger, idGen service.IDGenerator) repository.EventRepository {
	repo := &eventRepository{store: store, logger: logger}

	models, found := loadSnapshot[model.EventModel](ctx, store, logger, repository.KeyEvents)
	if !found {
		repo.items = defaultEvents(idGen, time.Now())
		repo.persist(ctx)

		return repo
	}

	repo.items = make([]*entity.Event, 0, len(models))
	for _, m := range models {
		repo.items = append(repo.items, toEventDomain(m))
	}

	return repo
}

func (repo *eventRepository) List(_ context.Context) []*entity.Event {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := make([]*entity.Event, 0, len(repo.items))
	for _, e := range repo.items {
		items = append(items, copyEvent(e))
	}

	return items
}

func (repo *eventRepository) Insert(ctx context.Context, event *entity.Event) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items = append(repo.items, copyEvent(event))
	repo.persist(ctx)
}

func (repo *eventRepository) FindByID(_ context.Context, id string) (*entity.Event, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, e := range repo.items {
		if e.ID == id {
			return copyEvent(e), true
		}
	}

	return nil, false
}

func (repo *eventRepository) ToggleAttendee(ctx context.Context, eventID, participantID string) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, e := range repo.items {
		if e.ID == eventID {
			e.ToggleAttendee(participantID)
			repo.persist(ctx)

			return true
		}
	}

	return false
}

// persist snapshots the whole collection. Callers hold the write lock.
func (repo *eventRepository) persist(ctx context.Context) {
	models := make([]model.EventModel, 0, len(repo.items))
	for _, e := range repo.items {
		models = append(models, fromEventDomain(e))
	}

	saveSnapshot(ctx, repo.store, repo.logger, repository.KeyEvents, models)
}

func copyEvent(data *entity.Event) *entity.Event {
	copied := *data
	copied.Attendees = append([]string(nil), data.Attendees...)

	return &copied
}

func toEventDomain(data model.EventModel) *entity.Event {
	attendees := data.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	points := data.PointsPerAttend
	if points < 0 {
		points = 0
	}

	return &entity.Event{
		ID:                  data.ID,
		Name:                data.Name,
		Date:                data.Date,
		Description:         data.Description,
		PointsPerAttendance: points,
		Attendees:           attendees,
	}
}

func fromEventDomain(data *entity.Event) model.EventModel {
	return model.EventModel{
		ID:              data.ID,
		Name:            data.Name,
		Date:            data.Date,
		Description:     data.Description,
		PointsPerAttend: data.PointsPerAttendance,
		Attendees:       data.Attendees,
	}
}
