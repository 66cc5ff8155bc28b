package repository

import (
	"context"

	"krvt/internal/domain/entity"
)

// EventRepository owns the cleanup event collection and its attendance
// rosters.
type EventRepository interface {
	// List returns the events in insertion order.
	List(ctx context.Context) []*entity.Event

	// Insert appends a new event to the collection.
	Insert(ctx context.Context, event *entity.Event)

	// FindByID retrieves a single event. It reports false when the id is
	// unknown.
	FindByID(ctx context.Context, id string) (*entity.Event, bool)

	// ToggleAttendee flips roster membership of participantID on the event.
	// It reports false when the event id is unknown, in which case nothing
	// changes. The participant id is not validated against the ledger.
	ToggleAttendee(ctx context.Context, eventID, participantID string) bool
}
