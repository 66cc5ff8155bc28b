package usecase

import (
	"context"

	"krvt/internal/domain/entity"
)

// CreateEventInput defines the data required to create a cleanup event.
type CreateEventInput struct {
	Name                string `json:"name"`
	Date                string `json:"date"`
	Description         string `json:"description"`
	PointsPerAttendance int    `json:"points_per_attendance"`
}

// AwardOutput reports which roster ids were credited by an award and which
// were skipped because they no longer exist in the ledger.
type AwardOutput struct {
	EventID             string   `json:"event_id"`
	PointsPerAttendance int      `json:"points_per_attendance"`
	Credited            []string `json:"credited"`
	Skipped             []string `json:"skipped,omitempty"`
}

// EventUsecase defines the operations on the cleanup event roster.
type EventUsecase interface {
	// CreateEvent creates an event with an empty roster and a generated id.
	// Name and date are required; the date must be an ISO calendar date.
	// Negative point values are clamped to zero.
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)

	// ListEvents returns the events in insertion order.
	ListEvents(ctx context.Context) []*entity.Event

	// ToggleAttendance flips roster membership for the participant id. An
	// unknown event id is a silent no-op. The participant id is deliberately
	// not checked against the ledger; stale ids are skipped at award time.
	ToggleAttendance(ctx context.Context, eventID, participantID string) error

	// AwardPoints credits every roster member that exists in the ledger with
	// the event's points-per-attendance. An unknown event id is a silent
	// no-op. Awards are repeatable: calling this twice credits everyone
	// twice. Guarding against double awards is the caller's responsibility.
	AwardPoints(ctx context.Context, eventID string) (*AwardOutput, error)
}
