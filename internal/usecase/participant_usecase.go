package usecase

import (
	"context"

	"krvt/internal/domain/entity"
)

// AddParticipantInput defines the data required to register a participant.
// The id is chosen by the organizer and must be unique.
type AddParticipantInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParticipantUsecase defines the operations on the participant point ledger.
// Balances are mutated only through event awards and reward redemptions.
type ParticipantUsecase interface {
	// AddParticipant registers a participant with a zero balance. Id and
	// name are required; a duplicate id is a conflict and leaves the
	// existing participant untouched.
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*entity.Participant, error)

	// ListParticipants returns the ledger in insertion order.
	ListParticipants(ctx context.Context) []*entity.Participant

	// Leaderboard returns up to limit participants ordered by descending
	// balance; ties keep their original insertion order.
	Leaderboard(ctx context.Context, limit int) []*entity.Participant
}
