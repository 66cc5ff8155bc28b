package repository

import (
	"context"
	"errors"

	"krvt/internal/domain/entity"
)

// ErrParticipantExists is returned when inserting a participant whose id is
// already in the ledger.
var ErrParticipantExists = errors.New("participant id already exists")

// ErrParticipantNotFound is returned by Debit when the participant id is
// unknown.
var ErrParticipantNotFound = errors.New("participant not found")

// ErrInsufficientPoints is returned by Debit when the balance is smaller than
// the requested amount.
var ErrInsufficientPoints = errors.New("insufficient points")

// ParticipantRepository owns the participant ledger. Implementations must make
// Debit's balance check and subtraction atomic, so a redemption can never
// drive a balance negative even under concurrent requests.
type ParticipantRepository interface {
	// List returns the participants in insertion order.
	List(ctx context.Context) []*entity.Participant

	// FindByID retrieves a single participant. It reports false when the id
	// is unknown.
	FindByID(ctx context.Context, id string) (*entity.Participant, bool)

	// Insert adds a new participant with a zero balance. It returns
	// ErrParticipantExists when the id is already taken, leaving the existing
	// participant untouched.
	Insert(ctx context.Context, participant *entity.Participant) error

	// Credit adds amount to the participant's balance. The amount may be any
	// integer. It reports false when the id is unknown, in which case nothing
	// changes.
	Credit(ctx context.Context, id string, amount int) bool

	// Debit subtracts amount from the participant's balance. It returns
	// ErrParticipantNotFound or ErrInsufficientPoints without changing
	// anything when the debit cannot be applied.
	Debit(ctx context.Context, id string, amount int) error
}
