package impl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "krvt/internal/domain/errors"
	"krvt/internal/errors"
	"krvt/internal/usecase"
)

func TestParticipantService_AddParticipant(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	participant, err := f.participants.AddParticipant(f.ctx, &usecase.AddParticipantInput{
		ID:   " sv03 ",
		Name: " Lê Chi ",
	})
	require.NoError(t, err)
	assert.Equal(t, "sv03", participant.ID)
	assert.Equal(t, "Lê Chi", participant.Name)
	assert.Zero(t, participant.Points)
}

func TestParticipantService_AddParticipant_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	for _, input := range []usecase.AddParticipantInput{
		{ID: "", Name: "Lê Chi"},
		{ID: "sv03", Name: "  "},
	} {
		_, err := f.participants.AddParticipant(f.ctx, &input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestParticipantService_AddParticipant_DuplicateID(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.participants.AddParticipant(f.ctx, &usecase.AddParticipantInput{
		ID:   "sv01",
		Name: "Kẻ mạo danh",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrParticipantConflict))

	// The seeded participant keeps its name and balance.
	sv01, found := f.participantRepo.FindByID(f.ctx, "sv01")
	require.True(t, found)
	assert.Equal(t, "Nguyễn Minh Anh", sv01.Name)
	assert.Equal(t, 40, sv01.Points)
}

func TestParticipantService_Leaderboard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	// Two zero-point entries to check tie ordering.
	for _, input := range []usecase.AddParticipantInput{
		{ID: "sv03", Name: "Lê Chi"},
		{ID: "sv04", Name: "Phạm Duy"},
	} {
		_, err := f.participants.AddParticipant(f.ctx, &input)
		require.NoError(t, err)
	}

	board := f.participants.Leaderboard(f.ctx, 10)
	require.Len(t, board, 4)
	assert.Equal(t, "sv01", board[0].ID)
	assert.Equal(t, "sv02", board[1].ID)
	assert.Equal(t, "sv03", board[2].ID, "ties keep insertion order")
	assert.Equal(t, "sv04", board[3].ID)

	top := f.participants.Leaderboard(f.ctx, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "sv01", top[0].ID)
}

func TestParticipantService_Leaderboard_ReordersAfterCredit(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	// Seeded balances: sv01 holds 40, sv02 holds 15.
	board := f.participants.Leaderboard(f.ctx, 10)
	require.Len(t, board, 2)
	assert.Equal(t, "sv01", board[0].ID)

	// Crediting sv02 past sv01 must be reflected on the next query.
	require.True(t, f.participantRepo.Credit(f.ctx, "sv02", 30))

	board = f.participants.Leaderboard(f.ctx, 10)
	require.Len(t, board, 2)
	assert.Equal(t, "sv02", board[0].ID)
	assert.Equal(t, 45, board[0].Points)
	assert.Equal(t, "sv01", board[1].ID)
}
