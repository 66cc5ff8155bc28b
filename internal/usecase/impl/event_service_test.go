package impl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "krvt/internal/domain/errors"
	"krvt/internal/errors"
	"krvt/internal/usecase"
)

func TestEventService_CreateEvent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	event, err := f.events.CreateEvent(f.ctx, &usecase.CreateEventInput{
		Name:                "Vớt rác đoạn cầu gỗ",
		Date:                "2026-09-06",
		Description:         "Tập trung 7h sáng",
		PointsPerAttendance: 25,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "2026-09-06", event.Date)
	assert.Equal(t, 25, event.PointsPerAttendance)
	assert.Empty(t, event.Attendees)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	cases := []struct {
		name  string
		input usecase.CreateEventInput
	}{
		{"missing name", usecase.CreateEventInput{Date: "2026-09-06"}},
		{"missing date", usecase.CreateEventInput{Name: "Dọn bờ kè"}},
		{"malformed date", usecase.CreateEventInput{Name: "Dọn bờ kè", Date: "06/09/2026"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.events.CreateEvent(f.ctx, &tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestEventService_CreateEvent_ClampsNegativePoints(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	event, err := f.events.CreateEvent(f.ctx, &usecase.CreateEventInput{
		Name:                "Dọn bờ kè",
		Date:                "2026-09-06",
		PointsPerAttendance: -10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, event.PointsPerAttendance)
}

func TestEventService_ToggleAttendance(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	event, err := f.events.CreateEvent(f.ctx, &usecase.CreateEventInput{
		Name: "Dọn bờ kè", Date: "2026-09-06", PointsPerAttendance: 10,
	})
	require.NoError(t, err)

	require.NoError(t, f.events.ToggleAttendance(f.ctx, event.ID, "sv01"))
	require.NoError(t, f.events.ToggleAttendance(f.ctx, event.ID, "sv02"))

	events := f.events.ListEvents(f.ctx)
	stored := events[len(events)-1]
	assert.Equal(t, []string{"sv01", "sv02"}, stored.Attendees)

	// Toggling again removes the membership.
	require.NoError(t, f.events.ToggleAttendance(f.ctx, event.ID, "sv01"))
	events = f.events.ListEvents(f.ctx)
	assert.Equal(t, []string{"sv02"}, events[len(events)-1].Attendees)

	// Unknown event id is a silent no-op.
	require.NoError(t, f.events.ToggleAttendance(f.ctx, "no-such-event", "sv01"))
}

func TestEventService_AwardPoints(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	event, err := f.events.CreateEvent(f.ctx, &usecase.CreateEventInput{
		Name: "Dọn bờ kè", Date: "2026-09-06", PointsPerAttendance: 10,
	})
	require.NoError(t, err)

	// "ghost" was never registered; stale roster ids are skipped, not fatal.
	require.NoError(t, f.events.ToggleAttendance(f.ctx, event.ID, "sv01"))
	require.NoError(t, f.events.ToggleAttendance(f.ctx, event.ID, "ghost"))

	output, err := f.events.AwardPoints(f.ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sv01"}, output.Credited)
	assert.Equal(t, []string{"ghost"}, output.Skipped)

	sv01, found := f.participantRepo.FindByID(f.ctx, "sv01")
	require.True(t, found)
	assert.Equal(t, 50, sv01.Points, "seeded 40 plus one award of 10")
}

func TestEventService_AwardPoints_IsRepeatable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	event, err := f.events.CreateEvent(f.ctx, &usecase.CreateEventInput{
		Name: "Dọn bờ kè", Date: "2026-09-06", PointsPerAttendance: 10,
	})
	require.NoError(t, err)
	require.NoError(t, f.events.ToggleAttendance(f.ctx, event.ID, "sv02"))

	for range 3 {
		_, err := f.events.AwardPoints(f.ctx, event.ID)
		require.NoError(t, err)
	}

	sv02, found := f.participantRepo.FindByID(f.ctx, "sv02")
	require.True(t, found)
	assert.Equal(t, 45, sv02.Points, "seeded 15 plus three awards of 10")
}

func TestEventService_AwardPoints_UnknownEvent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	output, err := f.events.AwardPoints(f.ctx, "no-such-event")
	require.NoError(t, err)
	assert.Empty(t, output.Credited)
	assert.Empty(t, output.Skipped)
}
