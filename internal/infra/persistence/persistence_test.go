package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"krvt/config"
	"krvt/internal/domain/entity"
	"krvt/internal/domain/repository"
	"krvt/internal/infra/idgen"
	"krvt/internal/infra/persistence/kv"
	"krvt/internal/infra/simulate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Simulation.DailyRainProbability = 0.5
	cfg.Simulation.SeedRainProbability = 0.35
	cfg.Simulation.SeedDays = 15

	return cfg
}

func TestHotspotRepository_SeedsDefaultsOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := NewHotspotRepository(ctx, kv.NewMemory(), testLogger())

	hotspots := repo.List(ctx)
	require.Len(t, hotspots, 3)
	assert.Equal(t, "Cầu số 1", hotspots[0].Name)
	assert.Equal(t, 42, hotspots[0].PollutionLevel)
}

func TestHotspotRepository_MutationsSurviveReload(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	repo := NewHotspotRepository(ctx, store, testLogger())
	repo.Insert(ctx, &entity.Hotspot{ID: "abc123", Name: "Cống 5", PollutionLevel: 30})
	require.True(t, repo.SetLevel(ctx, "abc123", 88))
	require.True(t, repo.Remove(ctx, "Cau2"))

	reloaded := NewHotspotRepository(ctx, store, testLogger())
	hotspots := reloaded.List(ctx)
	require.Len(t, hotspots, 3)
	assert.Equal(t, "abc123", hotspots[2].ID)
	assert.Equal(t, 88, hotspots[2].PollutionLevel)
	for _, h := range hotspots {
		assert.NotEqual(t, "Cau2", h.ID)
	}
}

func TestHotspotRepository_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewHotspotRepository(ctx, kv.NewMemory(), testLogger())

	assert.False(t, repo.SetLevel(ctx, "missing", 50))
	assert.False(t, repo.Remove(ctx, "missing"))
	assert.Len(t, repo.List(ctx), 3)
}

func TestHotspotRepository_CorruptSnapshotFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Save(ctx, repository.KeyHotspots, "garbage"))

	repo := NewHotspotRepository(ctx, store, testLogger())
	assert.Len(t, repo.List(ctx), 3)
}

func TestEventRepository_DefaultEventIsNextSunday(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(ctx, kv.NewMemory(), testLogger(), idgen.New())

	events := repo.List(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, simulate.NextSunday(time.Now()), events[0].Date)
	assert.Equal(t, 20, events[0].PointsPerAttendance)
	assert.Empty(t, events[0].Attendees)
	assert.NotEmpty(t, events[0].ID)
}

func TestEventRepository_ToggleAttendeePersists(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	repo := NewEventRepository(ctx, store, testLogger(), idgen.New())
	eventID := repo.List(ctx)[0].ID

	require.True(t, repo.ToggleAttendee(ctx, eventID, "sv01"))
	assert.False(t, repo.ToggleAttendee(ctx, "missing", "sv01"))

	reloaded := NewEventRepository(ctx, store, testLogger(), idgen.New())
	event, ok := reloaded.FindByID(ctx, eventID)
	require.True(t, ok)
	assert.Equal(t, []string{"sv01"}, event.Attendees)
}

func TestEventRepository_ReturnedEventsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(ctx, kv.NewMemory(), testLogger(), idgen.New())

	event := repo.List(ctx)[0]
	event.Attendees = append(event.Attendees, "intruder")

	fresh, ok := repo.FindByID(ctx, event.ID)
	require.True(t, ok)
	assert.Empty(t, fresh.Attendees)
}

func TestParticipantRepository_InsertRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewParticipantRepository(ctx, kv.NewMemory(), testLogger())

	err := repo.Insert(ctx, &entity.Participant{ID: "sv01", Name: "Kẻ mạo danh"})
	require.ErrorIs(t, err, repository.ErrParticipantExists)

	// The existing participant is untouched.
	existing, ok := repo.FindByID(ctx, "sv01")
	require.True(t, ok)
	assert.Equal(t, "Nguyễn Minh Anh", existing.Name)
	assert.Equal(t, 40, existing.Points)
}

func TestParticipantRepository_CreditAndDebit(t *testing.T) {
	ctx := context.Background()
	repo := NewParticipantRepository(ctx, kv.NewMemory(), testLogger())

	require.True(t, repo.Credit(ctx, "sv02", 30))
	p, _ := repo.FindByID(ctx, "sv02")
	assert.Equal(t, 45, p.Points)

	// Exact balance succeeds and lands on zero.
	require.NoError(t, repo.Debit(ctx, "sv02", 45))
	p, _ = repo.FindByID(ctx, "sv02")
	assert.Equal(t, 0, p.Points)

	// One short fails and changes nothing.
	require.True(t, repo.Credit(ctx, "sv02", 49))
	err := repo.Debit(ctx, "sv02", 50)
	require.ErrorIs(t, err, repository.ErrInsufficientPoints)
	p, _ = repo.FindByID(ctx, "sv02")
	assert.Equal(t, 49, p.Points)

	assert.False(t, repo.Credit(ctx, "ghost", 10))
	require.ErrorIs(t, repo.Debit(ctx, "ghost", 1), repository.ErrParticipantNotFound)
}

func TestRewardRepository_SeedsDefaultCatalog(t *testing.T) {
	ctx := context.Background()
	repo := NewRewardRepository(ctx, kv.NewMemory(), testLogger())

	rewards := repo.List(ctx)
	require.Len(t, rewards, 3)
	assert.Equal(t, 50, rewards[0].Cost)

	reward, ok := repo.FindByID(ctx, "rw03")
	require.True(t, ok)
	assert.Equal(t, "Móc khóa xanh", reward.Name)
}

func TestTrendRepository_WindowStaysAtFifteen(t *testing.T) {
	ctx := context.Background()
	sim := simulate.New(testConfig())
	repo := NewTrendRepository(ctx, kv.NewMemory(), testLogger(), sim, testConfig())

	require.Len(t, repo.History(ctx), entity.TrendWindowSize)

	var last []entity.TrendPoint
	for i := 0; i < 20; i++ {
		point := entity.TrendPoint{Date: "09-07", Bags: 100 + i}
		last = repo.Append(ctx, point)
	}

	require.Len(t, last, entity.TrendWindowSize)
	// The 15 most recent entries survive in original relative order.
	for i, point := range last {
		assert.Equal(t, 100+5+i, point.Bags)
	}
}

func TestTrendRepository_AlertStateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	sim := simulate.New(testConfig())

	repo := NewTrendRepository(ctx, store, testLogger(), sim, testConfig())
	repo.SetAlert(ctx, entity.WeatherAlert{BadWeatherRisk: true, Note: "Mưa lớn 50mm, gió mùa"})

	reloaded := NewTrendRepository(ctx, store, testLogger(), sim, testConfig())
	alert := reloaded.Alert(ctx)
	assert.True(t, alert.BadWeatherRisk)
	assert.Equal(t, "Mưa lớn 50mm, gió mùa", alert.Note)
	assert.Len(t, reloaded.History(ctx), entity.TrendWindowSize)
}
