package impl_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krvt/internal/domain/entity"
	"krvt/internal/usecase"
)

func TestTrendService_Overview_SeededWindow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	overview := f.trends.Overview(f.ctx)
	require.Len(t, overview.History, entity.TrendWindowSize)

	total := 0
	for _, point := range overview.History {
		assert.GreaterOrEqual(t, point.Bags, 10)
		assert.Less(t, point.Bags, 50)
		total += point.Bags
	}
	assert.Equal(t, total, overview.TotalBags)
	assert.Equal(t, total, f.trends.TotalBags(f.ctx))
}

func TestTrendService_SimulateDay(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	before := f.trends.Overview(f.ctx)

	overview := f.trends.SimulateDay(f.ctx)
	require.Len(t, overview.History, entity.TrendWindowSize, "window stays fixed, oldest entry evicted")

	latest := overview.History[len(overview.History)-1]
	assert.Equal(t, time.Now().Format("01-02"), latest.Date)
	assert.GreaterOrEqual(t, latest.Bags, 10)
	assert.Less(t, latest.Bags, 50)
	if latest.Rainfall != 0 {
		assert.GreaterOrEqual(t, latest.Rainfall, 5)
		assert.Less(t, latest.Rainfall, 65)
	}

	// The previous window shifted left by one.
	assert.Equal(t, before.History[1:], overview.History[:len(overview.History)-1])
}

func TestTrendService_WeatherAlert(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	initial := f.trends.WeatherAlert(f.ctx)
	assert.False(t, initial.BadWeatherRisk)

	updated := f.trends.SetWeatherAlert(f.ctx, &usecase.SetWeatherAlertInput{
		BadWeatherRisk: true,
		Note:           "  Mưa lớn cuối tuần, hoãn ra quân  ",
	})
	assert.True(t, updated.BadWeatherRisk)
	assert.Equal(t, "Mưa lớn cuối tuần, hoãn ra quân", updated.Note)

	assert.Equal(t, updated, f.trends.WeatherAlert(f.ctx))
}
