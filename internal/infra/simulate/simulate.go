// Package simulate implements the synthetic trend entry policy: daily bag
// counts with occasional rainfall, used both to seed history and to append
// simulated days.
package simulate

import (
	"math/rand/v2"
	"time"

	"krvt/config"
	"krvt/internal/domain/entity"
	"krvt/internal/domain/service"
)

// Sampling ranges, half-open: bags in [10,50), rainfall in [5,65) mm.
const (
	bagsMin      = 10
	bagsSpan     = 40
	rainfallMin  = 5
	rainfallSpan = 60
)

// dateLabel is the short "MM-DD" form used on the chart axis.
const dateLabel = "01-02"

type sampler struct {
	dailyRainProbability float64
	seedRainProbability  float64
}

// New builds the trend simulator from configuration. The live-day and
// seed-history rain probabilities are configured independently.
func New(cfg *config.Config) service.TrendSimulator {
	return &sampler{
		dailyRainProbability: cfg.Simulation.DailyRainProbability,
		seedRainProbability:  cfg.Simulation.SeedRainProbability,
	}
}

// SampleDay draws one live simulated trend point labeled with now's date.
func (s *sampler) SampleDay(now time.Time) entity.TrendPoint {
	return samplePoint(now, s.dailyRainProbability)
}

// SeedHistory draws one point per day for the given number of days ending at
// now, oldest first.
func (s *sampler) SeedHistory(now time.Time, days int) []entity.TrendPoint {
	points := make([]entity.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		points = append(points, samplePoint(now.AddDate(0, 0, -i), s.seedRainProbability))
	}

	return points
}

func samplePoint(day time.Time, rainProbability float64) entity.TrendPoint {
	rainfall := 0
	if rand.Float64() < rainProbability {
		rainfall = rainfallMin + rand.IntN(rainfallSpan)
	}

	return entity.TrendPoint{
		Date:     day.Format(dateLabel),
		Bags:     bagsMin + rand.IntN(bagsSpan),
		Rainfall: rainfall,
	}
}

// NextSunday returns the ISO date of the next Sunday, counting today when it
// already is one. Used for the default seeded event.
func NextSunday(now time.Time) string {
	diff := (7 - int(now.Weekday())) % 7

	return now.AddDate(0, 0, diff).Format("2006-01-02")
}
