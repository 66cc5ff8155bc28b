package service

import (
	"time"

	"krvt/internal/domain/entity"
)

// TrendSimulator generates synthetic collection metrics. Seeding history and
// simulating a live day deliberately use different rain probabilities; the
// two values are configured independently.
type TrendSimulator interface {
	// SampleDay draws one trend point labeled with now's date.
	SampleDay(now time.Time) entity.TrendPoint

	// SeedHistory draws one point per day for the given number of days ending
	// at now, oldest first.
	SeedHistory(now time.Time, days int) []entity.TrendPoint
}
