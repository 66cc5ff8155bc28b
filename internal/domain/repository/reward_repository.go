package repository

import (
	"context"

	"krvt/internal/domain/entity"
)

// RewardRepository owns the reward catalog. Rewards are immutable once
// inserted.
type RewardRepository interface {
	// List returns the rewards in insertion order.
	List(ctx context.Context) []*entity.Reward

	// Insert appends a new reward to the catalog.
	Insert(ctx context.Context, reward *entity.Reward)

	// FindByID retrieves a single reward. It reports false when the id is
	// unknown.
	FindByID(ctx context.Context, id string) (*entity.Reward, bool)
}
