package kv

import (
	"context"
	"encoding/json"

	"krvt/config"
	"krvt/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/rueidis"
)

// redisStore persists snapshots as plain string values in Redis.
type redisStore struct {
	client rueidis.Client
}

// NewRedis connects a rueidis client and wraps it as a snapshot store.
func NewRedis(cfg *config.RedisConfig) (repository.SnapshotStore, error) {
	if cfg == nil {
		return nil, errors.New("storage.redis configuration is missing")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: cfg.InitAddress,
		Username:    cfg.Username,
		Password:    cfg.Password,
		SelectDB:    cfg.SelectDB,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create rueidis client")
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	cmd := s.client.B().Get().Key(key).Build()

	raw, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}

		return false, errors.Wrapf(err, "get snapshot %s", key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "decode snapshot %s", key)
	}

	return true, nil
}

func (s *redisStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode snapshot %s", key)
	}

	cmd := s.client.B().Set().Key(key).Value(string(raw)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return errors.Wrapf(err, "set snapshot %s", key)
	}

	return nil
}
