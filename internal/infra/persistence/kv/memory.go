package kv

import (
	"context"
	"encoding/json"
	"sync"

	"krvt/internal/domain/repository"

	"github.com/pkg/errors"
)

// memoryStore keeps snapshots in process memory. It is the default backend
// and the store used by tests; data does not survive a restart.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory snapshot store.
func NewMemory() repository.SnapshotStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Load(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "decode snapshot %s", key)
	}

	return true, nil
}

func (s *memoryStore) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode snapshot %s", key)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()

	return nil
}
