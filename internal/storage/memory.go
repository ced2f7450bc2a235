package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/SimpleIG_Go/internal/repository"
)

var errEmptyKey = errors.New(ErrMsgEmptyKey)

// MemoryStore keeps save records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Get returns a copy of the stored payload.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errEmptyKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.records[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (s *MemoryStore) Put(_ context.Context, key string, payload []byte) error {
	if key == "" {
		return errEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = append([]byte(nil), payload...)
	return nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
