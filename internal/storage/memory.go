package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process RecordStore. Tests substitute it for the
// file store; it honors the same contract, including the empty collection
// for entity types that were never saved.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[EntityType][]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[EntityType][]json.RawMessage)}
}

func (s *MemoryStore) Load(_ context.Context, entity EntityType) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.data[entity]
	out := make([]json.RawMessage, len(records))
	copy(out, records)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, entity EntityType, records []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]json.RawMessage, len(records))
	copy(stored, records)
	s.data[entity] = stored
	return nil
}
