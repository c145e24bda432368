package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one JSON array file per entity type under a data
// directory. Save writes the full collection to a temporary file and
// renames it over the target, so a reader never observes a partially
// written collection. A mutex per entity type serialises Load and Save
// against the same file.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[EntityType]*sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[EntityType]*sync.Mutex),
	}, nil
}

func (s *FileStore) entityLock(entity EntityType) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[entity]
	if !ok {
		l = &sync.Mutex{}
		s.locks[entity] = l
	}
	return l
}

func (s *FileStore) path(entity EntityType) string {
	return filepath.Join(s.dir, string(entity)+".json")
}

func (s *FileStore) Load(_ context.Context, entity EntityType) ([]json.RawMessage, error) {
	l := s.entityLock(entity)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(entity))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read %s collection: %w", entity, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s collection: %w", entity, err)
	}
	return records, nil
}

func (s *FileStore) Save(_ context.Context, entity EntityType, records []json.RawMessage) error {
	l := s.entityLock(entity)
	l.Lock()
	defer l.Unlock()

	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", entity, err)
	}

	tmp, err := os.CreateTemp(s.dir, string(entity)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", entity, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s collection: %w", entity, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %s: %w", entity, err)
	}

	if err := os.Rename(tmpName, s.path(entity)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s collection: %w", entity, err)
	}
	return nil
}
