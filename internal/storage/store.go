package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// EntityType selects one persisted collection.
type EntityType string

const (
	EntityProducts EntityType = "products"
	EntityOrders   EntityType = "orders"
	EntityUsers    EntityType = "users"
)

// RecordStore persists one ordered collection of JSON records per entity
// type. Load returns an empty collection, not an error, when nothing has
// ever been saved for that entity type. Save replaces the whole
// collection.
type RecordStore interface {
	Load(ctx context.Context, entity EntityType) ([]json.RawMessage, error)
	Save(ctx context.Context, entity EntityType, records []json.RawMessage) error
}

// LoadAll loads and decodes every record of an entity type into T.
func LoadAll[T any](ctx context.Context, s RecordStore, entity EntityType) ([]T, error) {
	raw, err := s.Load(ctx, entity)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for _, doc := range raw {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", entity, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// SaveAll encodes records and replaces the stored collection for an entity
// type.
func SaveAll[T any](ctx context.Context, s RecordStore, entity EntityType, records []T) error {
	raw := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		doc, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", entity, err)
		}
		raw = append(raw, doc)
	}
	return s.Save(ctx, entity, raw)
}
