package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresStore keeps each record as a JSONB row in the records table,
// ordered by position within its entity type. Save deletes and reinserts
// the whole collection inside one transaction, which gives the same
// replace-the-collection semantics as the file store.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context, entity EntityType) ([]json.RawMessage, error) {
	query := `
		SELECT doc
		FROM records
		WHERE entity_type = $1
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, string(entity))
	if err != nil {
		return nil, fmt.Errorf("load %s collection: %w", entity, err)
	}
	defer rows.Close()

	records := []json.RawMessage{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", entity, err)
		}
		records = append(records, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s records: %w", entity, err)
	}
	return records, nil
}

func (s *PostgresStore) Save(ctx context.Context, entity EntityType, records []json.RawMessage) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save of %s collection: %w", entity, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE entity_type = $1`, string(entity)); err != nil {
		return fmt.Errorf("clear %s collection: %w", entity, err)
	}

	insert := `INSERT INTO records (entity_type, position, doc) VALUES ($1, $2, $3)`
	for i, doc := range records {
		if _, err := tx.ExecContext(ctx, insert, string(entity), i, []byte(doc)); err != nil {
			return fmt.Errorf("store %s record %d: %w", entity, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s collection: %w", entity, err)
	}
	return nil
}
