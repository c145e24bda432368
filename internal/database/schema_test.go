package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationFilesExist(t *testing.T) {
	migrationsDir := "../../migrations"

	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatal("Migrations directory does not exist")
	}

	path := filepath.Join(migrationsDir, "00001_create_records_table.sql")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("Records table migration does not exist")
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	migrationsDir := "../../migrations"

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	sqlFileCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		content, err := os.ReadFile(filepath.Join(migrationsDir, file.Name()))
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", file.Name(), err)
			continue
		}

		contentStr := string(content)
		if !strings.Contains(contentStr, "-- +goose Up") {
			t.Errorf("Migration file %s missing '-- +goose Up' directive", file.Name())
		}
		if !strings.Contains(contentStr, "-- +goose Down") {
			t.Errorf("Migration file %s missing '-- +goose Down' directive", file.Name())
		}
	}

	if sqlFileCount == 0 {
		t.Error("No SQL migration files found")
	}
}

func TestRecordsTableSchema(t *testing.T) {
	content, err := os.ReadFile("../../migrations/00001_create_records_table.sql")
	if err != nil {
		t.Fatalf("Failed to read records migration: %v", err)
	}

	contentStr := string(content)
	requiredFragments := []string{
		"CREATE TABLE records",
		"entity_type TEXT NOT NULL",
		"position INTEGER NOT NULL",
		"doc JSONB NOT NULL",
		"PRIMARY KEY (entity_type, position)",
		"DROP TABLE records",
	}

	for _, fragment := range requiredFragments {
		if !strings.Contains(contentStr, fragment) {
			t.Errorf("Records migration missing: %s", fragment)
		}
	}
}
