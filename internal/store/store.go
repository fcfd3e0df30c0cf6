// Package store provides SQLite-backed persistence for Strive.
//
// The whole goal collection is stored as a single JSON blob in a
// key-value table under a fixed key. The store never interprets the
// blob beyond (de)serialization.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fentz26/strive/internal/models"
	_ "modernc.org/sqlite"
)

// goalsKey is the fixed key the collection blob lives under.
const goalsKey = "goals"

// Store provides access to the Strive SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store and runs migrations.
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Load reads the goal collection. A missing key or a blob that fails
// to parse yields an empty collection, never an error: a corrupt
// durable copy must not brick the session.
func (s *Store) Load() models.Collection {
	var blob string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, goalsKey).Scan(&blob)
	if err != nil {
		return models.Collection{}
	}

	var goals models.Collection
	if err := json.Unmarshal([]byte(blob), &goals); err != nil {
		return models.Collection{}
	}
	for _, g := range goals {
		if g.Tasks == nil {
			g.Tasks = []models.Task{}
		}
	}
	return goals
}

// Save writes the full collection, replacing any previous blob.
func (s *Store) Save(goals models.Collection) error {
	blob, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		goalsKey, string(blob),
	)
	if err != nil {
		return fmt.Errorf("write goals: %w", err)
	}
	return nil
}
