package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteBackend persists slots in a SQLite database file
type SQLiteBackend struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at path
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Create schema
	_, err = db.Exec(schemaSQL)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Read(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var value []byte
	err := b.db.QueryRow(`SELECT value FROM filter_slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *SQLiteBackend) Write(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.db.Exec(`
		INSERT INTO filter_slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	return err
}

func (b *SQLiteBackend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.db.Exec(`DELETE FROM filter_slots`)
	return err
}

// Close closes the database connection
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
