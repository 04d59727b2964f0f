package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register sqlite driver
)

// collapseKeyPrefix namespaces persisted collapse flags in the KV store.
const collapseKeyPrefix = "core.newNav.navGroup."

// KVStore is the durable key-value medium behind persisted navigation
// state. Get reports whether the key was present; Set overwrites
// unconditionally (last write wins, single logical writer).
type KVStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	Keys(prefix string) []string
	Close() error
}

// SQLiteKVStore is a KVStore backed by a SQLite database.
type SQLiteKVStore struct {
	db *sql.DB
}

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// NewSQLiteKVStore opens (or creates) a SQLite database at dbPath and runs
// schema migrations. Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteKVStore(dbPath string) (*SQLiteKVStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance (not applicable for :memory:).
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set WAL mode: %w", err)
		}
	}

	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run schema migrations: %w", err)
	}

	return &SQLiteKVStore{db: db}, nil
}

// Close releases the database connection.
func (s *SQLiteKVStore) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, if present.
func (s *SQLiteKVStore) Get(key string) (string, bool) {
	const q = `SELECT value FROM kv WHERE key = ?`
	var value string
	if err := s.db.QueryRow(q, key).Scan(&value); err != nil {
		return "", false
	}
	return value, true
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteKVStore) Set(key, value string) {
	const q = `INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`
	_, _ = s.db.Exec(q, key, value)
}

// Delete removes key from the store. Missing keys are a no-op.
func (s *SQLiteKVStore) Delete(key string) {
	const q = `DELETE FROM kv WHERE key = ?`
	_, _ = s.db.Exec(q, key)
}

// Keys returns all stored keys with the given prefix, sorted alphabetically.
func (s *SQLiteKVStore) Keys(prefix string) []string {
	const q = `SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`
	rows, err := s.db.Query(q, prefix)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			continue
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil
	}
	return keys
}

// CollapseStore persists the per-category "is open" flag of the navigation
// panel, keyed core.newNav.navGroup.<categoryId> with the literal strings
// "true"/"false". Categories default to open. Persistence is a convenience:
// with a nil or failing medium, reads fall back to the default and writes
// are silently ignored.
type CollapseStore struct {
	kv KVStore
}

// NewCollapseStore wraps a KVStore. kv may be nil.
func NewCollapseStore(kv KVStore) *CollapseStore {
	return &CollapseStore{kv: kv}
}

// IsOpen returns whether the category is expanded. Defaults to true for any
// id never previously set.
func (c *CollapseStore) IsOpen(categoryID string) bool {
	if c.kv == nil {
		return true
	}
	value, ok := c.kv.Get(collapseKeyPrefix + categoryID)
	if !ok {
		return true
	}
	return value != "false"
}

// SetOpen records the category's expand/collapse state.
func (c *CollapseStore) SetOpen(categoryID string, open bool) {
	if c.kv == nil {
		return
	}
	value := "false"
	if open {
		value = "true"
	}
	c.kv.Set(collapseKeyPrefix+categoryID, value)
}

// Reset removes every persisted collapse flag.
func (c *CollapseStore) Reset() {
	if c.kv == nil {
		return
	}
	for _, key := range c.kv.Keys(collapseKeyPrefix) {
		c.kv.Delete(key)
	}
}
