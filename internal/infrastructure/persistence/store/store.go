// Package store provides the persisted key/value store backing session
// state. It holds four independent entries (catalog, leads, unlock-token,
// admin-flag), each a self-contained serialized value. Entries degrade
// independently: a corrupt value under one key never affects the others.
package store

import (
	"database/sql"
	"time"

	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/database"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// The four managed keys. No other keys are ever written.
const (
	KeyCatalog     = "catalog"
	KeyLeads       = "leads"
	KeyUnlockToken = "unlock-token"
	KeyAdminFlag   = "admin-flag"
)

const schema = `
	CREATE TABLE IF NOT EXISTS store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`

// Store is the SQL-backed persisted key/value store.
type Store struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// New creates a store over an open connection, ensuring the schema exists.
func New(db *database.DB, logger *logging.ChanneledLogger) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		logger.Store().Error("Store schema creation failed", "error", err.Error())
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

// Get retrieves the value for a key. The second return reports presence:
// a missing key is not an error.
func (s *Store) Get(key string) (string, bool, error) {
	const query = `SELECT value FROM store WHERE key = ?`

	start := time.Now()
	s.logger.Store().Debug("Loading store key", "key", key)

	var value string
	err := s.db.QueryRow(query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			s.logger.Store().Debug("Store key absent", "key", key)
			return "", false, nil
		}
		s.logger.Store().Error("Failed to load store key", "error", err.Error(), "key", key)
		return "", false, err
	}

	if duration := time.Since(start); duration > config.SlowQueryThreshold {
		s.logger.LogSlowQuery(query, duration)
	}
	return value, true, nil
}

// Set writes the full value for a key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	const query = `
		INSERT INTO store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	start := time.Now()
	s.logger.Store().Debug("Writing store key", "key", key, "bytes", len(value))

	if _, err := s.db.Exec(query, key, value); err != nil {
		s.logger.Store().Error("Store write failed", "error", err.Error(), "key", key)
		return err
	}

	s.logger.Store().Info("Store write completed", "key", key, "duration", time.Since(start))
	if duration := time.Since(start); duration > config.SlowQueryThreshold {
		s.logger.LogSlowQuery(query, duration)
	}
	return nil
}

// Delete removes a key. Deleting an absent key succeeds.
func (s *Store) Delete(key string) error {
	const query = `DELETE FROM store WHERE key = ?`

	if _, err := s.db.Exec(query, key); err != nil {
		s.logger.Store().Error("Store delete failed", "error", err.Error(), "key", key)
		return err
	}

	s.logger.Store().Info("Store key deleted", "key", key)
	return nil
}

// Clear removes the given keys as sequential independent deletes. An
// interruption part-way leaves a state from which initialization still
// converges, because every key independently falls back to its default.
func (s *Store) Clear(keys ...string) error {
	for _, key := range keys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
