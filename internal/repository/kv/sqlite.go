package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value BLOB NOT NULL
);`

// SQLiteStore keeps the application state in a single on-device SQLite file,
// one row per collection.
type SQLiteStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// OpenSQLite opens (or creates) the database at dsn and applies the schema.
// A dsn of "file:farmbook.db" keeps the state next to the binary;
// ":memory:" is handy in tests.
func OpenSQLite(dsn string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// modernc.org/sqlite is not safe for concurrent writers on one file.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply kv schema: %w", err)
	}

	logger.Info("sqlite store opened", zap.String("dsn", dsn))
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Get reads the stored bytes for key, reporting found=false when the key has
// never been written.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read key %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes the bytes for key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	s.logger.Debug("kv entry written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
