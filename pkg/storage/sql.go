package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type sqlStore struct {
	db *sql.DB
}

// NewSQLStore works on top of the kv_entries table created by the database migrations.
// Queries use numbered placeholders understood by both PostgreSQL and SQLite.
func NewSQLStore(db *sql.DB) *sqlStore {
	return &sqlStore{db: db}
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `
		SELECT entry_value
		FROM kv_entries
		WHERE entry_key = $1
	`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("fetching value by key: %w", err)
	}

	return value, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_entries (entry_key, entry_value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (entry_key)
		DO UPDATE SET
			entry_value = EXCLUDED.entry_value,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("saving value: %w", err)
	}

	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE entry_key = $1`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("removing value: %w", err)
	}

	return nil
}
