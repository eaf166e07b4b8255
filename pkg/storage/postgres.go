package storage

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const createProfileStoreTable = `
	CREATE TABLE IF NOT EXISTS profile_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type PostgresStore struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresStore(db database.PgxIface, log *zap.Logger) *PostgresStore {
	return &PostgresStore{
		db:  db,
		log: log.With(zap.String("store", "postgres")),
	}
}

// Migrate creates the key/value table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createProfileStoreTable); err != nil {
		return fmt.Errorf("create profile_store table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM profile_store WHERE key = $1`

	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Failed to read key", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("read key %s: %w", key, err)
	}

	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO profile_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		s.log.Error("Failed to write key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("write key %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM profile_store WHERE key = $1`

	if _, err := s.db.Exec(ctx, query, key); err != nil {
		s.log.Error("Failed to delete key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("delete key %s: %w", key, err)
	}

	return nil
}
