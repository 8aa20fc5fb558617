package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/internal/domain/storage"
)

// PostgresStore is the local Store implementation: one JSONB row per key.
// It deliberately resolves after a small artificial latency so the client
// keeps the same interaction timing whether it runs against this store or
// the remote API (bulk reads ~300ms, session reads ~50ms by default).
type PostgresStore struct {
	pool         *pgxpool.Pool
	logger       *logrus.Logger
	readDelay    time.Duration
	sessionDelay time.Duration
}

func NewPostgresStore(pool *pgxpool.Pool, logger *logrus.Logger, readDelay, sessionDelay time.Duration) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger, readDelay: readDelay, sessionDelay: sessionDelay}
}

func (s *PostgresStore) delayFor(key string) time.Duration {
	if key == storage.KeySession {
		return s.sessionDelay
	}
	return s.readDelay
}

func (s *PostgresStore) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *PostgresStore) Read(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if err := s.wait(ctx, s.delayFor(key)); err != nil {
		return nil, false, err
	}

	var raw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT value FROM kv_store WHERE key = $1
	`, key).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	// A row that does not hold parseable JSON counts as absent, never as an
	// error the caller has to branch on.
	if !json.Valid(raw) {
		s.logger.WithField("key", key).Warn("malformed stored value, treating as absent")
		return nil, false, nil
	}
	return raw, true, nil
}

func (s *PostgresStore) Write(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, b)
	return err
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}

var _ storage.Store = (*PostgresStore)(nil)
