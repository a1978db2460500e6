package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a shared L2 tier for deployments that already run Postgres.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a pgx pool and ensures the cache table exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS tiktok_cache (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create cache table: %w", err)
	}

	slog.Info("cache: L2 postgres connected", slog.String("addr", config.ConnConfig.Host))
	return &PostgresStore{pool: pool}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, _, ok := p.GetWithTTL(ctx, key)
	return data, ok
}

// GetWithTTL returns the value and its remaining lifetime.
func (p *PostgresStore) GetWithTTL(ctx context.Context, key string) ([]byte, time.Duration, bool) {
	var (
		data      []byte
		expiresAt time.Time
	)
	err := p.pool.QueryRow(ctx,
		`SELECT value, expires_at FROM tiktok_cache WHERE key = $1 AND expires_at > now()`,
		key,
	).Scan(&data, &expiresAt)
	if err != nil {
		return nil, 0, false
	}
	return data, time.Until(expiresAt), true
}

func (p *PostgresStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO tiktok_cache (key, value, expires_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, time.Now().Add(ttl),
	)
	if err != nil {
		slog.Debug("cache: postgres set failed", slog.Any("error", err))
	}
}

// Purge deletes expired rows and returns how many were removed.
func (p *PostgresStore) Purge(ctx context.Context) (int64, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM tiktok_cache WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Close releases the pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}
