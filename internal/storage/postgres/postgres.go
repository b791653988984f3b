package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool wraps pgxpool.Pool for dependency injection.
type Pool struct {
	*pgxpool.Pool
}

// NewPool creates a new Postgres connection pool and verifies connectivity.
func NewPool(ctx context.Context, dsn string) (*Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// Close closes the connection pool.
func (p *Pool) Close() {
	p.Pool.Close()
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS candidates (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	headline         TEXT NOT NULL DEFAULT '',
	location         TEXT NOT NULL DEFAULT '',
	experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
	avg_tenure_years DOUBLE PRECISION NOT NULL DEFAULT 0,
	skills           TEXT[] NOT NULL DEFAULT '{}',
	industries       TEXT[] NOT NULL DEFAULT '{}',
	culture_traits   TEXT[] NOT NULL DEFAULT '{}',
	identities       JSONB NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS score_history (
	candidate_id         TEXT NOT NULL,
	overall              DOUBLE PRECISION NOT NULL,
	technical_depth      DOUBLE PRECISION NOT NULL,
	influence            DOUBLE PRECISION NOT NULL,
	community_engagement DOUBLE PRECISION NOT NULL,
	learning_velocity    DOUBLE PRECISION NOT NULL,
	confidence           DOUBLE PRECISION NOT NULL,
	scored_at            TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS score_history_candidate_idx
	ON score_history (candidate_id, scored_at);

CREATE TABLE IF NOT EXISTS risk_alerts (
	id           TEXT PRIMARY KEY,
	candidate_id TEXT NOT NULL,
	changes      JSONB NOT NULL DEFAULT '[]',
	severity     TEXT NOT NULL,
	detected_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS risk_alerts_candidate_idx
	ON risk_alerts (candidate_id, detected_at);
CREATE INDEX IF NOT EXISTS risk_alerts_detected_idx
	ON risk_alerts (detected_at);
`

// EnsureSchema creates the talentscan tables if they do not exist.
func (p *Pool) EnsureSchema(ctx context.Context) error {
	if _, err := p.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// PostgreSQL error codes.
const pgErrUniqueViolation = "23505"

// isDuplicateKeyError checks if error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation
	}
	return false
}

// isNotFoundError checks if error indicates no rows found.
func isNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
