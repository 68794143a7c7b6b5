package infrastructure

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ErrNoDatabase means no DSN was configured; callers run without the run log.
var ErrNoDatabase = errors.New("no database configured")

// NewPool connects to the run log database.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, ErrNoDatabase
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 4
	return pgxpool.ConnectConfig(ctx, cfg)
}
