package migration

import (
	"context"

	"github.com/jackc/pgconn"
	"go.uber.org/zap"
)

// Execer is satisfied by *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Migration is one idempotent schema step.
type Migration struct {
	Name string
	SQL  string
}

// Migrations are applied in order on every server start.
var Migrations = []Migration{
	{
		Name: "create_resume_generation_runs",
		SQL: `CREATE TABLE IF NOT EXISTS resume_generation_runs (
			id UUID PRIMARY KEY,
			format TEXT NOT NULL,
			status TEXT NOT NULL,
			stage TEXT NOT NULL DEFAULT '',
			bytes INTEGER NOT NULL DEFAULT 0,
			output_path TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	},
	{
		Name: "index_resume_generation_runs_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS resume_generation_runs_created_at_idx ON resume_generation_runs (created_at DESC)`,
	},
}

// RunMigrations executes every migration and stops at the first failure.
func RunMigrations(ctx context.Context, db Execer, log *zap.Logger) error {
	log.Info("starting database migrations")

	for _, m := range Migrations {
		if _, err := db.Exec(ctx, m.SQL); err != nil {
			log.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		log.Info("migration completed", zap.String("name", m.Name))
	}

	log.Info("all migrations completed")
	return nil
}
