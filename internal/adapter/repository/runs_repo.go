package repository

import (
	"context"

	"resume-docs/internal/domain"

	"github.com/jackc/pgconn"
)

// Execer is the part of *pgxpool.Pool the run log needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// RunsRepo persists generation runs. A nil pool turns Save into a no-op so
// generation works without a database.
type RunsRepo struct {
	db Execer
}

func NewRunsRepo(db Execer) *RunsRepo {
	return &RunsRepo{db: db}
}

const upsertRun = `INSERT INTO resume_generation_runs (id, format, status, stage, bytes, output_path, error, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, stage = EXCLUDED.stage, bytes = EXCLUDED.bytes,
		output_path = EXCLUDED.output_path, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`

func (r *RunsRepo) Save(ctx context.Context, run *domain.GenerationRun) error {
	if r == nil || r.db == nil {
		return nil
	}
	_, err := r.db.Exec(ctx, upsertRun,
		run.ID, run.Format, run.Status, run.Stage, run.Bytes, run.OutputPath, run.Error, run.CreatedAt, run.UpdatedAt)
	return err
}
