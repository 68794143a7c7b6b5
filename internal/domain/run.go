package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// GenerationRun records one attempt to produce a document.
type GenerationRun struct {
	ID         uuid.UUID `json:"id"`
	Format     string    `json:"format"`
	Status     string    `json:"status"`
	Stage      string    `json:"stage,omitempty"`
	Bytes      int       `json:"bytes"`
	OutputPath string    `json:"output_path,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewGenerationRun(format string, now time.Time) *GenerationRun {
	return &GenerationRun{
		ID:        uuid.New(),
		Format:    format,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Complete marks the run successful.
func (r *GenerationRun) Complete(bytes int, now time.Time) {
	r.Status = StatusCompleted
	r.Bytes = bytes
	r.UpdatedAt = now
}

// Fail marks the run failed at stage.
func (r *GenerationRun) Fail(stage string, err error, now time.Time) {
	r.Status = StatusFailed
	r.Stage = stage
	if err != nil {
		r.Error = err.Error()
	}
	r.UpdatedAt = now
}
