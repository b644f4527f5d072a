package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/geobridge/internal/ports/secondary"
)

// runRecorder writes run-history rows. History is best-effort: a nil
// repository or a failed insert never disturbs the pipeline run itself.
type runRecorder struct {
	repo secondary.RunRepository
}

func newRunRecorder(repo secondary.RunRepository) *runRecorder {
	return &runRecorder{repo: repo}
}

func (r *runRecorder) record(ctx context.Context, run *secondary.RunRecord) {
	if r.repo == nil {
		return
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_ = r.repo.Create(ctx, run)
}
