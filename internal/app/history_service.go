package app

import (
	"context"
	"fmt"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	runRepo secondary.RunRepository
}

// NewHistoryService creates a new HistoryService with the injected
// repository.
func NewHistoryService(runRepo secondary.RunRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{runRepo: runRepo}
}

// ListRuns retrieves recorded runs, newest first.
func (s *HistoryServiceImpl) ListRuns(ctx context.Context, filters primary.RunHistoryFilters) ([]*primary.Run, error) {
	if s.runRepo == nil {
		return nil, fmt.Errorf("run history is unavailable")
	}

	records, err := s.runRepo.List(ctx, secondary.RunFilters{
		Command: filters.Command,
		Limit:   filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*primary.Run, 0, len(records))
	for _, r := range records {
		runs = append(runs, &primary.Run{
			ID:            r.ID,
			Command:       r.Command,
			InputPath:     r.InputPath,
			Artifacts:     r.Artifacts,
			FeatureCount:  r.FeatureCount,
			UpdatedCount:  r.UpdatedCount,
			SkippedCount:  r.SkippedCount,
			RainfallIndex: r.RainfallIndex,
			CreatedAt:     r.CreatedAt,
		})
	}
	return runs, nil
}
