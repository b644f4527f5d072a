package app

import (
	"context"
	"fmt"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface over the narrow
// feature-service port. Remote failures land in the response's
// ServiceError field so callers can continue with local artifacts.
type SyncServiceImpl struct {
	store    secondary.FeatureStore
	remote   secondary.FeatureService
	recorder *runRecorder
}

// NewSyncService creates a new SyncService with injected dependencies.
// runRepo may be nil when run history is unavailable.
func NewSyncService(store secondary.FeatureStore, remote secondary.FeatureService, runRepo secondary.RunRepository) *SyncServiceImpl {
	return &SyncServiceImpl{
		store:    store,
		remote:   remote,
		recorder: newRunRecorder(runRepo),
	}
}

// Push publishes a local collection to the hosted feature service.
func (s *SyncServiceImpl) Push(ctx context.Context, req primary.PushRequest) (*primary.PushResponse, error) {
	col, err := s.store.LoadCollection(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	resp := &primary.PushResponse{FeatureCount: len(col.Features)}
	result, err := s.remote.PushFeatures(ctx, col)
	if err != nil {
		resp.ServiceError = err.Error()
	} else {
		resp.ItemID = result.ItemID
		resp.ItemURL = result.ItemURL
	}

	s.recorder.record(ctx, &secondary.RunRecord{
		Command:      "push",
		InputPath:    req.InputPath,
		FeatureCount: resp.FeatureCount,
	})

	return resp, nil
}

// Pull retrieves the remote collection and writes it locally. Nothing is
// written when the remote call fails.
func (s *SyncServiceImpl) Pull(ctx context.Context, req primary.PullRequest) (*primary.PullResponse, error) {
	resp := &primary.PullResponse{OutputPath: req.OutputPath}

	col, err := s.remote.PullFeatures(ctx)
	if err != nil {
		resp.ServiceError = err.Error()
		return resp, nil
	}

	if err := s.store.SaveCollection(ctx, req.OutputPath, col); err != nil {
		return nil, fmt.Errorf("failed to save pulled collection: %w", err)
	}

	resp.FeatureCount = len(col.Features)
	s.recorder.record(ctx, &secondary.RunRecord{
		Command:      "pull",
		Artifacts:    req.OutputPath,
		FeatureCount: resp.FeatureCount,
	})

	return resp, nil
}
