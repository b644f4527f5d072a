package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/geobridge/internal/core/stockflow"
	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

// StockFlowServiceImpl implements the StockFlowService interface.
type StockFlowServiceImpl struct {
	store     secondary.FeatureStore
	artifacts secondary.ArtifactStore
	recorder  *runRecorder
	now       func() time.Time
}

// NewStockFlowService creates a new StockFlowService with injected
// dependencies. runRepo may be nil when run history is unavailable.
func NewStockFlowService(store secondary.FeatureStore, artifacts secondary.ArtifactStore, runRepo secondary.RunRepository) *StockFlowServiceImpl {
	return &StockFlowServiceImpl{
		store:     store,
		artifacts: artifacts,
		recorder:  newRunRecorder(runRepo),
		now:       time.Now,
	}
}

// Run applies the stock-flow update feature by feature. Features lacking
// tracked attributes pass through untouched; features with non-numeric
// tracked attributes are skipped and recorded in the report. The updated
// collection and the report are always written, so partial success leaves
// usable artifacts behind.
func (s *StockFlowServiceImpl) Run(ctx context.Context, req primary.StockFlowRequest) (*primary.StockFlowResponse, error) {
	col, err := s.store.LoadCollection(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	timestamp := s.now().UTC().Format(time.RFC3339)
	params := stockflow.Params{RainfallIndex: req.RainfallIndex}

	report := &primary.Report{
		Timestamp:     timestamp,
		RainfallIndex: req.RainfallIndex,
		Updates:       []primary.FeatureUpdate{},
	}

	for _, f := range col.Features {
		update, skip := stockflow.Apply(f, params, timestamp)
		if skip != nil {
			report.Skipped = append(report.Skipped, primary.SkipDiagnostic{ID: skip.ID, Reason: skip.Reason})
			continue
		}
		if update == nil {
			continue
		}
		fields := make(map[string]primary.ValueChange, len(update.Fields))
		for name, change := range update.Fields {
			fields[name] = primary.ValueChange{Old: change.Old, New: change.New}
		}
		report.Updates = append(report.Updates, primary.FeatureUpdate{ID: update.ID, Fields: fields})
	}

	if err := s.store.SaveCollection(ctx, req.OutputPath, col); err != nil {
		return nil, fmt.Errorf("failed to save updated collection: %w", err)
	}
	if err := s.artifacts.WriteJSON(ctx, req.ReportPath, report); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	resp := &primary.StockFlowResponse{
		OutputPath:   req.OutputPath,
		ReportPath:   req.ReportPath,
		Report:       report,
		FeatureCount: len(col.Features),
		UpdatedCount: len(report.Updates),
		SkippedCount: len(report.Skipped),
	}

	s.recorder.record(ctx, &secondary.RunRecord{
		Command:       "simulate",
		InputPath:     req.InputPath,
		Artifacts:     strings.Join([]string{req.OutputPath, req.ReportPath}, ","),
		FeatureCount:  resp.FeatureCount,
		UpdatedCount:  resp.UpdatedCount,
		SkippedCount:  resp.SkippedCount,
		RainfallIndex: req.RainfallIndex,
	})

	return resp, nil
}
