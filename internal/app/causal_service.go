package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/geobridge/internal/core/causal"
	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

// CausalServiceImpl implements the CausalService interface.
type CausalServiceImpl struct {
	store     secondary.FeatureStore
	artifacts secondary.ArtifactStore
	exporter  secondary.CausalExporter
	recorder  *runRecorder
	now       func() time.Time
}

// NewCausalService creates a new CausalService with injected dependencies.
// runRepo may be nil when run history is unavailable.
func NewCausalService(store secondary.FeatureStore, artifacts secondary.ArtifactStore, exporter secondary.CausalExporter, runRepo secondary.RunRepository) *CausalServiceImpl {
	return &CausalServiceImpl{
		store:     store,
		artifacts: artifacts,
		exporter:  exporter,
		recorder:  newRunRecorder(runRepo),
		now:       time.Now,
	}
}

// Extract builds the causal factor graph from the collection and writes
// the causal-map JSON plus the markdown summary.
func (s *CausalServiceImpl) Extract(ctx context.Context, req primary.CausalRequest) (*primary.CausalResponse, error) {
	col, err := s.store.LoadCollection(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	graph := causal.Extract(col, causal.DefaultVocabulary(), causal.DefaultRules())
	generatedAt := s.now().UTC().Format(time.RFC3339)

	if err := s.exporter.ExportCausalMap(ctx, req.OutputPath, graph, generatedAt); err != nil {
		return nil, fmt.Errorf("failed to write causal map: %w", err)
	}
	if err := s.artifacts.WriteText(ctx, req.SummaryPath, causal.SummaryMarkdown(graph, generatedAt)); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	resp := &primary.CausalResponse{
		OutputPath:  req.OutputPath,
		SummaryPath: req.SummaryPath,
		LinkCount:   len(graph.Edges),
	}
	for _, n := range graph.Nodes {
		resp.Factors = append(resp.Factors, primary.CausalFactor{Name: n.Factor, Value: n.Value})
	}

	s.recorder.record(ctx, &secondary.RunRecord{
		Command:      "causal",
		InputPath:    req.InputPath,
		Artifacts:    strings.Join([]string{req.OutputPath, req.SummaryPath}, ","),
		FeatureCount: len(col.Features),
	})

	return resp, nil
}
