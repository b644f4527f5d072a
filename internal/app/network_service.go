package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/geobridge/internal/core/network"
	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

// NetworkServiceImpl implements the NetworkService interface.
type NetworkServiceImpl struct {
	store     secondary.FeatureStore
	artifacts secondary.ArtifactStore
	exporter  secondary.GraphExporter
	recorder  *runRecorder
	now       func() time.Time
}

// NewNetworkService creates a new NetworkService with injected
// dependencies. runRepo may be nil when run history is unavailable.
func NewNetworkService(store secondary.FeatureStore, artifacts secondary.ArtifactStore, exporter secondary.GraphExporter, runRepo secondary.RunRepository) *NetworkServiceImpl {
	return &NetworkServiceImpl{
		store:     store,
		artifacts: artifacts,
		exporter:  exporter,
		recorder:  newRunRecorder(runRepo),
		now:       time.Now,
	}
}

// Build assembles the relationship graph, applies trust weighting from the
// optional change log, and writes the CSV pair, GraphML, Kumu JSON, and
// text report.
func (s *NetworkServiceImpl) Build(ctx context.Context, req primary.NetworkRequest) (*primary.NetworkResponse, error) {
	col, err := s.store.LoadCollection(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	var changeLog *network.ChangeLog
	if req.ChangeLogPath != "" {
		changeLog, err = s.store.LoadChangeLog(ctx, req.ChangeLogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load change log: %w", err)
		}
	}

	graph := network.Build(col, changeLog)
	generatedAt := s.now().UTC().Format(time.RFC3339)

	if err := s.exporter.ExportCSV(ctx, req.NodesCSVPath, req.EdgesCSVPath, graph); err != nil {
		return nil, fmt.Errorf("failed to write CSV exports: %w", err)
	}
	if err := s.exporter.ExportGraphML(ctx, req.GraphMLPath, graph); err != nil {
		return nil, fmt.Errorf("failed to write GraphML export: %w", err)
	}
	if err := s.exporter.ExportKumu(ctx, req.KumuPath, graph); err != nil {
		return nil, fmt.Errorf("failed to write Kumu export: %w", err)
	}
	if err := s.artifacts.WriteText(ctx, req.ReportPath, network.SummaryReport(graph, generatedAt)); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	resp := &primary.NetworkResponse{
		NodeCount:  len(graph.Nodes),
		EdgeCount:  len(graph.Edges),
		ReportPath: req.ReportPath,
	}
	resp.CentralActors = centralActors(graph, 3)

	s.recorder.record(ctx, &secondary.RunRecord{
		Command:      "network",
		InputPath:    req.InputPath,
		Artifacts:    strings.Join([]string{req.NodesCSVPath, req.EdgesCSVPath, req.GraphMLPath, req.KumuPath, req.ReportPath}, ","),
		FeatureCount: len(col.Features),
	})

	return resp, nil
}

func centralActors(g *network.Graph, limit int) []primary.CentralActor {
	ranked := append([]*network.Node(nil), g.Nodes...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Degree > ranked[j].Degree })

	var actors []primary.CentralActor
	for i, n := range ranked {
		if i == limit {
			break
		}
		actors = append(actors, primary.CentralActor{
			Name:           n.Name,
			Sector:         n.Sector,
			Degree:         n.Degree,
			WeightedDegree: n.WeightedDegree,
		})
	}
	return actors
}
