package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/example/geobridge/internal/ports/primary"
)

// PipelineServiceImpl implements the PipelineService interface by chaining
// the stage services over shared artifact paths.
type PipelineServiceImpl struct {
	convert   primary.ConvertService
	stockFlow primary.StockFlowService
	causal    primary.CausalService
	network   primary.NetworkService
}

// NewPipelineService creates a new PipelineService over the stage services.
func NewPipelineService(
	convert primary.ConvertService,
	stockFlow primary.StockFlowService,
	causal primary.CausalService,
	network primary.NetworkService,
) *PipelineServiceImpl {
	return &PipelineServiceImpl{
		convert:   convert,
		stockFlow: stockFlow,
		causal:    causal,
		network:   network,
	}
}

// Run executes convert, stock-flow update, causal extraction, and graph
// build in order. Conversion failure aborts the run; later stage failures
// are recorded per stage and the remaining stages still run, so every
// artifact that can be produced is produced.
func (s *PipelineServiceImpl) Run(ctx context.Context, req primary.PipelineRequest) (*primary.PipelineResponse, error) {
	out := func(name string) string { return filepath.Join(req.OutputDir, name) }

	resp := &primary.PipelineResponse{StageErrors: map[string]string{}}

	converted, err := s.convert.Convert(ctx, primary.ConvertRequest{
		InputPath:  req.InputPath,
		OutputPath: out("federated_model.geojson"),
	})
	if err != nil {
		return nil, fmt.Errorf("convert stage failed: %w", err)
	}
	resp.Convert = converted

	updated, err := s.stockFlow.Run(ctx, primary.StockFlowRequest{
		InputPath:     converted.OutputPath,
		OutputPath:    out("federated_model_sd.geojson"),
		ReportPath:    out("sd_report.json"),
		RainfallIndex: req.RainfallIndex,
	})
	if err != nil {
		resp.StageErrors["simulate"] = err.Error()
	} else {
		resp.StockFlow = updated
	}

	// Downstream stages read the updated collection when the update stage
	// produced one, the converted collection otherwise.
	analysisInput := converted.OutputPath
	if updated != nil {
		analysisInput = updated.OutputPath
	}

	extracted, err := s.causal.Extract(ctx, primary.CausalRequest{
		InputPath:   analysisInput,
		OutputPath:  out("cld_network.json"),
		SummaryPath: out("cld_summary.md"),
	})
	if err != nil {
		resp.StageErrors["causal"] = err.Error()
	} else {
		resp.Causal = extracted
	}

	built, err := s.network.Build(ctx, primary.NetworkRequest{
		InputPath:     analysisInput,
		ChangeLogPath: req.ChangeLogPath,
		NodesCSVPath:  out("sna_nodes.csv"),
		EdgesCSVPath:  out("sna_edges.csv"),
		GraphMLPath:   out("sna_network.graphml"),
		KumuPath:      out("kumu_network.json"),
		ReportPath:    out("sna_report.txt"),
	})
	if err != nil {
		resp.StageErrors["network"] = err.Error()
	} else {
		resp.Network = built
	}

	return resp, nil
}
