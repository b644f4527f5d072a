package primary

import "context"

// PipelineService defines the primary port for the one-shot local
// pipeline: convert, stock-flow update, causal extraction, graph build.
type PipelineService interface {
	// Run executes the pipeline stages in order. Per-stage failures after
	// conversion are recorded in the response, not raised, so already
	// written artifacts survive.
	Run(ctx context.Context, req PipelineRequest) (*PipelineResponse, error)
}

// PipelineRequest contains parameters for a full pipeline run.
type PipelineRequest struct {
	InputPath     string
	OutputDir     string
	RainfallIndex float64
	ChangeLogPath string
}

// PipelineResponse collects per-stage outcomes.
type PipelineResponse struct {
	Convert   *ConvertResponse
	StockFlow *StockFlowResponse
	Causal    *CausalResponse
	Network   *NetworkResponse
	// StageErrors maps a stage name to the error it surfaced, for stages
	// that failed after conversion succeeded.
	StageErrors map[string]string
}
