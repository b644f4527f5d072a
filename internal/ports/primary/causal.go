package primary

import "context"

// CausalService defines the primary port for causal-factor extraction.
type CausalService interface {
	// Extract builds the causal factor graph and writes the causal map
	// JSON plus a markdown summary.
	Extract(ctx context.Context, req CausalRequest) (*CausalResponse, error)
}

// CausalRequest contains parameters for an extraction run.
type CausalRequest struct {
	InputPath   string
	OutputPath  string
	SummaryPath string
}

// CausalResponse summarizes an extraction run.
type CausalResponse struct {
	OutputPath  string
	SummaryPath string
	Factors     []CausalFactor
	LinkCount   int
}

// CausalFactor is one included factor with its observed value.
type CausalFactor struct {
	Name  string
	Value float64
}
