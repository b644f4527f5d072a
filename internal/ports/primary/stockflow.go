package primary

import "context"

// DefaultRainfallIndex is used when no rainfall index is supplied.
const DefaultRainfallIndex = 0.6

// StockFlowService defines the primary port for the stock-flow update.
type StockFlowService interface {
	// Run applies the stock-flow update to a collection and writes the
	// updated collection plus a report.
	Run(ctx context.Context, req StockFlowRequest) (*StockFlowResponse, error)
}

// StockFlowRequest contains parameters for an update run.
type StockFlowRequest struct {
	InputPath  string
	OutputPath string
	ReportPath string
	// RainfallIndex is nominally in [0,1] but deliberately not
	// range-checked; see the report for the value actually used.
	RainfallIndex float64
}

// StockFlowResponse summarizes an update run.
type StockFlowResponse struct {
	OutputPath   string
	ReportPath   string
	Report       *Report
	FeatureCount int
	UpdatedCount int
	SkippedCount int
}

// Report is the flat old/new record written after an update run. Skipped
// features are recorded, never silently dropped.
type Report struct {
	Timestamp     string           `json:"timestamp"`
	RainfallIndex float64          `json:"rainfallIndex"`
	Updates       []FeatureUpdate  `json:"updates"`
	Skipped       []SkipDiagnostic `json:"skipped,omitempty"`
}

// FeatureUpdate holds the old/new pairs for one updated feature.
type FeatureUpdate struct {
	ID     string                 `json:"id"`
	Fields map[string]ValueChange `json:"fields"`
}

// ValueChange is one tracked quantity's before/after pair.
type ValueChange struct {
	Old float64 `json:"old"`
	New float64 `json:"new"`
}

// SkipDiagnostic records a feature the updater could not process.
type SkipDiagnostic struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}
