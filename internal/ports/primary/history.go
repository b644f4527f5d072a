package primary

import "context"

// HistoryService defines the primary port for the run-history ledger.
type HistoryService interface {
	// ListRuns retrieves recorded runs, newest first.
	ListRuns(ctx context.Context, filters RunHistoryFilters) ([]*Run, error)
}

// RunHistoryFilters contains filter options for run history queries.
type RunHistoryFilters struct {
	Command string
	Limit   int
}

// Run is one recorded pipeline invocation.
type Run struct {
	ID            string
	Command       string
	InputPath     string
	Artifacts     string
	FeatureCount  int
	UpdatedCount  int
	SkippedCount  int
	RainfallIndex float64
	CreatedAt     string
}
