package secondary

import "context"

// RunRepository defines the secondary port for the run-history ledger.
type RunRepository interface {
	// Create persists a new run record.
	Create(ctx context.Context, run *RunRecord) error

	// List retrieves run records matching the given filters, newest first.
	List(ctx context.Context, filters RunFilters) ([]*RunRecord, error)
}

// RunRecord represents one pipeline invocation as stored in persistence.
type RunRecord struct {
	ID            string
	Command       string
	InputPath     string
	Artifacts     string // comma-joined output paths
	FeatureCount  int
	UpdatedCount  int
	SkippedCount  int
	RainfallIndex float64
	CreatedAt     string
}

// RunFilters contains filter options for querying run history.
type RunFilters struct {
	Command string
	Limit   int
}
