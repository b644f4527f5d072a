package primary

import "context"

// NetworkService defines the primary port for relationship-graph builds.
type NetworkService interface {
	// Build assembles the relationship graph and writes the exchange
	// exports plus a text report.
	Build(ctx context.Context, req NetworkRequest) (*NetworkResponse, error)
}

// NetworkRequest contains parameters for a graph build.
type NetworkRequest struct {
	InputPath string
	// ChangeLogPath points at an optional change-summary document used for
	// trust weighting; empty means no change log.
	ChangeLogPath string
	NodesCSVPath  string
	EdgesCSVPath  string
	GraphMLPath   string
	KumuPath      string
	ReportPath    string
}

// NetworkResponse summarizes a graph build.
type NetworkResponse struct {
	NodeCount     int
	EdgeCount     int
	ReportPath    string
	CentralActors []CentralActor
}

// CentralActor is one of the highest-degree nodes, for display.
type CentralActor struct {
	Name           string
	Sector         string
	Degree         int
	WeightedDegree float64
}
