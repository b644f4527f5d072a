// Package primary defines the primary ports (driving interfaces) for the
// application: the service contracts the CLI adapters call into.
package primary

import "context"

// ConvertService defines the primary port for model-export conversion.
type ConvertService interface {
	// Convert reads a model export and writes a GeoJSON feature collection.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResponse, error)
}

// ConvertRequest contains parameters for a conversion run.
type ConvertRequest struct {
	InputPath  string
	OutputPath string
}

// ConvertResponse summarizes a conversion run.
type ConvertResponse struct {
	OutputPath   string
	FeatureCount int
	Features     []FeatureSummary
}

// FeatureSummary is the per-feature line item shown after conversion.
type FeatureSummary struct {
	ID            string
	Name          string
	Type          string
	ModelBlockID  string
	NetworkNodeID string
}
