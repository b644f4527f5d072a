// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives the filesystem, the remote feature service, and persistence.
package secondary

import (
	"context"
	"encoding/json"

	"github.com/example/geobridge/internal/core/causal"
	"github.com/example/geobridge/internal/core/feature"
	"github.com/example/geobridge/internal/core/network"
)

// EntityExport is the raw model export document handed to the converter.
// The schema is informal; unknown properties pass through unchanged.
type EntityExport struct {
	Model    string         `json:"model"`
	Entities []EntityRecord `json:"entities"`
}

// EntityRecord is one exported model entity. Geometry, when present, is
// carried verbatim; typed properties wrap their value in a {value: ...}
// envelope.
type EntityRecord struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Type       string                   `json:"type"`
	Geometry   json.RawMessage          `json:"geometry,omitempty"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyValue is the typed property envelope used by the export format.
type PropertyValue struct {
	Value any `json:"value"`
}

// FeatureStore defines the secondary port for reading and writing the
// pipeline's JSON documents. Writes are whole-file replace.
type FeatureStore interface {
	// LoadEntityExport reads a model export document.
	LoadEntityExport(ctx context.Context, path string) (*EntityExport, error)

	// LoadCollection reads a GeoJSON feature collection.
	LoadCollection(ctx context.Context, path string) (*feature.Collection, error)

	// SaveCollection writes a GeoJSON feature collection.
	SaveCollection(ctx context.Context, path string, col *feature.Collection) error

	// LoadChangeLog reads an auxiliary change-summary document.
	LoadChangeLog(ctx context.Context, path string) (*network.ChangeLog, error)
}

// ArtifactStore defines the secondary port for writing run artifacts that
// are not feature collections (reports, summaries).
type ArtifactStore interface {
	// WriteJSON writes doc as indented JSON.
	WriteJSON(ctx context.Context, path string, doc any) error

	// WriteText writes a plain-text artifact.
	WriteText(ctx context.Context, path string, text string) error
}

// GraphExporter defines the secondary port for relationship-graph exchange
// formats.
type GraphExporter interface {
	// ExportCSV writes the node-list/edge-list pair.
	ExportCSV(ctx context.Context, nodesPath, edgesPath string, g *network.Graph) error

	// ExportGraphML writes the GraphML document.
	ExportGraphML(ctx context.Context, path string, g *network.Graph) error

	// ExportKumu writes the network-visualization import JSON.
	ExportKumu(ctx context.Context, path string, g *network.Graph) error
}

// CausalExporter defines the secondary port for causal-map exports.
type CausalExporter interface {
	// ExportCausalMap writes the visualization import JSON for the graph.
	ExportCausalMap(ctx context.Context, path string, g *causal.Graph, generatedAt string) error
}
