package filesystem

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/geobridge/internal/core/causal"
)

// CausalExporter implements secondary.CausalExporter with the kumu.io
// causal-map JSON schema.
type CausalExporter struct{}

// NewCausalExporter creates a new file-backed causal-map exporter.
func NewCausalExporter() *CausalExporter {
	return &CausalExporter{}
}

type causalMapDoc struct {
	Metadata    causalMapMetadata `json:"metadata"`
	Elements    []causalElement   `json:"elements"`
	Connections []causalLink      `json:"connections"`
	RawFactors  map[string]float64 `json:"rawFactors"`
}

type causalMapMetadata struct {
	Name        string `json:"name"`
	Generated   string `json:"generated"`
	Description string `json:"description"`
}

type causalElement struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

type causalLink struct {
	ID         string         `json:"id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

// ExportCausalMap writes the visualization import JSON for the graph.
func (e *CausalExporter) ExportCausalMap(ctx context.Context, path string, g *causal.Graph, generatedAt string) error {
	doc := causalMapDoc{
		Metadata: causalMapMetadata{
			Name:        "Causal Loop Diagram",
			Generated:   generatedAt,
			Description: "Causal loop diagram derived from feature-collection factors",
		},
		Elements:    []causalElement{},
		Connections: []causalLink{},
		RawFactors:  map[string]float64{},
	}

	for _, n := range g.Nodes {
		doc.Elements = append(doc.Elements, causalElement{
			ID:         causal.NodeID(n.Factor),
			Label:      n.Factor,
			Type:       "Factor",
			Attributes: map[string]any{"value": n.Value},
		})
		doc.RawFactors[n.Factor] = n.Value
	}
	for i, edge := range g.Edges {
		doc.Connections = append(doc.Connections, causalLink{
			ID:   fmt.Sprintf("cld_%d", i),
			From: causal.NodeID(edge.Source),
			To:   causal.NodeID(edge.Target),
			Type: "causal",
			Attributes: map[string]any{
				"polarity":  string(edge.Polarity),
				"rationale": edge.Rationale,
			},
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal causal map: %w", err)
	}
	return writeFile(path, data)
}
