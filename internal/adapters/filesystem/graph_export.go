package filesystem

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/example/geobridge/internal/core/network"
)

// GraphExporter implements secondary.GraphExporter: CSV node/edge lists
// for spreadsheet tooling, GraphML for Gephi, Kumu JSON for kumu.io.
type GraphExporter struct{}

// NewGraphExporter creates a new file-backed graph exporter.
func NewGraphExporter() *GraphExporter {
	return &GraphExporter{}
}

// ExportCSV writes the node-list/edge-list pair.
func (e *GraphExporter) ExportCSV(ctx context.Context, nodesPath, edgesPath string, g *network.Graph) error {
	nodeRows := [][]string{{
		"id", "name", "type", "sector", "level", "status",
		"degree_centrality", "weighted_degree", "capacity",
		"population", "budget", "modelBlockId",
	}}
	for _, n := range g.Nodes {
		nodeRows = append(nodeRows, []string{
			n.ID, n.Name, n.Type, n.Sector, n.Level, n.Status,
			strconv.Itoa(n.Degree),
			formatFloat(n.WeightedDegree),
			formatFloat(n.Capacity),
			formatFloat(n.Population),
			formatFloat(n.Budget),
			n.ModelBlockID,
		})
	}
	if err := writeCSV(nodesPath, nodeRows); err != nil {
		return fmt.Errorf("failed to write node list: %w", err)
	}

	edgeRows := [][]string{{"source", "target", "type", "weight", "validation_event"}}
	for _, edge := range g.Edges {
		edgeRows = append(edgeRows, []string{
			edge.Source, edge.Target, edge.Type,
			formatFloat(edge.Weight),
			edge.ValidationEvent,
		})
	}
	if err := writeCSV(edgesPath, edgeRows); err != nil {
		return fmt.Errorf("failed to write edge list: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCSV(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

// graphML document structure, undirected, with the attribute keys the
// external layout tooling expects.
type graphMLDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr"`
	Keys    []graphMLKey `xml:"key"`
	Graph   graphMLGraph `xml:"graph"`
}

type graphMLKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphMLGraph struct {
	ID          string        `xml:"id,attr"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphMLNode `xml:"node"`
	Edges       []graphMLEdge `xml:"edge"`
}

type graphMLNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphMLData `xml:"data"`
}

type graphMLEdge struct {
	ID     string        `xml:"id,attr"`
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphMLData `xml:"data"`
}

type graphMLData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// ExportGraphML writes the GraphML document.
func (e *GraphExporter) ExportGraphML(ctx context.Context, path string, g *network.Graph) error {
	doc := graphMLDoc{
		XMLNS: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphMLKey{
			{ID: "name", For: "node", AttrName: "name", AttrType: "string"},
			{ID: "type", For: "node", AttrName: "type", AttrType: "string"},
			{ID: "sector", For: "node", AttrName: "sector", AttrType: "string"},
			{ID: "centrality", For: "node", AttrName: "degree_centrality", AttrType: "int"},
			{ID: "weight", For: "edge", AttrName: "weight", AttrType: "double"},
		},
		Graph: graphMLGraph{ID: "G", EdgeDefault: "undirected"},
	}

	for _, n := range g.Nodes {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphMLNode{
			ID: n.ID,
			Data: []graphMLData{
				{Key: "name", Value: n.Name},
				{Key: "type", Value: n.Type},
				{Key: "sector", Value: n.Sector},
				{Key: "centrality", Value: strconv.Itoa(n.Degree)},
			},
		})
	}
	for i, edge := range g.Edges {
		doc.Graph.Edges = append(doc.Graph.Edges, graphMLEdge{
			ID:     fmt.Sprintf("e%d", i),
			Source: edge.Source,
			Target: edge.Target,
			Data:   []graphMLData{{Key: "weight", Value: formatFloat(edge.Weight)}},
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal GraphML: %w", err)
	}
	return writeFile(path, append([]byte(xml.Header), data...))
}

// kumuNetworkDoc matches the kumu.io JSON import schema for network maps.
type kumuNetworkDoc struct {
	Elements    []kumuElement    `json:"elements"`
	Connections []kumuConnection `json:"connections"`
}

type kumuElement struct {
	ID          string         `json:"_id"`
	Label       string         `json:"label"`
	Type        string         `json:"type"`
	Tags        []string       `json:"tags"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes"`
}

type kumuConnection struct {
	ID         string         `json:"_id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Label      string         `json:"label"`
	Direction  string         `json:"direction"`
	Attributes map[string]any `json:"attributes"`
}

// ExportKumu writes the network-visualization import JSON.
func (e *GraphExporter) ExportKumu(ctx context.Context, path string, g *network.Graph) error {
	doc := kumuNetworkDoc{Elements: []kumuElement{}, Connections: []kumuConnection{}}

	for _, n := range g.Nodes {
		doc.Elements = append(doc.Elements, kumuElement{
			ID:          n.ID,
			Label:       n.Name,
			Type:        n.Type,
			Tags:        []string{n.Sector, n.Level},
			Description: fmt.Sprintf("%s - %s", n.Type, n.Sector),
			Attributes: map[string]any{
				"Sector":            n.Sector,
				"Level":             n.Level,
				"Status":            n.Status,
				"Degree Centrality": n.Degree,
				"Weighted Degree":   n.WeightedDegree,
				"Capacity":          n.Capacity,
				"Population":        n.Population,
				"Budget":            n.Budget,
				"Model Block ID":    n.ModelBlockID,
			},
		})
	}
	for i, edge := range g.Edges {
		doc.Connections = append(doc.Connections, kumuConnection{
			ID:        fmt.Sprintf("connection_%d", i),
			From:      edge.Source,
			To:        edge.Target,
			Label:     edge.Type,
			Direction: "mutual",
			Attributes: map[string]any{
				"Type":             edge.Type,
				"Weight":           edge.Weight,
				"Validation Event": edge.ValidationEvent,
			},
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal Kumu export: %w", err)
	}
	return writeFile(path, data)
}
