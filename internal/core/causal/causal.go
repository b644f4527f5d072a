// Package causal builds the causal loop diagram: a static, rule-defined
// directed graph of named conceptual factors. The vocabulary and the link
// table are data, not branching logic, so extraction stays a pure presence
// check over feature attributes. No cycle detection or polarity
// propagation happens here.
package causal

import (
	"sort"
	"strings"

	"github.com/example/geobridge/internal/core/feature"
)

// Polarity is the sign of a causal influence.
type Polarity string

const (
	Positive Polarity = "+"
	Negative Polarity = "-"
)

// Pattern maps an attribute-name prefix to a canonical factor.
type Pattern struct {
	Prefix string
	Factor string
}

// Rule is one static causal link between two canonical factors.
type Rule struct {
	Source    string
	Target    string
	Polarity  Polarity
	Rationale string
}

// Node is a factor present in the input data, carrying the last value
// observed for its matching attribute.
type Node struct {
	Factor string
	Value  float64
}

// Edge is an included causal link.
type Edge struct {
	Source    string
	Target    string
	Polarity  Polarity
	Rationale string
}

// Graph is the extracted causal factor graph. Nodes follow vocabulary
// order and edges follow rule order, so extraction is deterministic.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// DefaultVocabulary returns the ten canonical factors and the attribute
// prefixes that gate them.
func DefaultVocabulary() []Pattern {
	return []Pattern{
		{Prefix: "biomass", Factor: "Biomass Stock"},
		{Prefix: "fireRisk", Factor: "Fire Risk"},
		{Prefix: "grazing", Factor: "Grazing Intensity"},
		{Prefix: "management", Factor: "Management Capacity"},
		{Prefix: "governanceScore", Factor: "Community Governance"},
		{Prefix: "budget", Factor: "Governance Capacity"},
		{Prefix: "tourism", Factor: "Tourism Pressure"},
		{Prefix: "revenue", Factor: "Economic Resilience"},
		{Prefix: "suitability", Factor: "Suitability"},
		{Prefix: "requiredFlow", Factor: "Water Requirement"},
	}
}

// DefaultRules returns the static causal link table. An edge reaches the
// output only when both endpoint factors are present in the data.
func DefaultRules() []Rule {
	return []Rule{
		{Source: "Grazing Intensity", Target: "Biomass Stock", Polarity: Negative, Rationale: "Grazing reduces biomass"},
		{Source: "Biomass Stock", Target: "Fire Risk", Polarity: Positive, Rationale: "More biomass increases fuel load"},
		{Source: "Governance Capacity", Target: "Fire Risk", Polarity: Negative, Rationale: "Better governance reduces fire risk"},
		{Source: "Management Capacity", Target: "Fire Risk", Polarity: Negative, Rationale: "Improved management reduces risk"},
		{Source: "Tourism Pressure", Target: "Fire Risk", Polarity: Positive, Rationale: "Higher tourism pressure elevates risk"},
		{Source: "Fire Risk", Target: "Suitability", Polarity: Negative, Rationale: "Risk lowers project suitability"},
		{Source: "Economic Resilience", Target: "Management Capacity", Polarity: Positive, Rationale: "Revenue supports management"},
		{Source: "Community Governance", Target: "Management Capacity", Polarity: Positive, Rationale: "Governance improves coordination"},
		{Source: "Water Requirement", Target: "Suitability", Polarity: Negative, Rationale: "Higher requirements reduce feasibility"},
	}
}

// NodeID converts a factor name to its element identifier.
func NodeID(factor string) string {
	return strings.ReplaceAll(factor, " ", "_")
}

// Extract scans the collection against the vocabulary and gates the rule
// table by factor presence. A factor is present when any feature carries an
// attribute matching its prefix; updated sd_-prefixed attributes count the
// same as their sources. The factor value is the last numeric match seen,
// in feature order.
func Extract(col *feature.Collection, vocabulary []Pattern, rules []Rule) *Graph {
	values := map[string]float64{}
	seen := map[string]bool{}

	for _, f := range col.Features {
		names := make([]string, 0, len(f.Properties))
		for name := range f.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			raw := f.Properties[name]
			trimmed := strings.TrimPrefix(name, "sd_")
			for _, p := range vocabulary {
				if !strings.HasPrefix(trimmed, p.Prefix) {
					continue
				}
				seen[p.Factor] = true
				if v, ok, err := numericValue(raw); ok && err == nil {
					values[p.Factor] = v
				}
			}
		}
	}

	g := &Graph{}
	for _, p := range vocabulary {
		if seen[p.Factor] {
			g.Nodes = append(g.Nodes, Node{Factor: p.Factor, Value: values[p.Factor]})
		}
	}
	for _, r := range rules {
		if seen[r.Source] && seen[r.Target] {
			g.Edges = append(g.Edges, Edge(r))
		}
	}
	return g
}

func numericValue(raw any) (float64, bool, error) {
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	default:
		return 0, false, nil
	}
}
