// Package network builds the actor relationship graph: features carrying a
// network node id become nodes, declared partnership references become
// undirected deduplicated edges with additive trust weighting, and degree
// metrics are precomputed. Betweenness and closeness stay in external
// tooling.
package network

import (
	"math"

	"github.com/example/geobridge/internal/core/feature"
)

// Trust weight increments. Base weight is 1.0 per partnership; validation
// events and approval flags add fixed boosts, never normalized.
const (
	baseWeight      = 1.0
	validationBoost = 0.3
	approvalBoost   = 0.1
)

// Node is one actor in the relationship graph. The attribute set is a
// fixed whitelist carried over from the source feature.
type Node struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Sector       string  `json:"sector"`
	Level        string  `json:"level"`
	Status       string  `json:"status"`
	ModelBlockID string  `json:"modelBlockId"`
	FeatureID    string  `json:"featureId"`
	Population   float64 `json:"population"`
	Budget       float64 `json:"budget"`
	Capacity     float64 `json:"capacity"`

	Degree         int     `json:"degreeCentrality"`
	WeightedDegree float64 `json:"weightedDegree"`
}

// Edge is one undirected partnership between two nodes.
type Edge struct {
	Source          string  `json:"source"`
	Target          string  `json:"target"`
	Type            string  `json:"type"`
	Weight          float64 `json:"weight"`
	ValidationEvent string  `json:"validationEvent,omitempty"`
}

// Graph is the assembled relationship graph.
type Graph struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

// ChangeLog is the auxiliary change-summary document produced by a
// participatory editing session.
type ChangeLog struct {
	Session      string          `json:"session"`
	Participants []string        `json:"participants"`
	Modified     []ModifiedEntry `json:"modified"`
}

// ModifiedEntry records one feature touched during the session.
type ModifiedEntry struct {
	ID      string         `json:"id"`
	Changes map[string]any `json:"changes"`
}

// Build assembles the relationship graph from a feature collection and an
// optional change log (nil means no trust adjustments beyond feature-level
// approval flags). Partnership references naming a nonexistent node are
// silently dropped; an A-B edge declared on both sides counts once.
func Build(col *feature.Collection, log *ChangeLog) *Graph {
	g := &Graph{}

	byNodeID := map[string]*Node{}
	featureByNodeID := map[string]*feature.Feature{}
	for _, f := range col.Features {
		nodeID := f.String(feature.KeyNetworkNodeID)
		if nodeID == "" {
			continue
		}
		n := &Node{
			ID:           nodeID,
			Name:         f.StringOr(feature.KeyName, "Unknown"),
			Type:         f.StringOr(feature.KeyType, "Unknown"),
			Sector:       f.StringOr(feature.KeySector, "Unknown"),
			Level:        f.StringOr(feature.KeyLevel, "Unknown"),
			Status:       f.StringOr(feature.KeyStatus, "Unknown"),
			ModelBlockID: f.String(feature.KeyModelBlockID),
			FeatureID:    f.ID,
			Population:   f.NumericOr(feature.KeyPopulation, f.NumericOr(feature.KeyMemberCount, 0)),
			Budget:       f.NumericOr(feature.KeyBudget, 0),
			Capacity:     f.NumericOr(feature.KeyManagementCapacity, f.NumericOr(feature.KeyGovernanceScore, 0.5)),
		}
		g.Nodes = append(g.Nodes, n)
		byNodeID[nodeID] = n
		featureByNodeID[nodeID] = f
	}

	seen := map[[2]string]bool{}
	for _, f := range col.Features {
		sourceID := f.String(feature.KeyNetworkNodeID)
		if sourceID == "" {
			continue
		}
		for _, targetID := range f.Strings(feature.KeyPartnershipRefs) {
			if targetID == sourceID {
				continue
			}
			if _, ok := byNodeID[targetID]; !ok {
				continue // dangling reference, dropped
			}
			key := pairKey(sourceID, targetID)
			if seen[key] {
				continue
			}
			seen[key] = true

			e := &Edge{
				Source: sourceID,
				Target: targetID,
				Type:   "partnership",
				Weight: baseWeight,
			}
			applyTrust(e, featureByNodeID, byNodeID, log)
			g.Edges = append(g.Edges, e)
		}
	}

	computeDegrees(g)
	return g
}

func pairKey(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// applyTrust adds the fixed trust increments: +0.3 when both endpoints are
// named participants of the same validation event, +0.1 when either
// endpoint carries a community approval flag (on the feature itself or in
// the change log's modified entries).
func applyTrust(e *Edge, features map[string]*feature.Feature, nodes map[string]*Node, log *ChangeLog) {
	source, target := nodes[e.Source], nodes[e.Target]
	sourceFeature, targetFeature := features[e.Source], features[e.Target]

	if log != nil && isParticipant(log, source.Name) && isParticipant(log, target.Name) {
		e.Weight += validationBoost
		e.ValidationEvent = log.Session
	}

	if hasApproval(sourceFeature, log) || hasApproval(targetFeature, log) {
		e.Weight += approvalBoost
	}

	e.Weight = math.Round(e.Weight*100) / 100
}

func isParticipant(log *ChangeLog, name string) bool {
	for _, p := range log.Participants {
		if p == name {
			return true
		}
	}
	return false
}

func hasApproval(f *feature.Feature, log *ChangeLog) bool {
	if f.Bool(feature.KeyCommunityApproval) {
		return true
	}
	if log == nil {
		return false
	}
	for _, m := range log.Modified {
		if m.ID != f.ID {
			continue
		}
		if _, ok := m.Changes[feature.KeyCommunityApproval]; ok {
			return true
		}
	}
	return false
}

func computeDegrees(g *Graph) {
	for _, n := range g.Nodes {
		for _, e := range g.Edges {
			if e.Source == n.ID || e.Target == n.ID {
				n.Degree++
				n.WeightedDegree += e.Weight
			}
		}
		n.WeightedDegree = math.Round(n.WeightedDegree*100) / 100
	}
}
