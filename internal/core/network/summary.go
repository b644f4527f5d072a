package network

import (
	"fmt"
	"sort"
	"strings"
)

// SummaryReport renders the plain-text network analysis report: totals,
// sector breakdown, most central actors, strongest partnerships.
func SummaryReport(g *Graph, generatedAt string) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	b.WriteString(rule + "\n")
	b.WriteString("SOCIAL NETWORK ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt)
	b.WriteString(rule + "\n\n")

	b.WriteString("Network Overview:\n")
	fmt.Fprintf(&b, "  - Total Actors: %d\n", len(g.Nodes))
	fmt.Fprintf(&b, "  - Total Partnerships: %d\n", len(g.Edges))
	if len(g.Nodes) > 0 {
		avg := float64(len(g.Edges)*2) / float64(len(g.Nodes))
		fmt.Fprintf(&b, "  - Average Connections per Actor: %.1f\n", avg)
	}
	b.WriteString("\n")

	sectors := map[string]int{}
	for _, n := range g.Nodes {
		sectors[n.Sector]++
	}
	names := make([]string, 0, len(sectors))
	for s := range sectors {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool {
		if sectors[names[i]] != sectors[names[j]] {
			return sectors[names[i]] > sectors[names[j]]
		}
		return names[i] < names[j]
	})
	b.WriteString("Actor Distribution by Sector:\n")
	for _, s := range names {
		fmt.Fprintf(&b, "  - %s: %d\n", s, sectors[s])
	}
	b.WriteString("\n")

	central := append([]*Node(nil), g.Nodes...)
	sort.SliceStable(central, func(i, j int) bool { return central[i].Degree > central[j].Degree })
	b.WriteString("Top Central Actors (by degree):\n")
	for i, n := range central {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, n.Name, n.Sector)
		fmt.Fprintf(&b, "     Connections: %d, Weighted: %.2f\n", n.Degree, n.WeightedDegree)
	}
	b.WriteString("\n")

	nodeNames := map[string]string{}
	for _, n := range g.Nodes {
		nodeNames[n.ID] = n.Name
	}
	strongest := append([]*Edge(nil), g.Edges...)
	sort.SliceStable(strongest, func(i, j int) bool { return strongest[i].Weight > strongest[j].Weight })
	b.WriteString("Strongest Partnerships:\n")
	for i, e := range strongest {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "  %d. %s <-> %s\n", i+1, nodeNames[e.Source], nodeNames[e.Target])
		fmt.Fprintf(&b, "     Weight: %.2f, Type: %s\n", e.Weight, e.Type)
		if e.ValidationEvent != "" {
			fmt.Fprintf(&b, "     Validated: %s\n", e.ValidationEvent)
		}
	}
	b.WriteString("\n" + rule + "\n")

	return b.String()
}
