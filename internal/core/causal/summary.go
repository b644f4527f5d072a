package causal

import (
	"fmt"
	"strings"
)

// SummaryMarkdown renders the human-readable summary of the extracted
// graph: the factor list with observed values, then the included links.
func SummaryMarkdown(g *Graph, generatedAt string) string {
	var b strings.Builder

	b.WriteString("# Causal Loop Diagram Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt)

	b.WriteString("## Factors\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "- %s: %g\n", n.Factor, n.Value)
	}

	b.WriteString("\n## Links\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "- %s -> %s (%s): %s\n", e.Source, e.Target, e.Polarity, e.Rationale)
	}

	b.WriteString("\n")
	return b.String()
}
