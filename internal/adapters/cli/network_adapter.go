package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/geobridge/internal/ports/primary"
)

// NetworkAdapter is a thin adapter that translates CLI operations to
// NetworkService calls.
type NetworkAdapter struct {
	service primary.NetworkService
	out     io.Writer
}

// NewNetworkAdapter creates a new NetworkAdapter with the given service.
func NewNetworkAdapter(service primary.NetworkService, out io.Writer) *NetworkAdapter {
	return &NetworkAdapter{
		service: service,
		out:     out,
	}
}

// Build assembles the relationship graph and prints the central actors.
func (a *NetworkAdapter) Build(ctx context.Context, req primary.NetworkRequest) error {
	resp, err := a.service.Build(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Built relationship graph: %d nodes, %d edges\n", resp.NodeCount, resp.EdgeCount)

	if len(resp.CentralActors) > 0 {
		fmt.Fprintf(a.out, "\n%-30s %-15s %-8s %s\n", "ACTOR", "SECTOR", "DEGREE", "WEIGHTED")
		fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
		for _, actor := range resp.CentralActors {
			fmt.Fprintf(a.out, "%-30s %-15s %-8d %.2f\n",
				actor.Name, actor.Sector, actor.Degree, actor.WeightedDegree)
		}
	}

	fmt.Fprintf(a.out, "\nReport: %s\n", resp.ReportPath)
	return nil
}
