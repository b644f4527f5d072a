// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/example/geobridge/internal/ports/primary"
)

// SimulateAdapter is a thin adapter that translates CLI operations to
// StockFlowService calls. It depends only on the StockFlowService interface,
// enabling easy testing with mocks.
type SimulateAdapter struct {
	service primary.StockFlowService
	out     io.Writer
}

// NewSimulateAdapter creates a new SimulateAdapter with the given service.
func NewSimulateAdapter(service primary.StockFlowService, out io.Writer) *SimulateAdapter {
	return &SimulateAdapter{
		service: service,
		out:     out,
	}
}

// Run applies the stock-flow update and prints the per-feature changes.
func (a *SimulateAdapter) Run(ctx context.Context, inputPath, outputPath, reportPath string, rainfall float64) error {
	resp, err := a.service.Run(ctx, primary.StockFlowRequest{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		ReportPath:    reportPath,
		RainfallIndex: rainfall,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated %d of %d features (rainfall index %.2f)\n",
		resp.UpdatedCount, resp.FeatureCount, resp.Report.RainfallIndex)

	for _, update := range resp.Report.Updates {
		fmt.Fprintf(a.out, "\n%s\n", update.ID)

		fields := make([]string, 0, len(update.Fields))
		for field := range update.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			change := update.Fields[field]
			fmt.Fprintf(a.out, "  %-24s %10.3f → %.3f\n", field, change.Old, change.New)
		}
	}

	if len(resp.Report.Skipped) > 0 {
		fmt.Fprintln(a.out)
		for _, skip := range resp.Report.Skipped {
			fmt.Fprintf(a.out, "⚠ Skipped %s: %s\n", skip.ID, skip.Reason)
		}
	}

	fmt.Fprintf(a.out, "\nCollection: %s\nReport:     %s\n", resp.OutputPath, resp.ReportPath)
	return nil
}
