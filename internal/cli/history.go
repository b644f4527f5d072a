package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var command string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := wire.HistoryService().ListRuns(cmd.Context(), primary.RunHistoryFilters{
				Command: command,
				Limit:   limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			if len(runs) == 0 {
				fmt.Println("No runs recorded")
				return nil
			}

			fmt.Printf("\n%-20s %-10s %-9s %-8s %s\n", "WHEN", "COMMAND", "FEATURES", "UPDATED", "INPUT")
			fmt.Println("────────────────────────────────────────────────────────────────")
			for _, run := range runs {
				fmt.Printf("%-20s %-10s %-9d %-8d %s\n",
					run.CreatedAt, run.Command, run.FeatureCount, run.UpdatedCount, run.InputPath)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&command, "command", "", "filter by command name")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")

	return cmd
}
