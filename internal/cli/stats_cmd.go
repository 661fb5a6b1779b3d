package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdtan/hoso/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	var byUnit bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if byUnit {
				stats, err := app.Stats.UnitBreakdown(ctx)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatUnitBreakdown(stats))
				return nil
			}

			dash, err := app.Stats.Dashboard(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDashboard(dash))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byUnit, "units", false, "Break down by unit instead")

	return cmd
}
