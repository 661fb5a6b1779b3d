package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import units and records from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.Run(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Đã nhập %d hồ sơ, %d đơn vị\n", result.Imported, result.UnitsCreated)
			for _, skip := range result.Skipped {
				name := skip.Name
				if name == "" {
					name = fmt.Sprintf("mục %d", skip.Index)
				}
				fmt.Fprintf(os.Stderr, "Bỏ qua %s:\n", name)
				for _, e := range skip.Errors {
					fmt.Fprintf(os.Stderr, "  - %v\n", e)
				}
			}
			return nil
		},
	}
}
