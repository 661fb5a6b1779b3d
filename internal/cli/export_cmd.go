package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdtan/hoso/internal/query"
	"github.com/vdtan/hoso/internal/service"
)

func newExportCmd(app *App) *cobra.Command {
	var flags criteriaFlags
	var sortFlag sortValue
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export matching records to CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			c, err := flags.criteria(ctx, app)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()

			n, err := app.Export.Export(ctx, c, query.SortBy(sortFlag), service.ExportFormat(format), f)
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}

			fmt.Printf("Đã xuất %d hồ sơ ra %s\n", n, out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Var(&sortFlag, "sort", "Sort order (recent|name|age|enlistment)")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv|xlsx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file path")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
