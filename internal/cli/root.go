package cli

import (
	"github.com/spf13/cobra"

	"github.com/vdtan/hoso/internal/importer"
	"github.com/vdtan/hoso/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Records service.RecordService
	Units   service.UnitService
	Search  service.SearchService
	Stats   service.StatsService
	Export  service.ExportService
	Import  *importer.Importer

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the browse view refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "hoso" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hoso",
		Short: "Personnel records manager",
	}

	root.AddCommand(
		newRecordCmd(app),
		newUnitCmd(app),
		newSearchCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newBrowseCmd(app),
	)

	return root
}
