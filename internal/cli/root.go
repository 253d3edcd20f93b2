package cli

import (
	"github.com/alexanderramin/heatmap/internal/config"
	"github.com/alexanderramin/heatmap/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Heatmap service.HeatmapService
	Config  config.Config
}

// NewRootCmd creates the top-level "heatmap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "heatmap",
		Short:         "Contribution heatmap grid builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newShowCmd(app),
		newMonthsCmd(app),
		newGenerateCmd(app),
	)

	return root
}
