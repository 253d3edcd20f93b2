package cli

import (
	"fmt"

	"github.com/alexanderramin/heatmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMonthsCmd(app *App) *cobra.Command {
	var in gridInputs

	cmd := &cobra.Command{
		Use:   "months",
		Short: "Show how many week columns each month label spans",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := in.heatmapRequest(cmd, app)
			if err != nil {
				return err
			}

			resp, err := app.Heatmap.Build(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonths(resp.Months))
			return nil
		},
	}

	in.register(cmd)

	return cmd
}
