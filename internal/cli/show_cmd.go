package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/heatmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var in gridInputs
	var asJSON bool
	var listDays bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the contribution heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := in.heatmapRequest(cmd, app)
			if err != nil {
				return err
			}

			resp, err := app.Heatmap.Build(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			fmt.Fprint(out, formatter.FormatHeatmap(resp))
			if listDays {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatActiveDays(resp))
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the grid as JSON")
	cmd.Flags().BoolVar(&listDays, "days", false, "List every active day below the grid")

	return cmd
}
