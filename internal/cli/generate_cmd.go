package cli

import (
	"encoding/json"

	"github.com/alexanderramin/heatmap/internal/contract"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var in gridInputs

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated sample activity as JSON",
		Long: "Print generated sample activity as JSON. The output is a valid\n" +
			"data file for `heatmap show --data`.",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := in.period()
			if err != nil {
				return err
			}

			resp, err := app.Heatmap.Generate(cmd.Context(), contract.GenerateRequest{
				Period:    period,
				Realistic: in.realisticFor(cmd, app),
				Seed:      in.seedFor(cmd, app),
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	in.registerPeriod(cmd)

	return cmd
}
