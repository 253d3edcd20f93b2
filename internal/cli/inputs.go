package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/heatmap/internal/contract"
	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/importer"
	"github.com/alexanderramin/heatmap/internal/intensity"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value accepting YYYY-MM-DD.
type dateValue struct {
	date *domain.Date
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(d *domain.Date) *dateValue {
	return &dateValue{date: d}
}

func (v *dateValue) String() string {
	if v.date == nil {
		return ""
	}
	return v.date.String()
}

func (v *dateValue) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*v.date = d
	return nil
}

func (v *dateValue) Type() string {
	return "date"
}

// gridInputs are the flags shared by commands that build a grid.
type gridInputs struct {
	dataPath  string
	from      domain.Date
	to        domain.Date
	realistic bool
	seed      uint64
	policy    string
}

func (in *gridInputs) register(cmd *cobra.Command) {
	in.registerPeriod(cmd)
	cmd.Flags().StringVar(&in.dataPath, "data", "", "JSON activity file (omit to use generated sample data)")
	cmd.Flags().StringVar(&in.policy, "policy", "", "Classification policy for records without a level (realistic|uniform)")
}

func (in *gridInputs) registerPeriod(cmd *cobra.Command) {
	cmd.Flags().Var(newDateValue(&in.from), "from", "Period start (YYYY-MM-DD, default one year before --to)")
	cmd.Flags().Var(newDateValue(&in.to), "to", "Period end (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&in.realistic, "realistic", false, "Generate sample data with weekday and seasonal patterns")
	cmd.Flags().Uint64Var(&in.seed, "seed", 0, "Seed for reproducible sample data")
}

// period returns the period named by --from/--to, or nil when neither is set.
func (in *gridInputs) period() (*domain.Period, error) {
	if in.from.IsZero() && in.to.IsZero() {
		return nil, nil
	}
	to := in.to
	if to.IsZero() {
		to = domain.Today()
	}
	p := domain.DefaultPeriodEnding(to)
	if !in.from.IsZero() {
		p.Start = in.from
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (in *gridInputs) seedFor(cmd *cobra.Command, app *App) *uint64 {
	if cmd.Flags().Changed("seed") {
		return &in.seed
	}
	return app.Config.Seed
}

func (in *gridInputs) realisticFor(cmd *cobra.Command, app *App) bool {
	if cmd.Flags().Changed("realistic") {
		return in.realistic
	}
	return app.Config.Realistic
}

// heatmapRequest assembles a request from flags, config and the optional data file.
func (in *gridInputs) heatmapRequest(cmd *cobra.Command, app *App) (contract.HeatmapRequest, error) {
	req := contract.NewHeatmapRequest()
	req.Realistic = in.realisticFor(cmd, app)
	req.Seed = in.seedFor(cmd, app)

	period, err := in.period()
	if err != nil {
		return req, err
	}
	req.Period = period

	if in.dataPath == "" {
		return req, nil
	}

	file, err := importer.LoadRecordFile(in.dataPath)
	if err != nil {
		return req, fmt.Errorf("loading data file: %w", err)
	}
	if errs := importer.ValidateRecordFile(file); len(errs) > 0 {
		return req, fmt.Errorf("invalid data file %s:\n%w", in.dataPath, errors.Join(errs...))
	}

	// --policy overrides the file's own policy.
	if in.policy != "" {
		if _, err := intensity.PolicyByName(in.policy); err != nil {
			return req, err
		}
		file.Policy = in.policy
	}

	converted, err := importer.Convert(file, app.Config.ClassificationPolicy())
	if err != nil {
		return req, err
	}
	req.Records = converted.Records
	if req.Period == nil {
		req.Period = converted.Period
	}
	return req, nil
}
