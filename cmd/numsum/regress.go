package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/numsum/internal/config"
	"github.com/arloliu/numsum/regression"
)

func newRegressCmd(a *app) *cobra.Command {
	var (
		models []string
		minR2  float64
	)

	cmd := &cobra.Command{
		Use:   "regress (xfile yfile | file)",
		Short: "Fit regression models and rank them by R²",
		Long: `Fit regression models to paired data and rank them by R².

With two files, x and y are read from separate files of equal length. With one
file, or none for stdin, every line holds an x and a y column.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("models") {
				a.cfg.Regression.Models = models
			}
			if cmd.Flags().Changed("min-r2") {
				a.cfg.Regression.MinRSquared = minR2
			}

			opts, err := analyzeOptions(a.cfg)
			if err != nil {
				return err
			}

			x, y, err := loadPairs(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("paired sample loaded", "count", len(x))

			result, err := regression.Analyze(x, y, opts...)
			if err != nil {
				return err
			}
			for _, skipped := range result.Skipped {
				a.logger.Info("model skipped", "model", skipped.Type, "reason", skipped.Reason)
			}

			return writeModels(cmd, result.AllModels)
		},
	}
	cmd.Flags().StringSliceVar(&models, "models", nil, "candidate models (default from config, else all)")
	cmd.Flags().Float64Var(&minR2, "min-r2", 0, "drop models whose R² is below this value")

	return cmd
}

func analyzeOptions(cfg *config.Config) ([]regression.AnalyzeOption, error) {
	types, err := cfg.ModelTypes()
	if err != nil {
		return nil, err
	}

	opts := []regression.AnalyzeOption{regression.WithMinRSquared(cfg.Regression.MinRSquared)}
	if len(types) > 0 {
		opts = append(opts, regression.WithModels(types...))
	}

	return opts, nil
}

func loadPairs(cmd *cobra.Command, args []string) (x, y []float64, err error) {
	if len(args) == 2 {
		x, _, err = loadValues(cmd, args[:1])
		if err != nil {
			return nil, nil, err
		}
		y, _, err = loadValues(cmd, args[1:])
		if err != nil {
			return nil, nil, err
		}

		return x, y, nil
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	r, source, err := openInput(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	x, y, err = readPairs(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}

	return x, y, nil
}

func writeModels(cmd *cobra.Command, models []*regression.Model) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "model\tr2\trmse\tformula")
	for _, m := range models {
		fmt.Fprintf(w, "%s\t%.6f\t%.6g\t%s\n", m.Type, m.RSquared, m.RMSE, m.Formula)
	}

	return w.Flush()
}
