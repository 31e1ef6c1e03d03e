package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/numsum/stats"
)

func newOutliersCmd(a *app) *cobra.Command {
	var (
		methodName string
		threshold  float64
	)

	cmd := &cobra.Command{
		Use:   "outliers [file]",
		Short: "Print the index and value of every outlier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("method") {
				a.cfg.Outliers.Method = methodName
			}
			if cmd.Flags().Changed("threshold") {
				a.cfg.Outliers.Threshold = threshold
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			method, err := a.cfg.OutlierMethod()
			if err != nil {
				return err
			}

			values, name, err := loadValues(cmd, args)
			if err != nil {
				return err
			}

			analyzer, err := stats.NewAnalyzer(values,
				stats.WithName(name),
				stats.WithOutlierMethod(method),
				stats.WithOutlierThreshold(a.cfg.OutlierThreshold(method)),
			)
			if err != nil {
				return err
			}

			mask, err := analyzer.Outliers()
			if err != nil {
				return fmt.Errorf("sample %q: %w", name, err)
			}

			out := cmd.OutOrStdout()
			flagged := 0
			for i, isOutlier := range mask {
				if isOutlier {
					flagged++
					fmt.Fprintf(out, "%d\t%s\n", i, formatFloat(values[i]))
				}
			}
			cfg := analyzer.Config()
			a.logger.Info("outlier detection done",
				"name", name, "method", cfg.OutlierMethod, "threshold", cfg.OutlierThreshold,
				"count", len(values), "outliers", flagged)

			return nil
		},
	}
	cmd.Flags().StringVar(&methodName, "method", "", "outlier method: iqr or zscore (default from config)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "outlier threshold; 0 selects the method default")

	return cmd
}
