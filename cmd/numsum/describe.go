package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/numsum/stats"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file]",
		Short: "Print count, mean, standard deviation, extrema and quartiles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, name, err := loadValues(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("sample loaded", "name", name, "count", len(values))

			analyzer, err := stats.NewAnalyzer(values, stats.WithName(name))
			if err != nil {
				return err
			}

			return writeSummary(cmd, analyzer.Name(), analyzer.Summary())
		},
	}
}

func writeSummary(cmd *cobra.Command, name string, s stats.Summary) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"name", name},
		{"count", fmt.Sprint(s.Count)},
		{"mean", formatFloat(s.Mean)},
		{"stddev", formatFloat(s.StdDev)},
		{"min", formatFloat(s.Min)},
		{"q25", formatFloat(s.Q25)},
		{"median", formatFloat(s.Median)},
		{"q75", formatFloat(s.Q75)},
		{"max", formatFloat(s.Max)},
		{"iqr", formatFloat(s.IQR())},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.label, row.value)
	}

	return w.Flush()
}
