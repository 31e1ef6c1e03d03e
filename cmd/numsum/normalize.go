package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/numsum/stats"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var methodName string

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Rescale a sample by z-score or min-max, one value per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("method") {
				a.cfg.Normalize.Method = methodName
			}
			method, err := a.cfg.NormalizeMethod()
			if err != nil {
				return err
			}

			values, name, err := loadValues(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("normalizing", "name", name, "count", len(values), "method", method)

			scaled, err := stats.Normalize(values, method)
			if err != nil {
				return fmt.Errorf("sample %q: %w", name, err)
			}

			out := cmd.OutOrStdout()
			for _, v := range scaled {
				fmt.Fprintln(out, formatFloat(v))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&methodName, "method", "", "normalization method: zscore or minmax (default from config)")

	return cmd
}
