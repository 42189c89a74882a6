package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metronet/render"
	"github.com/katalvlaran/metronet/scenario"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		drawMap     bool
		width       int
		height      int
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play one corruption scenario and report the costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rn := &scenario.Runner{Logger: a.logger}
			if metricsFile != "" {
				rn.Metrics = scenario.NewMetrics()
			}

			r, err := rn.Run(a.config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if drawMap {
				fmt.Fprint(out, render.Map(r, width, height))
			}
			fmt.Fprintln(out, render.Summary(r))

			if metricsFile != "" {
				if err = rn.Metrics.WriteTextfile(metricsFile); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
				a.logger.Info("metrics written", "path", metricsFile, "run_id", r.RunID.String())
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&drawMap, "map", false, "draw stations, network and plot")
	cmd.Flags().IntVar(&width, "map-width", 60, "map width in characters")
	cmd.Flags().IntVar(&height, "map-height", 24, "map height in characters")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}
