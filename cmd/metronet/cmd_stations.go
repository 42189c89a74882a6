package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metronet/stations"
)

func newStationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "Print the generated stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pts, err := stations.Generate(a.config.Stations, a.config.Seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, p := range pts {
				fmt.Fprintf(out, "%d\t%.4f\t%.4f\n", i, p[0], p[1])
			}

			return nil
		},
	}
}
