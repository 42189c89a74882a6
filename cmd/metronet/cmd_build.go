package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/network"
	"github.com/katalvlaran/metronet/render"
	"github.com/katalvlaran/metronet/stations"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		forbid  string
		drawMap bool
		width   int
		height  int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the network over the generated stations",
		Long:  `Builds the shortest network joining every station, optionally without one pair (--forbid u-v).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pts, err := stations.Generate(a.config.Stations, a.config.Seed)
			if err != nil {
				return err
			}

			opts := []network.Option{network.WithMethod(a.config.Method)}
			if forbid != "" {
				k, err := core.ParseEdgeKey(forbid)
				if err != nil {
					return err
				}
				opts = append(opts, network.WithForbiddenEdge(k))
			}

			n, err := network.Build(pts, opts...)
			if err != nil {
				return err
			}
			a.logger.Info("network built", "method", a.config.Method, "length", n.Length)

			out := cmd.OutOrStdout()
			for _, e := range n.Edges {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintf(out, "Total: %.4f\n", n.Length)
			if drawMap {
				fmt.Fprint(out, render.Edges(pts, n.Edges, width, height))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&forbid, "forbid", "", "pair to exclude, as u-v")
	cmd.Flags().BoolVar(&drawMap, "map", false, "draw the network")
	cmd.Flags().IntVar(&width, "map-width", 60, "map width in characters")
	cmd.Flags().IntVar(&height, "map-height", 24, "map height in characters")

	return cmd
}
