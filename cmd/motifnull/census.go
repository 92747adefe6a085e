// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/motifnull/census"
)

func newCensusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "census FILE",
		Short: "Count directed triads of an edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			var opts []census.Option
			if a.cfg.Census.Disconnected {
				opts = append(opts, census.WithDisconnected())
			}
			res, err := census.Compute(g, opts...)
			if err != nil {
				return err
			}

			classes := census.ConnectedClasses[:]
			if res.Disconnected {
				classes = census.AllClasses[:]
			}
			if a.jsonOut {
				counts := make(map[string]int64, len(classes))
				for _, c := range classes {
					counts[c.String()] = res.Count(c)
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{"vertices": res.N, "counts": counts})
			}
			for _, c := range classes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", c, res.Count(c))
			}
			return nil
		},
	}
	cmd.Flags().Bool("disconnected", false, "Also count the 003, 012 and 102 classes")
	mustBind(a.v, cmd.Flags(), "census.disconnected", "disconnected")

	return cmd
}
