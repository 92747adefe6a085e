// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/motifnull/community"
)

func newCommunitiesCmd(a *app) *cobra.Command {
	var noRefine bool
	cmd := &cobra.Command{
		Use:   "communities FILE",
		Short: "Partition an edge list by recursive spectral bisection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, labels, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			if noRefine {
				a.cfg.Community.Refine = false
			}
			res, err := community.Detect(g, a.communityOptions()...)
			if err != nil {
				return err
			}

			named := make([][]string, len(res.Communities))
			for i, c := range res.Communities {
				named[i] = labels.Names(c)
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"modularity":  res.Modularity,
					"splits":      res.Splits,
					"communities": named,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "modularity\t%.6f\n", res.Modularity)
			for i, c := range named {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, strings.Join(c, " "))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&noRefine, "no-refine", false, "Skip Kernighan-Lin refinement")
	f.Float64("error-margin", 1e-12, "Smallest modularity gain that splits a community")
	f.Int("max-iter", 500, "Sweep bound of the Jacobi eigen-solver fallback")
	mustBind(a.v, f,
		"community.error_margin", "error-margin",
		"community.max_iterations", "max-iter",
	)

	return cmd
}

func (a *app) communityOptions() []community.Option {
	c := a.cfg.Community
	return []community.Option{
		community.WithErrorMargin(c.ErrorMargin),
		community.WithRefine(c.Refine),
		community.WithMaxIterations(c.MaxIterations),
		community.WithLogger(a.log),
	}
}
