// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/motifnull/core"
	"github.com/katalvlaran/motifnull/ensemble"
	"github.com/katalvlaran/motifnull/metrics"
	"github.com/katalvlaran/motifnull/rewire"
)

func newNullModelCmd(a *app) *cobra.Command {
	var dumpMetrics bool
	cmd := &cobra.Command{
		Use:   "nullmodel FILE",
		Short: "Score census, modularity and degree correlation against rewired graphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, labels, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			policy, err := a.policy(labels)
			if err != nil {
				return err
			}

			scorers := []ensemble.Scorer{ensemble.ModularityScorer{Options: a.communityOptions()}, ensemble.CorrelationScorer{}}
			if g.Directed() {
				scorers = append([]ensemble.Scorer{ensemble.CensusScorer{}}, scorers...)
			}
			reg := metrics.NewRegistry()
			e := a.cfg.Ensemble
			rep, err := ensemble.Run(cmd.Context(), g, scorers,
				ensemble.WithMembers(e.Members),
				ensemble.WithWorkers(e.Workers),
				ensemble.WithFlip(e.Flip),
				ensemble.WithSeed(e.Seed),
				ensemble.WithPolicy(policy),
				ensemble.WithLogger(a.log),
				ensemble.WithMetrics(reg),
			)
			if err != nil {
				return err
			}
			if dumpMetrics {
				defer func() {
					if werr := reg.WriteText(cmd.ErrOrStderr()); werr != nil {
						a.log.Warn().Err(werr).Msg("writing metrics")
					}
				}()
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), newReportJSON(rep))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s: %d members, %d failed, mean success ratio %.4f\n",
				rep.RunID, len(rep.Members), len(rep.Failures), stat.Mean(rep.SuccessRatios(), nil))
			fmt.Fprintf(out, "%-26s %12s %12s %12s %10s\n", "statistic", "observed", "mean", "std", "z")
			for _, key := range rep.Keys() {
				mean, std := stat.PopMeanStdDev(rep.Samples(key), nil)
				fmt.Fprintf(out, "%-26s %12.4f %12.4f %12.4f %10s\n",
					key, rep.Observed[key], mean, std, formatZ(rep.ZScores[key]))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Int("members", ensemble.DefaultMembers, "Number of randomized graphs")
	f.Int("workers", 0, "Worker pool size (default GOMAXPROCS)")
	f.Int("flip", rewire.DefaultFlip, "Switch attempts per edge")
	f.Uint64("seed", 1, "Base random seed")
	f.String("policy", "standard", "Rewiring policy: standard, selfloops or domain")
	f.String("domain-config", "", "YAML file with pivots and reversible pivots for --policy domain")
	f.BoolVar(&dumpMetrics, "metrics", false, "Write Prometheus metrics to stderr when done")
	mustBind(a.v, f,
		"ensemble.members", "members",
		"ensemble.workers", "workers",
		"ensemble.flip", "flip",
		"ensemble.seed", "seed",
		"ensemble.policy", "policy",
		"ensemble.domain_config", "domain-config",
	)

	return cmd
}

func (a *app) policy(labels *core.Labels) (rewire.Policy, error) {
	switch a.cfg.Ensemble.Policy {
	case "selfloops":
		return rewire.WithSelfLoops(), nil
	case "domain":
		f, err := os.Open(a.cfg.Ensemble.DomainConfig)
		if err != nil {
			return rewire.Policy{}, err
		}
		defer f.Close()
		cfg, err := rewire.LoadDomainConfig(f, labels)
		if err != nil {
			return rewire.Policy{}, err
		}
		return rewire.DomainSpecific(cfg), nil
	default:
		return rewire.Standard(), nil
	}
}

func formatZ(z float64) string {
	switch {
	case math.IsNaN(z):
		return "undefined"
	case math.IsInf(z, 1):
		return "+inf"
	case math.IsInf(z, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.3f", z)
}
