// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/motifnull/builder"
	"github.com/katalvlaran/motifnull/config"
	"github.com/katalvlaran/motifnull/core"
)

// app carries what every subcommand needs after configuration is loaded.
type app struct {
	v          *viper.Viper
	configPath string
	jsonOut    bool

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:           "motifnull",
		Short:         "Triad census, spectral communities and null-model z-scores for graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.Logger(cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file path (yaml, toml or json)")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	pf.String("log-format", "console", "Log format (console or json)")
	pf.Bool("directed", true, "Treat the edge list as directed")
	pf.BoolVar(&a.jsonOut, "json", false, "Write results as JSON")
	mustBind(a.v, pf,
		"log.level", "log-level",
		"log.format", "log-format",
		"graph.directed", "directed",
	)

	root.AddCommand(newCensusCmd(a), newCommunitiesCmd(a), newNullModelCmd(a))

	return root
}

// mustBind binds each (viper key, flag name) pair. A missing flag is a
// programming error and panics.
func mustBind(v *viper.Viper, fs *pflag.FlagSet, pairs ...string) {
	if len(pairs)%2 != 0 {
		panic("mustBind: odd number of key/flag arguments")
	}
	for i := 0; i < len(pairs); i += 2 {
		key, name := pairs[i], pairs[i+1]
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("mustBind: %s -> --%s: %v", key, name, err))
		}
	}
}

// readGraph loads an edge list using the configured directedness. Self-loops
// are kept; policies that cannot switch them reject the graph.
func (a *app) readGraph(path string) (*core.Graph, *core.Labels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	labels := core.NewLabels()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(a.cfg.Graph.Directed), core.WithLoops()}, nil,
		builder.ReadEdgeList(f, labels),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	a.log.Debug().
		Str("file", path).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Bool("directed", g.Directed()).
		Msg("graph loaded")

	return g, labels, nil
}
