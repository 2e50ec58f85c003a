package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/overclust/editing"
	"github.com/katalvlaran/overclust/graph"
)

// newSolveCommand builds the main experiment harness: for every input
// graph it raises the budget k until a solution appears (or max-k is
// hit) and reports the witnessing edit sets plus the search telemetry.
func newSolveCommand() *cobra.Command {
	cfg := defaultSolveConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search edit sets for each graph on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := mergeConfigFile(cmd, &cfg, configPath); err != nil {
					return err
				}
			}

			return forEachGraph(os.Stdin, func(line string, g *graph.Graph) error {
				solveOne(line, g, cfg)

				return nil
			})
		},
	}
	cfg.registerFlags(cmd.Flags())
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with solver options (explicit flags win)")

	return cmd
}

// mergeConfigFile loads the YAML file as the base configuration and
// re-applies every flag the user set explicitly on the command line.
func mergeConfigFile(cmd *cobra.Command, cfg *solveConfig, path string) error {
	fromFile := defaultSolveConfig()
	if err := fromFile.loadYAML(path); err != nil {
		return err
	}

	explicit := *cfg
	*cfg = fromFile
	for _, bind := range []struct {
		name string
		dst  *bool
		src  bool
	}{
		{"fellows", &cfg.UseFellowsForbidden, explicit.UseFellowsForbidden},
		{"forbid-critical-cliques", &cfg.ForbidCriticalCliques, explicit.ForbidCriticalCliques},
		{"forbid-cliques", &cfg.ForbidCliques, explicit.ForbidCliques},
		{"no-neighbor-proposition", &cfg.NoNeighborProposition, explicit.NoNeighborProposition},
		{"forbidden-matrix", &cfg.ForbiddenMatrix, explicit.ForbiddenMatrix},
		{"forbidden-copy", &cfg.ForbiddenCopy, explicit.ForbiddenCopy},
		{"take-first", &cfg.ForbiddenTakeFirst, explicit.ForbiddenTakeFirst},
	} {
		if cmd.Flags().Changed(bind.name) {
			*bind.dst = bind.src
		}
	}
	if cmd.Flags().Changed("max-k") {
		cfg.MaxK = explicit.MaxK
	}
	if cmd.Flags().Changed("max-solutions") {
		cfg.MaxSolutions = explicit.MaxSolutions
	}

	return nil
}

// solveOne raises k until the first feasible budget and reports it.
func solveOne(line string, g *graph.Graph, cfg solveConfig) {
	const s = 2

	opts := cfg.options()

	kBound := cfg.MaxK
	if kBound < 0 {
		kBound = g.N() * (g.N() - 1) / 2
	}

	for k := 0; k <= kBound; k++ {
		solutions := editing.Solutions(g, s, k, opts, cfg.MaxSolutions)
		if len(solutions) == 0 {
			log.Debugf("graph %s: no solutions for k=%d (%v)", line, k, opts.TimeTotal)

			continue
		}

		fmt.Printf("graph %s: %d solution(s) at k=%d\n", line, len(solutions), k)
		for _, solution := range solutions {
			fmt.Printf("\tadded=%v removed=%v\n", solution.EdgesAdded, solution.EdgesRemoved)
		}
		fmt.Printf("\t%s\n", opts)

		return
	}

	fmt.Printf("graph %s: no solutions up to k=%d\n", line, kBound)
}
