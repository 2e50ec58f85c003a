package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/overclust/editing"
)

// solveConfig mirrors the solver switches for the solve harness; it can
// be populated from flags or a YAML file (flags win when set).
type solveConfig struct {
	UseFellowsForbidden   bool `yaml:"useFellowsForbidden"`
	ForbidCriticalCliques bool `yaml:"forbidCriticalCliques"`
	ForbidCliques         bool `yaml:"forbidCliques"`
	NoNeighborProposition bool `yaml:"noNeighborProposition"`
	ForbiddenMatrix       bool `yaml:"forbiddenMatrix"`
	ForbiddenCopy         bool `yaml:"forbiddenCopy"`
	ForbiddenTakeFirst    bool `yaml:"forbiddenTakeFirst"`

	MaxK         int `yaml:"maxK"`
	MaxSolutions int `yaml:"maxSolutions"`
}

// defaultSolveConfig matches editing.DefaultOptions plus an unbounded-k
// sentinel.
func defaultSolveConfig() solveConfig {
	return solveConfig{
		UseFellowsForbidden: true,
		ForbiddenMatrix:     true,
		MaxK:                -1,
		MaxSolutions:        1,
	}
}

// registerFlags binds every switch onto the command's flag set.
func (c *solveConfig) registerFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.UseFellowsForbidden, "fellows", c.UseFellowsForbidden,
		"locate forbidden subgraphs via clique separators (false: neighbourhood scan)")
	fs.BoolVar(&c.ForbidCriticalCliques, "forbid-critical-cliques", c.ForbidCriticalCliques,
		"pre-forbid edges inside critical cliques")
	fs.BoolVar(&c.ForbidCliques, "forbid-cliques", c.ForbidCliques,
		"pre-forbid edges inside maximal cliques of size 3+ (may cut optimal solutions)")
	fs.BoolVar(&c.NoNeighborProposition, "no-neighbor-proposition", c.NoNeighborProposition,
		"suppress leaf joins without a shared outside neighbour (may cut optimal solutions)")
	fs.BoolVar(&c.ForbiddenMatrix, "forbidden-matrix", c.ForbiddenMatrix,
		"store forbidden edits in a dense matrix (false: sorted lists)")
	fs.BoolVar(&c.ForbiddenCopy, "forbidden-copy", c.ForbiddenCopy,
		"copy the forbidden table per child branch (false: restore on backtrack)")
	fs.BoolVar(&c.ForbiddenTakeFirst, "take-first", c.ForbiddenTakeFirst,
		"branch on the first forbidden subgraph found, not the cheapest")
	fs.IntVar(&c.MaxK, "max-k", c.MaxK, "largest budget to try (-1: up to n(n-1)/2)")
	fs.IntVar(&c.MaxSolutions, "max-solutions", c.MaxSolutions, "stop after this many solutions per k (0: all)")
}

// loadYAML overlays the file's values onto c; mergeConfigFile restores
// any flag the user set explicitly afterwards.
func (c *solveConfig) loadYAML(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}

// options converts the config into the solver's options record.
func (c *solveConfig) options() *editing.Options {
	return &editing.Options{
		UseFellowsForbidden:   c.UseFellowsForbidden,
		ForbidCriticalCliques: c.ForbidCriticalCliques,
		ForbidCliques:         c.ForbidCliques,
		NoNeighborProposition: c.NoNeighborProposition,
		ForbiddenMatrix:       c.ForbiddenMatrix,
		ForbiddenCopy:         c.ForbiddenCopy,
		ForbiddenTakeFirst:    c.ForbiddenTakeFirst,
		Verbose:               verbose,
	}
}
