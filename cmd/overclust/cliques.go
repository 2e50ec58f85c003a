package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/overclust/cliques"
	"github.com/katalvlaran/overclust/graph"
)

// newCliquesCommand prints the maximal cliques of every graph on stdin
// and, for a threshold s, the first vertex found in more than s of
// them.
func newCliquesCommand() *cobra.Command {
	s := 2

	cmd := &cobra.Command{
		Use:   "cliques",
		Short: "List maximal cliques and the over-threshold witness for each graph on stdin",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return forEachGraph(os.Stdin, func(line string, g *graph.Graph) error {
				full := cliques.Enumerate(g, 0)
				fmt.Printf("graph %s: %d maximal clique(s)\n", line, len(full.Cliques))
				for _, clique := range full.Cliques {
					fmt.Printf("\t%v\n", clique)
				}

				witness := cliques.Witness(g, s)
				if witness < 0 {
					fmt.Printf("\tno vertex in more than %d cliques\n", s)
				} else {
					fmt.Printf("\tvertex %d lies in more than %d cliques\n", witness, s)
				}

				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&s, "threshold", "s", 2, "clique-count threshold for the witness scan")

	return cmd
}
