package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/overclust/degeneracy"
	"github.com/katalvlaran/overclust/editing"
	"github.com/katalvlaran/overclust/graph"
)

// newBoundCommand reports the degeneracy and the star-based edit lower
// bound for every graph on stdin.
func newBoundCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bound",
		Short: "Print the edit lower bound for each graph on stdin",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return forEachGraph(os.Stdin, func(line string, g *graph.Graph) error {
				d, _ := degeneracy.Degeneracy(g)
				bound := editing.LowerBound(g, 2, -1, editing.DefaultOptions())
				fmt.Printf("graph %s: n=%d m=%d degeneracy=%d lowerBound=%d\n",
					line, g.N(), g.M(), d, bound)

				return nil
			})
		},
	}
}
