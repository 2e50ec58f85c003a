package editing_test

import (
	"fmt"

	"github.com/katalvlaran/overclust/editing"
	"github.com/katalvlaran/overclust/graph"
)

// ExampleSolutions edits a claw K_{1,3}: its centre lies in three
// maximal cliques, one clique too many for s=2. A single edit fixes it
// six ways — break any leaf off, or join any two leaves.
func ExampleSolutions() {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)

	opts := editing.DefaultOptions()

	fmt.Println(len(editing.Solutions(g, 2, 0, opts, 0)))
	fmt.Println(len(editing.Solutions(g, 2, 1, opts, 0)))
	// Output:
	// 0
	// 6
}

// ExampleLowerBound bounds three disjoint K4s from below.
func ExampleLowerBound() {
	g := graph.New(12)
	for base := 0; base < 12; base += 4 {
		for i := base; i < base+4; i++ {
			for j := i + 1; j < base+4; j++ {
				g.AddEdge(i, j)
			}
		}
	}

	fmt.Println(editing.LowerBound(g, 2, -1, editing.DefaultOptions()))
	// Output: 2
}
