package graph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/overclust/graph"
)

// checkConsistent asserts the store invariants: symmetry, bitmap/list
// agreement, strictly increasing lists, and m = sum(deg)/2.
func checkConsistent(t *testing.T, g *graph.Graph) {
	t.Helper()

	degreeSum := 0
	for v := 0; v < g.N(); v++ {
		nbrs := g.Neighbors(v)
		degreeSum += len(nbrs)
		require.True(t, sort.IntsAreSorted(nbrs), "neighbours of %d not sorted", v)
		for i := 1; i < len(nbrs); i++ {
			require.NotEqual(t, nbrs[i-1], nbrs[i], "duplicate neighbour of %d", v)
		}
		for w := 0; w < g.N(); w++ {
			inList := false
			for _, x := range nbrs {
				if x == w {
					inList = true
					break
				}
			}
			require.Equal(t, inList, g.HasEdge(v, w), "bitmap/list disagree on {%d,%d}", v, w)
			require.Equal(t, g.HasEdge(v, w), g.HasEdge(w, v), "asymmetric edge {%d,%d}", v, w)
		}
		require.False(t, g.HasEdge(v, v), "self-loop on %d", v)
	}
	require.Equal(t, degreeSum/2, g.M(), "m does not match degree sum")
}

func TestAddRemoveEdge(t *testing.T) {
	g := graph.New(5)
	g.AddEdge(0, 1)
	g.AddEdge(3, 1)
	g.AddEdge(2, 4)
	checkConsistent(t, g)

	assert.Equal(t, 3, g.M())
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(1, 3))
	assert.Equal(t, []int{0, 3}, g.Neighbors(1))
	assert.Equal(t, 2, g.Degree(1))

	g.RemoveEdge(1, 0)
	checkConsistent(t, g)
	assert.Equal(t, 2, g.M())
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, []int{3}, g.Neighbors(1))
}

func TestClone_Independent(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.EdgesAdded = []graph.Edit{{From: 0, To: 1, K: 2}}

	c := g.Clone()
	checkConsistent(t, c)
	require.Equal(t, g.M(), c.M())
	require.Equal(t, g.EdgesAdded, c.EdgesAdded)

	c.AddEdge(2, 3)
	assert.False(t, g.HasEdge(2, 3), "clone mutation leaked into original")
	assert.Equal(t, 2, g.M())
}

func TestInducedSubgraph(t *testing.T) {
	// Triangle 0-1-2 plus pendant 3 on 2.
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	sub := g.InducedSubgraph([]int{1, 2, 3})
	checkConsistent(t, sub)

	require.Equal(t, 3, sub.N())
	assert.Equal(t, 2, sub.M())
	assert.True(t, sub.HasEdge(0, 1))  // 1-2
	assert.True(t, sub.HasEdge(1, 2))  // 2-3
	assert.False(t, sub.HasEdge(0, 2)) // 1-3

	require.True(t, sub.HasIDs())
	assert.Equal(t, 1, sub.OuterID(0))
	assert.Equal(t, 2, sub.OuterID(1))
	assert.Equal(t, 3, sub.OuterID(2))

	assert.False(t, g.HasIDs())
	assert.Equal(t, -1, g.OuterID(0))
}

func TestComponents(t *testing.T) {
	// Triangle {0,1,2}, edge {3,4}, isolated 5.
	g := graph.New(6)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	comps := g.Components()
	require.Len(t, comps, 3)

	assert.Equal(t, 3, comps[0].N())
	assert.Equal(t, 3, comps[0].M())
	assert.Equal(t, 0, comps[0].OuterID(0))

	assert.Equal(t, 2, comps[1].N())
	assert.Equal(t, 1, comps[1].M())
	assert.Equal(t, 3, comps[1].OuterID(0))
	assert.Equal(t, 4, comps[1].OuterID(1))

	assert.Equal(t, 1, comps[2].N())
	assert.Equal(t, 0, comps[2].M())
	assert.Equal(t, 5, comps[2].OuterID(0))

	for _, c := range comps {
		checkConsistent(t, c)
	}
}

func TestComponents_Cycle(t *testing.T) {
	// A cycle revisits the start vertex through its second neighbour;
	// it must still appear exactly once in the component.
	g := graph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)

	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Equal(t, 3, comps[0].N())
	assert.Equal(t, 3, comps[0].M())
}

func TestAnyWalk(t *testing.T) {
	// Path 0-1-2-3.
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	assert.Equal(t, []int{0, 1, 2, 3}, g.AnyWalk(0, 4))
	assert.Equal(t, []int{0, 1}, g.AnyWalk(0, 2))
	// From vertex 1 the first neighbour (0) is taken; 0 is a dead end.
	assert.Equal(t, []int{1, 0}, g.AnyWalk(1, 4))
}

func TestAnyWalk_Cycle(t *testing.T) {
	// C4: 0-1-2-3-0. Walking from 0 never steps straight back, so the
	// walk covers the whole cycle.
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(0, 3)

	walk := g.AnyWalk(0, 4)
	require.Len(t, walk, 4)
	assert.Equal(t, 0, walk[0])
	for i := 1; i < len(walk); i++ {
		assert.True(t, g.HasEdge(walk[i-1], walk[i]), "walk step %d not an edge", i)
		assert.NotEqual(t, walk[i], walk[i-1])
	}
	seen := map[int]bool{}
	for _, v := range walk {
		assert.False(t, seen[v], "walk revisited %d", v)
		seen[v] = true
	}
}

func TestAnyWalk_Isolated(t *testing.T) {
	g := graph.New(2)
	assert.Equal(t, []int{0}, g.AnyWalk(0, 4))
}
