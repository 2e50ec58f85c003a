package graph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/overclust/sortedset"
)

// Edit is one entry of a solution's edit log: the unordered pair
// (From, To) together with K, the remaining budget at the time the edit
// was performed.
type Edit struct {
	From, To int
	K        int
}

// Graph is an undirected simple graph over vertex IDs 0..n-1.
//
// adj holds each vertex's neighbours as a strictly increasing,
// duplicate-free slice; bitmap mirrors the same adjacency for O(1)
// HasEdge. ids maps local vertex indices to outer-graph IDs and is nil
// unless the graph was produced by InducedSubgraph.
type Graph struct {
	// EdgesAdded and EdgesRemoved are the edit logs attached to a
	// solution graph by the editing engine. Empty on working graphs.
	EdgesAdded   []Edit
	EdgesRemoved []Edit

	n, m   int
	adj    [][]int
	bitmap [][]bool
	ids    []int
}

// New returns an empty graph on n vertices.
//
// Complexity: O(n²) for the bitmap.
func New(n int) *Graph {
	bm := make([][]bool, n)
	for i := range bm {
		bm[i] = make([]bool, n)
	}

	return &Graph{
		n:      n,
		adj:    make([][]int, n),
		bitmap: bm,
	}
}

// Clone deep-copies the graph: adjacency, bitmap, outer-ID map and edit
// logs.
//
// Complexity: O(n² + m)
func (g *Graph) Clone() *Graph {
	c := &Graph{n: g.n, m: g.m}
	c.adj = make([][]int, g.n)
	c.bitmap = make([][]bool, g.n)
	for v := 0; v < g.n; v++ {
		c.adj[v] = append([]int(nil), g.adj[v]...)
		c.bitmap[v] = append([]bool(nil), g.bitmap[v]...)
	}
	if g.ids != nil {
		c.ids = append([]int(nil), g.ids...)
	}
	if g.EdgesAdded != nil {
		c.EdgesAdded = append([]Edit(nil), g.EdgesAdded...)
	}
	if g.EdgesRemoved != nil {
		c.EdgesRemoved = append([]Edit(nil), g.EdgesRemoved...)
	}

	return c
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of edges.
func (g *Graph) M() int { return g.m }

// HasEdge reports whether the edge {v,w} exists.
//
// Complexity: O(1)
func (g *Graph) HasEdge(v, w int) bool { return g.bitmap[v][w] }

// AddEdge inserts the edge {v,w}, keeping both neighbour lists sorted
// and the bitmap consistent. The edge must not already exist.
//
// Complexity: O(deg(v) + deg(w))
func (g *Graph) AddEdge(v, w int) {
	g.adj[v] = sortedset.Insert(g.adj[v], w)
	g.adj[w] = sortedset.Insert(g.adj[w], v)
	g.bitmap[v][w] = true
	g.bitmap[w][v] = true
	g.m++
}

// RemoveEdge deletes the edge {v,w}. The edge must exist.
//
// Complexity: O(deg(v) + deg(w))
func (g *Graph) RemoveEdge(v, w int) {
	g.adj[v] = sortedset.Remove(g.adj[v], w)
	g.adj[w] = sortedset.Remove(g.adj[w], v)
	g.bitmap[v][w] = false
	g.bitmap[w][v] = false
	g.m--
}

// Degree returns the number of neighbours of v.
//
// Complexity: O(1)
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Neighbors returns v's neighbour list, strictly increasing. The slice
// is borrowed: it aliases the graph's storage, stays valid only until
// the next mutation of v's neighbourhood, and must not be modified.
//
// Complexity: O(1)
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// OuterID translates a local vertex index to the outer-graph ID this
// induced subgraph was built from. Returns -1 when the graph carries no
// ID map.
func (g *Graph) OuterID(v int) int {
	if g.ids == nil {
		return -1
	}

	return g.ids[v]
}

// HasIDs reports whether this graph was produced by InducedSubgraph and
// therefore carries an outer-ID map.
func (g *Graph) HasIDs() bool { return g.ids != nil }

// String renders the adjacency lists, one vertex per line. Diagnostic
// only.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph n=%d m=%d", g.n, g.m)
	for v := 0; v < g.n; v++ {
		fmt.Fprintf(&b, "\n%d: %v", v, g.adj[v])
	}

	return b.String()
}
