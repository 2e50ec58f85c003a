package cliques

import (
	"sort"

	"github.com/katalvlaran/overclust/degeneracy"
	"github.com/katalvlaran/overclust/graph"
	"github.com/katalvlaran/overclust/sortedset"
)

// Result is the outcome of one enumeration pass.
type Result struct {
	// ListEnabled records whether clique bodies were materialised.
	ListEnabled bool

	// Cliques holds each maximal clique as a sorted vertex set. Empty
	// when ListEnabled is false.
	Cliques [][]int

	// VertexCliques maps every vertex to the indices (into Cliques) of
	// the maximal cliques containing it. Only maintained when the
	// enumeration ran with s > 0.
	VertexCliques [][]int

	// Witness is a vertex found in more than s maximal cliques, or -1.
	// Always -1 when s = 0.
	Witness int
}

// Enumerate lists the maximal cliques of g. With s > 0 the pass aborts
// early once any vertex is seen in more than s cliques; the partial
// result then carries that vertex in Witness.
//
// Complexity: O(d·n·3^(d/3)) for degeneracy d (Eppstein et al.).
func Enumerate(g *graph.Graph, s int) *Result {
	return enumerate(g, s, true)
}

// Witness runs the enumeration without materialising clique bodies and
// returns a vertex contained in more than s maximal cliques, or -1.
func Witness(g *graph.Graph, s int) int {
	return enumerate(g, s, false).Witness
}

// enumerator carries the shared state of one pass.
type enumerator struct {
	g     *graph.Graph
	s     int
	res   *Result
	count int // cliques recorded, list materialised or not
}

func enumerate(g *graph.Graph, s int, listEnabled bool) *Result {
	res := &Result{
		ListEnabled:   listEnabled,
		VertexCliques: make([][]int, g.N()),
		Witness:       -1,
	}
	e := &enumerator{g: g, s: s, res: res}

	_, ordering := degeneracy.Degeneracy(g)

	// For each v_i in degeneracy order: P is N(v_i) restricted to later
	// vertices, X the earlier rest (P ∪ X = N(v_i)).
	for i, vid := range ordering {
		neighbors := g.Neighbors(vid)

		next := append([]int(nil), ordering[i+1:]...)
		sort.Ints(next)

		P := sortedset.Intersect(neighbors, next)
		X := sortedset.Diff(neighbors, P)
		R := []int{vid}

		if e.recurse(P, R, X) >= 0 {
			break
		}
	}

	return res
}

// recurse is the pivoting Bron–Kerbosch step. It returns the witness
// vertex as soon as one is found, -1 otherwise.
func (e *enumerator) recurse(P, R, X []int) int {
	if len(P) == 0 && len(X) == 0 {
		return e.record(R)
	}

	// Tomita pivot: u ∈ P ∪ X maximising |P ∩ N(u)|, first winner kept.
	var pivot int
	if len(P) > 0 {
		pivot = P[0]
	} else {
		pivot = X[0]
	}
	pivotValue := 0
	for _, vid := range P {
		neighbors := e.g.Neighbors(vid)
		if len(neighbors) < pivotValue {
			continue
		}
		if v := sortedset.IntersectSize(neighbors, P); v > pivotValue {
			pivot, pivotValue = vid, v
		}
	}
	for _, vid := range X {
		neighbors := e.g.Neighbors(vid)
		if len(neighbors) < pivotValue {
			continue
		}
		if v := sortedset.IntersectSize(neighbors, P); v > pivotValue {
			pivot, pivotValue = vid, v
		}
	}

	for _, vid := range sortedset.Diff(P, e.g.Neighbors(pivot)) {
		neighbors := e.g.Neighbors(vid)

		PNew := sortedset.Intersect(P, neighbors)
		XNew := sortedset.Intersect(X, neighbors)
		R = append(R, vid)

		if w := e.recurse(PNew, R, XNew); w >= 0 {
			return w
		}

		R = R[:len(R)-1]
		P = sortedset.Remove(P, vid)
		X = sortedset.Insert(X, vid)
	}

	return -1
}

// record reports R as maximal, updates the per-vertex index lists and
// checks the s threshold.
func (e *enumerator) record(R []int) int {
	if e.res.ListEnabled {
		c := append([]int(nil), R...)
		sort.Ints(c)
		e.res.Cliques = append(e.res.Cliques, c)
	}
	e.count++

	if e.s > 0 {
		idx := e.count - 1
		for _, vid := range R {
			e.res.VertexCliques[vid] = append(e.res.VertexCliques[vid], idx)
			if len(e.res.VertexCliques[vid]) > e.s {
				e.res.Witness = vid

				return vid
			}
		}
	}

	return -1
}
