package editing

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/overclust/cliques"
	"github.com/katalvlaran/overclust/degeneracy"
	"github.com/katalvlaran/overclust/graph"
)

// LowerBound returns a lower bound on the edits any solution for
// (g, s) needs, derived from the degeneracy peeling's star bound.
// A negative k stands for "unbounded" and widens the bound's search
// window to n².
//
// Only s=2 is supported; other values log a diagnostic and yield 0.
func LowerBound(g *graph.Graph, s, k int, opts *Options) int {
	if s != 2 {
		logrus.WithField("s", s).Warn("editing: lower bound currently supports s=2 only")

		return 0
	}
	if k < 0 {
		k = g.N() * g.N()
	}

	return degeneracy.Order(g, s, k).EditBound
}

// Solutions runs the branch-and-bound search on a clone of g and
// returns every solution found, up to maxSolutions (0 = all). Each
// solution graph carries the edit log that produced it. The input
// graph is never mutated.
//
// Only s=2 is supported; other values log a diagnostic and return an
// empty result. Runtime is O(9^k · poly(n)) with the neighbourhood
// locator (at most nine edits per node) and O(21^k · poly(n)) with the
// separator locator (all pairs of at most seven vertices per node).
func Solutions(g *graph.Graph, s, k int, opts *Options, maxSolutions int) []*graph.Graph {
	opts.resetTelemetry()
	start := time.Now()

	if s != 2 {
		logrus.WithField("s", s).Warn("editing: branch and bound currently supports s=2 only")

		return nil
	}

	working := g.Clone()
	forbidden := newForbiddenTable(g.N(), opts.ForbiddenMatrix)

	switch {
	case opts.ForbidCliques:
		preForbidCliques(working, forbidden, opts)
	case opts.ForbidCriticalCliques:
		preForbidCriticalCliques(working, forbidden, opts)
	}

	e := &engine{
		g:            working,
		s:            s,
		opts:         opts,
		maxSolutions: maxSolutions,
		forbidden:    forbidden,
	}
	e.search(k)

	opts.TimeTotal = time.Since(start)

	return e.results
}

// preForbidCliques marks every edge inside a maximal clique of size at
// least three as forbidden before the search starts.
func preForbidCliques(g *graph.Graph, forbidden forbiddenTable, opts *Options) {
	info := cliques.Enumerate(g, 0)
	for _, clique := range info.Cliques {
		if len(clique) < 3 {
			continue
		}
		for i, v := range clique {
			for _, w := range clique[i+1:] {
				forbidden.Add(v, w)
				opts.CliqueEdges++
			}
		}
	}
}

// preForbidCriticalCliques marks every edge inside a critical clique —
// a maximal vertex set sharing one closed neighbourhood — as forbidden.
// Vertices are grouped by a string key over the sorted closed
// neighbourhood.
func preForbidCriticalCliques(g *graph.Graph, forbidden forbiddenTable, opts *Options) {
	groups := make(map[string][]int, g.N())
	for v := 0; v < g.N(); v++ {
		closed := append(append([]int(nil), g.Neighbors(v)...), v)
		sort.Ints(closed)
		key := fmt.Sprint(closed)
		groups[key] = append(groups[key], v)
	}

	for _, members := range groups {
		for i, v := range members {
			for _, w := range members[i+1:] {
				forbidden.Add(v, w)
				opts.CriticalCliqueEdges++
			}
		}
	}
}
