package editing

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/overclust/cliques"
	"github.com/katalvlaran/overclust/graph"
)

// engine holds the mutable state of one branch-and-bound run: the
// working graph (edited in place, undone on backtrack), the forbidden
// table, the per-branch edit logs and the accumulated solutions.
// A dedicated struct keeps the recursion's shared state explicit, the
// hot path free of closures, and the restore obligations auditable.
type engine struct {
	g            *graph.Graph
	s            int
	opts         *Options
	maxSolutions int // 0 = unbounded

	forbidden    forbiddenTable
	edgesAdded   []graph.Edit
	edgesRemoved []graph.Edit

	results []*graph.Graph
}

// search is one node of the decision procedure for budget k.
//
// Post-condition: the working graph and the edit logs are exactly as on
// entry; the forbidden table too, unless ForbiddenCopy is set (then the
// caller cloned it for us and our mutations are throwaway).
func (e *engine) search(k int) {
	if k < 0 {
		return
	}

	var u int
	var branchingEdits []EdgeEdit
	foundSubgraph := false

	if e.opts.UseFellowsForbidden || e.s != 2 {
		start := time.Now()
		info := cliques.Enumerate(e.g, e.s)
		e.opts.TimeFindingCliques += time.Since(start)

		u = info.Witness
		if u < 0 {
			e.recordSolution(k)

			return
		}
		if k <= 0 {
			return
		}

		start = time.Now()
		edits := e.filterForbidden(e.locateSeparators(info, u, k))
		foundSubgraph = true
		if len(edits) > 0 {
			branchingEdits = edits
		}
		e.opts.TimeFindingForbidden += time.Since(start)
	} else {
		start := time.Now()
		u = cliques.Witness(e.g, e.s)
		e.opts.TimeFindingCliques += time.Since(start)

		if u < 0 {
			e.recordSolution(k)

			return
		}
		if k <= 0 {
			return
		}

		start = time.Now()
		branchingEdits, foundSubgraph = e.locateNeighborhood(u)
		e.opts.TimeFindingForbidden += time.Since(start)
	}

	if len(branchingEdits) == 0 {
		if !foundSubgraph {
			// A witness without any forbidden subgraph contradicts the
			// characterisation the whole search rests on.
			logrus.WithFields(logrus.Fields{
				"witness":      u,
				"s":            e.s,
				"k":            k,
				"edgesAdded":   e.edgesAdded,
				"edgesRemoved": e.edgesRemoved,
			}).Fatal("editing: witness vertex has no forbidden subgraph")
		}

		// A subgraph exists but every destroying edit is forbidden:
		// this branch cannot proceed.
		return
	}

	if e.opts.Verbose {
		logrus.WithFields(logrus.Fields{
			"witness": u,
			"k":       k,
			"edits":   branchingEdits,
		}).Debug("editing: branching")
	}

	// Forbid every branching edit before trying any: a choice rejected
	// by an older sibling must stay untouchable in the younger ones.
	for _, edit := range branchingEdits {
		e.forbidden.Add(edit.From, edit.To)
	}
	if !e.opts.ForbiddenCopy {
		defer func() {
			start := time.Now()
			for _, edit := range branchingEdits {
				e.forbidden.Remove(edit.From, edit.To)
			}
			e.opts.TimeForbiddenCopy += time.Since(start)
		}()
	}

	for _, edit := range branchingEdits {
		// Apply the edit and log it with the budget at this node.
		if edit.Add {
			e.g.AddEdge(edit.From, edit.To)
			e.edgesAdded = append(e.edgesAdded, graph.Edit{From: edit.From, To: edit.To, K: k})
		} else {
			e.g.RemoveEdge(edit.From, edit.To)
			e.edgesRemoved = append(e.edgesRemoved, graph.Edit{From: edit.From, To: edit.To, K: k})
		}

		if e.opts.ForbiddenCopy {
			start := time.Now()
			shared := e.forbidden
			e.forbidden = shared.Clone()
			e.opts.TimeForbiddenCopy += time.Since(start)

			e.search(k - 1)
			e.forbidden = shared
		} else {
			e.search(k - 1)
		}

		// Undo the edit.
		if edit.Add {
			e.g.RemoveEdge(edit.From, edit.To)
			e.edgesAdded = e.edgesAdded[:len(e.edgesAdded)-1]
		} else {
			e.g.AddEdge(edit.From, edit.To)
			e.edgesRemoved = e.edgesRemoved[:len(e.edgesRemoved)-1]
		}

		if e.maxSolutions > 0 && len(e.results) >= e.maxSolutions {
			return
		}
	}
}

// recordSolution clones the working graph, attaches copies of the edit
// logs and appends it to the result list.
func (e *engine) recordSolution(k int) {
	if e.opts.Verbose {
		logrus.WithFields(logrus.Fields{
			"k":            k,
			"edgesAdded":   e.edgesAdded,
			"edgesRemoved": e.edgesRemoved,
		}).Debug("editing: solution")
	}

	solution := e.g.Clone()
	solution.EdgesAdded = append([]graph.Edit(nil), e.edgesAdded...)
	solution.EdgesRemoved = append([]graph.Edit(nil), e.edgesRemoved...)
	e.results = append(e.results, solution)
}

// filterForbidden canonicalises each edit to From < To and drops those
// already in the forbidden table.
func (e *engine) filterForbidden(edits []EdgeEdit) []EdgeEdit {
	filtered := make([]EdgeEdit, 0, len(edits))
	for _, edit := range edits {
		if edit.From > edit.To {
			edit.From, edit.To = edit.To, edit.From
		}
		if e.forbidden.Has(edit.From, edit.To) {
			continue
		}
		filtered = append(filtered, edit)
	}

	return filtered
}
