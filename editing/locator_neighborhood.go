package editing

import (
	"time"

	"github.com/katalvlaran/overclust/sortedset"
)

// locateNeighborhood is the s=2 locator. It scans triples (v,w,x) of
// the witness's neighbours for an induced claw centred at u, and
// quadruples (v,w,x,y) whose induced subgraph is a claw, a P4 (F2) or a
// C4 (F3), emitting the destroying edit set of each pattern.
//
// Every candidate set is filtered against the forbidden table before
// it competes; the subgraph with the fewest remaining edits wins unless
// ForbiddenTakeFirst is set or no edit has been performed yet (at the
// root any subgraph does — there is nothing to compare branches
// against).
//
// Returns the chosen edits (nil when every pattern's edits are all
// forbidden) and whether any forbidden subgraph was seen at all.
func (e *engine) locateNeighborhood(u int) (best []EdgeEdit, foundSubgraph bool) {
	neighborList := e.g.Neighbors(u)
	degree := len(neighborList)
	takeFirst := e.opts.ForbiddenTakeFirst ||
		(len(e.edgesAdded) == 0 && len(e.edgesRemoved) == 0)

	// consider filters a candidate edit set and keeps the best one.
	// It reports whether the scan can stop.
	consider := func(editsUnfiltered []EdgeEdit) bool {
		foundSubgraph = true
		edits := e.filterForbidden(editsUnfiltered)
		if len(edits) > 0 && (best == nil || len(edits) < len(best)) {
			best = edits
			if takeFirst {
				return true
			}
		}

		return false
	}

	for vIndex := 0; vIndex < degree; vIndex++ {
		v := neighborList[vIndex]

		for wIndex := vIndex + 1; wIndex < degree; wIndex++ {
			w := neighborList[wIndex]
			edgeVW := e.g.HasEdge(v, w)

			for xIndex := wIndex + 1; xIndex < degree; xIndex++ {
				x := neighborList[xIndex]
				edgeVX := e.g.HasEdge(v, x)
				edgeWX := e.g.HasEdge(w, x)

				// Claw centred at u: break a leaf off or join two leaves.
				if !edgeVW && !edgeVX && !edgeWX {
					edits := []EdgeEdit{
						{From: u, To: v},
						{From: u, To: w},
						{From: u, To: x},
					}
					edits = e.appendLeafJoins(edits, v, w, x)
					if consider(edits) {
						return best, foundSubgraph
					}
				}

				// A triangle among v,w,x rules out F1-F3 on any fourth
				// vertex.
				if edgeVW && edgeWX && edgeVX {
					continue
				}

				for yIndex := xIndex + 1; yIndex < degree; yIndex++ {
					y := neighborList[yIndex]

					edits := e.locateQuad(u, v, w, x, y)
					if edits == nil {
						continue
					}
					if consider(edits) {
						return best, foundSubgraph
					}
				}
			}
		}
	}

	return best, foundSubgraph
}

// locateQuad classifies the induced subgraph on four neighbours of u as
// F1 (claw), F2 (P4) or F3 (C4) and returns the pattern's unfiltered
// destroying edits, or nil when the quadruple matches no pattern.
func (e *engine) locateQuad(u, v, w, x, y int) []EdgeEdit {
	sub := e.g.InducedSubgraph([]int{v, w, x, y})

	// F1 needs 3 edges, F2 3, F3 4.
	if sub.M() < 3 || sub.M() > 4 {
		return nil
	}

	vDeg := sub.Degree(0)
	wDeg := sub.Degree(1)
	xDeg := sub.Degree(2)
	yDeg := sub.Degree(3)

	// An isolated vertex matches no pattern.
	if vDeg == 0 || wDeg == 0 || xDeg == 0 || yDeg == 0 {
		return nil
	}

	// F1: a degree-3 vertex with exactly 3 edges is a claw centre.
	switch {
	case vDeg == 3:
		if sub.M() > 3 {
			return nil
		}

		return e.clawEdits(v, w, x, y)
	case wDeg == 3:
		if sub.M() > 3 {
			return nil
		}

		return e.clawEdits(w, v, x, y)
	case xDeg == 3:
		if sub.M() > 3 {
			return nil
		}

		return e.clawEdits(x, v, w, y)
	case yDeg == 3:
		if sub.M() > 3 {
			return nil
		}

		return e.clawEdits(y, v, w, x)
	}

	if sub.M() == 3 {
		// F2: three edges, no endpoint of degree 0 or 3 — an induced
		// P4. Canonicalise it by walking from a degree-1 endpoint.
		start := 3
		switch {
		case vDeg == 1:
			start = 0
		case wDeg == 1:
			start = 1
		case xDeg == 1:
			start = 2
		}
		walk := sub.AnyWalk(start, 4)
		id := func(i int) int { return sub.OuterID(walk[i]) }

		return []EdgeEdit{
			// detach the path from u
			{From: u, To: v},
			{From: u, To: w},
			{From: u, To: x},
			{From: u, To: y},

			// remove the centre bottom edge
			{From: id(1), To: id(2)},

			// add the two short chords; the long chord id(0)-id(3) is
			// spared, it cannot beat the other branches
			{From: id(0), To: id(2), Add: true},
			{From: id(1), To: id(3), Add: true},

			// remove the outer bottom edges
			{From: id(0), To: id(1)},
			{From: id(2), To: id(3)},
		}
	}

	// F3: four edges, all degrees 2 — an induced C4.
	walk := sub.AnyWalk(0, 4)
	id := func(i int) int { return sub.OuterID(walk[i]) }

	return []EdgeEdit{
		// detach the cycle from u
		{From: u, To: v},
		{From: u, To: w},
		{From: u, To: x},
		{From: u, To: y},

		// add the two chords
		{From: id(0), To: id(2), Add: true},
		{From: id(1), To: id(3), Add: true},

		// remove three cycle edges; the fourth, id(0)-id(3), is spared
		{From: id(0), To: id(1)},
		{From: id(1), To: id(2)},
		{From: id(2), To: id(3)},
	}
}

// clawEdits emits the edit set for a claw with centre c and leaves
// a, b, d: break the centre off each leaf, or join a pair of leaves.
func (e *engine) clawEdits(c, a, b, d int) []EdgeEdit {
	edits := []EdgeEdit{
		{From: c, To: a},
		{From: c, To: b},
		{From: c, To: d},
	}

	return e.appendLeafJoins(edits, a, b, d)
}

// appendLeafJoins adds the three leaf-joining insertions. Under the
// NoNeighborProposition a pair of leaves is only joined when it shares
// a neighbour besides the claw centre (intersection size above one).
func (e *engine) appendLeafJoins(edits []EdgeEdit, v, w, x int) []EdgeEdit {
	if !e.opts.NoNeighborProposition {
		return append(edits,
			EdgeEdit{From: v, To: w, Add: true},
			EdgeEdit{From: v, To: x, Add: true},
			EdgeEdit{From: w, To: x, Add: true},
		)
	}

	start := time.Now()
	vN := e.g.Neighbors(v)
	wN := e.g.Neighbors(w)
	xN := e.g.Neighbors(x)

	if sortedset.IntersectSize(vN, wN) > 1 {
		edits = append(edits, EdgeEdit{From: v, To: w, Add: true})
	} else {
		e.opts.NoNeighborPropositionCount++
	}
	if sortedset.IntersectSize(vN, xN) > 1 {
		edits = append(edits, EdgeEdit{From: v, To: x, Add: true})
	} else {
		e.opts.NoNeighborPropositionCount++
	}
	if sortedset.IntersectSize(wN, xN) > 1 {
		edits = append(edits, EdgeEdit{From: w, To: x, Add: true})
	} else {
		e.opts.NoNeighborPropositionCount++
	}
	e.opts.TimeNoNeighborMerges += time.Since(start)

	return edits
}
