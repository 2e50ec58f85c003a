package degeneracy

import "github.com/katalvlaran/overclust/graph"

// Result carries the outcome of one peeling pass.
type Result struct {
	// Degeneracy is the maximum removed-degree over all extractions.
	Degeneracy int

	// Ordering lists the vertices in extraction (degeneracy) order.
	Ordering []int

	// EditBound is the accumulated lower bound on the edits needed for
	// s-overlapping cluster editing; zero unless Order was called with
	// s > 0.
	EditBound int
}

// Degeneracy returns the degeneracy value and ordering of g without
// computing an edit bound.
func Degeneracy(g *graph.Graph) (int, []int) {
	res := Order(g, 0, 0)

	return res.Degeneracy, res.Ordering
}

// Order peels g by repeated minimum-degree extraction. With s > 0 it
// additionally accumulates the star-based edit lower bound for the
// budget k (see the package comment for the bound's status).
//
// Complexity: O(n·Δ) for the ordering; the bound loop adds
// O(degeneracy · min(k, n/3)) per extraction.
func Order(g *graph.Graph, s, k int) Result {
	n := g.N()

	// deg[v] is v's current degree, -1 once extracted. buckets[d] holds
	// the vertices of degree d; pos[v] is v's index inside its bucket so
	// moves are O(1) swap-removals.
	deg := make([]int, n)
	pos := make([]int, n)
	buckets := make([][]int, n)

	smallest := n
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		deg[v] = d
		pos[v] = len(buckets[d])
		buckets[d] = append(buckets[d], v)
		if d < smallest {
			smallest = d
		}
	}

	ordering := make([]int, 0, n)
	degeneracy := 0
	editBound := 0

	for i := 0; i < n; i++ {
		// Locate the next non-empty bucket by scanning up from the
		// previous smallest.
		for smallest < n && len(buckets[smallest]) == 0 {
			smallest++
		}

		// Extract the last vertex of the smallest bucket.
		bucket := buckets[smallest]
		v := bucket[len(bucket)-1]
		buckets[smallest] = bucket[:len(bucket)-1]
		deg[v] = -1

		// Decrement the still-present neighbours.
		degreeHere := 0
		for _, w := range g.Neighbors(v) {
			d := deg[w]
			if d < 0 {
				continue
			}
			degreeHere++
			bucketMove(buckets, pos, w, d, d-1)
			deg[w] = d - 1
			if d-1 < smallest {
				smallest = d - 1
			}
		}

		ordering = append(ordering, v)
		if degreeHere > degeneracy {
			degeneracy = degreeHere
		}

		// Star bound: a removed-degree of t ≥ max(3, s+1) among nHere
		// remaining vertices forces edits. For each candidate clique
		// count r the packing argument yields l disjoint stars, each
		// worth t−s edits.
		if s > 0 {
			nHere := n - i
			if nHere < 6 {
				continue
			}
			for t := max(3, s+1); t <= degreeHere; t++ {
				rBound := min(k+1+s, 2+(n-2)/t)
				for r := t + 1; r < rBound; r++ {
					l := 1 + (nHere-1)/(t*(r-1)+1)
					editBound = max(editBound, min(r-s, l*(t-s)))
				}
			}
		}
	}

	return Result{Degeneracy: degeneracy, Ordering: ordering, EditBound: editBound}
}

// bucketMove relocates w from the degree-from bucket to degree-to via
// swap-removal, keeping pos exact.
func bucketMove(buckets [][]int, pos []int, w, from, to int) {
	b := buckets[from]
	last := len(b) - 1
	moved := b[last]
	b[pos[w]] = moved
	pos[moved] = pos[w]
	buckets[from] = b[:last]

	pos[w] = len(buckets[to])
	buckets[to] = append(buckets[to], w)
}
