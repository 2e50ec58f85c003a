// Package sortedset implements set algebra over strictly increasing,
// duplicate-free []int sequences.
//
// These are the hot inner loops of the clique enumerator and the
// branching engine: adjacency lists, the Bron–Kerbosch P/R/X sets and
// the list-encoded forbidden table are all kept in this form, so the
// merges here run allocation-light and branch-predictably.
//
// Contract: every input slice must already be strictly increasing and
// unique; every returned slice is. Inputs are never mutated except by
// Insert and Remove, which work in place on the slice they are given
// (and return the possibly re-allocated header, like append).
//
// Complexity:
//   - Union, Intersect, Diff, IntersectSize: O(|a| + |b|)
//   - Contains: O(log n)
//   - Insert, Remove: O(log n) search + O(n) shift
package sortedset
