// Package degeneracy computes the degeneracy and a degeneracy ordering
// of a graph by min-degree peeling, and — when asked — a structural
// lower bound on the edits needed for s-overlapping cluster editing.
//
// The ordering repeatedly extracts a vertex of currently minimum
// degree, appends it, and decrements its remaining neighbours. The
// maximum removed-degree seen over all extractions is the degeneracy.
// Vertices are held in degree buckets so each extraction is O(1) plus a
// linear scan to the next non-empty bucket, O(n·Δ) overall.
//
// The edit bound accumulated for s > 0 rests on the observation that a
// vertex whose neighbourhood still has t ≥ max(3, s+1) members at
// extraction time anchors star-like structure that costs t−s edits to
// dissolve. The bound is a conjecture-backed heuristic certificate: it
// never exceeds the true optimum on the instances it has been checked
// against, but carries no proof for s > 2. Treat EditBound as a
// pruning aid, not a guarantee.
package degeneracy
