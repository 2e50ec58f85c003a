// Package editing implements the branch-and-bound search for the
// s-Overlapping Cluster Editing problem: find at most k edge
// insertions/deletions after which no vertex of the graph lies in more
// than s maximal cliques.
//
// Each search node asks the clique enumerator for a witness vertex — a
// vertex in more than s maximal cliques. No witness means the current
// graph is a solution. Otherwise a forbidden-subgraph locator extracts
// a small vertex set around the witness that must change, and the node
// branches on every edit that destroys the pattern:
//
//   - the Fellows separator locator (any s) picks two separating
//     vertices per pair of cliques through the witness and branches on
//     completing the induced subgraph to a clique;
//   - the s=2 neighbourhood locator scans the witness's neighbourhood
//     for induced claws (F1), P4s (F2) and C4s (F3) and branches on the
//     documented destroying edit set of the pattern.
//
// Branching edits already rejected by an older sibling are kept in a
// forbidden table — either copied per child or mutated and restored on
// backtrack (Options.ForbiddenCopy). The working graph is mutated in
// place with an explicit undo on every return, and each performed edit
// is logged with the budget remaining at the time, so every solution
// graph carries a replayable edit log.
//
// The search is single-threaded and allocation-scoped to the recursion;
// it stops on budget exhaustion or after the maxSolutions cap passed to
// Solutions.
// Heuristic switches (ForbidCliques, NoNeighborProposition) can prune
// optimal solutions on known instances and are excluded from the
// completeness contract; see Options.
//
// The top-level drivers (Solutions, LowerBound) are guarded to s=2,
// matching the state of the underlying theory. Internal invariant
// violations — a witness with no locatable forbidden subgraph, or a
// pair of cliques through the witness without separator vertices — are
// fatal: the context is logged and the process terminates. A located
// subgraph whose edits are all forbidden is not an error; that branch
// simply ends.
package editing
