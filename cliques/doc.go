// Package cliques enumerates the maximal cliques of a graph with the
// Bron–Kerbosch algorithm, pivoted after Tomita and driven by a
// degeneracy ordering (Eppstein, Löffler, Strash): the outer loop walks
// the vertices in degeneracy order and restricts the candidate set to
// later neighbours, bounding the recursion depth by the degeneracy.
//
// The enumerator is specialised for the cluster-editing search. Beside
// the clique list it maintains, for each vertex, the indices of the
// cliques containing it — and when a threshold s > 0 is supplied it
// aborts the moment any vertex is seen in more than s cliques,
// returning that vertex as the witness. Witness runs can skip
// materialising clique bodies entirely (Witness), which is the cheap
// path the s=2 branching engine uses at every node.
//
// Pivot ties break towards the first candidate encountered, so
// enumeration order is deterministic for a given graph.
package cliques
