// Package graph provides the mutable graph store used by the cluster
// editing search: an undirected simple graph over vertices 0..n-1 kept
// in two synchronised representations.
//
// Representations:
//
//   - sorted adjacency lists — O(deg(v)) neighbour enumeration, cheap
//     linear merges in the clique enumerator;
//   - a dense boolean bitmap — O(1) HasEdge queries.
//
// Both are maintained by every mutation; AddEdge/RemoveEdge cost
// O(deg(v)) for the list shift and keep m, symmetry and ordering intact.
//
// A Graph produced by InducedSubgraph additionally carries an outer-ID
// map so local vertices can be translated back (OuterID). Solution
// graphs returned by the editing engine carry their edit logs in
// EdgesAdded / EdgesRemoved.
//
// Mutators follow the enumerator's precondition contract: adding an
// edge that exists, removing one that does not, or passing a vertex out
// of range is undefined behaviour, not an error. The store sits on the
// search's hottest path and the callers (the branching engine, the
// locators) guarantee the preconditions.
package graph
