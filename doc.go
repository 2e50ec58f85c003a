// Package overclust solves the s-Overlapping Cluster Editing problem:
// given an undirected simple graph G, a parameter s ≥ 1 and an edit
// budget k ≥ 0, decide whether at most k edge insertions/deletions turn
// G into a graph in which every vertex lies in at most s maximal
// cliques — and produce the witnessing edit sets.
//
// The module is organised leaf-first:
//
//   - sortedset  — set algebra over strictly increasing unique []int
//   - graph      — dual-representation graph store (sorted adjacency
//     lists + adjacency bitmap), induced subgraphs, components, walks
//   - graph6     — bit-exact codec for the graph6 interchange format
//   - degeneracy — degeneracy ordering with an optional edit lower bound
//   - cliques    — Bron–Kerbosch maximal-clique enumeration with Tomita
//     pivoting, degeneracy ordering, and early exit past s cliques
//   - editing    — forbidden-subgraph locators and the branch-and-bound
//     decision engine, plus the top-level driver API
//   - cmd/overclust — stdin-driven experiment harnesses
//
// The search is exponential in k (for s=2, O(9^k·poly(n)) with the
// neighbourhood locator, O(21^k·poly(n)) with the separator locator); the packages
// below the editing engine are polynomial and reusable on their own.
package overclust
