package graph

// InducedSubgraph builds a new graph with one local vertex per element
// of vertexIDs, copying every edge present between them and recording
// the original IDs so OuterID can translate back.
//
// Complexity: O(k²) edge probes for k = len(vertexIDs).
func (g *Graph) InducedSubgraph(vertexIDs []int) *Graph {
	sub := New(len(vertexIDs))
	sub.ids = append([]int(nil), vertexIDs...)

	for i := 0; i < sub.n; i++ {
		for j := i + 1; j < sub.n; j++ {
			if !g.HasEdge(vertexIDs[i], vertexIDs[j]) {
				continue
			}
			sub.AddEdge(i, j)
		}
	}

	return sub
}

// Components decomposes the graph into its connected components via
// breadth-first search. Each component is returned as an induced
// subgraph, so its vertices are renumbered locally and OuterID yields
// the position in the parent graph. Components appear in order of their
// smallest vertex.
//
// Complexity: O(n + m) traversal plus the induced-subgraph copies.
func (g *Graph) Components() []*Graph {
	var components []*Graph
	found := make([]bool, g.n)

	for v := 0; v < g.n; v++ {
		if found[v] {
			continue
		}

		// BFS from v, collecting the component in visit order.
		queue := []int{v}
		found[v] = true
		var vertexIDs []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			vertexIDs = append(vertexIDs, u)
			for _, w := range g.adj[u] {
				if found[w] {
					continue
				}
				found[w] = true
				queue = append(queue, w)
			}
		}

		components = append(components, g.InducedSubgraph(vertexIDs))
	}

	return components
}

// AnyWalk returns a walk of at most maxLen vertices starting at start,
// never traversing the immediately preceding edge back: at every step
// the first listed neighbour is taken unless it equals the previous
// vertex, in which case the second is. The walk ends early at a vertex
// with no other neighbour. Used to canonicalise P4 and C4 witnesses.
//
// Complexity: O(maxLen)
func (g *Graph) AnyWalk(start, maxLen int) []int {
	walk := make([]int, 0, maxLen)
	walk = append(walk, start)

	previous := start
	current := start
	for i := 1; i < maxLen; i++ {
		neighbors := g.adj[current]

		next := 0
		if len(neighbors) > 0 && neighbors[0] == previous {
			next = 1
		}
		if len(neighbors) <= next {
			break
		}

		previous = current
		current = neighbors[next]
		walk = append(walk, current)
	}

	return walk
}
