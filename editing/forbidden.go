package editing

import "github.com/katalvlaran/overclust/sortedset"

// forbiddenTable is a symmetric predicate over unordered vertex pairs
// marking edits that must not be branched on again. All methods take
// the canonical orientation v < w; filterForbidden establishes it.
//
// Two encodings exist: a dense matrix for O(1) everything at O(n²)
// memory, and per-vertex sorted lists that stay small on sparse
// branching but pay a logarithmic probe.
type forbiddenTable interface {
	Has(v, w int) bool
	Add(v, w int)
	Remove(v, w int)
	Clone() forbiddenTable
}

// newForbiddenTable picks the encoding for Options.ForbiddenMatrix.
func newForbiddenTable(n int, matrix bool) forbiddenTable {
	if matrix {
		cells := make([][]bool, n)
		for i := range cells {
			cells[i] = make([]bool, n)
		}

		return &matrixTable{cells: cells}
	}

	return &listTable{adj: make([][]int, n)}
}

// matrixTable is the dense encoding. Only the upper triangle is used.
type matrixTable struct {
	cells [][]bool
}

func (t *matrixTable) Has(v, w int) bool { return t.cells[v][w] }
func (t *matrixTable) Add(v, w int)      { t.cells[v][w] = true }
func (t *matrixTable) Remove(v, w int)   { t.cells[v][w] = false }

func (t *matrixTable) Clone() forbiddenTable {
	cells := make([][]bool, len(t.cells))
	for i, row := range t.cells {
		cells[i] = append([]bool(nil), row...)
	}

	return &matrixTable{cells: cells}
}

// listTable is the sparse encoding: adj[v] lists the w > v with {v,w}
// forbidden, sorted.
type listTable struct {
	adj [][]int
}

func (t *listTable) Has(v, w int) bool { return sortedset.Contains(t.adj[v], w) }
func (t *listTable) Add(v, w int)      { t.adj[v] = sortedset.Insert(t.adj[v], w) }
func (t *listTable) Remove(v, w int)   { t.adj[v] = sortedset.Remove(t.adj[v], w) }

func (t *listTable) Clone() forbiddenTable {
	adj := make([][]int, len(t.adj))
	for i, row := range t.adj {
		if row != nil {
			adj[i] = append([]int(nil), row...)
		}
	}

	return &listTable{adj: adj}
}
