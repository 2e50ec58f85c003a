package editing

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/overclust/cliques"
)

// locateSeparators is the general clique-separator locator (Fellows et
// al. 2011), valid for any s. Given the witness u it builds a small
// forbidden vertex set F: u itself plus, for every pair of cliques
// through u (capped at s+1 cliques), one vertex from each side of the
// pair's symmetric difference. The branching edits are all pairs of F
// with the polarity that turns the induced subgraph on F into a clique.
//
// Separator candidates already in F are preferred over fresh ones so F
// stays small; among fresh candidates the first in clique order wins,
// which keeps the choice deterministic for our enumeration order.
//
// Complexity: O(s² · n) over the clique pairs.
func (e *engine) locateSeparators(info *cliques.Result, u, k int) []EdgeEdit {
	forbiddenVertices := make([]int, 0, (e.s+1)*e.s+1)
	forbiddenVertices = append(forbiddenVertices, u)
	inF := make(map[int]bool, (e.s+1)*e.s+1)
	inF[u] = true

	cliquesOfU := info.VertexCliques[u]
	cliqueCount := min(len(cliquesOfU), e.s+1)

	for i := 0; i < cliqueCount; i++ {
		cliqueA := info.Cliques[cliquesOfU[i]]

		for j := i + 1; j < cliqueCount; j++ {
			cliqueB := info.Cliques[cliquesOfU[j]]

			// remainingA shrinks to A\B while B is scanned.
			remainingA := make(map[int]bool, len(cliqueA))
			for _, v := range cliqueA {
				remainingA[v] = true
			}

			// separatorB ∈ B\A, preferring a vertex already in F.
			separatorB := -1
			separatorBInF := false
			for _, v := range cliqueB {
				if remainingA[v] {
					delete(remainingA, v)

					continue
				}
				already := inF[v]
				if separatorB < 0 || (!separatorBInF && already) {
					separatorB = v
					separatorBInF = already
				}
			}

			// separatorA ∈ A\B, same reuse-if-possible preference.
			// Walk cliqueA in order so the choice does not depend on map
			// iteration.
			separatorA := -1
			separatorAInF := false
			for _, v := range cliqueA {
				if !remainingA[v] {
					continue
				}
				already := inF[v]
				if separatorA < 0 || already {
					separatorA = v
					separatorAInF = already
					if already {
						break
					}
				}
			}

			if separatorA < 0 || separatorB < 0 {
				// Two distinct maximal cliques always separate; reaching
				// this means the enumeration fed us garbage.
				logrus.WithFields(logrus.Fields{
					"witness": u,
					"s":       e.s,
					"k":       k,
					"cliqueA": cliqueA,
					"cliqueB": cliqueB,
					"graph":   e.g.String(),
				}).Fatal("editing: no separator vertices for clique pair")
			}

			if !separatorAInF {
				forbiddenVertices = append(forbiddenVertices, separatorA)
			}
			inF[separatorA] = true
			if !separatorBInF {
				forbiddenVertices = append(forbiddenVertices, separatorB)
			}
			inF[separatorB] = true
		}
	}

	// Branch on every pair of F: insert the missing edges, delete the
	// present ones.
	edits := make([]EdgeEdit, 0, len(forbiddenVertices)*(len(forbiddenVertices)-1)/2)
	for i, v := range forbiddenVertices {
		for _, w := range forbiddenVertices[i+1:] {
			edits = append(edits, EdgeEdit{From: v, To: w, Add: !e.g.HasEdge(v, w)})
		}
	}

	return edits
}
