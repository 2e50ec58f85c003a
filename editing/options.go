package editing

import (
	"fmt"
	"time"
)

// EdgeEdit is one branching candidate: the unordered vertex pair and
// whether the edit inserts (Add) or deletes the edge. Edits are
// canonicalised to From < To before they reach the forbidden table.
type EdgeEdit struct {
	From, To int
	Add      bool
}

func (e EdgeEdit) String() string {
	sign := "-"
	if e.Add {
		sign = "+"
	}

	return fmt.Sprintf("[%d%s%d]", e.From, sign, e.To)
}

// Options configures the branching search. The zero value is NOT the
// default configuration; use DefaultOptions.
//
// The boolean switches select algorithm variants; the remaining fields
// are telemetry, written by the search and never read by it.
type Options struct {
	// UseFellowsForbidden selects the general clique-separator locator.
	// When false (and s=2) the neighbourhood locator scans for induced
	// claws, P4s and C4s instead.
	UseFellowsForbidden bool

	// ForbidCriticalCliques pre-forbids, at search entry, every edge
	// inside a critical clique (a maximal set of vertices sharing the
	// same closed neighbourhood).
	ForbidCriticalCliques bool

	// ForbidCliques pre-forbids every edge inside a maximal clique of
	// size at least three. Known to cut optimal solutions on some
	// instances; opt-in and outside the completeness contract.
	ForbidCliques bool

	// NoNeighborProposition suppresses branching on a leaf–leaf edge
	// insertion when the two claw leaves share no neighbour besides the
	// claw centre. Known counterexamples exist; opt-in and outside the
	// completeness contract.
	NoNeighborProposition bool

	// ForbiddenMatrix stores the forbidden table as a dense n×n matrix;
	// when false, per-vertex sorted lists are used instead.
	ForbiddenMatrix bool

	// ForbiddenCopy clones the forbidden table for every child branch.
	// When false the table is shared and the branching edits are removed
	// again on backtrack.
	ForbiddenCopy bool

	// ForbiddenTakeFirst makes the neighbourhood locator commit to the
	// first forbidden subgraph found; when false it keeps scanning and
	// branches on the subgraph with the fewest non-forbidden edits.
	ForbiddenTakeFirst bool

	// Verbose enables per-node diagnostics through the package logger.
	Verbose bool

	// Telemetry. Observational only: accumulated by the search, never
	// consulted by it.
	NoNeighborPropositionCount int
	CriticalCliqueEdges        int
	CliqueEdges                int
	TimeTotal                  time.Duration
	TimeFindingCliques         time.Duration
	TimeFindingForbidden       time.Duration
	TimeForbiddenCopy          time.Duration
	TimeNoNeighborMerges       time.Duration
}

// DefaultOptions returns the baseline configuration: the separator
// locator, a matrix-encoded shared forbidden table, no heuristic
// pruning.
func DefaultOptions() *Options {
	return &Options{
		UseFellowsForbidden: true,
		ForbiddenMatrix:     true,
	}
}

// resetTelemetry zeroes every counter and timer before a search run.
func (o *Options) resetTelemetry() {
	o.NoNeighborPropositionCount = 0
	o.CriticalCliqueEdges = 0
	o.CliqueEdges = 0
	o.TimeTotal = 0
	o.TimeFindingCliques = 0
	o.TimeFindingForbidden = 0
	o.TimeForbiddenCopy = 0
	o.TimeNoNeighborMerges = 0
}

// String renders the switches and telemetry for experiment reports.
func (o *Options) String() string {
	return fmt.Sprintf("Options{useFellowsForbidden=%t, noNeighborProposition=%t, "+
		"forbidCliques=%t, forbidCriticalCliques=%t, "+
		"forbiddenMatrix=%t, forbiddenCopy=%t, forbiddenTakeFirst=%t,\n"+
		"\ttimeTotal=%v, timeFindingCliques=%v, timeFindingForbidden=%v, timeForbiddenCopy=%v,\n"+
		"\tnoNeighborPropositionCount=%d, criticalCliqueEdges=%d, cliqueEdges=%d, timeNoNeighborMerges=%v}",
		o.UseFellowsForbidden, o.NoNeighborProposition,
		o.ForbidCliques, o.ForbidCriticalCliques,
		o.ForbiddenMatrix, o.ForbiddenCopy, o.ForbiddenTakeFirst,
		o.TimeTotal, o.TimeFindingCliques, o.TimeFindingForbidden, o.TimeForbiddenCopy,
		o.NoNeighborPropositionCount, o.CriticalCliqueEdges, o.CliqueEdges, o.TimeNoNeighborMerges)
}
