// Package technique implements the human-solving hint library: an ordered
// set of detectors, each returning at most one deduction with a fixed
// difficulty weight, grounded on the teacher's internal/sudoku/human
// package but narrowed to the 13-technique table and generalized to the
// bitmask Grid.
package technique

import "sudoku-core/internal/sudokugrid"

// CellDigit pairs a cell index with a digit; used for both placements and
// eliminations on a Hint.
type CellDigit struct {
	Cell  int
	Digit int
}

// Hint is one atomic logical deduction: a technique name, its difficulty
// weight, and the placements and/or eliminations it licenses. A Hint is
// short-lived: the caller applies it to the grid and discards it.
type Hint struct {
	Technique    string
	Weight       float64
	Placements   []CellDigit
	Eliminations []CellDigit
}

// Detector inspects g and returns a Hint if its technique applies, or nil.
type Detector func(g *sudokugrid.Grid) *Hint

// Apply writes every placement in h to g (via SetValue + PropagateMove) and
// clears every eliminated candidate bit. It does not re-derive candidates
// from scratch; callers that need a full re-check should call
// sudokugrid.PropagateAll separately.
func Apply(g *sudokugrid.Grid, h *Hint) {
	for _, p := range h.Placements {
		g.SetValue(p.Cell, p.Digit)
		sudokugrid.PropagateMove(g, p.Cell, p.Digit)
	}
	for _, e := range h.Eliminations {
		g.Candidates[e.Cell] = g.Candidates[e.Cell].Clear(e.Digit)
	}
}
