package sudokugrid

import "sudoku-core/pkg/constants"

// Grid is the 81-cell puzzle state: a placed digit (0 = empty) and a
// candidate bitmask per cell. Grids are value-semantic - callers copy
// before speculating, per spec section 3's lifecycle note.
type Grid struct {
	Values     [constants.TotalCells]int
	Candidates [constants.TotalCells]Candidates
}

// New returns an empty grid with every candidate bit set.
func New() *Grid {
	g := &Grid{}
	for i := range g.Candidates {
		g.Candidates[i] = AllCandidates()
	}
	return g
}

// FromCanonical parses an 81-character canonical string. Digits 1-9 are
// placements; any other character (commonly '.' or '0') is empty.
// Strings shorter than 81 parseable characters leave the remaining cells
// empty (spec section 7's leniency rule); characters beyond 81 are ignored.
func FromCanonical(s string) *Grid {
	g := New()
	for i := 0; i < constants.TotalCells && i < len(s); i++ {
		c := s[i]
		if c >= '1' && c <= '9' {
			g.SetValue(i, int(c-'0'))
		}
	}
	PropagateAll(g)
	return g
}

// ToCanonical emits the grid as an 81-character string, '.' for empty.
func (g *Grid) ToCanonical() string {
	buf := make([]byte, constants.TotalCells)
	for i, v := range g.Values {
		if v == 0 {
			buf[i] = '.'
		} else {
			buf[i] = byte('0' + v)
		}
	}
	return string(buf)
}

// SetValue writes digit at cell i and clears its candidate mask. It does
// not propagate to peers; propagation is an explicit step (spec 4.1).
func (g *Grid) SetValue(i, digit int) {
	g.Values[i] = digit
	g.Candidates[i] = 0
}

// Clear empties a cell, leaving its candidate mask untouched (the caller
// is expected to re-propagate).
func (g *Grid) Clear(i int) {
	g.Values[i] = 0
}

// IsSolved reports whether every cell holds a digit.
func (g *Grid) IsSolved() bool {
	for _, v := range g.Values {
		if v == 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep (value) copy.
func (g *Grid) Clone() *Grid {
	ng := *g
	return &ng
}

// EmptyCells returns the indices of every unfilled cell.
func (g *Grid) EmptyCells() []int {
	var out []int
	for i, v := range g.Values {
		if v == 0 {
			out = append(out, i)
		}
	}
	return out
}

// CellsWithNCandidates returns empty cells whose candidate mask has
// exactly n bits set.
func (g *Grid) CellsWithNCandidates(n int) []int {
	var out []int
	for i, v := range g.Values {
		if v == 0 && g.Candidates[i].Count() == n {
			out = append(out, i)
		}
	}
	return out
}

// CellsWithDigitInUnit returns the cells of unit that still carry digit
// as a candidate.
func (g *Grid) CellsWithDigitInUnit(unit Unit, digit int) []int {
	var out []int
	for _, idx := range unit.Cells {
		if g.Values[idx] == 0 && g.Candidates[idx].Has(digit) {
			out = append(out, idx)
		}
	}
	return out
}
