package technique

import "sudoku-core/internal/sudokugrid"

// DetectNakedSingle finds an empty cell whose candidate mask has exactly
// one bit set and places that digit (spec 4.3).
func DetectNakedSingle(g *sudokugrid.Grid) *Hint {
	for i, v := range g.Values {
		if v != 0 {
			continue
		}
		if digit, ok := g.Candidates[i].Only(); ok {
			return &Hint{Placements: []CellDigit{{Cell: i, Digit: digit}}}
		}
	}
	return nil
}

// DetectHiddenSingle finds a digit that is a candidate in exactly one
// empty cell of some unit and places it there (spec 4.3). Units are
// scanned in AllUnits order (row i, column i, box i for i = 0..8);
// digits 1..9 within each unit, matching the tie-break rule in 4.3's
// closing paragraph.
func DetectHiddenSingle(g *sudokugrid.Grid) *Hint {
	for _, unit := range sudokugrid.AllUnits() {
		for digit := 1; digit <= 9; digit++ {
			placed := false
			var only int = -1
			count := 0
			for _, cell := range unit.Cells {
				if g.Values[cell] == digit {
					placed = true
					break
				}
				if g.Values[cell] == 0 && g.Candidates[cell].Has(digit) {
					count++
					only = cell
				}
			}
			if placed || count != 1 {
				continue
			}
			return &Hint{Placements: []CellDigit{{Cell: only, Digit: digit}}}
		}
	}
	return nil
}
