package technique

import "sudoku-core/internal/sudokugrid"

// DetectYWing finds a pivot cell and two wing cells, each with exactly two
// candidates, where the pivot shares one candidate with each wing and the
// wings share a second, common candidate C that the pivot does not carry.
// C is then eliminated from every empty cell that sees both wings (spec
// 4.3).
func DetectYWing(g *sudokugrid.Grid) *Hint {
	var bivalue []int
	for i, v := range g.Values {
		if v == 0 && g.Candidates[i].Count() == 2 {
			bivalue = append(bivalue, i)
		}
	}

	for _, pivot := range bivalue {
		pivotDigits := g.Candidates[pivot].ToSlice()
		a, b := pivotDigits[0], pivotDigits[1]

		for _, wing1 := range bivalue {
			if wing1 == pivot || !sudokugrid.ArePeers(pivot, wing1) {
				continue
			}
			c, ok := wingThirdDigit(g, wing1, a, b)
			if !ok {
				continue
			}

			for _, wing2 := range bivalue {
				if wing2 == pivot || wing2 == wing1 || !sudokugrid.ArePeers(pivot, wing2) {
					continue
				}
				if c2, ok := wingThirdDigit(g, wing2, b, a); ok && c2 == c {
					if elims := eliminateSeenByBoth(g, wing1, wing2, c); len(elims) > 0 {
						return &Hint{Eliminations: elims}
					}
				}
			}
		}
	}
	return nil
}

// wingThirdDigit reports whether cell's two candidates are exactly {share,
// other} for some other != exclude, and returns that other digit.
func wingThirdDigit(g *sudokugrid.Grid, cell, share, exclude int) (int, bool) {
	if !g.Candidates[cell].Has(share) || g.Candidates[cell].Has(exclude) {
		return 0, false
	}
	digits := g.Candidates[cell].ToSlice()
	for _, d := range digits {
		if d != share {
			return d, true
		}
	}
	return 0, false
}

func eliminateSeenByBoth(g *sudokugrid.Grid, wing1, wing2, digit int) []CellDigit {
	var elims []CellDigit
	for i, v := range g.Values {
		if v != 0 || i == wing1 || i == wing2 {
			continue
		}
		if !g.Candidates[i].Has(digit) {
			continue
		}
		if sudokugrid.ArePeers(i, wing1) && sudokugrid.ArePeers(i, wing2) {
			elims = append(elims, CellDigit{Cell: i, Digit: digit})
		}
	}
	return elims
}
