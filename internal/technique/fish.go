package technique

import "sudoku-core/internal/sudokugrid"

// DetectXWing finds, for some digit, two rows each with exactly two
// candidate cells for that digit sharing the same two columns (or the
// symmetric case with rows and columns swapped), and eliminates the digit
// from those columns/rows elsewhere (spec 4.3).
func DetectXWing(g *sudokugrid.Grid) *Hint {
	if hint := xWingLines(g, true); hint != nil {
		return hint
	}
	return xWingLines(g, false)
}

// xWingLines scans rows (byRow true) or columns (byRow false) for the
// x-wing pattern.
func xWingLines(g *sudokugrid.Grid, byRow bool) *Hint {
	for digit := 1; digit <= 9; digit++ {
		var positions [9][]int
		for line := 0; line < 9; line++ {
			cells := lineCells(byRow, line)
			for _, cell := range cells {
				if g.Values[cell] == 0 && g.Candidates[cell].Has(digit) {
					positions[line] = append(positions[line], crossIndex(byRow, cell))
				}
			}
		}

		for l1 := 0; l1 < 9; l1++ {
			if len(positions[l1]) != 2 {
				continue
			}
			for l2 := l1 + 1; l2 < 9; l2++ {
				if len(positions[l2]) != 2 {
					continue
				}
				if positions[l1][0] != positions[l2][0] || positions[l1][1] != positions[l2][1] {
					continue
				}
				var elims []CellDigit
				for line := 0; line < 9; line++ {
					if line == l1 || line == l2 {
						continue
					}
					for _, cross := range positions[l1] {
						cell := cellAt(byRow, line, cross)
						if g.Values[cell] == 0 && g.Candidates[cell].Has(digit) {
							elims = append(elims, CellDigit{Cell: cell, Digit: digit})
						}
					}
				}
				if len(elims) > 0 {
					return &Hint{Eliminations: elims}
				}
			}
		}
	}
	return nil
}

func lineCells(byRow bool, line int) []int {
	if byRow {
		return sudokugrid.RowCells(line)
	}
	return sudokugrid.ColCells(line)
}

func crossIndex(byRow bool, cell int) int {
	if byRow {
		return sudokugrid.ColOf(cell)
	}
	return sudokugrid.RowOf(cell)
}

func cellAt(byRow bool, line, cross int) int {
	if byRow {
		return line*9 + cross
	}
	return cross*9 + line
}
