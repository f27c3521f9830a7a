package technique

import "sudoku-core/internal/sudokugrid"

// DetectPointingPair finds, for each box and digit, a digit whose 2-3
// candidate cells within the box all lie in one row or column, and
// eliminates it from the rest of that row/column (spec 4.3).
func DetectPointingPair(g *sudokugrid.Grid) *Hint {
	for box := 0; box < 9; box++ {
		cells := sudokugrid.BoxCells(box)
		for digit := 1; digit <= 9; digit++ {
			var inBox []int
			for _, cell := range cells {
				if g.Values[cell] == 0 && g.Candidates[cell].Has(digit) {
					inBox = append(inBox, cell)
				}
			}
			if len(inBox) < 2 || len(inBox) > 3 {
				continue
			}

			if sameRow, row := allSameRow(inBox); sameRow {
				if elims := eliminateFromUnit(g, sudokugrid.RowCells(row), inBox, digit); len(elims) > 0 {
					return &Hint{Eliminations: elims}
				}
			}
			if sameCol, col := allSameCol(inBox); sameCol {
				if elims := eliminateFromUnit(g, sudokugrid.ColCells(col), inBox, digit); len(elims) > 0 {
					return &Hint{Eliminations: elims}
				}
			}
		}
	}
	return nil
}

// DetectBoxLineReduction is the dual of pointing pair: for each row or
// column and digit, if its 2-3 candidate cells all lie in one box,
// eliminate the digit from the box's other cells (spec 4.3).
func DetectBoxLineReduction(g *sudokugrid.Grid) *Hint {
	for row := 0; row < 9; row++ {
		if hint := boxLineReductionInUnit(g, sudokugrid.RowCells(row)); hint != nil {
			return hint
		}
	}
	for col := 0; col < 9; col++ {
		if hint := boxLineReductionInUnit(g, sudokugrid.ColCells(col)); hint != nil {
			return hint
		}
	}
	return nil
}

func boxLineReductionInUnit(g *sudokugrid.Grid, line []int) *Hint {
	for digit := 1; digit <= 9; digit++ {
		var inLine []int
		for _, cell := range line {
			if g.Values[cell] == 0 && g.Candidates[cell].Has(digit) {
				inLine = append(inLine, cell)
			}
		}
		if len(inLine) < 2 || len(inLine) > 3 {
			continue
		}
		sameBox, box := allSameBox(inLine)
		if !sameBox {
			continue
		}
		if elims := eliminateFromUnit(g, sudokugrid.BoxCells(box), inLine, digit); len(elims) > 0 {
			return &Hint{Eliminations: elims}
		}
	}
	return nil
}

// eliminateFromUnit clears digit from every cell of unit that is not in
// keep, returning the eliminations made (or nil if none apply).
func eliminateFromUnit(g *sudokugrid.Grid, unit []int, keep []int, digit int) []CellDigit {
	kept := make(map[int]bool, len(keep))
	for _, c := range keep {
		kept[c] = true
	}
	var elims []CellDigit
	for _, cell := range unit {
		if kept[cell] {
			continue
		}
		if g.Values[cell] == 0 && g.Candidates[cell].Has(digit) {
			elims = append(elims, CellDigit{Cell: cell, Digit: digit})
		}
	}
	return elims
}

func allSameRow(cells []int) (bool, int) {
	row := sudokugrid.RowOf(cells[0])
	for _, c := range cells[1:] {
		if sudokugrid.RowOf(c) != row {
			return false, 0
		}
	}
	return true, row
}

func allSameCol(cells []int) (bool, int) {
	col := sudokugrid.ColOf(cells[0])
	for _, c := range cells[1:] {
		if sudokugrid.ColOf(c) != col {
			return false, 0
		}
	}
	return true, col
}

func allSameBox(cells []int) (bool, int) {
	box := sudokugrid.BoxOf(cells[0])
	for _, c := range cells[1:] {
		if sudokugrid.BoxOf(c) != box {
			return false, 0
		}
	}
	return true, box
}
