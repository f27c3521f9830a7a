package sudokugrid

import "sudoku-core/pkg/constants"

// UnitType identifies whether a Unit is a row, column, or box.
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBox
)

func (t UnitType) String() string {
	switch t {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitBox:
		return "box"
	default:
		return "unit"
	}
}

// Unit is one of the 27 groups of 9 cells that must hold 1-9 exactly once.
type Unit struct {
	Type  UnitType
	Index int
	Cells []int
}

var (
	// Peers holds, for each cell, the 20 other cells sharing its row,
	// column, or box.
	Peers [constants.TotalCells][]int

	rowIndices [9][]int
	colIndices [9][]int
	boxIndices [9][]int

	units [constants.UnitsTotal]Unit
)

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			idx := r*9 + c
			rowIndices[r] = append(rowIndices[r], idx)
			colIndices[c] = append(colIndices[c], idx)
			box := BoxOf(idx)
			boxIndices[box] = append(boxIndices[box], idx)
		}
	}

	n := 0
	for i := 0; i < 9; i++ {
		units[n] = Unit{Type: UnitRow, Index: i, Cells: rowIndices[i]}
		n++
		units[n] = Unit{Type: UnitCol, Index: i, Cells: colIndices[i]}
		n++
		units[n] = Unit{Type: UnitBox, Index: i, Cells: boxIndices[i]}
		n++
	}

	for i := 0; i < constants.TotalCells; i++ {
		row, col, box := RowOf(i), ColOf(i), BoxOf(i)
		seen := make(map[int]bool, 20)
		for _, p := range rowIndices[row] {
			if p != i && !seen[p] {
				seen[p] = true
				Peers[i] = append(Peers[i], p)
			}
		}
		for _, p := range colIndices[col] {
			if p != i && !seen[p] {
				seen[p] = true
				Peers[i] = append(Peers[i], p)
			}
		}
		for _, p := range boxIndices[box] {
			if p != i && !seen[p] {
				seen[p] = true
				Peers[i] = append(Peers[i], p)
			}
		}
	}
}

// RowOf returns the row (0-8) of a cell index.
func RowOf(idx int) int { return idx / 9 }

// ColOf returns the column (0-8) of a cell index.
func ColOf(idx int) int { return idx % 9 }

// BoxOf returns the box (0-8) of a cell index.
func BoxOf(idx int) int {
	row, col := idx/9, idx%9
	return (row/3)*3 + col/3
}

// RowCells returns all cell indices of a row.
func RowCells(row int) []int { return rowIndices[row] }

// ColCells returns all cell indices of a column.
func ColCells(col int) []int { return colIndices[col] }

// BoxCells returns all cell indices of a box.
func BoxCells(box int) []int { return boxIndices[box] }

// AllUnits returns the 27 units (9 rows, 9 columns, 9 boxes).
func AllUnits() []Unit {
	return units[:]
}

// ArePeers reports whether two distinct cells share a row, column, or box.
func ArePeers(a, b int) bool {
	if a == b {
		return false
	}
	return RowOf(a) == RowOf(b) || ColOf(a) == ColOf(b) || BoxOf(a) == BoxOf(b)
}

// AllSeeAll reports whether every cell in a sees every cell in b.
func AllSeeAll(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x != y && !ArePeers(x, y) {
				return false
			}
		}
	}
	return true
}
