// Package solver implements the recursive backtracking core: minimum-
// remaining-values cell selection, a first-completion solve, and a
// count-to-two uniqueness check, all grounded on the teacher's
// internal/sudoku/dp package generalized to the bitmask Grid.
package solver

import "sudoku-core/internal/sudokugrid"

// selectMRV scans every empty cell and returns the one with the fewest
// candidate bits set, short-circuiting the moment a 1-candidate cell is
// found. It returns -1 if the grid is fully solved.
func selectMRV(g *sudokugrid.Grid) int {
	best := -1
	bestCount := 10
	for i, v := range g.Values {
		if v != 0 {
			continue
		}
		count := g.Candidates[i].Count()
		if count < bestCount {
			best = i
			bestCount = count
			if count <= 1 {
				break
			}
		}
	}
	return best
}

// SolveOne returns the first completion found (digits tried in 1..9
// order), or nil if the grid has no solution.
func SolveOne(g *sudokugrid.Grid) *sudokugrid.Grid {
	cell := selectMRV(g)
	if cell == -1 {
		return g
	}
	if g.Candidates[cell].IsEmpty() {
		return nil
	}

	for d := 1; d <= 9; d++ {
		if !g.Candidates[cell].Has(d) {
			continue
		}
		child := g.Clone()
		child.SetValue(cell, d)
		if !sudokugrid.PropagateMove(child, cell, d) {
			continue
		}
		if solved := SolveOne(child); solved != nil {
			return solved
		}
	}
	return nil
}

// IsUnique reports whether g has exactly one completion.
func IsUnique(g *sudokugrid.Grid) bool {
	count := 0
	countSolutions(g.Clone(), 2, &count)
	return count == 1
}

// countSolutions accumulates into count, stopping as soon as it reaches
// max (the caller only ever needs to distinguish 0, 1, and "2 or more").
func countSolutions(g *sudokugrid.Grid, max int, count *int) {
	if *count >= max {
		return
	}

	cell := selectMRV(g)
	if cell == -1 {
		*count++
		return
	}
	if g.Candidates[cell].IsEmpty() {
		return
	}

	for d := 1; d <= 9; d++ {
		if *count >= max {
			return
		}
		if !g.Candidates[cell].Has(d) {
			continue
		}
		child := g.Clone()
		child.SetValue(cell, d)
		if !sudokugrid.PropagateMove(child, cell, d) {
			continue
		}
		countSolutions(child, max, count)
	}
}

// UniquenessAfterRemoval decides whether a puzzle remains uniquely
// solvable once cell has been blanked. g must already have a zero value
// at cell; removedVal is the digit that previously sat there. The puzzle
// is known to have had a unique solution before the removal, so the
// check only needs to confirm no *other* completion exists once
// removedVal is forbidden at cell (spec 4.2).
func UniquenessAfterRemoval(g *sudokugrid.Grid, cell, removedVal int) bool {
	work := g.Clone()
	sudokugrid.PropagateAll(work)
	work.Candidates[cell] = work.Candidates[cell].Clear(removedVal)

	if work.Candidates[cell].IsEmpty() {
		return true
	}
	return SolveOne(work) == nil
}
