package technique

import "sudoku-core/internal/sudokugrid"

// combinations returns every k-sized subset of items, preserving items'
// relative order — used to generate candidate groups of cells or digits
// for the naked/hidden subset detectors.
func combinations(items []int, k int) [][]int {
	n := len(items)
	if k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		out = append(out, combo)

		pos := k - 1
		for pos >= 0 && idx[pos] == n-k+pos {
			pos--
		}
		if pos < 0 {
			break
		}
		idx[pos]++
		for i := pos + 1; i < k; i++ {
			idx[i] = idx[i-1] + 1
		}
	}
	return out
}

// nakedSubsetDetector builds a detector for naked pairs/triples/quads (spec
// 4.3's naked_subset(k)): within a unit, k empty cells whose candidates
// union to exactly k digits let those digits be eliminated from the
// unit's other empty cells.
func nakedSubsetDetector(k int) Detector {
	return func(g *sudokugrid.Grid) *Hint {
		for _, unit := range sudokugrid.AllUnits() {
			var empty []int
			for _, cell := range unit.Cells {
				if g.Values[cell] == 0 {
					empty = append(empty, cell)
				}
			}
			if len(empty) < k {
				continue
			}
			for _, combo := range combinations(empty, k) {
				var union sudokugrid.Candidates
				for _, cell := range combo {
					union = union.Union(g.Candidates[cell])
				}
				if union.Count() != k {
					continue
				}
				inCombo := make(map[int]bool, k)
				for _, cell := range combo {
					inCombo[cell] = true
				}
				var elims []CellDigit
				for _, cell := range empty {
					if inCombo[cell] {
						continue
					}
					for _, digit := range union.ToSlice() {
						if g.Candidates[cell].Has(digit) {
							elims = append(elims, CellDigit{Cell: cell, Digit: digit})
						}
					}
				}
				if len(elims) > 0 {
					return &Hint{Eliminations: elims}
				}
			}
		}
		return nil
	}
}

// hiddenSubsetDetector builds a detector for hidden pairs/triples/quads
// (spec 4.3's hidden_subset(k)): within a unit, k digits whose candidate
// cells union to exactly k cells let every other digit be eliminated from
// those k cells.
func hiddenSubsetDetector(k int) Detector {
	return func(g *sudokugrid.Grid) *Hint {
		for _, unit := range sudokugrid.AllUnits() {
			var digits []int
			placed := make(map[int]bool)
			for _, cell := range unit.Cells {
				if g.Values[cell] != 0 {
					placed[g.Values[cell]] = true
				}
			}
			for d := 1; d <= 9; d++ {
				if !placed[d] {
					digits = append(digits, d)
				}
			}
			if len(digits) < k {
				continue
			}
			for _, combo := range combinations(digits, k) {
				var cells []int
				for _, cell := range unit.Cells {
					if g.Values[cell] != 0 {
						continue
					}
					for _, d := range combo {
						if g.Candidates[cell].Has(d) {
							cells = append(cells, cell)
							break
						}
					}
				}
				if len(cells) != k {
					continue
				}
				comboMask := sudokugrid.NewCandidates(combo)
				var elims []CellDigit
				for _, cell := range cells {
					toClear := g.Candidates[cell].Subtract(comboMask)
					for _, d := range toClear.ToSlice() {
						elims = append(elims, CellDigit{Cell: cell, Digit: d})
					}
				}
				if len(elims) > 0 {
					return &Hint{Eliminations: elims}
				}
			}
		}
		return nil
	}
}

