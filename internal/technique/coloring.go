package technique

import "sudoku-core/internal/sudokugrid"

// maxColoringNeighbors caps the strong-link adjacency kept per cell per
// digit. A cell participates in at most one strong link per unit (row,
// column, box), so 4 is already generous; extra links are dropped, which
// only loses deductions, never fabricates one (spec section 9).
const maxColoringNeighbors = 4

// DetectSimpleColoring builds, for each digit, a graph of empty candidate
// cells connected by strong links (the only two candidate cells for that
// digit within some unit), 2-colors each connected component, and applies
// the conflict and witness elimination rules (spec 4.3).
func DetectSimpleColoring(g *sudokugrid.Grid) *Hint {
	for digit := 1; digit <= 9; digit++ {
		if hint := colorDigit(g, digit); hint != nil {
			return hint
		}
	}
	return nil
}

func colorDigit(g *sudokugrid.Grid, digit int) *Hint {
	var active []int
	isActive := make(map[int]bool)
	for i, v := range g.Values {
		if v == 0 && g.Candidates[i].Has(digit) {
			active = append(active, i)
			isActive[i] = true
		}
	}
	if len(active) < 2 {
		return nil
	}

	neighbors := make(map[int][]int, len(active))
	for _, unit := range sudokugrid.AllUnits() {
		var inUnit []int
		for _, cell := range unit.Cells {
			if isActive[cell] {
				inUnit = append(inUnit, cell)
			}
		}
		if len(inUnit) != 2 {
			continue
		}
		a, b := inUnit[0], inUnit[1]
		if len(neighbors[a]) < maxColoringNeighbors {
			neighbors[a] = append(neighbors[a], b)
		}
		if len(neighbors[b]) < maxColoringNeighbors {
			neighbors[b] = append(neighbors[b], a)
		}
	}

	color := make(map[int]int)
	for _, start := range active {
		if _, seen := color[start]; seen {
			continue
		}
		if len(neighbors[start]) == 0 {
			continue
		}

		component := []int{start}
		color[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range neighbors[cur] {
				if _, seen := color[nb]; seen {
					continue
				}
				color[nb] = 1 - color[cur]
				component = append(component, nb)
				queue = append(queue, nb)
			}
		}

		if hint := coloringEliminations(g, digit, component, color); hint != nil {
			return hint
		}
	}
	return nil
}

func coloringEliminations(g *sudokugrid.Grid, digit int, component []int, color map[int]int) *Hint {
	// Conflict rule: two same-colored cells sharing a unit damn that color.
	for i := 0; i < len(component); i++ {
		for j := i + 1; j < len(component); j++ {
			a, b := component[i], component[j]
			if color[a] != color[b] {
				continue
			}
			if sudokugrid.ArePeers(a, b) {
				bad := color[a]
				var elims []CellDigit
				for _, cell := range component {
					if color[cell] == bad {
						elims = append(elims, CellDigit{Cell: cell, Digit: digit})
					}
				}
				if len(elims) > 0 {
					return &Hint{Eliminations: elims}
				}
			}
		}
	}

	// Witness rule: an outside cell seeing both colors cannot hold digit.
	var elims []CellDigit
	inComponent := make(map[int]bool, len(component))
	for _, c := range component {
		inComponent[c] = true
	}
	for i, v := range g.Values {
		if v != 0 || inComponent[i] || !g.Candidates[i].Has(digit) {
			continue
		}
		seesA, seesB := false, false
		for _, cell := range component {
			if !sudokugrid.ArePeers(i, cell) {
				continue
			}
			if color[cell] == 0 {
				seesA = true
			} else {
				seesB = true
			}
		}
		if seesA && seesB {
			elims = append(elims, CellDigit{Cell: i, Digit: digit})
		}
	}
	if len(elims) > 0 {
		return &Hint{Eliminations: elims}
	}
	return nil
}
