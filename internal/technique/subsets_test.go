package technique

import (
	"testing"

	"sudoku-core/internal/sudokugrid"
)

func TestNakedSubsetDetector_Pair(t *testing.T) {
	g := sudokugrid.New()
	for cell, digit := range map[int]int{3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9} {
		g.SetValue(cell, digit)
	}
	g.Candidates[0] = sudokugrid.NewCandidates([]int{1, 2})
	g.Candidates[1] = sudokugrid.NewCandidates([]int{1, 2})
	g.Candidates[2] = sudokugrid.NewCandidates([]int{1, 3})

	hint := nakedSubsetDetector(2)(g)
	if hint == nil {
		t.Fatal("expected a naked pair elimination")
	}
	found := false
	for _, e := range hint.Eliminations {
		if e.Cell == 2 && e.Digit == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected digit 1 eliminated from cell 2, got %v", hint.Eliminations)
	}
}

func TestNakedSubsetDetector_NoneOnBlankGrid(t *testing.T) {
	g := sudokugrid.New()
	if hint := nakedSubsetDetector(2)(g); hint != nil {
		t.Errorf("expected no naked pair on a blank grid, got %v", hint)
	}
}

func TestHiddenSubsetDetector_Pair(t *testing.T) {
	g := sudokugrid.New()
	// Row 0: seven cells placed, leaving two empty. Digits 1 and 2 are only
	// candidates of those two cells, but each cell also carries an extra
	// (stale) candidate that a hidden pair should strip away.
	for cell, digit := range map[int]int{2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9} {
		g.SetValue(cell, digit)
	}
	g.Candidates[0] = sudokugrid.NewCandidates([]int{1, 2, 5})
	g.Candidates[1] = sudokugrid.NewCandidates([]int{1, 2, 6})

	hint := hiddenSubsetDetector(2)(g)
	if hint == nil {
		t.Fatal("expected a hidden pair elimination")
	}
	for _, e := range hint.Eliminations {
		if e.Digit != 5 && e.Digit != 6 {
			t.Errorf("unexpected elimination %v: only the stray digits should be cleared", e)
		}
	}
	if len(hint.Eliminations) != 2 {
		t.Errorf("expected exactly 2 eliminations, got %v", hint.Eliminations)
	}
}
