package technique

import (
	"testing"

	"sudoku-core/internal/sudokugrid"
)

func TestDetectPointingPair(t *testing.T) {
	g := sudokugrid.New()
	for cell, digit := range map[int]int{2: 3, 9: 4, 10: 5, 11: 6, 18: 7, 19: 8, 20: 9} {
		g.SetValue(cell, digit)
	}
	g.Candidates[0] = sudokugrid.NewCandidates([]int{1, 2})
	g.Candidates[1] = sudokugrid.NewCandidates([]int{1, 3})

	hint := DetectPointingPair(g)
	if hint == nil {
		t.Fatal("expected a pointing pair elimination")
	}
	found := false
	for _, e := range hint.Eliminations {
		if e.Digit != 1 {
			t.Errorf("unexpected elimination of digit %d, want only digit 1", e.Digit)
		}
		if e.Cell == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected digit 1 eliminated from cell 3 (same row, outside the box), got %v", hint.Eliminations)
	}
}

func TestDetectBoxLineReduction(t *testing.T) {
	g := sudokugrid.New()
	for cell, digit := range map[int]int{3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9} {
		g.SetValue(cell, digit)
	}
	g.Candidates[0] = sudokugrid.NewCandidates([]int{1, 2})
	g.Candidates[1] = sudokugrid.NewCandidates([]int{1, 3})
	g.Candidates[2] = sudokugrid.NewCandidates([]int{1, 4})

	hint := DetectBoxLineReduction(g)
	if hint == nil {
		t.Fatal("expected a box/line reduction elimination")
	}
	found := false
	for _, e := range hint.Eliminations {
		if e.Digit != 1 {
			t.Errorf("unexpected elimination of digit %d, want only digit 1", e.Digit)
		}
		if e.Cell == 9 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected digit 1 eliminated from cell 9 (same box, outside the row), got %v", hint.Eliminations)
	}
}

func TestIntersections_NoneOnBlankGrid(t *testing.T) {
	g := sudokugrid.New()
	if hint := DetectPointingPair(g); hint != nil {
		t.Errorf("expected no pointing pair on a blank grid, got %v", hint)
	}
	if hint := DetectBoxLineReduction(g); hint != nil {
		t.Errorf("expected no box/line reduction on a blank grid, got %v", hint)
	}
}
