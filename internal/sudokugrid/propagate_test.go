package sudokugrid

import "testing"

func legalDigits(g *Grid, i int) Candidates {
	var c Candidates
	row, col, box := RowOf(i), ColOf(i), BoxOf(i)
	for d := 1; d <= 9; d++ {
		legal := true
		for _, p := range RowCells(row) {
			if g.Values[p] == d {
				legal = false
			}
		}
		for _, p := range ColCells(col) {
			if g.Values[p] == d {
				legal = false
			}
		}
		for _, p := range BoxCells(box) {
			if g.Values[p] == d {
				legal = false
			}
		}
		if legal {
			c = c.Set(d)
		}
	}
	return c
}

func TestPropagateAll_MatchesLegalDigits(t *testing.T) {
	g := FromCanonical("800000000003600000070090200050007000000045700000100030001000068008500010090000400")
	for i, v := range g.Values {
		if v != 0 {
			if g.Candidates[i] != 0 {
				t.Errorf("placed cell %d should have empty candidates", i)
			}
			continue
		}
		if g.Candidates[i] != legalDigits(g, i) {
			t.Errorf("cell %d: candidates %v, want %v", i, g.Candidates[i].ToSlice(), legalDigits(g, i).ToSlice())
		}
	}
}

func TestPropagateMove_DetectsContradiction(t *testing.T) {
	g := New()
	g.SetValue(0, 5)
	PropagateAll(g)
	// Force a duplicate into a peer, bypassing the normal assignment path,
	// then clear the only remaining candidate to engineer a contradiction.
	g.Candidates[1] = NewCandidates([]int{5})
	if ok := PropagateMove(g, 0, 5); !ok {
		// The forced {5} mask is emptied by this call, so it already
		// reports a contradiction; only the second call below is checked.
	}
	g.Candidates[1] = NewCandidates([]int{7})
	if ok := PropagateMove(g, 0, 7); ok {
		t.Error("expected PropagateMove to report a contradiction when a peer's last candidate is cleared")
	}
	if !g.Candidates[1].IsEmpty() {
		t.Error("contradiction cell should end up with an empty mask")
	}
}
