package sudokugrid

import (
	"strings"
	"testing"
)

const hardest = "800000000003600000070090200050007000000045700000100030001000068008500010090000400"

func TestFromCanonical_ToCanonical_RoundTrip(t *testing.T) {
	g := FromCanonical(hardest)
	// ToCanonical emits '.' for empty cells, so the '0' empties of the
	// input come back as '.'.
	want := strings.ReplaceAll(hardest, "0", ".")
	if got := g.ToCanonical(); got != want {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestFromCanonical_LenientOnShortOrMalformed(t *testing.T) {
	g := FromCanonical("53..7....")
	if g.Values[0] != 5 || g.Values[1] != 3 {
		t.Fatal("expected leading digits to parse as givens")
	}
	for i := 9; i < 81; i++ {
		if g.Values[i] != 0 {
			t.Fatalf("cell %d should default to empty for a short string", i)
		}
	}
}

func TestPropagateAll_Idempotent(t *testing.T) {
	g := FromCanonical(hardest)
	PropagateAll(g)
	snapshot := g.Candidates
	PropagateAll(g)
	if snapshot != g.Candidates {
		t.Error("PropagateAll should be idempotent")
	}
}

func TestSetValue_ClearsCandidates(t *testing.T) {
	g := New()
	g.SetValue(0, 5)
	if g.Candidates[0] != 0 {
		t.Error("SetValue should clear the cell's own candidate mask")
	}
	if g.Values[0] != 5 {
		t.Error("SetValue should write the value")
	}
}

func TestIsSolved(t *testing.T) {
	g := New()
	if g.IsSolved() {
		t.Error("an empty grid should not be solved")
	}
	for i := range g.Values {
		g.Values[i] = 1
	}
	if !g.IsSolved() {
		t.Error("a fully-filled grid should be solved")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g := New()
	g.SetValue(0, 1)
	clone := g.Clone()
	clone.SetValue(1, 2)
	if g.Values[1] != 0 {
		t.Error("mutating a clone should not affect the original")
	}
}
