package sudokugrid

// PropagateAll resets every candidate mask to "all nine digits" and then
// re-derives it from the current placements, peer by peer (spec 4.1).
// It returns false if any placement produced a contradiction (an
// empty-mask empty cell); the pass still visits every placement.
func PropagateAll(g *Grid) bool {
	for i := range g.Candidates {
		if g.Values[i] == 0 {
			g.Candidates[i] = AllCandidates()
		} else {
			g.Candidates[i] = 0
		}
	}
	ok := true
	for i, v := range g.Values {
		if v != 0 {
			if !PropagateMove(g, i, v) {
				ok = false
			}
		}
	}
	return ok
}

// PropagateMove clears bit d-1 from every empty peer of cell i. It
// returns false the moment any peer's mask becomes empty (a
// contradiction); the caller abandons the branch in that case.
func PropagateMove(g *Grid, i, d int) bool {
	for _, p := range Peers[i] {
		if g.Values[p] != 0 {
			continue
		}
		if g.Candidates[p].Has(d) {
			g.Candidates[p] = g.Candidates[p].Clear(d)
			if g.Candidates[p].IsEmpty() {
				return false
			}
		}
	}
	return true
}
