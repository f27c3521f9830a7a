// Package difficulty reduces a technique-engine hint trace to a single
// 1-100 score, grounded on the teacher's AnalyzePuzzleDifficulty loop in
// internal/sudoku/human/solver.go but rebuilt around the fixed weight
// table and formula of this domain.
package difficulty

import (
	"math"

	"sudoku-core/internal/sudokugrid"
	"sudoku-core/internal/technique"
)

// Result is the outcome of evaluating a puzzle: a clamped 1-100 score and
// whether the hint engine alone could solve it (spec 3, "DifficultyResult").
type Result struct {
	Score    int32
	Solvable bool
}

// Evaluate iterates hint, apply, hint until the grid is solved or the
// registry returns no hint, then aggregates the recorded weights into a
// score (spec 4.4).
func Evaluate(g *sudokugrid.Grid) Result {
	work := g.Clone()
	sudokugrid.PropagateAll(work)

	r := technique.NewRegistry()
	var maxW, sumW float64
	var steps int
	seen := make(map[string]bool)

	for {
		if work.IsSolved() {
			return Result{Score: score(maxW, sumW, steps, len(seen)), Solvable: true}
		}
		hint := r.GetHint(work)
		if hint == nil {
			return Result{Score: 100, Solvable: false}
		}
		technique.Apply(work, hint)
		if hint.Weight > maxW {
			maxW = hint.Weight
		}
		sumW += hint.Weight
		steps++
		seen[hint.Technique] = true
	}
}

func score(maxW, sumW float64, steps, techniques int) int32 {
	var avgW float64
	if steps > 0 {
		avgW = sumW / float64(steps)
	}
	diversity := math.Min(5.0, 0.5*float64(techniques))
	weighted := 0.7*maxW + 0.2*avgW + diversity

	rounded := math.Round(weighted)
	if rounded < 1 {
		rounded = 1
	}
	if rounded > 100 {
		rounded = 100
	}
	return int32(rounded)
}
