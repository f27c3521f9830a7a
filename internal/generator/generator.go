// Package generator drives a full solved grid toward a target difficulty
// via clue removal and hill-climbing, grounded on
// original_source/fast-sudoku's Generator.generate and restructured
// around this repo's Grid/solver/difficulty packages.
package generator

import (
	"math/rand"

	"sudoku-core/internal/difficulty"
	"sudoku-core/internal/solver"
	"sudoku-core/internal/sudokugrid"
	"sudoku-core/pkg/constants"
)

// categoryTarget holds the (target, tolerance) pair a category resolves
// to (spec 4.5's table).
type categoryTarget struct {
	target    int32
	tolerance int32
}

var categories = map[string]categoryTarget{
	"trivial":      {4, 4},
	"basic":        {17, 8},
	"intermediate": {36, 10},
	"tough":        {56, 12},
	"diabolical":   {76, 8},
	"extreme":      {88, 4},
	"master":       {94, 2},
	"grandmaster":  {98, 1},
}

func resolveCategory(category string) categoryTarget {
	if ct, ok := categories[category]; ok {
		return ct
	}
	return categoryTarget{17, 8}
}

// GenerateByCategory produces an 81-character canonical puzzle targeting
// the given category's difficulty window, using an entropy-seeded random
// source.
func GenerateByCategory(category string) string {
	return generate(category, newRand())
}

// GenerateWithSeed is the deterministic variant: identical category and
// seed reproduce the identical puzzle string.
func GenerateWithSeed(category string, seed uint64) string {
	return generate(category, newSeededRand(seed))
}

// EvaluateDifficulty parses puzzle leniently and returns its clamped
// difficulty score.
func EvaluateDifficulty(puzzle string) int32 {
	return difficulty.Evaluate(sudokugrid.FromCanonical(puzzle)).Score
}

func generate(category string, rng *rand.Rand) string {
	ct := resolveCategory(category)

	var best *sudokugrid.Grid
	bestDiffAbs := int32(1 << 30)

	for round := 0; round < constants.GeneratorRounds; round++ {
		full := seedSolution(rng)
		if full == nil {
			continue
		}

		current := removeToBaseline(full, rng)
		currentScore := difficulty.Evaluate(current).Score

		for step := 0; step < constants.GeneratorHillSteps; step++ {
			diff := currentScore - ct.target
			if abs32(diff) <= ct.tolerance {
				return current.ToCanonical()
			}
			if abs32(diff) < bestDiffAbs {
				bestDiffAbs = abs32(diff)
				best = current.Clone()
			}

			improved := false
			for attempt := 0; attempt < constants.GeneratorNeighbors && !improved; attempt++ {
				if next, nextScore, ok := proposeNeighbor(current, full, diff, rng); ok && abs32(nextScore-ct.target) < abs32(diff) {
					current, currentScore, improved = next, nextScore, true
					break
				}

				if attempt > constants.GeneratorSwapAfter {
					if next, nextScore, ok := proposeSwap(current, full, diff, ct.target, rng); ok {
						current, currentScore, improved = next, nextScore, true
						break
					}
				}
			}
		}
	}

	if best == nil {
		return sudokugrid.New().ToCanonical()
	}
	return best.ToCanonical()
}

// seedSolution places a random permutation of 1..9 in each of the three
// diagonal boxes, then solves the rest (spec 4.5 step 1).
func seedSolution(rng *rand.Rand) *sudokugrid.Grid {
	g := sudokugrid.New()
	for box := 0; box < 3; box++ {
		digits := shuffleDigits(rng)
		startRow, startCol := box*3, box*3
		k := 0
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				cell := (startRow+r)*9 + (startCol + c)
				g.SetValue(cell, digits[k])
				k++
			}
		}
	}
	sudokugrid.PropagateAll(g)
	return solver.SolveOne(g)
}

// removeToBaseline strips clues from a random order until
// constants.GeneratorBaselineClue remain or the order is exhausted (spec
// 4.5 step 2).
func removeToBaseline(full *sudokugrid.Grid, rng *rand.Rand) *sudokugrid.Grid {
	current := full.Clone()
	order := rng.Perm(constants.TotalCells)
	remaining := constants.TotalCells

	for _, cell := range order {
		if remaining <= constants.GeneratorBaselineClue {
			break
		}
		val := current.Values[cell]
		current.Clear(cell)
		sudokugrid.PropagateAll(current)
		if solver.UniquenessAfterRemoval(current, cell, val) {
			remaining--
		} else {
			current.SetValue(cell, val)
			sudokugrid.PropagateAll(current)
		}
	}
	return current
}

// proposeNeighbor implements spec 4.5 step 3's neighbor generation: add a
// solution digit when too hard, or blank a clue (preserving uniqueness)
// when too easy.
func proposeNeighbor(current, full *sudokugrid.Grid, diff int32, rng *rand.Rand) (*sudokugrid.Grid, int32, bool) {
	next := current.Clone()

	if diff > 0 {
		holes := next.EmptyCells()
		if len(holes) == 0 {
			return nil, 0, false
		}
		cell := holes[rng.Intn(len(holes))]
		next.SetValue(cell, full.Values[cell])
		sudokugrid.PropagateAll(next)
	} else {
		clues := filledCells(next)
		if len(clues) == 0 {
			return nil, 0, false
		}
		cell := clues[rng.Intn(len(clues))]
		val := next.Values[cell]
		next.Clear(cell)
		sudokugrid.PropagateAll(next)
		if !solver.UniquenessAfterRemoval(next, cell, val) {
			return nil, 0, false
		}
	}

	score := difficulty.Evaluate(next).Score
	return next, score, true
}

// proposeSwap implements the escape-local-minima move from spec 4.5 step
// 3: add one clue then remove a different one, accepting a small
// regression (tolerance band +2) to keep the search moving.
func proposeSwap(current, full *sudokugrid.Grid, diff, target int32, rng *rand.Rand) (*sudokugrid.Grid, int32, bool) {
	next := current.Clone()

	holes := next.EmptyCells()
	if len(holes) == 0 {
		return nil, 0, false
	}
	addCell := holes[rng.Intn(len(holes))]
	next.SetValue(addCell, full.Values[addCell])
	sudokugrid.PropagateAll(next)

	clues := filledCellsExcept(next, addCell)
	if len(clues) == 0 {
		return nil, 0, false
	}
	remCell := clues[rng.Intn(len(clues))]
	remVal := next.Values[remCell]
	next.Clear(remCell)
	sudokugrid.PropagateAll(next)
	if !solver.UniquenessAfterRemoval(next, remCell, remVal) {
		return nil, 0, false
	}

	score := difficulty.Evaluate(next).Score
	if abs32(score-target) > abs32(diff)+constants.GeneratorSwapSlack {
		return nil, 0, false
	}
	return next, score, true
}

func filledCells(g *sudokugrid.Grid) []int {
	var out []int
	for i, v := range g.Values {
		if v != 0 {
			out = append(out, i)
		}
	}
	return out
}

func filledCellsExcept(g *sudokugrid.Grid, except int) []int {
	var out []int
	for i, v := range g.Values {
		if v != 0 && i != except {
			out = append(out, i)
		}
	}
	return out
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
