package generator

import (
	"math/rand"
	"time"
)

// newRand returns an unseeded (entropy-seeded) source for category-only
// generation, grounded on rybkr-sudoku's generator.New seeding fallback.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// newSeededRand returns a deterministic source: identical seed and
// identical generator inputs must reproduce the same puzzle bit-exactly
// (spec section 5).
func newSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// shuffleDigits returns a random permutation of 1..9.
func shuffleDigits(rng *rand.Rand) [9]int {
	var digits [9]int
	for i := range digits {
		digits[i] = i + 1
	}
	rng.Shuffle(9, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	return digits
}
