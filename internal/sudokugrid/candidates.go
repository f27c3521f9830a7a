package sudokugrid

// Candidates is a bitmask of possible digits (1-9) for one cell. Bit
// position d-1 corresponds to digit d; bit 9-15 are unused.
type Candidates uint16

// AllCandidates returns a mask with every digit 1-9 set.
func AllCandidates() Candidates {
	return Candidates(0x1FF)
}

// NewCandidates builds a mask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// Has reports whether digit is a candidate.
func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	return c&(1<<uint(digit-1)) != 0
}

// Set adds digit to the mask.
func (c Candidates) Set(digit int) Candidates {
	if digit < 1 || digit > 9 {
		return c
	}
	return c | (1 << uint(digit-1))
}

// Clear removes digit from the mask.
func (c Candidates) Clear(digit int) Candidates {
	if digit < 1 || digit > 9 {
		return c
	}
	return c &^ (1 << uint(digit-1))
}

// Count returns the number of set bits (popcount).
func (c Candidates) Count() int {
	n := 0
	for v := uint16(c); v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Only returns the single candidate digit, if there is exactly one.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			return d, true
		}
	}
	return 0, false
}

// ToSlice returns the candidate digits in ascending order.
func (c Candidates) ToSlice() []int {
	var out []int
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsEmpty reports whether no digit is a candidate.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Intersect returns digits present in both masks.
func (c Candidates) Intersect(other Candidates) Candidates {
	return c & other
}

// Union returns digits present in either mask.
func (c Candidates) Union(other Candidates) Candidates {
	return c | other
}

// Subtract returns digits in c but not in other.
func (c Candidates) Subtract(other Candidates) Candidates {
	return c &^ other
}
