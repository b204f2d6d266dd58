// Package bitset provides the fixed-width bitset primitives shared by the
// board, geometry tables and strategy library: a 9-bit candidate mask, a
// 27-bit house mask, and an 81-bit cell pattern. Go has no
// value-level-width generics suitable for inline bit tricks, so each width
// gets its own concrete type.
package bitset

import "math/bits"

// Candidates is a bitmask of possible digits 1-9 for a single cell. Bit k
// (1<=k<=9) set means digit k is still possible. Bit 0 is unused.
type Candidates uint16

// FullCandidates is a mask with digits 1-9 all set.
const FullCandidates Candidates = 0b11_1111_1110

// Has reports whether digit d is set.
func (c Candidates) Has(d int) bool { return c&(1<<uint(d)) != 0 }

// With returns c with digit d set.
func (c Candidates) With(d int) Candidates { return c | 1<<uint(d) }

// Without returns c with digit d cleared.
func (c Candidates) Without(d int) Candidates { return c &^ (1 << uint(d)) }

// Count returns the number of set digits (popcount).
func (c Candidates) Count() int { return bits.OnesCount16(uint16(c)) }

// IsEmpty reports whether no digit is set.
func (c Candidates) IsEmpty() bool { return c == 0 }

// Only returns the sole candidate digit and true if exactly one bit is set.
func (c Candidates) Only() (int, bool) {
	if bits.OnesCount16(uint16(c)) != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(c)), true
}

// Lowest returns the lowest set digit, or 0 if empty.
func (c Candidates) Lowest() int {
	if c == 0 {
		return 0
	}
	return bits.TrailingZeros16(uint16(c))
}

// And, Or, AndNot mirror the usual bitset algebra.
func (c Candidates) And(o Candidates) Candidates    { return c & o }
func (c Candidates) Or(o Candidates) Candidates     { return c | o }
func (c Candidates) AndNot(o Candidates) Candidates { return c &^ o }

// Digits returns the set digits in ascending order.
func (c Candidates) Digits() []int {
	out := make([]int, 0, 9)
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// DigitsOf builds a Candidates mask from a slice of digits.
func DigitsOf(digits ...int) Candidates {
	var c Candidates
	for _, d := range digits {
		if d >= 1 && d <= 9 {
			c = c.With(d)
		}
	}
	return c
}

// String renders the mask as "{1,3,7}" for debugging/descriptions.
func (c Candidates) String() string {
	digits := c.Digits()
	if len(digits) == 0 {
		return "{}"
	}
	out := make([]byte, 0, 2+2*len(digits))
	out = append(out, '{')
	for i, d := range digits {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, byte('0'+d))
	}
	out = append(out, '}')
	return string(out)
}

// HouseMask is a bitmask over the 27 houses (0-8 rows, 9-17 columns,
// 18-26 boxes).
type HouseMask uint32

func (h HouseMask) Has(house int) bool      { return h&(1<<uint(house)) != 0 }
func (h HouseMask) With(house int) HouseMask { return h | 1<<uint(house) }

// Pattern is an 81-bit set, one bit per cell, stored as two 64-bit words
// (spec calls for [u64;2] over a single 128-bit word for tight inline loops).
type Pattern struct {
	lo uint64 // cells 0-63
	hi uint64 // cells 64-80
}

// FullPattern is the pattern with all 81 cells set.
var FullPattern = Pattern{lo: ^uint64(0), hi: (1 << 17) - 1}

// Bit returns the single-cell pattern for cell.
func Bit(cell int) Pattern {
	if cell < 64 {
		return Pattern{lo: 1 << uint(cell)}
	}
	return Pattern{hi: 1 << uint(cell-64)}
}

// Test reports whether cell is set.
func (p Pattern) Test(cell int) bool {
	if cell < 64 {
		return p.lo&(1<<uint(cell)) != 0
	}
	return p.hi&(1<<uint(cell-64)) != 0
}

// Set returns p with cell set.
func (p Pattern) Set(cell int) Pattern {
	if cell < 64 {
		p.lo |= 1 << uint(cell)
	} else {
		p.hi |= 1 << uint(cell-64)
	}
	return p
}

// Clear returns p with cell cleared.
func (p Pattern) Clear(cell int) Pattern {
	if cell < 64 {
		p.lo &^= 1 << uint(cell)
	} else {
		p.hi &^= 1 << uint(cell-64)
	}
	return p
}

// And, Or, AndNot, Xor mirror the usual bitset algebra.
func (p Pattern) And(o Pattern) Pattern    { return Pattern{p.lo & o.lo, p.hi & o.hi} }
func (p Pattern) Or(o Pattern) Pattern     { return Pattern{p.lo | o.lo, p.hi | o.hi} }
func (p Pattern) AndNot(o Pattern) Pattern { return Pattern{p.lo &^ o.lo, p.hi &^ o.hi} }
func (p Pattern) Xor(o Pattern) Pattern    { return Pattern{p.lo ^ o.lo, p.hi ^ o.hi} }
func (p Pattern) Not() Pattern             { return p.Complement() }

// Complement returns the 81-cell complement of p (cells not in p).
func (p Pattern) Complement() Pattern {
	return Pattern{lo: ^p.lo & FullPattern.lo, hi: ^p.hi & FullPattern.hi}
}

// IsEmpty reports whether no cell is set.
func (p Pattern) IsEmpty() bool { return p.lo == 0 && p.hi == 0 }

// Equal reports whether p and o have exactly the same cells set.
func (p Pattern) Equal(o Pattern) bool { return p.lo == o.lo && p.hi == o.hi }

// Count returns the number of set cells (popcount).
func (p Pattern) Count() int { return bits.OnesCount64(p.lo) + bits.OnesCount64(p.hi) }

// Lowest returns the lowest-index set cell, or -1 if empty.
func (p Pattern) Lowest() int {
	if p.lo != 0 {
		return bits.TrailingZeros64(p.lo)
	}
	if p.hi != 0 {
		return 64 + bits.TrailingZeros64(p.hi)
	}
	return -1
}

// Cells returns the set cell indices in ascending order.
func (p Pattern) Cells() []int {
	out := make([]int, 0, p.Count())
	lo := p.lo
	for lo != 0 {
		i := bits.TrailingZeros64(lo)
		out = append(out, i)
		lo &= lo - 1
	}
	hi := p.hi
	for hi != 0 {
		i := bits.TrailingZeros64(hi)
		out = append(out, 64+i)
		hi &= hi - 1
	}
	return out
}

// PatternOf builds a Pattern from a slice of cell indices.
func PatternOf(cells ...int) Pattern {
	var p Pattern
	for _, c := range cells {
		p = p.Set(c)
	}
	return p
}

// Intersects reports whether p and o share at least one set cell.
func (p Pattern) Intersects(o Pattern) bool {
	return p.lo&o.lo != 0 || p.hi&o.hi != 0
}

// SubsetOf reports whether every set cell of p is also set in o.
func (p Pattern) SubsetOf(o Pattern) bool {
	return p.lo&^o.lo == 0 && p.hi&^o.hi == 0
}
