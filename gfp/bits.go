package gfp

import "math/bits"

// RotL64 rotates x left by n bits. n is taken modulo 64, so negative values
// rotate right. This is the only bit primitive the Keccak-p permutation needs.
func RotL64(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, n)
}

// Deg2 returns the degree of the GF(2) polynomial packed into the bits of a
// (bit i ↔ coefficient of x^i). The zero polynomial reports degree -1.
func Deg2(a uint64) int {
	return bits.Len64(a) - 1
}

// PolyMul2 returns the carry-less (GF(2)) product of a and b as a 128-bit
// value split into (hi, lo).
//
// Complexity: O(64) shift-and-xor steps.
func PolyMul2(a, b uint64) (hi, lo uint64) {
	for i := 0; b != 0; i++ {
		if b&1 == 1 {
			lo ^= a << uint(i)
			if i > 0 {
				hi ^= a >> uint(64-i)
			}
		}
		b >>= 1
	}

	return hi, lo
}

// PolyMod2 reduces the 128-bit GF(2) polynomial (hi, lo) modulo the nonzero
// polynomial m and returns the remainder. m must be nonzero; the zero modulus
// returns lo unchanged (no reduction is defined).
//
// Complexity: O(128) in the degree gap.
func PolyMod2(hi, lo, m uint64) uint64 {
	if m == 0 {
		return lo
	}
	dm := Deg2(m)

	// Fold the high word down from the top: a set bit at position 64+i is
	// cancelled by xoring in m << (64+i-dm), whose leading bit lands exactly there.
	for i := 63; i >= 0; i-- {
		if hi&(1<<uint(i)) == 0 {
			continue
		}
		shift := 64 + i - dm
		if shift >= 64 {
			hi ^= m << uint(shift-64)
		} else {
			hi ^= m >> uint(64-shift)
			lo ^= m << uint(shift)
		}
	}

	// Reduce the low word the same way.
	for lo != 0 {
		d := Deg2(lo)
		if d < dm {
			break
		}
		lo ^= m << uint(d-dm)
	}

	return lo
}

// LexLessPair reports whether the pair (a1, a2) strictly precedes (b1, b2)
// in lexicographic order. Shared by the BWT suffix sort's rank doubling.
func LexLessPair(a1, a2, b1, b2 int) bool {
	if a1 != b1 {
		return a1 < b1
	}

	return a2 < b2
}
