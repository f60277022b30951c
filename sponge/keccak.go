// Package sponge - the Keccak-p[1600] permutation.
package sponge

import (
	"errors"

	"github.com/katalvlaran/verialg/gfp"
)

// ErrBadRounds indicates a round count outside [1, 24].
var ErrBadRounds = errors.New("sponge: round count must be in [1, 24]")

// maxRounds is the full Keccak-f[1600] round count.
const maxRounds = 24

// roundConstants are the 24 ι-step constants of Keccak-f[1600], FIPS 202
// table order. Keccak-p[1600, nr] uses the last nr of them.
var roundConstants = [maxRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets and piLanes drive the combined ρ+π step: lane piLanes[i]
// receives the previous value rotated by rhoOffsets[i], walking the π cycle
// starting from lane 1.
var rhoOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piLanes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// Permute applies Keccak-p[1600, rounds] to the state in place.
// Lanes are indexed a[x + 5y] in little-endian bit order (FIPS 202 §3.1.2).
//
// Complexity: O(rounds), constant work per round.
func Permute(a *[25]uint64, rounds int) error {
	if rounds < 1 || rounds > maxRounds {
		return ErrBadRounds
	}
	keccakP(a, rounds)

	return nil
}

// keccakP is the unchecked core shared with Sponge's hot path.
func keccakP(a *[25]uint64, rounds int) {
	var bc [5]uint64
	for r := maxRounds - rounds; r < maxRounds; r++ {
		// θ: column parities, then XOR each column with its neighbours'.
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ gfp.RotL64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// ρ+π: rotate and permute lanes along the π cycle.
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piLanes[i]
			t, a[j] = a[j], gfp.RotL64(t, rhoOffsets[i])
		}

		// χ: the only non-linear step.
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] = bc[i] ^ (^bc[(i+1)%5] & bc[(i+2)%5])
			}
		}

		// ι: break symmetry with the round constant.
		a[0] ^= roundConstants[r]
	}
}
