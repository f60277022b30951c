// Package oracle - deterministic RNG derivation.
//
// Goals:
//   - Determinism: same seed ⇒ identical report across platforms.
//   - Isolation: one independent stream per property, so adding or
//     reordering properties never perturbs another property's inputs.
//   - No time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; streams are derived per
//     property and never shared.
package oracle

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer (Vigna 2014 constants), giving
// strong bit diffusion between adjacent stream IDs.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream for the given
// stream ID. base.Int63() is consumed once to decorrelate consecutive
// derivations even when a stream ID is accidentally reused.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
