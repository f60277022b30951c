// Package verialg is a verified reference library for a handful of classic
// algorithms whose correct implementation is famously bug-prone, together
// with a property-based oracle that checks every implementation against its
// formal contract.
//
// 🚀 What is verialg?
//
//	A deterministic, dependency-light library that brings together:
//		• Shortest paths: Bellman–Ford with explicit negative-cycle reporting
//		• Sequence decoding: log-space Viterbi over hidden Markov models
//		• Linear recurrences: Berlekamp–Massey minimal LFSR synthesis over GF(p)
//		• Text transforms: Burrows–Wheeler forward + inverse with suffix sorting
//		• Hashing: KangarooTwelve-style sponge XOF over Keccak-p[1600]
//		• Verification: a seeded property oracle that drives all of the above
//
// ✨ Why choose verialg?
//
//   - Correctness first – every algorithm ships with the property set that
//     defines it (optimality, round-trip identity, recurrence replay,
//     prefix consistency), not just example-based tests
//   - Deterministic – every randomized component takes an explicit seed;
//     same seed ⇒ identical run on every platform
//   - Explicit failure – sentinel errors and distinguished result variants;
//     no panics, no silently corrupted output
//   - Pure Go – no cgo; runtime code depends only on the standard library
//
// The module is organized as one package per algorithm:
//
//	gfp/         — GF(p) modular arithmetic, GF(2) polynomials, bit rotation
//	bellmanford/ — single-source shortest paths, negative-cycle detection
//	viterbi/     — most-likely state sequence decoding for HMMs
//	linrec/      — Berlekamp–Massey shortest linear recurrence solver
//	bwt/         — Burrows–Wheeler transform, forward and inverse
//	sponge/      — Keccak-p permutation, duplex sponge, KangarooTwelve XOF
//	oracle/      — property-based verification harness and fixture generators
//
// Quick taste:
//
//	last, primary, _ := bwt.Transform("banana", bwt.WithSentinel('$'))
//	// last == "annb$aa", and bwt.Inverse(last, primary) == "banana"
//
// Dive into each package's doc.go for contracts, complexity notes and the
// exact property set the oracle enforces.
package verialg
