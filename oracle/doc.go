// Package oracle is the property-based verification harness for the
// algorithm packages: it drives each implementation through its public
// contract with seeded random and adversarial inputs and asserts the formal
// property that defines the algorithm — optimality, round-trip identity,
// recurrence replay, prefix consistency.
//
// What
//
//   - Property: a named check, fed a deterministic *rand.Rand per run.
//   - Suite: the property set of one algorithm.
//   - Verify: runs every property of every suite Trials times, never aborts
//     on the first failure, and aggregates everything into a Report — one
//     failing algorithm must not mask another.
//   - Suites: the built-in bindings for bellmanford, viterbi, linrec, bwt
//     and sponge, each checked against an independent brute-force or
//     structural oracle.
//
// Determinism
//
//	Verify derives one independent RNG stream per property from the base
//	seed (SplitMix64 mixing), so adding a property never perturbs the
//	inputs of the others, and the same seed reproduces the same report on
//	every platform. Seed 0 selects a fixed default.
//
// Brute-force oracles
//
//	The point of the harness is that the reference answer is computed by a
//	DIFFERENT method than the implementation under test: exhaustive simple
//	path/cycle enumeration for Bellman–Ford (tractable at ≤ 6 vertices),
//	exhaustive |S|^T path scoring for Viterbi, recurrence replay for
//	Berlekamp–Massey, the identity function for the BWT round trip, and
//	digest-prefix comparison for the sponge XOF.
//
// Concurrency
//
//	A Report is built sequentially; the algorithm invocations themselves
//	are pure, so callers may run multiple Verify calls (or split suites
//	across goroutines) without coordination.
//
// Usage
//
//	report := oracle.Verify(oracle.Suites(), oracle.WithTrials(128), oracle.WithSeed(42))
//	if report.Failed() {
//	    fmt.Println(report) // one line per property, failures annotated
//	}
package oracle
