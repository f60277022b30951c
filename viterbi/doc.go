// Package viterbi decodes the most likely hidden-state sequence of a hidden
// Markov model (HMM) for a given observation sequence, working entirely in
// log-space.
//
// What
//
//   - NewHMM validates and freezes a model: states S, observation symbols O,
//     initial distribution π, transition matrix A (S×S), emission matrix B
//     (S×O). Probability rows must sum to 1 within ProbEps.
//   - Decode fills the trellis δ[t][s] = max log-probability of any state
//     path ending in s after t observations, with backpointers ψ for path
//     recovery, then backtracks from the best final state.
//
// Why log-space
//
//	Products of probabilities underflow float64 after a few hundred steps.
//	Sums of logs do not. Zero probabilities become -Inf, and IEEE 754
//	guarantees -Inf + finite = -Inf and max(-Inf, x) = x, so impossible
//	paths are excluded arithmetically — no NaN can escape because no +Inf
//	ever enters the trellis.
//
// Tie-breaking
//
//	When several predecessors yield the same maximal δ, the lowest-indexed
//	state (in NewHMM order) wins, both per-step and at termination. Decode
//	output is therefore a deterministic function of the model and input.
//
// Memory modes (adapted from the DTW rolling-array trade-off)
//
//   - FullTrellis — keep all T×S backpointers; Result includes the path.
//   - ScoreOnly   — keep two rolling columns; Result.Path is nil, only
//     LogProb is produced. Memory drops from O(T·S) to O(S).
//
// Complexity (T = len(observations), S = |states|)
//
//   - Time:   O(T·S²)
//   - Memory: O(T·S) (FullTrellis) or O(S) (ScoreOnly)
//
// Errors
//
//   - NewHMM: ErrNoStates, ErrNoSymbols, ErrDimension, ErrDuplicateLabel,
//     ErrBadDistribution.
//   - Decode: ErrNilModel, ErrEmptyObservations, ErrUnknownSymbol.
package viterbi
