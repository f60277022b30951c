// Package viterbi - the log-space trellis fill and backtrack.
//
// Algorithm outline (T observations, S states):
//  1. Base:      δ₁(s) = log π(s) + log B(s, o₁)
//  2. Recursion: δₜ(s) = maxₛ' [δₜ₋₁(s') + log A(s', s)] + log B(s, oₜ),
//     recording the arg-max predecessor as ψₜ(s).
//  3. Terminate: s* = argmaxₛ δ_T(s); backtrack ψ from s* down to t = 1
//     and reverse.
//
// All ties (step 2 and 3) break toward the lowest state index, so the
// decode is reproducible. All arithmetic is -Inf-safe: impossible paths
// carry -Inf and lose every max without generating NaN.
package viterbi

import (
	"fmt"
	"math"
)

// Decode returns the most likely hidden-state path for observations under
// model m, together with its joint log-probability.
//
// Preconditions (validated in order):
//  1. m must be non-nil                        (ErrNilModel)
//  2. observations must be non-empty           (ErrEmptyObservations)
//  3. every observation is in m's alphabet     (ErrUnknownSymbol)
//
// In ScoreOnly mode Result.Path is nil and memory drops to O(S).
//
// Complexity: O(T·S²) time.
func Decode(m *HMM, observations []string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, ErrNilModel
	}
	if len(observations) == 0 {
		return nil, ErrEmptyObservations
	}

	// Resolve symbols to dense indices up front; fail before any DP work.
	obs := make([]int, len(observations))
	for t, sym := range observations {
		k, ok := m.symbolIndex[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, sym, t)
		}
		obs[t] = k
	}

	if cfg.MemoryMode == ScoreOnly {
		return decodeScoreOnly(m, obs), nil
	}

	return decodeFull(m, obs), nil
}

// decodeFull fills the complete trellis with backpointers and backtracks.
func decodeFull(m *HMM, obs []int) *Result {
	T, S := len(obs), len(m.states)

	delta := make([][]float64, T)
	psi := make([][]int, T)
	for t := range delta {
		delta[t] = make([]float64, S)
		psi[t] = make([]int, S)
	}

	// Base case.
	for s := 0; s < S; s++ {
		delta[0][s] = m.logPi[s] + m.logB[s][obs[0]]
		psi[0][s] = -1
	}

	// Recursion: strictly-greater comparison keeps the lowest-indexed
	// arg-max because predecessors are scanned in ascending order.
	for t := 1; t < T; t++ {
		for s := 0; s < S; s++ {
			best, arg := math.Inf(-1), 0
			for sp := 0; sp < S; sp++ {
				cand := delta[t-1][sp] + m.logA[sp][s]
				if cand > best {
					best, arg = cand, sp
				}
			}
			delta[t][s] = best + m.logB[s][obs[t]]
			psi[t][s] = arg
		}
	}

	// Termination, same tie-break.
	bestProb, bestState := math.Inf(-1), 0
	for s := 0; s < S; s++ {
		if delta[T-1][s] > bestProb {
			bestProb, bestState = delta[T-1][s], s
		}
	}

	// Backtrack and render labels.
	path := make([]string, T)
	s := bestState
	for t := T - 1; t >= 0; t-- {
		path[t] = m.states[s]
		if t > 0 {
			s = psi[t][s]
		}
	}

	return &Result{Path: path, LogProb: bestProb}
}

// decodeScoreOnly keeps two rolling score columns; no path is recoverable.
func decodeScoreOnly(m *HMM, obs []int) *Result {
	S := len(m.states)
	prev := make([]float64, S)
	curr := make([]float64, S)

	for s := 0; s < S; s++ {
		prev[s] = m.logPi[s] + m.logB[s][obs[0]]
	}
	for t := 1; t < len(obs); t++ {
		for s := 0; s < S; s++ {
			best := math.Inf(-1)
			for sp := 0; sp < S; sp++ {
				if cand := prev[sp] + m.logA[sp][s]; cand > best {
					best = cand
				}
			}
			curr[s] = best + m.logB[s][obs[t]]
		}
		prev, curr = curr, prev
	}

	best := math.Inf(-1)
	for s := 0; s < S; s++ {
		if prev[s] > best {
			best = prev[s]
		}
	}

	return &Result{LogProb: best}
}
