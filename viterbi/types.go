// Package viterbi - model construction, sentinel errors and functional options.
package viterbi

import (
	"errors"
	"fmt"
	"math"
)

// ProbEps is the tolerance within which each probability row must sum to 1.
const ProbEps = 1e-9

// Sentinel errors returned by NewHMM and Decode.
var (
	// ErrNoStates indicates an empty state set.
	ErrNoStates = errors.New("viterbi: model must have at least one state")

	// ErrNoSymbols indicates an empty observation alphabet.
	ErrNoSymbols = errors.New("viterbi: model must have at least one observation symbol")

	// ErrDimension indicates a probability table whose shape does not match
	// the state/symbol sets.
	ErrDimension = errors.New("viterbi: probability table dimension mismatch")

	// ErrDuplicateLabel indicates a repeated state or symbol label.
	ErrDuplicateLabel = errors.New("viterbi: duplicate state or symbol label")

	// ErrBadDistribution indicates a probability row that is negative,
	// non-finite, or does not sum to 1 within ProbEps.
	ErrBadDistribution = errors.New("viterbi: probability row must be non-negative and sum to 1")

	// ErrNilModel indicates a nil *HMM was passed to Decode.
	ErrNilModel = errors.New("viterbi: model is nil")

	// ErrEmptyObservations indicates Decode was called with no observations.
	ErrEmptyObservations = errors.New("viterbi: observation sequence must be non-empty")

	// ErrUnknownSymbol indicates an observation outside the model's alphabet.
	ErrUnknownSymbol = errors.New("viterbi: observation symbol not in model alphabet")
)

// MemoryMode controls how Decode stores its trellis.
//
//   - FullTrellis — keep all backpointers; the decoded path is returned.
//   - ScoreOnly   — keep two rolling score columns; only LogProb is
//     returned (Result.Path == nil). Memory: O(S) instead of O(T·S).
type MemoryMode int

const (
	// FullTrellis mode: store backpointers, support path recovery.
	FullTrellis MemoryMode = iota

	// ScoreOnly mode: rolling columns, no path recovery.
	ScoreOnly
)

// Options configures Decode.
type Options struct {
	MemoryMode MemoryMode
}

// Option is a functional option for configuring Decode.
type Option func(*Options)

// WithMemoryMode selects FullTrellis (default) or ScoreOnly storage.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) { o.MemoryMode = mode }
}

// DefaultOptions returns the baseline configuration: FullTrellis.
func DefaultOptions() Options {
	return Options{MemoryMode: FullTrellis}
}

// HMM is a validated, immutable hidden Markov model. Labels are enumerated
// once at construction and all tables are dense index-addressed slices, so
// the decode loop never hashes (the arena + index pattern).
type HMM struct {
	states  []string
	symbols []string

	stateIndex  map[string]int
	symbolIndex map[string]int

	logPi []float64   // S
	logA  [][]float64 // S×S: logA[from][to]
	logB  [][]float64 // S×O: logB[state][symbol]
}

// Result is the outcome of one Decode invocation.
type Result struct {
	// Path is the most likely state sequence, one label per observation.
	// Nil in ScoreOnly mode.
	Path []string

	// LogProb is the joint log-probability of Path and the observations.
	// math.Inf(-1) when no state path has nonzero probability.
	LogProb float64
}

// NewHMM validates and freezes a model.
//
// pi must have one entry per state; trans is S×S row-stochastic; emit is
// S×O row-stochastic. Zero probabilities are permitted anywhere (they decode
// as -Inf); each row must still sum to 1 within ProbEps.
//
// Complexity: O(S² + S·O).
func NewHMM(states, symbols []string, pi []float64, trans, emit [][]float64) (*HMM, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}

	stateIndex, err := indexLabels(states)
	if err != nil {
		return nil, err
	}
	symbolIndex, err := indexLabels(symbols)
	if err != nil {
		return nil, err
	}

	s, o := len(states), len(symbols)
	if len(pi) != s || len(trans) != s || len(emit) != s {
		return nil, fmt.Errorf("%w: want %d rows", ErrDimension, s)
	}

	m := &HMM{
		states:      append([]string(nil), states...),
		symbols:     append([]string(nil), symbols...),
		stateIndex:  stateIndex,
		symbolIndex: symbolIndex,
	}

	if m.logPi, err = logRow("pi", pi, s); err != nil {
		return nil, err
	}
	m.logA = make([][]float64, s)
	m.logB = make([][]float64, s)
	for i := 0; i < s; i++ {
		if m.logA[i], err = logRow(fmt.Sprintf("trans[%d]", i), trans[i], s); err != nil {
			return nil, err
		}
		if m.logB[i], err = logRow(fmt.Sprintf("emit[%d]", i), emit[i], o); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// States returns the state labels in model order (copy).
func (m *HMM) States() []string { return append([]string(nil), m.states...) }

// Symbols returns the observation alphabet in model order (copy).
func (m *HMM) Symbols() []string { return append([]string(nil), m.symbols...) }

// indexLabels builds a label→index map, rejecting duplicates.
func indexLabels(labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := idx[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		idx[l] = i
	}

	return idx, nil
}

// logRow validates one probability row and returns its element-wise log.
// log(0) is math.Inf(-1), which the decode loop handles natively.
func logRow(name string, row []float64, width int) ([]float64, error) {
	if len(row) != width {
		return nil, fmt.Errorf("%w: %s has %d entries, want %d", ErrDimension, name, len(row), width)
	}

	sum := 0.0
	out := make([]float64, width)
	for i, p := range row {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: %s[%d] = %v", ErrBadDistribution, name, i, p)
		}
		sum += p
		out[i] = math.Log(p)
	}
	if math.Abs(sum-1) > ProbEps {
		return nil, fmt.Errorf("%w: %s sums to %v", ErrBadDistribution, name, sum)
	}

	return out, nil
}
