// Package oracle - result types, sentinel errors and functional options.
package oracle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// DefaultTrials is the per-property trial count when no option overrides it.
const DefaultTrials = 64

// Sentinel errors surfaced inside Report entries.
var (
	// ErrTimeBudget indicates a single trial exceeded the per-trial
	// wall-clock budget (a guard against accidental complexity blowups).
	ErrTimeBudget = errors.New("oracle: trial exceeded time budget")

	// ErrNilCheck indicates a Property without a Check function.
	ErrNilCheck = errors.New("oracle: property has a nil check")
)

// Property is one named, seeded check of an algorithm contract. Check draws
// its inputs from rng only, so a property is a pure function of the stream.
type Property struct {
	Name  string
	Check func(rng *rand.Rand) error
}

// Suite groups the properties that define one algorithm.
type Suite struct {
	Algorithm  string
	Properties []Property
}

// PropertyResult records the outcome of one property across its trials.
type PropertyResult struct {
	Algorithm string
	Property  string
	Trials    int           // trials executed (≤ configured on failure)
	Elapsed   time.Duration // wall clock across all executed trials
	Err       error         // nil on success; wraps the trial number on failure
}

// Passed reports whether every executed trial succeeded.
func (r PropertyResult) Passed() bool { return r.Err == nil }

// Report aggregates every property outcome of a Verify run.
// Failures never abort the run; the report always covers all properties.
type Report struct {
	Results []PropertyResult
}

// Failures counts failed properties.
func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}

	return n
}

// Failed reports whether any property failed.
func (r Report) Failed() bool { return r.Failures() > 0 }

// String renders one line per property: PASS/FAIL, algorithm, property,
// trial count, and the failure error when present.
func (r Report) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		if res.Passed() {
			fmt.Fprintf(&b, "PASS %s/%s (%d trials, %s)\n",
				res.Algorithm, res.Property, res.Trials, res.Elapsed.Round(time.Microsecond))

			continue
		}
		fmt.Fprintf(&b, "FAIL %s/%s (after %d trials): %v\n",
			res.Algorithm, res.Property, res.Trials, res.Err)
	}
	fmt.Fprintf(&b, "%d properties, %d failed\n", len(r.Results), r.Failures())

	return b.String()
}

// Options configures Verify.
//
// Trials     – executions per property (each with fresh random inputs).
// Seed       – base RNG seed; 0 selects the fixed default stream.
// TimeBudget – optional per-trial wall-clock cap; 0 disables the check.
type Options struct {
	Trials     int
	Seed       int64
	TimeBudget time.Duration
}

// Option is a functional option for configuring Verify.
type Option func(*Options)

// WithTrials sets the per-property trial count. Must be positive; invalid
// values panic, signalling programmer error at configuration time.
func WithTrials(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("oracle: WithTrials requires n >= 1")
		}
		o.Trials = n
	}
}

// WithSeed fixes the base seed of the run. Seed 0 keeps the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTimeBudget caps the wall-clock time of a single trial. Exceeding it
// records ErrTimeBudget for the property instead of looping forever on an
// accidentally super-quadratic implementation.
func WithTimeBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("oracle: WithTimeBudget requires a non-negative duration")
		}
		o.TimeBudget = d
	}
}

// DefaultOptions returns the baseline configuration: DefaultTrials trials,
// default seed, no time budget.
func DefaultOptions() Options {
	return Options{Trials: DefaultTrials}
}
