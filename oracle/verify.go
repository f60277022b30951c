// Package oracle - the Verify loop.
package oracle

import (
	"fmt"
	"math/rand"
	"time"
)

// Verify runs every property of every suite Trials times with independent
// deterministic RNG streams and aggregates the outcomes into a Report.
//
// Failure policy: a failing trial stops THAT property (recording the trial
// number) but never the run — every other property still executes, so one
// broken algorithm cannot hide another. A property with a nil Check records
// ErrNilCheck.
//
// Complexity: Σ over properties of (Trials × property cost).
func Verify(suites []Suite, opts ...Option) Report {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	base := rngFromSeed(cfg.Seed)
	var report Report
	stream := uint64(0)

	for _, su := range suites {
		for _, p := range su.Properties {
			stream++
			report.Results = append(report.Results, runProperty(su.Algorithm, p, cfg, deriveRNG(base, stream)))
		}
	}

	return report
}

// runProperty executes one property's trial loop with its private stream.
func runProperty(algorithm string, p Property, cfg Options, rng *rand.Rand) PropertyResult {
	res := PropertyResult{Algorithm: algorithm, Property: p.Name}
	if p.Check == nil {
		res.Err = ErrNilCheck

		return res
	}

	start := time.Now()
	for i := 1; i <= cfg.Trials; i++ {
		res.Trials = i
		t0 := time.Now()
		if err := p.Check(rng); err != nil {
			res.Err = fmt.Errorf("trial %d: %w", i, err)

			break
		}
		if cfg.TimeBudget > 0 {
			if took := time.Since(t0); took > cfg.TimeBudget {
				res.Err = fmt.Errorf("%w: trial %d took %s (budget %s)", ErrTimeBudget, i, took, cfg.TimeBudget)

				break
			}
		}
	}
	res.Elapsed = time.Since(start)

	return res
}
