package oracle

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestVerify_FailureDoesNotAbortRun plants a failing property between two
// passing ones and checks that all three execute and the report isolates
// the failure.
func TestVerify_FailureDoesNotAbortRun(t *testing.T) {
	boom := errors.New("boom")
	suites := []Suite{
		{
			Algorithm: "demo",
			Properties: []Property{
				{Name: "ok-before", Check: func(*rand.Rand) error { return nil }},
				{Name: "broken", Check: func(*rand.Rand) error { return boom }},
				{Name: "ok-after", Check: func(*rand.Rand) error { return nil }},
			},
		},
	}

	report := Verify(suites, WithTrials(5))
	require.Len(t, report.Results, 3)
	require.Equal(t, 1, report.Failures())
	require.True(t, report.Failed())

	require.True(t, report.Results[0].Passed())
	require.Equal(t, 5, report.Results[0].Trials)

	require.False(t, report.Results[1].Passed())
	require.ErrorIs(t, report.Results[1].Err, boom)
	require.Equal(t, 1, report.Results[1].Trials, "must stop at the first failing trial")

	require.True(t, report.Results[2].Passed())
	require.Equal(t, 5, report.Results[2].Trials)
}

// TestVerify_FailureWrapsTrialNumber makes a property fail on its third
// trial and checks the error message carries that trial index.
func TestVerify_FailureWrapsTrialNumber(t *testing.T) {
	calls := 0
	suites := []Suite{{
		Algorithm: "demo",
		Properties: []Property{{
			Name: "third-time-unlucky",
			Check: func(*rand.Rand) error {
				calls++
				if calls == 3 {
					return errors.New("unlucky")
				}

				return nil
			},
		}},
	}}

	report := Verify(suites, WithTrials(10))
	res := report.Results[0]
	require.Equal(t, 3, res.Trials)
	require.ErrorContains(t, res.Err, "trial 3")
}

func TestVerify_NilCheck(t *testing.T) {
	report := Verify([]Suite{{
		Algorithm:  "demo",
		Properties: []Property{{Name: "empty"}},
	}})

	require.Equal(t, 1, report.Failures())
	require.ErrorIs(t, report.Results[0].Err, ErrNilCheck)
	require.Equal(t, 0, report.Results[0].Trials)
}

// TestVerify_SameSeedSameInputs runs a recording property twice with the
// same seed and expects bit-identical input streams.
func TestVerify_SameSeedSameInputs(t *testing.T) {
	record := func() (Property, *[]int64) {
		var drawn []int64
		p := Property{
			Name: "recorder",
			Check: func(rng *rand.Rand) error {
				drawn = append(drawn, rng.Int63())

				return nil
			},
		}

		return p, &drawn
	}

	p1, got1 := record()
	p2, got2 := record()
	Verify([]Suite{{Algorithm: "a", Properties: []Property{p1}}}, WithSeed(42), WithTrials(16))
	Verify([]Suite{{Algorithm: "a", Properties: []Property{p2}}}, WithSeed(42), WithTrials(16))

	require.Equal(t, *got1, *got2)

	p3, got3 := record()
	Verify([]Suite{{Algorithm: "a", Properties: []Property{p3}}}, WithSeed(43), WithTrials(16))
	require.NotEqual(t, *got1, *got3, "a different seed must change the stream")
}

// TestVerify_IndependentStreams checks that two properties in one run do
// not share an input stream even though they run from the same base seed.
func TestVerify_IndependentStreams(t *testing.T) {
	var a, b []int64
	suites := []Suite{{
		Algorithm: "demo",
		Properties: []Property{
			{Name: "a", Check: func(rng *rand.Rand) error { a = append(a, rng.Int63()); return nil }},
			{Name: "b", Check: func(rng *rand.Rand) error { b = append(b, rng.Int63()); return nil }},
		},
	}}

	Verify(suites, WithTrials(8))
	require.NotEqual(t, a, b)
}

func TestVerify_TimeBudget(t *testing.T) {
	suites := []Suite{{
		Algorithm: "demo",
		Properties: []Property{{
			Name: "slow",
			Check: func(*rand.Rand) error {
				time.Sleep(5 * time.Millisecond)

				return nil
			},
		}},
	}}

	report := Verify(suites, WithTrials(10), WithTimeBudget(time.Microsecond))
	require.ErrorIs(t, report.Results[0].Err, ErrTimeBudget)
	require.Equal(t, 1, report.Results[0].Trials)
}

func TestOptions_PanicOnMisuse(t *testing.T) {
	require.Panics(t, func() { WithTrials(0)(&Options{}) })
	require.Panics(t, func() { WithTrials(-3)(&Options{}) })
	require.Panics(t, func() { WithTimeBudget(-time.Second)(&Options{}) })
	require.NotPanics(t, func() { WithTimeBudget(0)(&Options{}) })
}

func TestReport_String(t *testing.T) {
	report := Verify([]Suite{{
		Algorithm: "demo",
		Properties: []Property{
			{Name: "good", Check: func(*rand.Rand) error { return nil }},
			{Name: "bad", Check: func(*rand.Rand) error { return errors.New("nope") }},
		},
	}}, WithTrials(2))

	s := report.String()
	require.Contains(t, s, "PASS demo/good")
	require.Contains(t, s, "FAIL demo/bad")
	require.Contains(t, s, "2 properties, 1 failed")
	require.Equal(t, 3, strings.Count(s, "\n"))
}
