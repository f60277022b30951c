// Package bwt_test validates the banana fixture, sentinel failure modes,
// inverse-side corruption checks, and the round-trip identity on random and
// adversarial strings.
package bwt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/verialg/bwt"
)

// roundTrip asserts Inverse(Transform(s)) == s under the given options.
func roundTrip(t *testing.T, s string, opts ...bwt.Option) {
	t.Helper()

	last, primary, err := bwt.Transform(s, opts...)
	require.NoError(t, err)
	require.Len(t, last, len(s)+1, "last column includes the sentinel")

	got, err := bwt.Inverse(last, primary, opts...)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

// ------------------------------------------------------------------------
// 1. Known-answer fixture.
// ------------------------------------------------------------------------

func TestTransform_Banana(t *testing.T) {
	// The textbook rendering with '$' as sentinel (spec §8.5).
	last, primary, err := bwt.Transform("banana", bwt.WithSentinel('$'))
	require.NoError(t, err)
	require.Equal(t, "annb$aa", last)
	require.Equal(t, 4, primary, "row of banana$ among sorted rotations")
}

func TestInverse_Banana(t *testing.T) {
	got, err := bwt.Inverse("annb$aa", 4, bwt.WithSentinel('$'))
	require.NoError(t, err)
	require.Equal(t, "banana", got)
}

// ------------------------------------------------------------------------
// 2. Validation and failure modes.
// ------------------------------------------------------------------------

func TestTransform_SentinelCollision(t *testing.T) {
	_, _, err := bwt.Transform("do$llar", bwt.WithSentinel('$'))
	require.ErrorIs(t, err, bwt.ErrSentinelCollision)
}

func TestTransform_SentinelOrder(t *testing.T) {
	// '!' (0x21) sorts below sentinel 'a' (0x61): premise violated.
	_, _, err := bwt.Transform("hi!", bwt.WithSentinel('a'))
	require.ErrorIs(t, err, bwt.ErrSentinelOrder)
}

func TestInverse_BadPrimaryIndex(t *testing.T) {
	for _, primary := range []int{-1, 7, 100} {
		_, err := bwt.Inverse("annb$aa", primary, bwt.WithSentinel('$'))
		require.ErrorIs(t, err, bwt.ErrBadPrimaryIndex, "primary=%d", primary)
	}
}

func TestInverse_CorruptTransform(t *testing.T) {
	// No sentinel at all.
	_, err := bwt.Inverse("annbaa", 2, bwt.WithSentinel('$'))
	require.ErrorIs(t, err, bwt.ErrCorruptTransform)

	// Two sentinels.
	_, err = bwt.Inverse("an$b$aa", 2, bwt.WithSentinel('$'))
	require.ErrorIs(t, err, bwt.ErrCorruptTransform)

	// A byte below the sentinel.
	_, err = bwt.Inverse("an!b$aa", 2, bwt.WithSentinel('$'))
	require.ErrorIs(t, err, bwt.ErrCorruptTransform)
}

// ------------------------------------------------------------------------
// 3. Round-trip identity on boundary inputs.
// ------------------------------------------------------------------------

func TestRoundTrip_Boundary(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"single":        "z",
		"two_equal":     "aa",
		"repetitive":    strings.Repeat("ab", 64),
		"maximal_run":   strings.Repeat("a", 257), // longer than the byte alphabet
		"mississippi":   "mississippi",
		"full_alphabet": "abcdefghijklmnopqrstuvwxyz",
		"binary_bytes":  string([]byte{1, 255, 1, 255, 128, 7}),
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) { roundTrip(t, s) })
	}
}

func TestRoundTrip_EmptyString(t *testing.T) {
	last, primary, err := bwt.Transform("")
	require.NoError(t, err)
	require.Equal(t, string(bwt.DefaultSentinel), last, "transform of empty is the sentinel alone")
	require.Equal(t, 0, primary)

	got, err := bwt.Inverse(last, primary)
	require.NoError(t, err)
	require.Equal(t, "", got)
}

// TestRoundTrip_Property hammers the identity with random strings over a
// small alphabet (repetition-heavy, the worst case for rotation sorting).
func TestRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 512).Draw(rt, "len")
		alpha := rapid.SampledFrom([]string{"ab", "abc", "abcdefgh", "a"}).Draw(rt, "alphabet")
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alpha[rapid.IntRange(0, len(alpha)-1).Draw(rt, "ch")])
		}
		s := b.String()

		last, primary, err := bwt.Transform(s)
		if err != nil {
			rt.Fatalf("Transform failed: %v", err)
		}
		got, err := bwt.Inverse(last, primary)
		if err != nil {
			rt.Fatalf("Inverse failed: %v", err)
		}
		if got != s {
			rt.Fatalf("round trip broken: %q → %q", s, got)
		}
	})
}

// TestTransform_LastColumnIsPermutation checks a structural invariant: the
// last column is a permutation of s+sentinel.
func TestTransform_LastColumnIsPermutation(t *testing.T) {
	s := "abracadabra"
	last, _, err := bwt.Transform(s, bwt.WithSentinel('$'))
	require.NoError(t, err)

	count := func(str string) map[rune]int {
		m := make(map[rune]int)
		for _, r := range str {
			m[r]++
		}

		return m
	}
	require.Equal(t, count(s+"$"), count(last))
}
