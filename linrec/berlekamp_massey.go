package linrec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/verialg/gfp"
)

// Sentinel errors returned by MinimalPolynomial and Recurrence.Extend.
var (
	// ErrEmptySequence indicates the input sequence has no terms.
	ErrEmptySequence = errors.New("linrec: input sequence must be non-empty")

	// ErrShortSeed indicates Extend was given fewer seed terms than the
	// recurrence order requires.
	ErrShortSeed = errors.New("linrec: seed shorter than recurrence order")
)

// Recurrence is the minimal linear recurrence found for a sequence:
// s(n) = Σ_{i=1..L} Coeffs[i-1]·s(n-i) (mod Modulus), L = len(Coeffs).
type Recurrence struct {
	// Coeffs are c₁..c_L in canonical [0, Modulus) form.
	Coeffs []uint64

	// Modulus is the field the recurrence lives in.
	Modulus uint64
}

// Order returns L, the number of history terms the recurrence consumes.
func (r Recurrence) Order() int { return len(r.Coeffs) }

// Extend replays the recurrence: it copies the seed and appends terms until
// the output holds n values. The seed must supply at least Order() terms
// (ErrShortSeed), except that the zero-order recurrence accepts any seed and
// extends with zeros.
//
// Complexity: O(n·L).
func (r Recurrence) Extend(seed []uint64, n int) ([]uint64, error) {
	if len(seed) < r.Order() {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrShortSeed, len(seed), r.Order())
	}

	f, err := gfp.New(r.Modulus)
	if err != nil {
		return nil, fmt.Errorf("linrec: %w", err)
	}

	out := make([]uint64, 0, n)
	for _, s := range seed {
		if len(out) == n {
			break
		}
		out = append(out, s%r.Modulus)
	}
	for len(out) < n {
		var term uint64
		for i, c := range r.Coeffs {
			term = f.Add(term, f.Mul(c, out[len(out)-1-i]))
		}
		out = append(out, term)
	}

	return out, nil
}

// MinimalPolynomial runs Berlekamp–Massey over GF(modulus) and returns the
// minimal recurrence reproducing seq. The returned order L is minimal and
// the recurrence regenerates every term of seq from its first L values.
//
// An all-zero sequence yields the empty (order-0) recurrence.
//
// Complexity: O(n·L) time, worst case O(n²).
func MinimalPolynomial(seq []uint64, modulus uint64) (Recurrence, error) {
	if len(seq) == 0 {
		return Recurrence{}, ErrEmptySequence
	}
	f, err := gfp.New(modulus)
	if err != nil {
		return Recurrence{}, fmt.Errorf("linrec: %w", err)
	}

	// Canonical representatives; the loop below indexes seq heavily.
	s := make([]uint64, len(seq))
	for i, v := range seq {
		s[i] = v % modulus
	}

	// Connection polynomial C(x) = 1 + c[1]x + … (c[0] is always 1) and the
	// auxiliary polynomial B(x) saved at the previous length change.
	c := []uint64{1}
	b := []uint64{1}
	L := 0             // current length estimate
	m := 1             // gap since the last length change
	lastD := uint64(1) // discrepancy at the last length change

	for n := 0; n < len(s); n++ {
		// Discrepancy: how far C is from predicting s[n].
		d := s[n]
		for i := 1; i <= L && i < len(c); i++ {
			d = f.Add(d, f.Mul(c[i], s[n-i]))
		}
		if d == 0 {
			m++

			continue
		}

		// C(x) ← C(x) − (d/lastD)·xᵐ·B(x).
		coef, invErr := f.Div(d, lastD)
		if invErr != nil {
			return Recurrence{}, fmt.Errorf("linrec: discrepancy ratio at term %d: %w", n, invErr)
		}

		if 2*L <= n {
			// Length change: remember the pre-update C as the new B.
			saved := append([]uint64(nil), c...)
			c = subtractShifted(f, c, b, coef, m)
			L = n + 1 - L
			b = saved
			lastD = d
			m = 1
		} else {
			c = subtractShifted(f, c, b, coef, m)
			m++
		}
	}

	// Recurrence form: s(n) = Σ (−c[i])·s(n−i); pad to L in case trailing
	// coefficients of C are zero.
	coeffs := make([]uint64, L)
	for i := 1; i <= L && i < len(c); i++ {
		coeffs[i-1] = f.Neg(c[i])
	}

	return Recurrence{Coeffs: coeffs, Modulus: modulus}, nil
}

// subtractShifted returns c − coef·xᵐ·b, growing c as needed.
func subtractShifted(f gfp.Field, c, b []uint64, coef uint64, m int) []uint64 {
	need := len(b) + m
	if need > len(c) {
		grown := make([]uint64, need)
		copy(grown, c)
		c = grown
	}
	for i, bi := range b {
		c[i+m] = f.Sub(c[i+m], f.Mul(coef, bi))
	}

	return c
}
