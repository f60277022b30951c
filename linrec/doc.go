// Package linrec synthesizes the shortest linear recurrence (equivalently,
// the minimal LFSR) that generates a given sequence over a prime field
// GF(p), using the Berlekamp–Massey algorithm.
//
// What
//
//	MinimalPolynomial(seq, p) returns a Recurrence with coefficients
//	c₁..c_L such that
//
//	    s(n) = c₁·s(n−1) + c₂·s(n−2) + … + c_L·s(n−L)   (mod p)
//
//	holds for every n ≥ L, with L minimal. Recurrence.Extend replays the
//	recurrence from a seed, which is exactly how the oracle verifies the
//	output: extending the first L terms must reproduce the entire input.
//
// How
//
//	The algorithm maintains the current connection polynomial C(x), the
//	previous polynomial B(x) saved at the last length change, the length
//	estimate L, the discrepancy b of that last change, and the gap m since
//	it. Per new term the discrepancy Δ is the amount by which C fails to
//	predict it; Δ ≠ 0 triggers the update C ← C − (Δ/b)·xᵐ·B, and when
//	2L ≤ n the length jumps to n+1−L with B, b, m re-anchored.
//
// Field semantics
//
//	All arithmetic is modulo p via gfp.Field. The division Δ/b requires b
//	to be invertible; with composite moduli that can fail, in which case
//	MinimalPolynomial returns an error wrapping gfp.ErrNoInverse rather
//	than producing silently wrong coefficients.
//
// Complexity: O(n·L) time, worst case O(n²); O(n) space.
//
// Errors
//
//   - ErrEmptySequence  if the input has no terms.
//   - ErrBadModulus     (from gfp) if modulus < 2.
//   - gfp.ErrNoInverse  (wrapped) if a discrepancy ratio is not invertible.
//   - ErrShortSeed      if Extend is given fewer than L seed terms.
package linrec
