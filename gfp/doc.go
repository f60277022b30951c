// Package gfp provides the small numeric and bit-level primitives shared by
// the higher algorithm packages: modular arithmetic over a prime field
// GF(p), carry-less GF(2) polynomial operations, 64-bit rotation, and the
// lexicographic pair comparison used by suffix sorting.
//
// What
//
//   - Field: arithmetic modulo a caller-supplied modulus p ≥ 2
//   - Add / Sub / Mul / Neg: overflow-safe for the full uint64 range
//   - Pow: square-and-multiply exponentiation
//   - Inv: modular inverse via the extended Euclidean algorithm;
//     fails with ErrNoInverse when gcd(a, p) ≠ 1
//   - PolyMul2 / PolyMod2 / Deg2: GF(2)[x] polynomials packed into uint64 bits
//   - RotL64: left bit rotation (the sponge permutation's only bit primitive)
//   - LexLessPair: (a1,a2) < (b1,b2) lexicographic order for rank sorting
//
// Why
//
//	Berlekamp–Massey divides by the previous discrepancy, Keccak-p rotates
//	lanes, and the BWT suffix sort compares rank pairs. Keeping those
//	primitives in one leaf package gives every consumer identical, tested
//	semantics — in particular, the exact failure mode of a missing modular
//	inverse is decided here, once.
//
// Design notes
//
//   - New does NOT require p to be prime. Compositeness only matters when an
//     inverse is requested, and then only for divisors sharing a factor with
//     p, so the failure is surfaced per-operation instead of rejecting whole
//     fields up front.
//   - All methods expect and return canonical representatives in [0, p);
//     inputs are reduced defensively.
//
// Complexity: all operations O(1) except Pow and Inv, which are O(log p).
//
// Errors
//
//   - ErrBadModulus if New is called with p < 2.
//   - ErrNoInverse  if Inv is called on 0 or on a value sharing a factor with p.
package gfp
