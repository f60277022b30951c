package gfp

import (
	"errors"
	"math/bits"
)

var (
	// ErrBadModulus indicates the requested modulus is smaller than 2.
	ErrBadModulus = errors.New("gfp: modulus must be at least 2")
	// ErrNoInverse indicates the element has no multiplicative inverse
	// modulo p (it is zero, or shares a nontrivial factor with p).
	ErrNoInverse = errors.New("gfp: element has no modular inverse")
)

// Field performs arithmetic modulo a fixed modulus p ≥ 2.
// The zero value is invalid; construct with New.
type Field struct {
	p uint64
}

// New returns a Field over the integers modulo p.
// p is not required to be prime; see the package documentation.
func New(p uint64) (Field, error) {
	if p < 2 {
		return Field{}, ErrBadModulus
	}

	return Field{p: p}, nil
}

// Modulus returns the field modulus p.
func (f Field) Modulus() uint64 { return f.p }

// Add returns (a + b) mod p.
// Safe for the full uint64 range: the carry is folded through 128-bit division.
func (f Field) Add(a, b uint64) uint64 {
	a, b = a%f.p, b%f.p
	lo, hi := bits.Add64(a, b, 0)
	_, r := bits.Div64(hi, lo, f.p)

	return r
}

// Sub returns (a - b) mod p.
func (f Field) Sub(a, b uint64) uint64 {
	a, b = a%f.p, b%f.p
	if a >= b {
		return a - b
	}

	return f.p - (b - a)
}

// Neg returns (-a) mod p.
func (f Field) Neg(a uint64) uint64 {
	a %= f.p
	if a == 0 {
		return 0
	}

	return f.p - a
}

// Mul returns (a · b) mod p via a 128-bit intermediate product,
// so it never overflows regardless of p.
func (f Field) Mul(a, b uint64) uint64 {
	a, b = a%f.p, b%f.p
	hi, lo := bits.Mul64(a, b)
	_, r := bits.Div64(hi, lo, f.p)

	return r
}

// Pow returns a^e mod p by square-and-multiply.
//
// Complexity: O(log e) multiplications.
func (f Field) Pow(a, e uint64) uint64 {
	a %= f.p
	result := uint64(1) % f.p // p == 1 is excluded by New, kept for symmetry
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, a)
		}
		a = f.Mul(a, a)
		e >>= 1
	}

	return result
}

// Inv returns the multiplicative inverse of a modulo p using the extended
// Euclidean algorithm, tracking the Bézout coefficient modulo p so the whole
// computation stays in uint64.
//
// Returns ErrNoInverse when a ≡ 0 or gcd(a, p) ≠ 1.
//
// Complexity: O(log p).
func (f Field) Inv(a uint64) (uint64, error) {
	a %= f.p
	if a == 0 {
		return 0, ErrNoInverse
	}

	// Invariant: t0 ≡ r0 · a⁻¹ and t1 ≡ r1 · a⁻¹ (mod p), when the inverse exists.
	r0, r1 := f.p, a
	t0, t1 := uint64(0), uint64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, f.Sub(t0, f.Mul(q%f.p, t1))
	}
	if r0 != 1 {
		return 0, ErrNoInverse
	}

	return t0, nil
}

// Div returns (a / b) mod p, i.e. a · b⁻¹.
// Returns ErrNoInverse when b is not invertible.
func (f Field) Div(a, b uint64) (uint64, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}

	return f.Mul(a, inv), nil
}
