// SPDX-License-Identifier: MIT

// Package field implements arithmetic in Z_p for a small odd prime p,
// the coefficient field of the Gröbner basis engine.
//
// Field is a lightweight value: it carries only the modulus, and every
// arithmetic method is a pure function of its Elem operands plus the
// receiver's p. Elem values are never validated against a specific
// Field at the type level (Go has no dependent types); callers must
// not mix Elem values produced under two different Field instances.
package field

import "github.com/go-groebner/groebner/internal/errs"

// Elem is a field element, an integer in [0, P).
//
// The zero value of Elem is 0, the additive identity, which is a valid
// element of every Field.
type Elem uint32

// Field is Z_p for an odd prime p that fits comfortably below 2^31,
// leaving headroom for 64-bit deferred-reduction accumulation in the
// F4 matrix reducer (p^2 * maxAccum < 2^64).
type Field struct {
	p uint64
}

// New constructs the field Z_p. It does not verify primality (the
// caller — the ideal-file boundary, out of scope here — is responsible
// for supplying a prime); it only rejects values that cannot possibly
// be used as a field characteristic.
func New(p uint32) (Field, error) {
	if p < 2 {
		return Field{}, errs.Newf(errs.KindConfig, "field: characteristic %d is not >= 2", p)
	}
	if p%2 == 0 && p != 2 {
		return Field{}, errs.Newf(errs.KindConfig, "field: characteristic %d is even and not 2", p)
	}
	return Field{p: uint64(p)}, nil
}

// P returns the field's characteristic.
func (f Field) P() uint32 { return uint32(f.p) }

// Zero returns the additive identity.
func (f Field) Zero() Elem { return 0 }

// One returns the multiplicative identity.
func (f Field) One() Elem { return 1 }

// IsZero reports whether e is the additive identity.
func (f Field) IsZero(e Elem) bool { return e == 0 }

// FromInt64 reduces a signed integer into [0, P).
func (f Field) FromInt64(v int64) Elem {
	m := int64(f.p)
	v %= m
	if v < 0 {
		v += m
	}
	return Elem(v)
}

// Add returns a+b mod p.
func (f Field) Add(a, b Elem) Elem {
	s := uint64(a) + uint64(b)
	if s >= f.p {
		s -= f.p
	}
	return Elem(s)
}

// Sub returns a-b mod p.
func (f Field) Sub(a, b Elem) Elem {
	if a >= b {
		return a - b
	}
	return Elem(f.p - uint64(b) + uint64(a))
}

// Neg returns -a mod p.
func (f Field) Neg(a Elem) Elem {
	if a == 0 {
		return 0
	}
	return Elem(f.p - uint64(a))
}

// Mul returns a*b mod p. The intermediate product fits in 64 bits
// because both operands are < p < 2^31.
func (f Field) Mul(a, b Elem) Elem {
	return Elem((uint64(a) * uint64(b)) % f.p)
}

// Inv returns the multiplicative inverse of a. Inverting zero is an
// arithmetic impossibility per the engine's error taxonomy: it panics
// under the gb_debug build tag and returns ErrZeroInverse otherwise.
func (f Field) Inv(a Elem) (Elem, error) {
	if a == 0 {
		return 0, errs.MaybePanic(errs.KindArithmetic, ErrZeroInverse)
	}
	u, _, g := extGCD(int64(a), int64(f.p))
	// g must be 1 since p is prime and 0 < a < p.
	if g != 1 {
		return 0, errs.MaybePanic(errs.KindArithmetic, ErrNotInvertible)
	}
	return f.FromInt64(u), nil
}

// extGCD returns (u, v, g) such that a*u + b*v = g = gcd(a, b).
//
// Adapted from the extended-Euclid pattern used for NTRU trapdoor
// arithmetic, generalized here from big.Int down to plain int64 since
// the modulus is guaranteed to fit comfortably below 2^31.
func extGCD(a, b int64) (u, v, g int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldS, oldT, oldR
}
