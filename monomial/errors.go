// SPDX-License-Identifier: MIT
package monomial

import "errors"

var (
	// ErrExponentOverflow indicates a monomial operation would produce an
	// exponent exceeding the pool's configured width. Fatal per spec §7.
	ErrExponentOverflow = errors.New("monomial: exponent overflow")

	// ErrNotDivisible indicates Divide was called with a that does not
	// divide b pointwise. Callers must pre-check with Divides in release
	// builds; this is an arithmetic-impossibility class error.
	ErrNotDivisible = errors.New("monomial: not divisible")

	// ErrArityMismatch indicates two monomials from pools of different
	// variable counts were compared or combined.
	ErrArityMismatch = errors.New("monomial: variable-count mismatch")

	// ErrDoubleComponent indicates both operands of Multiply carry a
	// non-zero component tag; at most one operand may.
	ErrDoubleComponent = errors.New("monomial: both operands carry a component tag")
)
