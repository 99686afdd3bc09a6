// SPDX-License-Identifier: MIT

// Package errs centralizes the engine's error taxonomy (spec §7):
// input errors, configuration errors, exponent/column overflow, and
// arithmetic impossibilities. It wraps github.com/cockroachdb/errors
// so that fatal conditions carry a stack trace and structured fields
// for whoever is operating the (out-of-scope) CLI, while callers that
// only care about the *kind* of failure can read an *Error's Kind via
// errors.As. This package defines no sentinels of its own; those live
// in the packages that raise them (monomial, field, matrix), and
// Wrapf keeps errors.Is working against them.
package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind classifies an engine error per spec §7.
type Kind int

const (
	// KindInput marks a malformed-ideal-file style error. The engine itself
	// never parses files, but basis/polynomial construction from raw data
	// (the boundary the CLI feeds through) still validates shape and reports
	// this kind on failure.
	KindInput Kind = iota
	// KindConfig marks an unknown option or incompatible combination.
	KindConfig
	// KindExponentOverflow marks a monomial operation whose result exceeds
	// the configured exponent width.
	KindExponentOverflow
	// KindColumnOverflow marks a matrix construction exceeding 2^32 columns.
	KindColumnOverflow
	// KindArithmetic marks a logic-bug-class impossibility: division of
	// non-divisible monomials, or inversion of zero.
	KindArithmetic
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConfig:
		return "config"
	case KindExponentOverflow:
		return "exponent-overflow"
	case KindColumnOverflow:
		return "column-overflow"
	case KindArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with its Kind, matching the
// "sentinel + wrap at the boundary" split documented in the donor
// matrix package's errors.go: internal code returns plain sentinels;
// this wrapper is applied once, at the point a failure becomes fatal
// to the caller.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.cause) }
func (e *Error) Unwrap() error { return e.cause }

// Newf builds a new Kind-tagged error with a formatted message and a
// captured stack trace (via cockroachdb/errors), for conditions that
// have no pre-existing sentinel.
func Newf(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, cause: errors.Newf(format, args...)}
}

// Wrapf tags an existing sentinel error with a Kind and additional
// context, preserving errors.Is/As against the original sentinel.
func Wrapf(k Kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: k, cause: errors.Wrapf(cause, format, args...)}
}

// MaybePanic implements spec §7's "asserts in debug, fatal in release"
// rule for arithmetic impossibilities: under the gb_debug build tag it
// panics immediately (so tests catch the invariant violation at the
// call site); otherwise it returns a Kind-tagged, stack-carrying error.
func MaybePanic(k Kind, cause error) error {
	return maybePanic(k, cause)
}
