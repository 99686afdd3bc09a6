// SPDX-License-Identifier: MIT

package basis

import "errors"

// Sentinel errors for basis containers.
var (
	// ErrIndexOutOfRange indicates a generator index outside [0, len).
	ErrIndexOutOfRange = errors.New("basis: generator index out of range")

	// ErrDuplicateSignature indicates two generators share a module
	// monomial signature; checked in gb_debug builds only.
	ErrDuplicateSignature = errors.New("basis: duplicate signature")
)
