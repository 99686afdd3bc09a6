// SPDX-License-Identifier: MIT
package field

import "errors"

var (
	// ErrZeroInverse indicates an attempt to invert the additive identity.
	ErrZeroInverse = errors.New("field: cannot invert zero")

	// ErrNotInvertible indicates the extended-Euclid step failed to produce
	// gcd(a, p) == 1, which should be impossible for a genuine prime p and
	// 0 < a < p; it signals a caller passed a non-prime characteristic.
	ErrNotInvertible = errors.New("field: element not invertible under this characteristic")
)
