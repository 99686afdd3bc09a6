// SPDX-License-Identifier: MIT

//go:build !gb_debug

package errs

func maybePanic(k Kind, cause error) error {
	return Wrapf(k, cause, "arithmetic impossibility")
}
