// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
//
// ERROR PRIORITY: bad shape -> alloc failure.

package numeric

import "errors"

var (
	// ErrAlloc is returned when a requested array size cannot be honored.
	// Call sites must check and propagate it rather than silently truncating.
	ErrAlloc = errors.New("numeric: allocation failed")

	// ErrBadPrecision is the value WithPrecision panics with when bits is
	// not a positive mantissa width.
	ErrBadPrecision = errors.New("numeric: precision must be positive")
)
