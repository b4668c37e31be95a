// SPDX-License-Identifier: MIT
// Package lucache: sentinel error set.

package lucache

import "errors"

var (
	// ErrSingular is returned when a factorization attempt finds no
	// nonzero pivot in the remaining submatrix. Fatal to the call; the
	// Driver interprets it and proceeds to the next precision (§7).
	ErrSingular = errors.New("lucache: singular basis matrix")

	// ErrDimensionMismatch indicates the basis passed to Load/TryUpdate
	// does not match the LP it is factored against.
	ErrDimensionMismatch = errors.New("lucache: basis dimension mismatch")

	// errUpdateGaveUp is internal: it signals TryUpdate's caller-facing
	// wrapper to fall back to a full refactorization. Per §7 it is never
	// surfaced to the Driver.
	errUpdateGaveUp = errors.New("lucache: incremental update gave up")
)
