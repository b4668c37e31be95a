// SPDX-License-Identifier: MIT
// Package lp: sentinel error set.
//
// ERROR PRIORITY: bad shape/index -> empty bounds -> bad basis status ->
// param errors.

package lp

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is non-positive.
	ErrBadShape = errors.New("lp: invalid shape")

	// ErrOutOfRange indicates a column or row index outside valid bounds.
	ErrOutOfRange = errors.New("lp: index out of range")

	// ErrEmptyBounds indicates lower[i] > upper[i] for some column, the
	// "empty feasible range" condition from §3's invariant.
	ErrEmptyBounds = errors.New("lp: empty feasible range")

	// ErrBadBasis indicates an unrecognized cstat/rstat status code, or a
	// basis whose BASIC count does not equal nrows. Fatal per §7.
	ErrBadBasis = errors.New("lp: malformed basis")

	// ErrParam indicates an unknown parameter key or an out-of-range value
	// in a Get/Set call. Fatal to the call per §7.
	ErrParam = errors.New("lp: parameter error")

	// ErrRowCountMismatch indicates AddRows was called with mismatched
	// slice lengths: rowbeg/rhs/rowsense/rrange not of length rowcnt, or
	// rowind and rowval of different lengths.
	ErrRowCountMismatch = errors.New("lp: row argument length mismatch")
)
