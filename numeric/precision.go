// SPDX-License-Identifier: MIT

package numeric

import "sync/atomic"

// currentPrecision is the process-wide Mpf mantissa width in bits. It is a
// genuine global side effect, matching QSexact_set_precision's semantics
// in the source toolkit (§5): every Mpf value allocated while a precision
// is in effect inherits it.
var currentPrecision atomic.Uint32

func init() {
	currentPrecision.Store(128)
}

// Precision returns the current process-wide Mpf mantissa width.
func Precision() uint { return uint(currentPrecision.Load()) }

// WithPrecision sets the process-wide Mpf precision to bits and returns a
// restore function that puts the previous value back. This is the "scoped
// precision-guard resource" from the design notes (§9): LUCache's
// transient Mpf direction computation defers the returned restore, and
// each Mpf precision round in the Driver calls the returned restore
// explicitly on every exit path, so the process-wide precision is never
// left changed.
//
// WithPrecision itself is safe to call concurrently, but two overlapping
// scopes with different precisions on different goroutines will race on
// which precision is "current" during the overlap — qsxact's contract
// (§5) is that callers do not run two Driver rounds at different
// precisions concurrently.
func WithPrecision(bits uint) (restore func()) {
	if bits == 0 {
		panic(ErrBadPrecision)
	}
	prev := currentPrecision.Swap(uint32(bits))
	return func() { currentPrecision.Store(prev) }
}
