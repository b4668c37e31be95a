// SPDX-License-Identifier: MIT

package driver

import "errors"

// ErrRoundsExhausted indicates every precision round up to
// Options.MaxRounds ran and certify kept rejecting the result.
var ErrRoundsExhausted = errors.New("driver: exhausted precision rounds without a certified result")
