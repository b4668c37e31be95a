// SPDX-License-Identifier: MIT

package driver

import "github.com/katalvlaran/qsxact/lp"

// Options configures a Solve call (§4.5). MaxSimplexIterations is the only
// per-round simplex cap Solve applies; the LP's own SIMPLEX_MAX_ITERATIONS
// and SIMPLEX_MAX_TIME parameters are copied onto each round's working LP
// but are not read by the reference simplex, and no time limit is applied.
type Options struct {
	// MaxRounds bounds the number of precision escalations Solve will
	// attempt before giving up with ErrRoundsExhausted.
	MaxRounds int

	// InitialPrecisionBits is the Mpf mantissa width used for the first
	// extended-precision round (round 2; round 1 is always Dbl).
	InitialPrecisionBits uint

	// GrowthFactor scales the Mpf precision between rounds.
	GrowthFactor float64

	// MaxPrecisionBits caps how far precision is allowed to grow.
	MaxPrecisionBits uint

	// MaxSimplexIterations bounds each round's simplex pivot count.
	MaxSimplexIterations int
}

// DefaultOptions mirrors §4.5's suggested schedule: one double round,
// then 128-bit extended float growing by 1.5x per round up to 1024 bits,
// across at most 8 rounds total.
func DefaultOptions() *Options {
	return &Options{
		MaxRounds:            8,
		InitialPrecisionBits: 128,
		GrowthFactor:         1.5,
		MaxPrecisionBits:     1024,
		MaxSimplexIterations: 10000,
	}
}

// AlgoHint records which simplex algorithm a round actually used —
// useful to callers diagnosing why a round took the iterations it did.
type AlgoHint int

const (
	HintPrimal AlgoHint = iota
	HintDual
)

func (h AlgoHint) String() string {
	if h == HintDual {
		return "DUAL"
	}
	return "PRIMAL"
}

// Result is Solve's outcome: the terminal status, the round at which it
// was reached, and enough of the round history to explain how it got
// there. The certified solution itself lives on the LP passed to Solve
// (lp.LP.Solution), populated by package certify on success.
type Result struct {
	Status     lp.StatusCode
	Rounds     int
	FinalBits  uint // 0 for a Dbl-only result
	AlgoPerRound []AlgoHint
}
