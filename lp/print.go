// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"io"

	"github.com/katalvlaran/qsxact/numeric"
)

// PrintOptions configures PrintSolution's numeric rendering.
type PrintOptions struct {
	decimalPrec int // 0 means "print as an exact rational via RatString"
}

// PrintOption mutates PrintOptions.
type PrintOption func(*PrintOptions)

// WithDecimal switches PrintSolution to fixed-point decimal rendering at
// prec fractional digits instead of the default rational-string form.
func WithDecimal(prec int) PrintOption {
	return func(o *PrintOptions) { o.decimalPrec = prec }
}

// PrintSolution renders an LP's cached solution in the format from §6:
// status line, then (only for OPTIMAL) nonzero VARS, REDUCED COST, PI and
// SLACK sections. Non-OPTIMAL statuses print only the status line.
func PrintSolution(w io.Writer, lpv *LP[numeric.Mpq], opts ...PrintOption) error {
	cfg := PrintOptions{}
	for _, o := range opts {
		o(&cfg)
	}

	if lpv.Solution == nil {
		_, err := fmt.Fprintln(w, "status", Unsolved.String())
		return err
	}
	sol := lpv.Solution

	if sol.Status != Optimal {
		_, err := fmt.Fprintln(w, "status", sol.Status.String())
		return err
	}

	if _, err := fmt.Fprintln(w, "status", Optimal.String()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    Value =", formatMpq(sol.Val, cfg)); err != nil {
		return err
	}

	if err := printSection(w, "VARS:", lpv.ColNames, sol.X, cfg); err != nil {
		return err
	}
	if err := printSection(w, "REDUCED COST:", lpv.ColNames, sol.Rc, cfg); err != nil {
		return err
	}
	if err := printSection(w, "PI:", lpv.RowNames, sol.Pi, cfg); err != nil {
		return err
	}
	if err := printSection(w, "SLACK:", lpv.RowNames, sol.Slack, cfg); err != nil {
		return err
	}
	return nil
}

func printSection(w io.Writer, header string, names []string, vals []numeric.Mpq, cfg PrintOptions) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for i, v := range vals {
		if v.IsZero() {
			continue
		}
		name := ""
		if i < len(names) {
			name = names[i]
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, formatMpq(v, cfg)); err != nil {
			return err
		}
	}
	return nil
}

func formatMpq(v numeric.Mpq, cfg PrintOptions) string {
	if cfg.decimalPrec > 0 {
		return v.Rat().FloatString(cfg.decimalPrec)
	}
	return v.String()
}
