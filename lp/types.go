// SPDX-License-Identifier: MIT

package lp

import "github.com/katalvlaran/qsxact/numeric"

// Sense is the optimization direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// SignFor returns +1 for Minimize and -1 for Maximize — the sense_sign the
// certifier's design note (§9) carries through instead of duplicating
// sign logic at every comparison site.
func (s Sense) SignFor() int {
	if s == Maximize {
		return -1
	}
	return 1
}

func (s Sense) String() string {
	if s == Maximize {
		return "MAX"
	}
	return "MIN"
}

// Status is a basis-entry status: BASIC, LOWER, UPPER, or (structural
// columns only) FREE.
type Status int

const (
	Basic Status = iota
	Lower
	Upper
	Free
)

func (s Status) String() string {
	switch s {
	case Basic:
		return "BASIC"
	case Lower:
		return "LOWER"
	case Upper:
		return "UPPER"
	case Free:
		return "FREE"
	default:
		return "UNKNOWN"
	}
}

// StatusCode is the solver/driver terminal status vocabulary (§6).
type StatusCode int

const (
	Optimal StatusCode = iota
	Infeasible
	Unbounded
	IterLimit
	TimeLimit
	Unsolved
	Aborted
	Modified
	ObjLimit
)

func (c StatusCode) String() string {
	switch c {
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	case IterLimit:
		return "ITER_LIMIT"
	case TimeLimit:
		return "TIME_LIMIT"
	case Unsolved:
		return "NOT_SOLVED"
	case Aborted:
		return "ABORTED"
	case Modified:
		return "MODIFIED"
	case ObjLimit:
		return "OBJ_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// SparseCols is a column-compressed sparse matrix: column c occupies
// Ind[Beg[c]:Beg[c]+Cnt[c]] / Val[Beg[c]:Beg[c]+Cnt[c]].
type SparseCols[T numeric.Num[T]] struct {
	Beg []int
	Cnt []int
	Ind []int
	Val []T
}

// Col returns the row-index and value slices for column c.
func (a *SparseCols[T]) Col(c int) ([]int, []T) {
	lo, n := a.Beg[c], a.Cnt[c]
	return a.Ind[lo : lo+n], a.Val[lo : lo+n]
}

// NCols reports the number of columns currently stored.
func (a *SparseCols[T]) NCols() int { return len(a.Beg) }

// Basis is an assignment of a Status to every structural and logical
// (slack) variable. The cardinality invariant (§3) is exactly NRows BASIC
// entries across CStat ∪ RStat.
type Basis struct {
	CStat   []Status
	RStat   []Status
	NStruct int
	NRows   int
}

// Validate checks the cardinality invariant and that every status is one
// of the recognized codes (FREE is only legal in CStat).
func (b *Basis) Validate() error {
	if len(b.CStat) != b.NStruct || len(b.RStat) != b.NRows {
		return ErrBadBasis
	}
	basic := 0
	for _, s := range b.CStat {
		switch s {
		case Basic:
			basic++
		case Lower, Upper, Free:
		default:
			return ErrBadBasis
		}
	}
	for _, s := range b.RStat {
		switch s {
		case Basic:
			basic++
		case Lower, Upper:
		default:
			return ErrBadBasis
		}
	}
	if basic != b.NRows {
		return ErrBadBasis
	}
	return nil
}

// Clone returns a deep, independently-mutable copy.
func (b *Basis) Clone() *Basis {
	if b == nil {
		return nil
	}
	out := &Basis{NStruct: b.NStruct, NRows: b.NRows}
	out.CStat = append([]Status(nil), b.CStat...)
	out.RStat = append([]Status(nil), b.RStat...)
	return out
}

// SolutionCache is the cached result of a certified solve, attached to the
// rational LP by the Certifier on success (§4.4).
type SolutionCache[T numeric.Num[T]] struct {
	Status StatusCode
	Val    T
	X      []T // structural primal values
	Rc     []T // structural reduced costs
	Slack  []T // per-row logical (slack) values
	Pi     []T // per-row dual values
}

// ParamSet is the recognized parameter namespace from §6. Values are
// plain typed fields behind getters/setters (see store.go) rather than
// functional options: unlike the teacher's construction-time
// matrix.Options, these parameters are read and rewritten throughout an
// LP's lifetime (every precision-escalation round re-reads them), so a
// mutable, queryable struct fits the access pattern better than an
// options list that is only ever applied once at construction.
type ParamSet struct {
	PrimalPricing        int
	DualPricing          int
	SimplexDisplay       bool
	SimplexMaxIterations int
	SimplexScaling       bool
	SimplexMaxTime       float64
	ObjULim              float64
	ObjLLim              float64
}

// DefaultParamSet mirrors QSopt_ex's built-in defaults: no display, no
// iteration/time cap, scaling on, pricing left at the solver's own
// default (0), objective limits at +/-infinity (represented as the
// largest/smallest float64, since ParamSet's objective limits are plain
// float64 used only to configure the low-precision solvers).
func DefaultParamSet() *ParamSet {
	return &ParamSet{
		SimplexScaling: true,
		ObjULim:        maxFloat64,
		ObjLLim:        minFloat64,
	}
}

const (
	maxFloat64 = 1.7976931348623157e+308
	minFloat64 = -maxFloat64
)

// LP is one linear program in numeric flavor T: the LPStore component.
//
// Logical (slack) variables are indexed after structural ones: column
// index i for i < NCols is structural, and for each row r there is an
// implicit logical variable at full-column index NCols+r, whose single
// nonzero lives in A's row r (StructMap/RowMap record the mapping back to
// the caller's original column/row numbering for diagnostics).
type LP[T numeric.Num[T]] struct {
	Name  string
	Sense Sense

	NCols int // structural columns
	NRows int

	A *SparseCols[T] // structural columns only; logicals are implicit

	Lower, Upper []T // length NCols+NRows: structural then logical
	RHS          []T // length NRows
	Obj          []T // length NCols+NRows (logical objective entries are 0)

	ColNames []string // length NCols
	RowNames []string // length NRows

	StructMap []int // full-column index of structural column i
	RowMap    []int // full-column index of row r's logical

	Params *ParamSet

	Basis *Basis

	// Solution is populated by package certify on a successful certified
	// solve. It is meaningful only when T = numeric.Mpq.
	Solution *SolutionCache[T]
}

// NStructPlusLogical returns NCols+NRows, the full column-space width used
// throughout certify and lucache.
func (lp *LP[T]) NStructPlusLogical() int { return lp.NCols + lp.NRows }
