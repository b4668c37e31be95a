// SPDX-License-Identifier: MIT

package lp

import "github.com/katalvlaran/qsxact/numeric"

// New creates an empty LP with the given name and sense, ready to receive
// columns via AddCol and rows via AddRows.
func New[T numeric.Num[T]](name string, sense Sense) *LP[T] {
	return &LP[T]{
		Name:   name,
		Sense:  sense,
		A:      &SparseCols[T]{},
		Params: DefaultParamSet(),
	}
}

// AddCol appends a structural column with the given objective coefficient
// and bounds, returning its structural index. The column starts with no
// nonzero entries; populate them via AddRows, which appends to A in
// lockstep with the row data it is given.
func (lp *LP[T]) AddCol(obj, lower, upper T) int {
	idx := lp.NCols
	lp.NCols++

	lp.A.Beg = append(lp.A.Beg, len(lp.A.Ind))
	lp.A.Cnt = append(lp.A.Cnt, 0)

	lp.Obj = append(lp.Obj, obj)
	lp.Lower = append(lp.Lower, lower)
	lp.Upper = append(lp.Upper, upper)
	lp.ColNames = append(lp.ColNames, "")
	lp.StructMap = append(lp.StructMap, idx)

	return idx
}

// AddRows bulk-appends rowcnt ranged rows. Call AddCol for every
// structural column before the first AddRows call: Lower/Upper/Obj are
// laid out structural-then-logical, and AddRows appends logical entries
// to the tail of those arrays, so rows added before all columns exist
// would land in the wrong slot.
//
// rowbeg/rowind/rowval describe a
// column-agnostic list of (row, col, value) triples laid out per row:
// row i's entries are rowind[rowbeg[i]:rowbeg[i]+cnt] with matching
// rowval, where cnt is rowbeg[i+1]-rowbeg[i] (or len(rowind)-rowbeg[i] for
// the last row). sense_per_row is one of 'L' (<=), 'G' (>=), 'E' (=), 'R'
// (ranged, using the matching range entry) per row; rhs and rrange give
// the right-hand side and, for ranged rows, the range width.
//
// AddRows appends a logical variable for every new row, whose bounds
// encode the row sense the way QSopt_ex's loader does: for row i with
// sense L, the logical's bounds are [0, range]; for G, [-range, 0]; for
// E, always [0,0] (the range entry is ignored); for R, [0, |range|].
func (lp *LP[T]) AddRows(rowcnt int, rowbeg, rowind []int, rowval []T, rhs []T, rowsense []byte, rrange []T) error {
	if rowcnt != len(rowbeg) || rowcnt != len(rhs) || rowcnt != len(rowsense) || rowcnt != len(rrange) || len(rowind) != len(rowval) {
		return ErrRowCountMismatch
	}

	// Append new entries into A per structural column. Entries arrive
	// grouped by row; regroup them by column into temporary per-column
	// buckets, then splice into A, since SparseCols is column-major.
	byCol := make(map[int][]struct {
		row int
		val T
	}, lp.NCols)

	for i := 0; i < rowcnt; i++ {
		lo := rowbeg[i]
		hi := len(rowind)
		if i+1 < rowcnt {
			hi = rowbeg[i+1]
		}
		for k := lo; k < hi; k++ {
			col := rowind[k]
			if col < 0 || col >= lp.NCols {
				return ErrOutOfRange
			}
			byCol[col] = append(byCol[col], struct {
				row int
				val T
			}{lp.NRows + i, rowval[k]})
		}
	}

	rowBase := lp.NRows
	for i := 0; i < rowcnt; i++ {
		lp.RHS = append(lp.RHS, rhs[i])
		lp.RowNames = append(lp.RowNames, "")
		lp.RowMap = append(lp.RowMap, lp.NCols+rowBase+i)

		var lo, up T // zero value of T ("0")
		switch rowsense[i] {
		case 'L':
			up = rrange[i]
		case 'G':
			lo = rrange[i].Neg()
		case 'E':
			// lo, up both remain 0.
		case 'R':
			up = absT(rrange[i])
		}
		lp.Lower = append(lp.Lower, lo)
		lp.Upper = append(lp.Upper, up)
		var zeroObj T
		lp.Obj = append(lp.Obj, zeroObj) // logicals never carry objective weight
	}
	lp.NRows += rowcnt

	rebuildSparseCols(lp.A, lp.NCols, byCol)

	return nil
}

// absT returns |v|, used for ranged-row logical bounds.
func absT[T numeric.Num[T]](v T) T {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v
}

func rebuildSparseCols[T numeric.Num[T]](a *SparseCols[T], ncols int, byCol map[int][]struct {
	row int
	val T
}) {
	// Merge the new per-column entries with whatever A already held,
	// preserving column order. Existing entries are untouched; new ones
	// are appended within each column, then the whole Ind/Val arrays are
	// rebuilt contiguously so Beg/Cnt stay column-compressed.
	type entry struct {
		row int
		val T
	}
	merged := make([][]entry, ncols)
	for c := 0; c < ncols; c++ {
		if c < len(a.Cnt) {
			ind, val := a.Col(c)
			for k := range ind {
				merged[c] = append(merged[c], entry{ind[k], val[k]})
			}
		}
		for _, e := range byCol[c] {
			merged[c] = append(merged[c], entry{e.row, e.val})
		}
	}

	beg := make([]int, ncols)
	cnt := make([]int, ncols)
	var ind []int
	var val []T
	for c := 0; c < ncols; c++ {
		beg[c] = len(ind)
		cnt[c] = len(merged[c])
		for _, e := range merged[c] {
			ind = append(ind, e.row)
			val = append(val, e.val)
		}
	}

	a.Beg, a.Cnt, a.Ind, a.Val = beg, cnt, ind, val
}

// LoadBasis validates and installs b as the LP's current basis.
func (lp *LP[T]) LoadBasis(b *Basis) error {
	if b.NStruct != lp.NCols || b.NRows != lp.NRows {
		return ErrBadBasis
	}
	if err := b.Validate(); err != nil {
		return err
	}
	lp.Basis = b.Clone()
	return nil
}

// GetBasis returns an independent copy of the LP's current basis, or nil
// if none is loaded.
func (lp *LP[T]) GetBasis() *Basis {
	return lp.Basis.Clone()
}

// ParamKey names a recognized entry in the parameter namespace (§6).
type ParamKey string

const (
	PrimalPricing        ParamKey = "PRIMAL_PRICING"
	DualPricing          ParamKey = "DUAL_PRICING"
	SimplexDisplay       ParamKey = "SIMPLEX_DISPLAY"
	SimplexMaxIterations ParamKey = "SIMPLEX_MAX_ITERATIONS"
	SimplexScaling       ParamKey = "SIMPLEX_SCALING"
	SimplexMaxTime       ParamKey = "SIMPLEX_MAX_TIME"
	ObjULimParam         ParamKey = "OBJULIM"
	ObjLLimParam         ParamKey = "OBJLLIM"
)

// GetIntParam reads an integer-valued parameter.
func (lp *LP[T]) GetIntParam(key ParamKey) (int, error) {
	switch key {
	case PrimalPricing:
		return lp.Params.PrimalPricing, nil
	case DualPricing:
		return lp.Params.DualPricing, nil
	case SimplexMaxIterations:
		return lp.Params.SimplexMaxIterations, nil
	case SimplexDisplay:
		return boolToInt(lp.Params.SimplexDisplay), nil
	case SimplexScaling:
		return boolToInt(lp.Params.SimplexScaling), nil
	default:
		return 0, ErrParam
	}
}

// SetIntParam writes an integer-valued parameter.
func (lp *LP[T]) SetIntParam(key ParamKey, v int) error {
	switch key {
	case PrimalPricing:
		lp.Params.PrimalPricing = v
	case DualPricing:
		lp.Params.DualPricing = v
	case SimplexMaxIterations:
		if v < 0 {
			return ErrParam
		}
		lp.Params.SimplexMaxIterations = v
	case SimplexDisplay:
		lp.Params.SimplexDisplay = v != 0
	case SimplexScaling:
		lp.Params.SimplexScaling = v != 0
	default:
		return ErrParam
	}
	return nil
}

// GetFloatParam reads a numeric-valued parameter.
func (lp *LP[T]) GetFloatParam(key ParamKey) (float64, error) {
	switch key {
	case SimplexMaxTime:
		return lp.Params.SimplexMaxTime, nil
	case ObjULimParam:
		return lp.Params.ObjULim, nil
	case ObjLLimParam:
		return lp.Params.ObjLLim, nil
	default:
		return 0, ErrParam
	}
}

// SetFloatParam writes a numeric-valued parameter.
func (lp *LP[T]) SetFloatParam(key ParamKey, v float64) error {
	switch key {
	case SimplexMaxTime:
		if v < 0 {
			return ErrParam
		}
		lp.Params.SimplexMaxTime = v
	case ObjULimParam:
		lp.Params.ObjULim = v
	case ObjLLimParam:
		lp.Params.ObjLLim = v
	default:
		return ErrParam
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
