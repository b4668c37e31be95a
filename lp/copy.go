// SPDX-License-Identifier: MIT

package lp

import "github.com/katalvlaran/qsxact/numeric"

// copyParams deep-copies a ParamSet so the two LPs never alias it.
func copyParams(p *ParamSet) *ParamSet {
	out := *p
	return &out
}

// CopyMpqToDbl converts a rational LP into a short-lived machine-double
// scratch copy — round 0 of the Driver's precision ladder. Bounds,
// objective, rhs and matrix values are converted via numeric.MpqToDbl;
// the parameter set is copied unchanged; sparsity pattern, dimensions and
// sense are preserved exactly (§4.2, §8 round-trip property).
func CopyMpqToDbl(src *LP[numeric.Mpq], newName string) *LP[numeric.Dbl] {
	dst := &LP[numeric.Dbl]{
		Name:      newName,
		Sense:     src.Sense,
		NCols:     src.NCols,
		NRows:     src.NRows,
		ColNames:  append([]string(nil), src.ColNames...),
		RowNames:  append([]string(nil), src.RowNames...),
		StructMap: append([]int(nil), src.StructMap...),
		RowMap:    append([]int(nil), src.RowMap...),
		Params:    copyParams(src.Params),
	}
	dst.A = copySparseMpqToDbl(src.A)
	dst.Lower = convertSliceMpqToDbl(src.Lower)
	dst.Upper = convertSliceMpqToDbl(src.Upper)
	dst.RHS = convertSliceMpqToDbl(src.RHS)
	dst.Obj = convertSliceMpqToDbl(src.Obj)
	return dst
}

// CopyMpqToMpf converts a rational LP into a short-lived extended-float
// scratch copy at the current process precision (numeric.Precision).
func CopyMpqToMpf(src *LP[numeric.Mpq], newName string) *LP[numeric.Mpf] {
	dst := &LP[numeric.Mpf]{
		Name:      newName,
		Sense:     src.Sense,
		NCols:     src.NCols,
		NRows:     src.NRows,
		ColNames:  append([]string(nil), src.ColNames...),
		RowNames:  append([]string(nil), src.RowNames...),
		StructMap: append([]int(nil), src.StructMap...),
		RowMap:    append([]int(nil), src.RowMap...),
		Params:    copyParams(src.Params),
	}
	prec := numeric.Precision()
	dst.A = copySparseMpqToMpf(src.A, prec)
	dst.Lower = convertSliceMpqToMpf(src.Lower, prec)
	dst.Upper = convertSliceMpqToMpf(src.Upper, prec)
	dst.RHS = convertSliceMpqToMpf(src.RHS, prec)
	dst.Obj = convertSliceMpqToMpf(src.Obj, prec)
	return dst
}

// CopyDblToMpq lifts a double-precision candidate LP's structure back to
// rational form. Used only for structural/round-trip checks in tests; the
// Driver itself lifts individual solution vectors (numeric.DblToMpq on
// x/y), not whole LPs, since the rational LP is long-lived and never
// rebuilt from a scratch copy.
func CopyDblToMpq(src *LP[numeric.Dbl], newName string) *LP[numeric.Mpq] {
	dst := &LP[numeric.Mpq]{
		Name:      newName,
		Sense:     src.Sense,
		NCols:     src.NCols,
		NRows:     src.NRows,
		ColNames:  append([]string(nil), src.ColNames...),
		RowNames:  append([]string(nil), src.RowNames...),
		StructMap: append([]int(nil), src.StructMap...),
		RowMap:    append([]int(nil), src.RowMap...),
		Params:    copyParams(src.Params),
	}
	dst.A = copySparseDblToMpq(src.A)
	dst.Lower = convertSliceDblToMpq(src.Lower)
	dst.Upper = convertSliceDblToMpq(src.Upper)
	dst.RHS = convertSliceDblToMpq(src.RHS)
	dst.Obj = convertSliceDblToMpq(src.Obj)
	return dst
}

// CopyMpfToMpq lifts an extended-float candidate LP's structure back to
// rational form (test/round-trip use only, symmetric with CopyDblToMpq).
func CopyMpfToMpq(src *LP[numeric.Mpf], newName string) *LP[numeric.Mpq] {
	dst := &LP[numeric.Mpq]{
		Name:      newName,
		Sense:     src.Sense,
		NCols:     src.NCols,
		NRows:     src.NRows,
		ColNames:  append([]string(nil), src.ColNames...),
		RowNames:  append([]string(nil), src.RowNames...),
		StructMap: append([]int(nil), src.StructMap...),
		RowMap:    append([]int(nil), src.RowMap...),
		Params:    copyParams(src.Params),
	}
	dst.A = copySparseMpfToMpq(src.A)
	dst.Lower = convertSliceMpfToMpq(src.Lower)
	dst.Upper = convertSliceMpfToMpq(src.Upper)
	dst.RHS = convertSliceMpfToMpq(src.RHS)
	dst.Obj = convertSliceMpfToMpq(src.Obj)
	return dst
}

func convertSliceMpqToDbl(in []numeric.Mpq) []numeric.Dbl {
	out := make([]numeric.Dbl, len(in))
	for i, v := range in {
		out[i] = numeric.MpqToDbl(v)
	}
	return out
}

func convertSliceMpqToMpf(in []numeric.Mpq, prec uint) []numeric.Mpf {
	out := make([]numeric.Mpf, len(in))
	for i, v := range in {
		out[i] = numeric.MpqToMpf(v, prec)
	}
	return out
}

func convertSliceDblToMpq(in []numeric.Dbl) []numeric.Mpq {
	out := make([]numeric.Mpq, len(in))
	for i, v := range in {
		out[i] = numeric.DblToMpq(v)
	}
	return out
}

func convertSliceMpfToMpq(in []numeric.Mpf) []numeric.Mpq {
	out := make([]numeric.Mpq, len(in))
	for i, v := range in {
		out[i] = numeric.MpfToMpq(v)
	}
	return out
}

func copySparseMpqToDbl(a *SparseCols[numeric.Mpq]) *SparseCols[numeric.Dbl] {
	return &SparseCols[numeric.Dbl]{
		Beg: append([]int(nil), a.Beg...),
		Cnt: append([]int(nil), a.Cnt...),
		Ind: append([]int(nil), a.Ind...),
		Val: convertSliceMpqToDbl(a.Val),
	}
}

func copySparseMpqToMpf(a *SparseCols[numeric.Mpq], prec uint) *SparseCols[numeric.Mpf] {
	return &SparseCols[numeric.Mpf]{
		Beg: append([]int(nil), a.Beg...),
		Cnt: append([]int(nil), a.Cnt...),
		Ind: append([]int(nil), a.Ind...),
		Val: convertSliceMpqToMpf(a.Val, prec),
	}
}

func copySparseDblToMpq(a *SparseCols[numeric.Dbl]) *SparseCols[numeric.Mpq] {
	return &SparseCols[numeric.Mpq]{
		Beg: append([]int(nil), a.Beg...),
		Cnt: append([]int(nil), a.Cnt...),
		Ind: append([]int(nil), a.Ind...),
		Val: convertSliceDblToMpq(a.Val),
	}
}

func copySparseMpfToMpq(a *SparseCols[numeric.Mpf]) *SparseCols[numeric.Mpq] {
	return &SparseCols[numeric.Mpq]{
		Beg: append([]int(nil), a.Beg...),
		Cnt: append([]int(nil), a.Cnt...),
		Ind: append([]int(nil), a.Ind...),
		Val: convertSliceMpfToMpq(a.Val),
	}
}
