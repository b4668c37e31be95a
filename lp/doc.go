// SPDX-License-Identifier: MIT

// Package lp is the LPStore component: a column-compressed-sparse
// representation of a linear program in one numeric flavor (see package
// numeric), generic over that flavor, plus the Basis and SolutionCache
// types shared by every other qsxact package.
//
// An LP[T] owns its A/bounds/rhs/obj arrays and, optionally, a solution
// cache (only ever populated for T = numeric.Mpq, by package certify).
// Basis objects are value types with their own Clone; transferring a
// basis out of a copy is an explicit Clone, never an aliasing assignment
// — Go's garbage collector makes the source's "null the origin's
// pointers on move" ownership dance unnecessary, so qsxact documents the
// same ownership discipline (one basis flows at a time) without the
// manual bookkeeping.
package lp
