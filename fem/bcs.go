// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/cpmech/gosl/chk"

	"github.com/boorlakov/umf/inp"
	"github.com/boorlakov/umf/sparse"
)

// kinds of boundary conditions
const (
	FirstKind  = 1 // Dirichlet: prescribed value
	SecondKind = 2 // Neumann: prescribed flux
	ThirdKind  = 3 // Robin: flux proportional to value, with coefficient beta
)

// ErrDegenerateDomain is returned when boundary conditions are applied
// to a single-node system, where both endpoints would share one row.
var ErrDegenerateDomain = errors.New("fem: single-node domain cannot take boundary conditions")

// Bc holds one endpoint boundary condition
type Bc struct {
	Kind int     // FirstKind, SecondKind or ThirdKind
	Fcn  Scalar  // boundary value, evaluated at the endpoint coordinate
	Beta float64 // Robin coefficient
}

// Bcs holds the conditions of both endpoints
type Bcs struct {
	Left  Bc
	Right Bc
}

// KindFromString converts an input-file kind name to its constant
func KindFromString(kind string) int {
	switch kind {
	case "first":
		return FirstKind
	case "second":
		return SecondKind
	case "third":
		return ThirdKind
	}
	chk.Panic("unknown boundary condition kind %q. must be first, second or third", kind)
	return 0
}

// NewBcs builds the applicator from input data, resolving boundary value
// functions through the registry
func NewBcs(left, right inp.BcData, functions inp.FuncsData) (o *Bcs) {
	o = new(Bcs)
	o.Left = Bc{Kind: KindFromString(left.Kind), Fcn: functions.MustGet(left.Func), Beta: left.Beta}
	o.Right = Bc{Kind: KindFromString(right.Kind), Fcn: functions.MustGet(right.Func), Beta: right.Beta}
	return
}

// Apply mutates the assembled matrix and right-hand side in place
// according to the endpoint conditions. Left and right touch disjoint
// rows (0 and n-1), so the order does not matter.
func (o *Bcs) Apply(A *sparse.Matrix, f, x []float64) (err error) {
	if A.Size < 2 {
		return ErrDegenerateDomain
	}
	o.Left.apply(A, f, x[0], 0)
	o.Right.apply(A, f, x[A.Size-1], A.Size-1)
	return
}

// apply mutates row i of the system for one endpoint at coordinate xc
func (o *Bc) apply(A *sparse.Matrix, f []float64, xc float64, i int) {
	g := o.Fcn.F(xc, nil)
	switch o.Kind {
	case FirstKind:
		// pin the row to identity
		A.Diag[i] = 1
		for k := A.Ptr[i]; k < A.Ptr[i+1]; k++ {
			A.Low[k] = 0
		}
		for j := i + 1; j < A.Size; j++ {
			for k := A.Ptr[j]; k < A.Ptr[j+1]; k++ {
				if A.Col[k] == i {
					A.Up[k] = 0
				}
			}
		}
		f[i] = g
	case SecondKind:
		f[i] += g
	case ThirdKind:
		A.Diag[i] += o.Beta
		f[i] += o.Beta * g
	}
}
