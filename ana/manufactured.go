// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements manufactured solutions of the 1D elliptic
// equation for verifying the finite element solver
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Field wraps a plain function as a scalar field evaluator compatible
// with the F(t,x) signature of gosl function objects
type Field func(t float64) float64

// F implements the evaluator interface
func (o Field) F(t float64, x []float64) float64 { return o(t) }

// Linear holds the manufactured case with constant conductivity K and
// linear solution
//
//   u(x) = A + B⋅x      -d/dx( K⋅du/dx ) = 0
//
// Linear elements represent u exactly, so the Picard iteration must
// converge in a single step with error at machine precision.
type Linear struct {
	A, B float64 // solution coefficients
	K    float64 // constant conductivity
}

// Kcoef returns the conductivity evaluator k(u)
func (o *Linear) Kcoef() Field { return func(float64) float64 { return o.K } }

// Uref returns the reference solution u(x)
func (o *Linear) Uref() Field { return func(x float64) float64 { return o.A + o.B*x } }

// Flux returns the boundary flux K⋅du/dx, constant over the domain
func (o *Linear) Flux() float64 { return o.K * o.B }

// QuadraticK holds the genuinely nonlinear manufactured case
//
//   u(x)  = (A + B⋅x)²
//   k(u)  = 1 + u
//   s(x)  = -d/dx( k(u)⋅du/dx ) = -2B² - 6B²(A + B⋅x)²
//
// so that the equation with r = 0 holds exactly.
type QuadraticK struct {
	A, B float64 // solution coefficients
}

// Kcoef returns the conductivity evaluator k(u) = 1 + u
func (o *QuadraticK) Kcoef() Field { return func(u float64) float64 { return 1 + u } }

// Source returns the matching source term s(x)
func (o *QuadraticK) Source() Field {
	return func(x float64) float64 {
		w := o.A + o.B*x
		return -2*o.B*o.B - 6*o.B*o.B*w*w
	}
}

// Uref returns the reference solution u(x)
func (o *QuadraticK) Uref() Field { return func(x float64) float64 { w := o.A + o.B*x; return w * w } }

// CheckU checks computed nodal values against a reference solution
func CheckU(tst *testing.T, tol float64, u, x []float64, uref Field) {
	uana := make([]float64, len(x))
	for i, xi := range x {
		uana[i] = uref(xi)
	}
	chk.Array(tst, "u", tol, u, uana)
}
