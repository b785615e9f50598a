// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element solution of the 1D nonlinear
// elliptic boundary value problem
//
//   -d/dx( k(u)⋅du/dx ) + r(x)⋅u = s(x)   on [xa, xb]
//
// by simple (Picard) iteration with adaptive relaxation around a sparse
// linear solver
package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/boorlakov/umf/mesh"
	"github.com/boorlakov/umf/sparse"
)

// Scalar evaluates a scalar field given one scalar argument; any gosl
// fun.TimeSpace satisfies it. By convention the diffusion coefficient is
// evaluated at the current approximation value (t=u) while reaction,
// source, boundary and reference functions are evaluated at the node
// coordinate (t=x).
type Scalar interface {
	F(t float64, x []float64) float64
}

// Domain holds the mesh and coefficient evaluators and assembles the
// linearized system at a given approximation
type Domain struct {
	Grid *mesh.Grid // node coordinates
	Kfun Scalar     // diffusion coefficient k(u)
	Rfun Scalar     // reaction coefficient r(x)
	Sfun Scalar     // source term s(x)
}

// 2-point Gauss rule on [-1,1]
var gpts = []float64{-0.5773502691896257, +0.5773502691896257}

// NewDomain returns a new domain. The reaction and source evaluators may
// be nil, meaning zero.
func NewDomain(grid *mesh.Grid, kfun, rfun, sfun Scalar) (o *Domain) {
	if grid.Nnodes() < 2 {
		chk.Panic("domain needs at least two nodes. n=%d is invalid", grid.Nnodes())
	}
	if kfun == nil {
		chk.Panic("diffusion coefficient function is mandatory")
	}
	o = new(Domain)
	o.Grid = grid
	o.Kfun = kfun
	o.Rfun = rfun
	o.Sfun = sfun
	return
}

// AssembleSystem builds the linearized system A(u)⋅x = f(u) with linear
// (hat) elements, freezing the nonlinear coefficient at the given
// approximation. A fresh matrix and right-hand side are returned every
// call, since factorization consumes the matrix raw state.
func (o *Domain) AssembleSystem(u []float64) (A *sparse.Matrix, f []float64) {
	n := o.Grid.Nnodes()
	A = sparse.NewTriDiag(n)
	f = make([]float64, n)
	for e := 0; e < o.Grid.Ncells(); e++ {
		xl, xr := o.Grid.X[e], o.Grid.X[e+1]
		h := xr - xl

		// element conductivity: k(u) averaged over the element with u
		// interpolated at the Gauss points
		ke := 0.0
		for _, xi := range gpts {
			nl, nr := (1-xi)/2, (1+xi)/2
			ke += o.Kfun.F(nl*u[e]+nr*u[e+1], nil)
		}
		ke /= float64(len(gpts))

		// stiffness: ke/h ⋅ [[1,-1],[-1,1]]
		A.Put(e, e, ke/h)
		A.Put(e+1, e+1, ke/h)
		A.PutSym(e+1, e, -ke/h)

		// reaction mass and source by the same quadrature
		for _, xi := range gpts {
			nl, nr := (1-xi)/2, (1+xi)/2
			xg := nl*xl + nr*xr
			wg := h / 2
			if o.Rfun != nil {
				rg := o.Rfun.F(xg, nil) * wg
				A.Put(e, e, rg*nl*nl)
				A.Put(e+1, e+1, rg*nr*nr)
				A.PutSym(e+1, e, rg*nl*nr)
			}
			if o.Sfun != nil {
				sg := o.Sfun.F(xg, nil) * wg
				f[e] += sg * nl
				f[e+1] += sg * nr
			}
		}
	}
	return
}
