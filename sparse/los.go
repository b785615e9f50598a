// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Los implements the locally optimal scheme: a conjugate-direction
// iteration for symmetric-pattern (possibly indefinite) sparse systems,
// preconditioned by the incomplete LU-square factorization of a private
// clone of the matrix.
//
// The residual scalar is maintained by the algebraic update
//
//   res -= α²⋅(p,p)
//
// instead of recomputing (r,r) each iteration. This is the standard
// cheap estimate for this scheme; it can drift over many iterations, so
// Results reports the directly computed relative residual at exit.
type Los struct {
	mat *Matrix  // caller's matrix (multiplies only; never mutated)
	fac *Factors // factors of a private clone
	f   []float64
	cfg *Config

	// scratchpad
	r, z, p []float64 // residual and direction vectors (preconditioned space)
	ur, q   []float64 // U⁻¹r and L⁻¹A U⁻¹r
	t       []float64 // result of matrix-vector products
}

// register solver
func init() {
	allocators["los"] = func() Solver { return new(Los) }
}

// Init clones and factorizes the matrix. The caller's matrix must be in
// raw state; factorization is this solver's private responsibility.
func (o *Los) Init(A *Matrix, f []float64, cfg *Config) (err error) {
	if A.IsFactorized() {
		return ErrAlreadyFactorized
	}
	o.fac, err = A.Clone().Fact()
	if err != nil {
		return
	}
	o.mat = A
	o.f = f
	o.cfg = cfg
	o.cfg.Derived()
	n := A.Size
	o.r = make([]float64, n)
	o.z = make([]float64, n)
	o.p = make([]float64, n)
	o.ur = make([]float64, n)
	o.q = make([]float64, n)
	o.t = make([]float64, n)
	return
}

// Solve runs the conjugate-direction iteration, mutating x in place
func (o *Los) Solve(x []float64) (res *Results, err error) {
	n := o.mat.Size

	// r = L⁻¹(f - A⋅x)
	o.mat.MatVecMul(o.t, x)
	for i := 0; i < n; i++ {
		o.t[i] = o.f[i] - o.t[i]
	}
	err = o.fac.ForwardSolve(o.r, o.t)
	if err != nil {
		return
	}

	// z = U⁻¹r and p = L⁻¹A⋅z
	err = o.fac.BackwardSolve(o.z, o.r)
	if err != nil {
		return
	}
	o.mat.MatVecMul(o.t, o.z)
	err = o.fac.ForwardSolve(o.p, o.t)
	if err != nil {
		return
	}

	// iterations
	rr := la.VecDot(o.r, o.r)
	prev := rr
	met := math.Abs(rr) <= o.cfg.Eps
	nstag := 0
	var it int
	for it = 0; it < o.cfg.NmaxIt; it++ {
		if met {
			break
		}

		// step length and updates along the current direction
		pp := la.VecDot(o.p, o.p)
		if pp == 0 {
			break
		}
		alp := la.VecDot(o.p, o.r) / pp
		for i := 0; i < n; i++ {
			x[i] += alp * o.z[i]
			o.r[i] -= alp * o.p[i]
		}

		// new directions
		err = o.fac.BackwardSolve(o.ur, o.r)
		if err != nil {
			return
		}
		o.mat.MatVecMul(o.t, o.ur)
		err = o.fac.ForwardSolve(o.q, o.t)
		if err != nil {
			return
		}
		bet := -la.VecDot(o.p, o.q) / pp
		for i := 0; i < n; i++ {
			o.z[i] = o.ur[i] + bet*o.z[i]
			o.p[i] = o.q[i] + bet*o.p[i]
		}

		// running residual estimate
		rr -= alp * alp * pp
		if o.cfg.ShowR {
			io.Pf("%4d%23.15e\n", it+1, rr)
		}
		if math.Abs(rr) <= o.cfg.Eps {
			met = true
			continue
		}
		if math.Abs(rr-prev) <= o.cfg.Delta {
			nstag++
			if nstag >= 2 {
				met = true
				continue
			}
		} else {
			nstag = 0
		}
		prev = rr
	}

	res = &Results{
		Iterations: it,
		Residual:   relResid(o.mat, x, o.f, o.t),
		Converged:  met,
	}
	return
}
