// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// GaussSeidel implements relaxed Gauss-Seidel sweeps over the profile
// storage. The first sweep uses over-relaxation w=1.7 to shake the
// initial guess; subsequent sweeps use w=1. No factorization is needed,
// so this solver also serves matrices whose profile cannot support the
// incomplete factorization.
type GaussSeidel struct {
	mat *Matrix
	f   []float64
	cfg *Config

	// scratchpad
	upacc []float64 // per-sweep gather of upper-triangle contributions
	xold  []float64 // previous sweep solution, for stagnation detection
	t     []float64 // residual scratch
}

// register solver
func init() {
	allocators["gs"] = func() Solver { return new(GaussSeidel) }
}

// Init prepares the sweeps. The matrix must be in raw state.
func (o *GaussSeidel) Init(A *Matrix, f []float64, cfg *Config) (err error) {
	if A.IsFactorized() {
		return ErrAlreadyFactorized
	}
	o.mat = A
	o.f = f
	o.cfg = cfg
	o.cfg.Derived()
	o.upacc = make([]float64, A.Size)
	o.xold = make([]float64, A.Size)
	o.t = make([]float64, A.Size)
	return
}

// Solve runs relaxed sweeps, mutating x in place
func (o *GaussSeidel) Solve(x []float64) (res *Results, err error) {
	n := o.mat.Size
	met := false
	var it int
	var resid float64
	for it = 0; it < o.cfg.NmaxIt; it++ {
		w := 1.0
		if it == 0 {
			w = 1.7
		}
		copy(o.xold, x)

		// upper-triangle contributions are gathered once per sweep from the
		// pre-sweep solution; the lower triangle uses updated values below
		la.VecFill(o.upacc, 0)
		for j := 0; j < n; j++ {
			for k := o.mat.Ptr[j]; k < o.mat.Ptr[j+1]; k++ {
				o.upacc[o.mat.Col[k]] += o.mat.Up[k] * x[j]
			}
		}
		for i := 0; i < n; i++ {
			s := o.f[i] - o.upacc[i] - o.mat.Diag[i]*x[i]
			for k := o.mat.Ptr[i]; k < o.mat.Ptr[i+1]; k++ {
				s -= o.mat.Low[k] * x[o.mat.Col[k]]
			}
			x[i] += w * s / o.mat.Diag[i]
		}

		resid = relResid(o.mat, x, o.f, o.t)
		if o.cfg.ShowR {
			io.Pf("%4d%23.15e\n", it+1, resid)
		}
		if resid <= o.cfg.Eps {
			met = true
			it++
			break
		}
		if la.VecMaxDiff(x, o.xold) <= o.cfg.Delta {
			met = true
			it++
			break
		}
	}
	res = &Results{
		Iterations: it,
		Residual:   resid,
		Converged:  met,
	}
	return
}
