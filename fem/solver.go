// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/boorlakov/umf/inp"
	"github.com/boorlakov/umf/sparse"
)

// Statistics holds the outcome of a nonlinear solve. When the iteration
// cap is reached without meeting eps or delta, Converged is false but
// the best available approximation is still reported, so the caller
// decides what to do with it. NaN or Inf in Residual/Error are stored
// unfiltered; use Healthy to detect ill-posed configurations.
type Statistics struct {
	Iterations int       // number of nonlinear iterations performed
	Residual   float64   // relative residual of the last linearized system
	Error      float64   // ‖u-ref‖/‖ref‖ against the reference solution; 0 if no reference
	Values     []float64 // solution values at the grid nodes
	RelaxRatio float64   // relaxation coefficient actually used in the last update
	History    []float64 // relative residual after each iteration
	Converged  bool      // eps or stagnation was met before the iteration cap
}

// Healthy tells whether the reported numbers are finite
func (o *Statistics) Healthy() bool {
	for _, v := range o.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return !math.IsNaN(o.Residual) && !math.IsInf(o.Residual, 0) &&
		!math.IsNaN(o.Error) && !math.IsInf(o.Error, 0)
}

// Solver implements the simple (Picard) iteration driver: each step
// assembles the linearized system at the current approximation, applies
// boundary conditions, solves it, and blends the fresh solution with the
// previous approximation using a fixed or searched relaxation ratio.
type Solver struct {
	Dom *Domain         // mesh and coefficients
	Bcs *Bcs            // endpoint conditions
	Dat *inp.SolverData // accuracy settings
	Ref Scalar          // reference solution for error reporting; may be nil
}

// NewSolver returns a new nonlinear solver
func NewSolver(dom *Domain, bcs *Bcs, dat *inp.SolverData, ref Scalar) (o *Solver) {
	if dat == nil {
		chk.Panic("solver settings are mandatory")
	}
	dat.PostProcess()
	o = new(Solver)
	o.Dom = dom
	o.Bcs = bcs
	o.Dat = dat
	o.Ref = ref
	return
}

// Run performs the nonlinear iterations. The loop always executes at
// least once and exits on: relative residual of the last linearized
// system ≤ eps, stagnation between the fresh linear solution and the
// previous approximation below delta, or the iteration cap (in which
// case Statistics.Converged is false).
func (o *Solver) Run() (sta *Statistics, err error) {

	// auxiliary
	n := o.Dom.Grid.Nnodes()
	u := make([]float64, n) // current approximation
	ratio := o.Dat.RelaxRatio
	var resid float64
	var it int
	var history []float64
	met := false

	// message
	if o.Dat.ShowR {
		io.Pf("%4s%23s%23s\n", "it", "resid", "ratio")
	}

	// iterations
	for it = 0; it < o.Dat.NmaxIt; it++ {

		// linearized system at the current approximation
		A, f := o.Dom.AssembleSystem(u)
		err = o.Bcs.Apply(A, f, o.Dom.Grid.X)
		if err != nil {
			return
		}

		// linear solve into a fresh buffer seeded with the current approximation
		lin := sparse.New(o.Dat.LinSol)
		err = lin.Init(A, f, &sparse.Config{Eps: o.Dat.Eps, NmaxIt: o.Dat.NmaxIt, Delta: o.Dat.Delta})
		if err != nil {
			return
		}
		x := make([]float64, n)
		copy(x, u)
		_, err = lin.Solve(x)
		if err != nil {
			return
		}

		// relaxation ratio
		ratio = o.Dat.RelaxRatio
		if o.Dat.AutoRelax {
			ratio = searchRelax(A, f, x, u, o.Dat.Eps)
		}

		// blended update; the previous approximation is never overwritten
		unew := make([]float64, n)
		for i := 0; i < n; i++ {
			unew[i] = ratio*x[i] + (1-ratio)*u[i]
		}
		resid = sparse.RelResid(A, unew, f)
		stagnated := la.VecMaxDiff(x, u) <= o.Dat.Delta
		u = unew
		history = append(history, resid)

		// message
		if o.Dat.ShowR {
			io.Pf("%4d%23.15e%23.15e\n", it+1, resid, ratio)
		}

		// stopping criteria
		if resid <= o.Dat.Eps || stagnated {
			met = true
			it++
			break
		}
	}

	// statistics
	sta = &Statistics{
		Iterations: it,
		Residual:   resid,
		Values:     u,
		RelaxRatio: ratio,
		History:    history,
		Converged:  met,
	}
	if o.Ref != nil {
		sta.Error = o.refError(u)
	}
	return
}

// refError returns the relative error ‖u-ref‖/‖ref‖ at the grid nodes
func (o *Solver) refError(u []float64) float64 {
	n := o.Dom.Grid.Nnodes()
	diff := make([]float64, n)
	ref := make([]float64, n)
	for i := 0; i < n; i++ {
		ref[i] = o.Ref.F(o.Dom.Grid.X[i], nil)
		diff[i] = u[i] - ref[i]
	}
	den := la.VecNorm(ref)
	if den == 0 {
		den = 1
	}
	return la.VecNorm(diff) / den
}
