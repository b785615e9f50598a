// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Config holds the accuracy settings of the linear solvers
type Config struct {
	Eps    float64 // residual tolerance
	NmaxIt int     // maximum number of iterations
	Delta  float64 // stagnation tolerance
	ShowR  bool    // print residual trace
}

// Derived fills missing settings with defaults
func (o *Config) Derived() {
	if o.Eps <= 0 {
		o.Eps = 1e-14
	}
	if o.NmaxIt < 1 {
		o.NmaxIt = 1000
	}
	if o.Delta <= 0 {
		o.Delta = 1e-16
	}
}

// Results holds the outcome of a linear solve. A solve that hits the
// iteration cap still fills the solution vector with its best iterate;
// Converged tells whether a stopping tolerance was actually met.
type Results struct {
	Iterations int     // number of iterations performed
	Residual   float64 // relative residual ‖f-A⋅x‖/‖f‖ at exit
	Converged  bool    // a tolerance (eps or stagnation) was met
}

// Solver solves A⋅x = f iteratively
type Solver interface {

	// Init prepares the solver for a given system. The matrix must be in
	// raw (unfactorized) state; solvers that need a preconditioner
	// factorize a private clone and never mutate the caller's matrix.
	Init(A *Matrix, f []float64, cfg *Config) error

	// Solve iterates, mutating x in place. x carries the initial guess on
	// input and the best iterate reached on output.
	Solve(x []float64) (*Results, error)
}

// allocators maps solver names to allocation functions
var allocators = make(map[string]func() Solver)

// New returns a solver by name; e.g. "los" or "gs"
func New(name string) Solver {
	if alloc, ok := allocators[name]; ok {
		return alloc()
	}
	var known []string
	for name := range allocators {
		known = append(known, name)
	}
	chk.Panic("cannot find linear solver named %q. available solvers: %v", name, known)
	return nil
}

// RelResid returns the relative residual ‖f-A⋅x‖/‖f‖
func RelResid(A *Matrix, x, f []float64) float64 {
	return relResid(A, x, f, make([]float64, A.Size))
}

// relResid returns ‖f-A⋅x‖/‖f‖, using the absolute norm when f is zero
func relResid(A *Matrix, x, f, scratch []float64) float64 {
	A.MatVecMul(scratch, x)
	for i := 0; i < A.Size; i++ {
		scratch[i] = f[i] - scratch[i]
	}
	den := la.VecNorm(f)
	if den == 0 {
		den = 1
	}
	return la.VecNorm(scratch) / den
}
