// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting of boundary value problem results:
// text tables, figures and HTML pages
package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/boorlakov/umf/fem"
	"github.com/boorlakov/umf/mesh"
)

// Report prints a summary table of the solution statistics
func Report(sta *fem.Statistics, grid *mesh.Grid, withValues bool) {
	io.Pf("\n")
	io.Pf("%s\n", io.ArgsTable("SOLUTION STATISTICS",
		"number of iterations", "iterations", sta.Iterations,
		"final relative residual", "residual", sta.Residual,
		"error against reference", "error", sta.Error,
		"relaxation ratio used", "relaxratio", sta.RelaxRatio,
		"tolerances met", "converged", sta.Converged,
	))
	if !sta.Healthy() {
		io.PfRed("results contain non-finite values; check the problem configuration\n")
	}
	if withValues {
		io.Pf("\n%6s%23s\n", "x", "u")
		for i, x := range grid.X {
			io.Pf("%6g%23.15e\n", x, sta.Values[i])
		}
	}
}

// PlotSolution saves a figure with the solution values and, when ref is
// not nil, the reference solution
func PlotSolution(sta *fem.Statistics, grid *mesh.Grid, ref fem.Scalar, dirout, fnkey string) {
	plt.Reset()
	plt.Plot(grid.X, sta.Values, "'b-', marker='.', label='fem', clip_on=0")
	if ref != nil {
		Y := make([]float64, grid.Nnodes())
		for i, x := range grid.X {
			Y[i] = ref.F(x, nil)
		}
		plt.Plot(grid.X, Y, "'k--', label='reference', clip_on=0")
	}
	plt.Gll("$x$", "$u$", "")
	plt.SaveD(dirout, io.Sf("%s-solution.eps", fnkey))
}

// PlotConvergence saves a figure with the relative residual history of
// the nonlinear iterations
func PlotConvergence(sta *fem.Statistics, dirout, fnkey string) {
	if len(sta.History) < 1 {
		return
	}
	its := make([]float64, len(sta.History))
	for i := range its {
		its[i] = float64(i + 1)
	}
	plt.Reset()
	plt.Plot(its, sta.History, "'r-', marker='o', clip_on=0")
	plt.Gll("iteration", "relative residual", "")
	plt.SaveD(dirout, io.Sf("%s-convergence.eps", fnkey))
}
