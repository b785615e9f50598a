// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. read simulation file")

	sim := ReadSim("data/nonlin1.sim")
	chk.StrAssert(sim.Data.Desc, "nonlinear diffusion on [0,1]")
	chk.IntAssert(sim.Grid.N, 11)
	chk.Float64(tst, "xb", 1e-17, sim.Grid.Xb, 1)
	chk.Float64(tst, "ratio", 1e-17, sim.Grid.Ratio, 1)
	chk.StrAssert(sim.Solver.LinSol, "los")
	chk.IntAssert(sim.Solver.NmaxIt, 50)
	chk.Float64(tst, "relaxratio", 1e-17, sim.Solver.RelaxRatio, 0.5)
	if !sim.Solver.AutoRelax {
		tst.Errorf("autorelax flag not read")
		return
	}
	chk.StrAssert(sim.Left.Kind, "first")
	chk.StrAssert(sim.Right.Kind, "second")
	chk.StrAssert(sim.Coef.K, "kcoef")

	// function registry
	ubc := sim.Functions.MustGet("ubc")
	chk.Float64(tst, "ubc(0)", 1e-15, ubc.F(0, nil), 1)
	flux := sim.Functions.MustGet("flux")
	chk.Float64(tst, "flux(1)", 1e-15, flux.F(1, nil), 2)
	uref := sim.Functions.MustGet("uref")
	chk.Float64(tst, "uref(0.5)", 1e-15, uref.F(0.5, nil), 1)
	zero := sim.Functions.MustGet("zero")
	chk.Float64(tst, "zero(2)", 1e-17, zero.F(2, nil), 0)

	// unknown name fails
	_, err := sim.Functions.Get("nosuch")
	if err == nil {
		tst.Errorf("Get must fail for unknown function names")
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. defaults for missing settings")

	var dat SolverData
	dat.PostProcess()
	chk.StrAssert(dat.LinSol, "los")
	chk.IntAssert(dat.NmaxIt, 100)
	chk.Float64(tst, "eps", 1e-17, dat.Eps, 1e-12)
	chk.Float64(tst, "relaxratio", 1e-17, dat.RelaxRatio, 1)

	var grd GridData
	grd.PostProcess()
	chk.Float64(tst, "ratio", 1e-17, grd.Ratio, 1)
}
