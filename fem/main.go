// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/boorlakov/umf/inp"
	"github.com/boorlakov/umf/mesh"
)

// Main holds all data for one boundary value problem solution
type Main struct {
	Sim     *inp.Simulation // simulation data
	Grid    *mesh.Grid      // node coordinates
	Dom     *Domain         // assembler
	Bcs     *Bcs            // endpoint conditions
	Sol     *Solver         // nonlinear solver
	ShowMsg bool            // show messages
}

// NewMain reads the simulation file and allocates all structures
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim = inp.ReadSim(simfilepath)
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// grid
	o.Grid = mesh.NewGrid(o.Sim.Grid.Xa, o.Sim.Grid.Xb, o.Sim.Grid.N, o.Sim.Grid.Ratio)

	// coefficients
	if o.Sim.Coef.K == "" {
		chk.Panic("the diffusion coefficient function name is mandatory")
	}
	kfun := o.Sim.Functions.MustGet(o.Sim.Coef.K)
	rfun := o.Sim.Functions.MustGet(orZero(o.Sim.Coef.R))
	sfun := o.Sim.Functions.MustGet(orZero(o.Sim.Coef.S))
	var ref Scalar
	if o.Sim.Coef.Ref != "" {
		ref = o.Sim.Functions.MustGet(o.Sim.Coef.Ref)
	}

	// domain, boundary conditions and solver
	o.Dom = NewDomain(o.Grid, kfun, rfun, sfun)
	o.Bcs = NewBcs(o.Sim.Left, o.Sim.Right, o.Sim.Functions)
	o.Sim.Solver.ShowR = o.Sim.Solver.ShowR && verbose
	o.Sol = NewSolver(o.Dom, o.Bcs, &o.Sim.Solver, ref)
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
	}
	return
}

// Run solves the boundary value problem
func (o *Main) Run() (sta *Statistics, err error) {
	if o.ShowMsg {
		io.Pf("> Running nonlinear solver\n")
	}
	sta, err = o.Sol.Run()
	if err != nil {
		return
	}
	if o.ShowMsg {
		if sta.Converged {
			io.PfGreen("> Success\n")
		} else {
			io.PfRed("> Iteration cap reached\n")
		}
	}
	return
}

// orZero replaces an empty function name with the zero function
func orZero(name string) string {
	if name == "" {
		return "zero"
	}
	return name
}
