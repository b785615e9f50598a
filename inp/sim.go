// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/umf
}

// PostProcess fixes derived quantities
func (o *Data) PostProcess() {
	if o.DirOut == "" {
		o.DirOut = "/tmp/umf"
	}
}

// GridData holds the 1D mesh definition
type GridData struct {
	Xa    float64 `json:"xa"`    // left end of the domain
	Xb    float64 `json:"xb"`    // right end of the domain
	N     int     `json:"n"`     // number of nodes
	Ratio float64 `json:"ratio"` // geometric grading ratio; 1 or 0 => uniform
}

// PostProcess fixes derived quantities
func (o *GridData) PostProcess() {
	if o.Ratio == 0 {
		o.Ratio = 1
	}
}

// SolverData holds the accuracy settings of the nonlinear and linear solvers
type SolverData struct {
	LinSol     string  `json:"linsol"`     // linear solver name: "los" or "gs"
	Eps        float64 `json:"eps"`        // residual tolerance
	NmaxIt     int     `json:"nmaxit"`     // max number of nonlinear iterations
	Delta      float64 `json:"delta"`      // stagnation tolerance
	RelaxRatio float64 `json:"relaxratio"` // fixed relaxation coefficient
	AutoRelax  bool    `json:"autorelax"`  // pick relaxation by golden-section search
	ShowR      bool    `json:"showr"`      // show residual trace
}

// PostProcess fixes derived quantities
func (o *SolverData) PostProcess() {
	if o.LinSol == "" {
		o.LinSol = "los"
	}
	if o.Eps <= 0 {
		o.Eps = 1e-12
	}
	if o.NmaxIt < 1 {
		o.NmaxIt = 100
	}
	if o.Delta <= 0 {
		o.Delta = 1e-13
	}
	if o.RelaxRatio <= 0 || o.RelaxRatio > 1 {
		o.RelaxRatio = 1
	}
}

// BcData holds one endpoint boundary condition definition
type BcData struct {
	Kind string  `json:"kind"` // "first" (Dirichlet), "second" (Neumann) or "third" (Robin)
	Func string  `json:"func"` // name of boundary value function
	Beta float64 `json:"beta"` // Robin coefficient
}

// CoefData names the coefficient functions of the equation
//
//   -d/dx( k(u)⋅du/dx ) + r(x)⋅u = s(x)
//
// K is evaluated at the current approximation value (the nonlinearity);
// R, S and Ref are evaluated at the node coordinate.
type CoefData struct {
	K   string `json:"k"`   // diffusion coefficient k(u)
	R   string `json:"r"`   // reaction coefficient r(x)
	S   string `json:"s"`   // source term s(x)
	Ref string `json:"ref"` // reference solution for error reporting; optional
}

// Simulation holds all simulation input data
type Simulation struct {
	Data      Data       `json:"data"`      // global data
	Grid      GridData   `json:"grid"`      // mesh definition
	Solver    SolverData `json:"solver"`    // accuracy settings
	Left      BcData     `json:"left"`      // left endpoint condition
	Right     BcData     `json:"right"`     // right endpoint condition
	Coef      CoefData   `json:"coef"`      // coefficient function names
	Functions FuncsData  `json:"functions"` // scalar functions
}

// ReadSim reads a simulation file and fills derived data
func ReadSim(simfilepath string) (o *Simulation) {
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	if o.Data.Desc == "" {
		o.Data.Desc = filepath.Base(simfilepath)
	}
	o.Data.PostProcess()
	o.Grid.PostProcess()
	o.Solver.PostProcess()
	return
}

// String prints the simulation data as JSON
func (o *Simulation) String() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return io.Sf("cannot marshal simulation data:\n%v", err)
	}
	return string(b)
}
