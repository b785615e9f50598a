// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, kcoef, source1, etc.
	Type string     `json:"type"` // type of function. ex: cte, lin, pow
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn fun.TimeSpace, err error) {
	if name == "zero" || name == "none" {
		fcn = &fun.Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = fun.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// MustGet returns function by name, panicking on error
func (o FuncsData) MustGet(name string) (fcn fun.TimeSpace) {
	fcn, err := o.Get(name)
	if err != nil {
		chk.Panic("%v", err)
	}
	return
}

// PlotAll plots all functions over [xa, xb]
func (o FuncsData) PlotAll(xa, xb float64, np int, skip []string, dirout, fnkey string) {
	if np < 2 {
		np = 41
	}
	X := utl.LinSpace(xa, xb, np)
	Y := make([]float64, np)
	for _, f := range o {
		if utl.StrIndexSmall(skip, f.Name) >= 0 {
			continue
		}
		ff, err := o.Get(f.Name)
		if err != nil {
			chk.Panic("%v", err)
		}
		for i, x := range X {
			Y[i] = ff.F(x, nil)
		}
		plt.Reset()
		plt.Plot(X, Y, io.Sf("'b-', label='%s', clip_on=0", f.Name))
		plt.Gll("$x$", io.Sf("$%s$", f.Name), "")
		plt.SaveD(dirout, io.Sf("functions-%s-%s.eps", fnkey, f.Name))
	}
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\"name\":%q, \"type\":%q, \"prms\":%v}", o.Name, o.Type, o.Prms)
}
