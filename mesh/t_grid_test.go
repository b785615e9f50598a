// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. uniform grid")

	g := NewGrid(0, 1, 5, 1)
	chk.IntAssert(g.Nnodes(), 5)
	chk.IntAssert(g.Ncells(), 4)
	chk.Array(tst, "X", 1e-15, g.X, []float64{0, 0.25, 0.5, 0.75, 1})
	chk.Float64(tst, "h2", 1e-15, g.H(2), 0.25)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. geometrically graded grid")

	g := NewGrid(0, 7, 4, 2)
	chk.Array(tst, "X", 1e-14, g.X, []float64{0, 1, 3, 7})

	// endpoints are exact regardless of grading
	g = NewGrid(-1, 2, 11, 1.3)
	chk.Float64(tst, "X[0]", 1e-17, g.X[0], -1)
	chk.Float64(tst, "X[n-1]", 1e-17, g.X[10], 2)
	for i := 0; i < g.Ncells()-1; i++ {
		if g.H(i+1) <= g.H(i) {
			tst.Errorf("element sizes must grow with ratio > 1")
			return
		}
	}
}
