// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements 1D grids with optional geometric grading
package mesh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the node coordinates of a 1D mesh on [Xa, Xb]. Nodes are
// ordered left to right; element i spans [X[i], X[i+1]].
type Grid struct {
	X []float64 // [n] node coordinates, increasing
}

// NewGrid returns a grid with n nodes on [xa, xb]. ratio is the
// geometric growth factor of consecutive element sizes; ratio == 1
// produces a uniform grid. Grids with fewer than two nodes are
// degenerate and rejected.
func NewGrid(xa, xb float64, n int, ratio float64) (o *Grid) {
	if n < 2 {
		chk.Panic("grid needs at least two nodes. n=%d is invalid", n)
	}
	if xb <= xa {
		chk.Panic("domain is empty: xa=%g must be smaller than xb=%g", xa, xb)
	}
	if ratio <= 0 {
		chk.Panic("grading ratio must be positive. ratio=%g is invalid", ratio)
	}
	o = new(Grid)
	if math.Abs(ratio-1) < 1e-15 {
		o.X = utl.LinSpace(xa, xb, n)
		return
	}
	// geometric grading: h, h⋅q, h⋅q², ... summing to xb-xa
	nc := n - 1
	h := (xb - xa) * (ratio - 1) / (math.Pow(ratio, float64(nc)) - 1)
	o.X = make([]float64, n)
	o.X[0] = xa
	for i := 1; i < n; i++ {
		o.X[i] = o.X[i-1] + h
		h *= ratio
	}
	o.X[n-1] = xb
	return
}

// Nnodes returns the number of nodes
func (o *Grid) Nnodes() int { return len(o.X) }

// Ncells returns the number of elements (segments)
func (o *Grid) Ncells() int { return len(o.X) - 1 }

// H returns the size of element i
func (o *Grid) H(i int) float64 { return o.X[i+1] - o.X[i] }
