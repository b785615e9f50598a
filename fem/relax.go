// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/boorlakov/umf/sparse"
)

// golden ratio coefficient (√5-1)/2 of the section search
var golden = (math.Sqrt(5) - 1) / 2

// minRelax keeps the searched ratio away from zero so a pathological
// residual functional cannot freeze the nonlinear update
const minRelax = 0.01

// searchRelax picks the relaxation ratio t ∈ [0,1] minimizing the
// residual of the blended vector t⋅x + (1-t)⋅u in the current
// linearized system
func searchRelax(A *sparse.Matrix, f, x, u []float64, eps float64) float64 {
	tmp := make([]float64, len(u))
	t := goldenSearch(func(t float64) float64 {
		for i := range tmp {
			tmp[i] = t*x[i] + (1-t)*u[i]
		}
		return sparse.RelResid(A, tmp, f)
	}, 0, 1, eps)
	if t < minRelax {
		t = minRelax
	}
	return t
}

// goldenSearch minimizes the unimodal g over [a,b] by golden-section
// narrowing and returns the midpoint of the final bracket. The interior
// evaluations are memoized: each narrowing step reuses one cached value
// and computes exactly one new one.
func goldenSearch(g func(float64) float64, a, b, eps float64) float64 {
	x1 := b - golden*(b-a)
	x2 := a + golden*(b-a)
	f1, f2 := g(x1), g(x2)
	for b-a > eps {
		if f1 <= f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = b - golden*(b-a)
			f1 = g(x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = a + golden*(b-a)
			f2 = g(x2)
		}
	}
	return (a + b) / 2
}
