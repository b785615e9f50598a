// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ana01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana01. linear case")

	c := Linear{A: 1, B: 2, K: 3}
	chk.Float64(tst, "u(0)", 1e-17, c.Uref()(0), 1)
	chk.Float64(tst, "u(2)", 1e-17, c.Uref()(2), 5)
	chk.Float64(tst, "k", 1e-17, c.Kcoef()(123), 3)
	chk.Float64(tst, "flux", 1e-17, c.Flux(), 6)
}

func Test_ana02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana02. quadratic case satisfies the equation")

	// finite difference check of -d/dx(k(u)u') = s at interior points
	c := QuadraticK{A: 1, B: 0.5}
	u := c.Uref()
	k := c.Kcoef()
	s := c.Source()
	h := 1e-5
	for _, x := range []float64{-0.3, 0.1, 0.7, 1.4} {
		flux := func(x float64) float64 {
			du := (u(x+h) - u(x-h)) / (2 * h)
			return k(u(x)) * du
		}
		lhs := -(flux(x+h) - flux(x-h)) / (2 * h)
		chk.Float64(tst, "equation residual", 1e-4, lhs, s(x))
	}
}
