// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_relax01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relax01. golden-section search on convex functional")

	eps := 1e-6
	nevals := 0
	g := func(t float64) float64 {
		nevals++
		return (t - 0.3) * (t - 0.3)
	}
	t := goldenSearch(g, 0, 1, eps)
	chk.Float64(tst, "t", eps, t, 0.3)

	// one evaluation per narrowing step: two to seed the bracket, then
	// ceil(log(eps)/log(φ)) steps to shrink [0,1] below eps
	nsteps := int(math.Ceil(math.Log(eps) / math.Log(golden)))
	if nevals > 2+nsteps {
		tst.Errorf("too many evaluations: %d > %d. memoization is broken", nevals, 2+nsteps)
	}
}

func Test_relax02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relax02. search endpoints")

	// minimum at the left edge: the floor keeps the ratio positive
	t := goldenSearch(func(t float64) float64 { return t }, 0, 1, 1e-8)
	chk.Float64(tst, "t left", 1e-7, t, 0)

	// minimum at the right edge
	t = goldenSearch(func(t float64) float64 { return -t }, 0, 1, 1e-8)
	chk.Float64(tst, "t right", 1e-7, t, 1)
}
