// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

func verbose() {
	chk.Verbose = true
}

// dense converts a profile matrix to a gonum dense for cross-checking
func dense(o *Matrix) *mat.Dense {
	d := mat.NewDense(o.Size, o.Size, nil)
	for i := 0; i < o.Size; i++ {
		d.Set(i, i, o.Diag[i])
		for k := o.Ptr[i]; k < o.Ptr[i+1]; k++ {
			j := o.Col[k]
			d.Set(i, j, o.Low[k])
			d.Set(j, i, o.Up[k])
		}
	}
	return d
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. profile storage and matrix-vector multiply")

	// pentadiagonal pattern with a gap in row 4
	//     0  1  2  3  4
	//  0 [d           x ]
	//  1 [   d  x       ]
	//  2 [   x  d  x    ]
	//  3 [      x  d  x ]
	//  4 [x        x  d ]
	ptr := []int{0, 0, 0, 1, 2, 4}
	col := []int{1, 2, 0, 3}
	A := NewMatrix(ptr, col)
	chk.IntAssert(A.Size, 5)
	chk.IntAssert(len(A.Low), 4)

	for i := 0; i < 5; i++ {
		A.Put(i, i, 10+float64(i))
	}
	A.PutSym(2, 1, -1)
	A.PutSym(3, 2, -2)
	A.Put(4, 0, -3) // lower only
	A.Put(0, 4, -4) // upper only
	A.PutSym(4, 3, -5)

	chk.Float64(tst, "A[2][1]", 1e-17, A.Low[0], -1)
	chk.Float64(tst, "A[1][2]", 1e-17, A.Up[0], -1)
	chk.Float64(tst, "A[4][0]", 1e-17, A.Low[2], -3)
	chk.Float64(tst, "A[0][4]", 1e-17, A.Up[2], -4)

	// multiply against dense reference
	u := []float64{1, -2, 3, -4, 5}
	v := make([]float64, 5)
	A.MatVecMul(v, u)
	var w mat.VecDense
	w.MulVec(dense(A), mat.NewVecDense(5, u))
	chk.Array(tst, "A⋅u", 1e-14, v, w.RawVector().Data)

	// reset keeps the profile and zeroes values
	A.Reset()
	chk.Float64(tst, "A[2][1] after reset", 1e-17, A.Low[0], 0)
	chk.IntAssert(len(A.Col), 4)
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. tridiagonal profile constructor")

	A := NewTriDiag(4)
	chk.Ints(tst, "ptr", A.Ptr, []int{0, 0, 1, 2, 3})
	chk.Ints(tst, "col", A.Col, []int{0, 1, 2})

	for i := 0; i < 4; i++ {
		A.Put(i, i, 2)
	}
	for i := 1; i < 4; i++ {
		A.PutSym(i, i-1, -1)
	}
	u := []float64{1, 1, 1, 1}
	v := make([]float64, 4)
	A.MatVecMul(v, u)
	chk.Array(tst, "A⋅1", 1e-15, v, []float64{1, 0, 0, 1})
}
