// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sparse implements profile (row-compressed, symmetric-pattern)
// storage for sparse matrices, an incomplete LU-square factorization over
// the stored profile, and iterative solvers working on this format
package sparse

import (
	"github.com/cpmech/gosl/chk"
)

// Matrix holds a sparse matrix with symmetric sparsity pattern in profile
// format. Only the strictly lower triangle has its column indices stored;
// the upper triangle shares the same pattern with its own values. Thus
//
//   A[i][i]      = Diag[i]
//   A[i][Col[k]] = Low[k]   for k in [Ptr[i], Ptr[i+1])
//   A[Col[k]][i] = Up[k]    for k in [Ptr[i], Ptr[i+1])
//
// with Col[k] < i inside row i's range and Ptr non-decreasing.
type Matrix struct {
	Size int       // number of rows == number of columns
	Diag []float64 // [Size] diagonal entries
	Low  []float64 // [nnz] strictly lower triangle values
	Up   []float64 // [nnz] strictly upper triangle values (transposed pattern)
	Ptr  []int     // [Size+1] start of each row in Col/Low/Up
	Col  []int     // [nnz] column indices of lower triangle entries

	factorized bool // raw values were consumed by Fact; Clone before refactorizing
}

// NewMatrix returns a new matrix with the given profile and zeroed values.
// The profile invariants are checked: Ptr must be non-decreasing with
// Ptr[0]=0, and column indices within each row must be increasing and
// strictly smaller than the row index.
func NewMatrix(ptr, col []int) (o *Matrix) {
	n := len(ptr) - 1
	if n < 1 {
		chk.Panic("profile must describe at least one row. len(ptr)=%d is invalid", len(ptr))
	}
	if ptr[0] != 0 {
		chk.Panic("ptr[0] must be zero. ptr[0]=%d is invalid", ptr[0])
	}
	for i := 0; i < n; i++ {
		if ptr[i+1] < ptr[i] {
			chk.Panic("ptr must be non-decreasing. ptr[%d]=%d > ptr[%d]=%d", i, ptr[i], i+1, ptr[i+1])
		}
		for k := ptr[i]; k < ptr[i+1]; k++ {
			if col[k] >= i {
				chk.Panic("column indices must be in the strict lower triangle. col[%d]=%d in row %d", k, col[k], i)
			}
			if k > ptr[i] && col[k] <= col[k-1] {
				chk.Panic("column indices must be increasing within a row. col[%d]=%d after %d", k, col[k], col[k-1])
			}
		}
	}
	nnz := ptr[n]
	o = new(Matrix)
	o.Size = n
	o.Diag = make([]float64, n)
	o.Low = make([]float64, nnz)
	o.Up = make([]float64, nnz)
	o.Ptr = make([]int, n+1)
	o.Col = make([]int, nnz)
	copy(o.Ptr, ptr)
	copy(o.Col, col)
	return
}

// NewTriDiag returns a zeroed matrix with tridiagonal profile; i.e. row i
// holds the single off-diagonal column i-1. This is the pattern produced
// by linear elements on a 1D mesh.
func NewTriDiag(n int) (o *Matrix) {
	ptr := make([]int, n+1)
	col := make([]int, n-1)
	for i := 1; i < n; i++ {
		ptr[i+1] = i
		col[i-1] = i - 1
	}
	return NewMatrix(ptr, col)
}

// Put adds v to entry (i,j). The entry must exist in the profile.
func (o *Matrix) Put(i, j int, v float64) {
	if i == j {
		o.Diag[i] += v
		return
	}
	if i > j {
		o.Low[o.find(i, j)] += v
		return
	}
	o.Up[o.find(j, i)] += v
}

// PutSym adds v to both (i,j) and (j,i) with i != j.
func (o *Matrix) PutSym(i, j int, v float64) {
	if i < j {
		i, j = j, i
	}
	k := o.find(i, j)
	o.Low[k] += v
	o.Up[k] += v
}

// find locates the storage position of lower entry (i,j) with j < i
func (o *Matrix) find(i, j int) int {
	for k := o.Ptr[i]; k < o.Ptr[i+1]; k++ {
		if o.Col[k] == j {
			return k
		}
	}
	chk.Panic("entry (%d,%d) is outside of the matrix profile", i, j)
	return -1
}

// Reset zeroes all values, keeping the profile
func (o *Matrix) Reset() {
	for i := 0; i < o.Size; i++ {
		o.Diag[i] = 0
	}
	for k := 0; k < len(o.Col); k++ {
		o.Low[k] = 0
		o.Up[k] = 0
	}
	o.factorized = false
}

// Clone returns a fresh raw copy of this matrix. The copy may be
// factorized regardless of whether this matrix was consumed already.
func (o *Matrix) Clone() (c *Matrix) {
	c = NewMatrix(o.Ptr, o.Col)
	copy(c.Diag, o.Diag)
	copy(c.Low, o.Low)
	copy(c.Up, o.Up)
	return
}

// IsFactorized tells whether Fact was called on this matrix already
func (o *Matrix) IsFactorized() bool { return o.factorized }

// MatVecMul computes v = A⋅u using the diagonal and both triangles
func (o *Matrix) MatVecMul(v, u []float64) {
	for i := 0; i < o.Size; i++ {
		v[i] = o.Diag[i] * u[i]
	}
	for i := 0; i < o.Size; i++ {
		for k := o.Ptr[i]; k < o.Ptr[i+1]; k++ {
			j := o.Col[k]
			v[i] += o.Low[k] * u[j]
			v[j] += o.Up[k] * u[i]
		}
	}
}
