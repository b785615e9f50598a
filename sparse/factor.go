// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"math"
)

// Factors holds the incomplete LU-square factorization of a profile
// matrix. Both triangular factors carry the same diagonal Di:
//
//   A ≈ L⋅U    with   L[i][i] = U[i][i] = Di[i]
//                     L[i][Col[k]] = Gl[k]
//                     U[Col[k]][i] = Gu[k]
//
// The factorization is restricted to the matrix profile (no fill-in), so
// it is exact for tridiagonal patterns and an approximation otherwise.
// A negative pivot under the square root produces NaN which propagates
// through the solves; callers inspect the final residual to detect it.
type Factors struct {
	Size int       // system size
	Di   []float64 // [Size] shared diagonal of L and U
	Gl   []float64 // [nnz] lower factor values
	Gu   []float64 // [nnz] upper factor values
	Ptr  []int     // [Size+1] row pointers (shared with the source profile)
	Col  []int     // [nnz] column indices (shared with the source profile)
}

// Fact computes the incomplete LU-square factorization of this matrix.
// The raw values are left untouched (the factors get fresh arrays), but
// the matrix is consumed: a second call returns ErrAlreadyFactorized and
// a fresh Clone must be made instead.
func (o *Matrix) Fact() (f *Factors, err error) {
	if o.factorized {
		return nil, ErrAlreadyFactorized
	}
	o.factorized = true
	n := o.Size
	nnz := len(o.Col)
	f = &Factors{
		Size: n,
		Di:   make([]float64, n),
		Gl:   make([]float64, nnz),
		Gu:   make([]float64, nnz),
		Ptr:  o.Ptr,
		Col:  o.Col,
	}
	for i := 0; i < n; i++ {
		sumdi := 0.0
		for k := o.Ptr[i]; k < o.Ptr[i+1]; k++ {
			j := o.Col[k]

			// dot products over the intersection of row i (before k) and row j
			suml, sumu := 0.0, 0.0
			a, b := o.Ptr[i], o.Ptr[j]
			for a < k && b < o.Ptr[j+1] {
				switch {
				case o.Col[a] == o.Col[b]:
					suml += f.Gl[a] * f.Gu[b]
					sumu += f.Gu[a] * f.Gl[b]
					a++
					b++
				case o.Col[a] < o.Col[b]:
					a++
				default:
					b++
				}
			}
			f.Gl[k] = (o.Low[k] - suml) / f.Di[j]
			f.Gu[k] = (o.Up[k] - sumu) / f.Di[j]
			sumdi += f.Gl[k] * f.Gu[k]
		}
		f.Di[i] = math.Sqrt(o.Diag[i] - sumdi)
	}
	return
}

// ok tells whether the factors are usable for triangular solves
func (o *Factors) ok() bool {
	return o != nil && len(o.Di) == o.Size && o.Size > 0
}

// ForwardSolve solves L⋅y = b by substitution. Row i gathers the dot
// product of already-known y entries at the row's column indices and
// divides by Di[i].
func (o *Factors) ForwardSolve(y, b []float64) (err error) {
	if !o.ok() {
		return ErrNotFactorized
	}
	for i := 0; i < o.Size; i++ {
		s := b[i]
		for k := o.Ptr[i]; k < o.Ptr[i+1]; k++ {
			s -= o.Gl[k] * y[o.Col[k]]
		}
		y[i] = s / o.Di[i]
	}
	return
}

// BackwardSolve solves U⋅x = y by back-substitution, iterating rows
// from last to first: x[i] is finalized by dividing by Di[i], then
// -Gu[k]*x[i] is scattered into the positions named by the row's column
// indices. The scatter traverses the upper triangle through the shared
// lower profile.
func (o *Factors) BackwardSolve(x, y []float64) (err error) {
	if !o.ok() {
		return ErrNotFactorized
	}
	if &x[0] != &y[0] {
		copy(x, y)
	}
	for i := o.Size - 1; i >= 0; i-- {
		x[i] /= o.Di[i]
		for k := o.Ptr[i]; k < o.Ptr[i+1]; k++ {
			x[o.Col[k]] -= o.Gu[k] * x[i]
		}
	}
	return
}
