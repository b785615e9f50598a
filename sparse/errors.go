// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "errors"

// Contract errors. Non-convergence is deliberately not an error: the
// solvers return their best iterate together with Results carrying
// Converged=false, so the caller decides what to do with it.
var (
	// ErrAlreadyFactorized is returned when Fact is invoked on a matrix
	// whose raw state was consumed by a previous Fact call. Clone the
	// matrix to obtain a fresh raw copy.
	ErrAlreadyFactorized = errors.New("sparse: matrix is already factorized; clone it before refactorizing")

	// ErrNotFactorized is returned when a triangular solve is invoked on
	// missing or incomplete factors.
	ErrNotFactorized = errors.New("sparse: matrix is not factorized; call Fact first")
)
