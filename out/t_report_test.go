// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/boorlakov/umf/fem"
	"github.com/boorlakov/umf/mesh"
)

func verbose() {
	chk.Verbose = true
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. text summary and html page")

	grid := mesh.NewGrid(0, 1, 3, 1)
	sta := &fem.Statistics{
		Iterations: 3,
		Residual:   1e-13,
		Error:      1e-10,
		Values:     []float64{0, 0.5, 1},
		RelaxRatio: 1,
		History:    []float64{1e-2, 1e-7, 1e-13},
		Converged:  true,
	}

	Report(sta, grid, chk.Verbose)

	var buf bytes.Buffer
	err := HtmlReport(&buf, sta, grid, nil)
	if err != nil {
		tst.Errorf("HtmlReport failed:\n%v", err)
		return
	}
	html := buf.String()
	if len(html) < 1 {
		tst.Errorf("html page is empty")
		return
	}
	for _, key := range []string{"solution", "convergence", "residual"} {
		if !strings.Contains(html, key) {
			tst.Errorf("html page is missing %q", key)
			return
		}
	}
	io.Pforan("html page has %d bytes\n", len(html))
}
