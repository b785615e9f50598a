// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/boorlakov/umf/fem"
	"github.com/boorlakov/umf/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nUmf -- Finite Element Solver for 1D Boundary Value Problems\n")
		io.Pf("Copyright 2023 The Umf Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save figures", "doplot", doplot,
		))
	}

	// allocate and run
	analysis := fem.NewMain(fnamepath, verbose)
	sta, err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// report
	out.Report(sta, analysis.Grid, verbose)
	dirout := analysis.Sim.Data.DirOut
	var buf bytes.Buffer
	err = out.HtmlReport(&buf, sta, analysis.Grid, analysis.Sol.Ref)
	if err != nil {
		io.PfRed("cannot write html report: %v\n", err)
	} else {
		io.WriteFileSD(dirout, fnkey+"-report.html", buf.String())
		if verbose {
			io.Pf("html report saved in %s\n", dirout)
		}
	}
	if doplot {
		out.PlotSolution(sta, analysis.Grid, analysis.Sol.Ref, dirout, fnkey)
		out.PlotConvergence(sta, dirout, fnkey)
	}
}
