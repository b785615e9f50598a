// Copyright 2023 The Umf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	goio "io"

	"github.com/cpmech/gosl/io"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/boorlakov/umf/fem"
	"github.com/boorlakov/umf/mesh"
)

// HtmlReport renders an HTML page with the solution profile and the
// residual history of the nonlinear iterations. ref may be nil.
func HtmlReport(w goio.Writer, sta *fem.Statistics, grid *mesh.Grid, ref fem.Scalar) error {

	// solution chart
	sol := charts.NewLine()
	sol.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "solution",
			Subtitle: "nodal values over the domain",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)
	xlabels := make([]string, grid.Nnodes())
	items := make([]opts.LineData, grid.Nnodes())
	for i, x := range grid.X {
		xlabels[i] = io.Sf("%g", x)
		items[i] = opts.LineData{Value: sta.Values[i]}
	}
	sol.SetXAxis(xlabels).AddSeries("fem", items)
	if ref != nil {
		ritems := make([]opts.LineData, grid.Nnodes())
		for i, x := range grid.X {
			ritems[i] = opts.LineData{Value: ref.F(x, nil)}
		}
		sol.AddSeries("reference", ritems)
	}

	// residual history chart
	res := charts.NewLine()
	res.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "convergence",
			Subtitle: "relative residual per nonlinear iteration",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "log",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)
	its := make([]string, len(sta.History))
	ritems := make([]opts.LineData, len(sta.History))
	for i, r := range sta.History {
		its[i] = io.Sf("%d", i+1)
		ritems[i] = opts.LineData{Value: r}
	}
	res.SetXAxis(its).AddSeries("residual", ritems)

	// page
	page := components.NewPage()
	page.AddCharts(sol, res)
	return page.Render(w)
}
