// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/kagglelib/surveyplot/annotate"
	"github.com/kagglelib/surveyplot/chart"
	"github.com/kagglelib/surveyplot/style"
	"github.com/kagglelib/surveyplot/survey"
)

// drawBars adds one bar per label to ax. NaN values get no bar.
func drawBars(ax *chart.Axes, labels []string, values []float64, o annotate.Orientation, fill color.Color) {
	ax.SetCategories(labels, o)
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		pos := float64(i) - groupWidth/2
		b := annotate.Bar{X: pos, Width: groupWidth, Height: v, Orientation: o}
		if o == annotate.Horizontal {
			b = annotate.Bar{Y: pos, Height: groupWidth, Width: v, Orientation: o}
		}
		ax.AddBar(b, fill)
	}
}

// AgeDistribution draws three views of the age column of t, one
// panel each: the share of respondents per bin, the share after
// adjusting every bin to five years, and the average number of
// respondents per year. The first two bars of every panel are
// highlighted. The default size is 14 by 10 inches and the default
// label format "%.1f".
func AgeDistribution(t *table.Table, opts Options) (*chart.Figure, error) {
	ds, err := survey.AgeDistribution(t)
	if err != nil {
		return nil, err
	}

	w, h := opts.size(14, 10)
	fig := opts.newFigure(w, h, 3, 1)
	fill := opts.palette([]color.Color{style.Age})[0]
	panels := []struct {
		d      survey.Distribution
		ylabel string
		lim    Limits
	}{
		{ds.Default, "Default, %", Limits{0, 32}},
		{ds.Adjusted, "Adjusted, %", Limits{0, 32}},
		{ds.Average, "Average, N", Limits{0, 1150}},
	}
	for i, p := range panels {
		ax := fig.Axes(i)
		drawBars(ax, p.d.Labels, p.d.Values, annotate.Vertical, fill)
		ax.HideYTickLabels = true
		ax.Despine(true, true, true, true)
		ax.YLabel = p.ylabel
		ax.SetYLim(p.lim.Lo, p.lim.Hi)
		ax.XTickRotation = opts.XTickRotation
	}
	fig.Axes(0).Title = opts.title("Age distribution")

	aopts := annotate.Options{
		Format:   opts.format("%.1f"),
		FontSize: fig.Style.Get(style.FontSize),
	}
	for _, ax := range fig.AllAxes() {
		if err := annotateBars(ax, aopts, opts.BarWidth); err != nil {
			return fig, err
		}
		for i, p := range ax.Patches() {
			if i >= 2 {
				break
			}
			p.Fill = style.Highlight
		}
	}
	return fig, nil
}

// GlobalSalaryDistributionComparison draws the salary bracket
// percentages of two surveys side by side, highest bracket on top.
// Both tables need a salary column. The value axes default to 0-19
// percent, the panel labels to "Unfiltered" and "Filtered" and the
// title to "Salary Distribution, $".
func GlobalSalaryDistributionComparison(t1, t2 *table.Table, opts Options) (*chart.Figure, error) {
	if !(opts.Width > 0 && opts.Height > 0) {
		return nil, &DimensionsError{opts.Width, opts.Height}
	}
	vc1, err := survey.ColumnValueCounts(t1, survey.ColSalary, true)
	if err != nil {
		return nil, err
	}
	vc2, err := survey.ColumnValueCounts(t2, survey.ColSalary, true)
	if err != nil {
		return nil, err
	}
	order := vc1.Reverse().Labels

	fig := opts.newFigure(opts.Width, opts.Height, 1, 2)
	pal := opts.palette(style.OriginalVsFiltered)
	panels := []struct {
		vc    survey.Distribution
		label string
		lim   Limits
	}{
		{vc1, opts.label(0, "Unfiltered"), opts.XLimit1},
		{vc2, opts.label(1, "Filtered"), opts.XLimit2},
	}
	for i, p := range panels {
		values := make([]float64, len(order))
		for j, l := range order {
			v, ok := p.vc.Get(l)
			if !ok {
				v = math.NaN()
			}
			values[j] = v
		}
		ax := fig.Axes(i)
		drawBars(ax, order, values, annotate.Horizontal, pal[i%len(pal)])
		ax.Title = p.label
		ax.HideXTickLabels = true
		ax.XGrid = true
		lim := p.lim
		if lim.isZero() {
			lim = Limits{0, 19}
		}
		ax.SetXLim(lim.Lo, lim.Hi)
	}
	fig.Axes(1).HideYTickLabels = true
	fig.Title = opts.title("Salary Distribution, $")

	aopts := annotate.Options{
		Format:   opts.format("%.1f"),
		FontSize: fig.Style.Get(style.FontSize),
	}
	for _, ax := range fig.AllAxes() {
		if err := annotateBars(ax, aopts, opts.BarWidth); err != nil {
			return fig, err
		}
	}
	return fig, nil
}

// SalaryDistributionComparison draws a wide table as one horizontal
// bar panel per value column. The first column holds the category
// labels. Panels share both axes and are colored from
// style.Comparison. Missing values get no bar.
func SalaryDistributionComparison(t *table.Table, opts Options) (*chart.Figure, error) {
	if !(opts.Width > 0 && opts.Height > 0) {
		return nil, &DimensionsError{opts.Width, opts.Height}
	}
	cols := t.Columns()
	if len(cols) < 2 {
		return nil, fmt.Errorf("wide table needs a label column and at least one value column; got %d columns", len(cols))
	}
	labels := survey.Strings(t.MustColumn(cols[0]))
	series := make([][]float64, len(cols)-1)
	hi := 0.0
	for i, col := range cols[1:] {
		vs, err := survey.Floats(t.MustColumn(col))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}
		for _, v := range vs {
			if !math.IsNaN(v) {
				hi = math.Max(hi, v)
			}
		}
		series[i] = vs
	}
	lim := opts.XLimit1
	if lim.isZero() {
		lim = Limits{0, 1.05 * hi}
		if hi == 0 {
			lim.Hi = 1
		}
	}

	fig := opts.newFigure(opts.Width, opts.Height, 1, len(series))
	pal := opts.palette(style.Comparison)
	for i, vs := range series {
		ax := fig.Axes(i)
		drawBars(ax, labels, vs, annotate.Horizontal, pal[i%len(pal)])
		ax.Title = cols[i+1]
		ax.HideXTickLabels = true
		ax.HideYTickLabels = i > 0
		ax.XGrid = true
		ax.SetXLim(lim.Lo, lim.Hi)
	}
	fig.Title = opts.title("Salary Distribution, $")

	aopts := annotate.Options{
		Format:   opts.format("%.1f"),
		FontSize: fig.Style.Get(style.FontSize),
	}
	for _, ax := range fig.AllAxes() {
		if err := annotateBars(ax, aopts, opts.BarWidth); err != nil {
			return fig, err
		}
	}
	return fig, nil
}
