// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/kagglelib/surveyplot/annotate"
	"github.com/kagglelib/surveyplot/chart"
	"github.com/kagglelib/surveyplot/style"
	"github.com/kagglelib/surveyplot/survey"
)

// groupWidth is the share of a category slot covered by its bars.
const groupWidth = 0.8

// grouped is a table of values by category and hue.
type grouped struct {
	cats, hues []string
	vals       map[[2]string]float64
}

// aggregate averages the value column of t for each combination of
// the category and hue columns. Categories and hues are returned in
// order of first appearance.
func aggregate(t *table.Table, catCol, hueCol, valCol string) (*grouped, error) {
	for _, col := range []string{catCol, hueCol, valCol} {
		if t.Column(col) == nil {
			return nil, &survey.MissingColumnError{Column: col}
		}
	}
	cats := survey.Strings(t.MustColumn(catCol))
	hues := survey.Strings(t.MustColumn(hueCol))
	vals, err := survey.Floats(t.MustColumn(valCol))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", valCol, err)
	}

	g := &grouped{vals: make(map[[2]string]float64)}
	seenCat, seenHue := make(map[string]bool), make(map[string]bool)
	for i := range cats {
		if !seenCat[cats[i]] {
			seenCat[cats[i]] = true
			g.cats = append(g.cats, cats[i])
		}
		if !seenHue[hues[i]] {
			seenHue[hues[i]] = true
			g.hues = append(g.hues, hues[i])
		}
	}

	// Average duplicate rows.
	const c, h, v = "category", "hue", "value"
	tab := new(table.Builder).Add(c, cats).Add(h, hues).Add(v, vals).Done()
	agg := ggstat.Agg(c, h)(ggstat.AggMean(v)).F(tab)
	for _, gid := range agg.Tables() {
		at := agg.Table(gid)
		acats := at.MustColumn(c).([]string)
		ahues := at.MustColumn(h).([]string)
		means := at.MustColumn("mean " + v).([]float64)
		for i := range acats {
			g.vals[[2]string{acats[i], ahues[i]}] = means[i]
		}
	}
	return g, nil
}

// draw adds one bar per category and hue to ax, hue by hue, and
// returns the legend entries.
func (g *grouped) draw(ax *chart.Axes, o annotate.Orientation, pal []color.Color) []chart.LegendEntry {
	ax.SetCategories(g.cats, o)
	w := groupWidth / float64(len(g.hues))
	var legend []chart.LegendEntry
	for j, hue := range g.hues {
		fill := pal[j%len(pal)]
		legend = append(legend, chart.LegendEntry{Label: hue, Color: fill})
		for i, cat := range g.cats {
			v, ok := g.vals[[2]string{cat, hue}]
			if !ok || math.IsNaN(v) {
				continue
			}
			pos := float64(i) - groupWidth/2 + float64(j)*w
			b := annotate.Bar{X: pos, Width: w, Height: v, Orientation: o}
			if o == annotate.Horizontal {
				b = annotate.Bar{Y: pos, Height: w, Width: v, Orientation: o}
			}
			ax.AddBar(b, fill)
		}
	}
	return legend
}

// selectLabels returns the members of want present in labels, in the
// order of want. If labels has none of them it is returned as is.
func selectLabels(labels, want []string) []string {
	have := make(map[string]bool, len(labels))
	for _, l := range labels {
		have[l] = true
	}
	var out []string
	for _, l := range want {
		if have[l] {
			out = append(out, l)
			delete(have, l)
		}
	}
	if len(out) == 0 {
		return labels
	}
	return out
}

// ValueCountComparison draws a grouped bar chart of a stacked table:
// the first column holds the categories, the second the hue and the
// last the values. Rows with the same category and hue are averaged.
//
// The chart is drawn on ax if it is non-nil and on a new figure of
// opts.Width by opts.Height inches otherwise. Categories are in
// natural order unless opts.KeepOrder is set. The title defaults to
// the name of the category column and the label format to "%.1f" for
// float values and "%.0f" otherwise.
//
// The orientation, the figure size and the table shape are checked,
// in that order, before anything is drawn. A missing annotation
// mapping entry is reported after the bars are drawn, with the
// returned figure holding the bars annotated so far.
func ValueCountComparison(ax *chart.Axes, t *table.Table, opts Options) (*chart.Figure, error) {
	o, err := ParseOrientation(opts.Orientation)
	if err != nil {
		return nil, err
	}
	if ax == nil && !(opts.Width > 0 && opts.Height > 0) {
		return nil, &DimensionsError{opts.Width, opts.Height}
	}
	if err := CheckStacked(t); err != nil {
		return nil, err
	}

	cols := t.Columns()
	catCol, hueCol, valCol := cols[0], cols[1], cols[len(cols)-1]
	format := opts.Format
	if format == "" {
		format = "%.0f"
		if _, ok := t.MustColumn(valCol).([]float64); ok {
			format = "%.1f"
		}
	}

	g, err := aggregate(t, catCol, hueCol, valCol)
	if err != nil {
		return nil, err
	}
	if !opts.KeepOrder {
		survey.NaturalSort(g.cats)
	}

	if ax == nil {
		ax = opts.newFigure(opts.Width, opts.Height, 1, 1).Axes(0)
	}
	fig := ax.Figure()

	legend := g.draw(ax, o, opts.palette(style.OriginalVsFiltered))
	if o == annotate.Horizontal {
		ax.Despine(false, true, true, true)
		ax.HideXTickLabels = true
	} else {
		ax.Despine(true, false, true, true)
		ax.HideYTickLabels = true
	}
	ax.XLabel, ax.YLabel = "", ""
	ax.XTickRotation, ax.YTickRotation = opts.XTickRotation, opts.YTickRotation
	if err := setLegend(ax, opts.LegendLocation, legend); err != nil {
		return nil, err
	}
	ax.Title = opts.title(catCol)

	err = annotateBars(ax, annotate.Options{
		Format:   format,
		Mapping:  opts.AnnotationMapping,
		FontSize: fig.Style.Get(style.FontSize),
	}, opts.BarWidth)
	return fig, err
}

// ParticipantsVsMedianSalary draws two horizontal comparisons side
// by side: the median salary per category, labeled with salary
// brackets, and the number of participants. Both tables are stacked
// tables and keep their row order. The default size is 6.4 by 4.8
// inches.
func ParticipantsVsMedianSalary(participants, medians *table.Table, opts Options) (*chart.Figure, error) {
	w, h := opts.size(6.4, 4.8)
	fig := opts.newFigure(w, h, 1, 2)
	fig.Title = opts.title("")

	pal := opts.palette(style.Comparison)
	sub := Options{
		Orientation: "h",
		KeepOrder:   true,
		Palette:     pal,
	}

	left := sub
	left.Title = "Median salary"
	left.LegendLocation = "best"
	left.AnnotationMapping = survey.ReverseSalaryThresholds()
	if _, err := ValueCountComparison(fig.Axes(0), medians, left); err != nil {
		return fig, err
	}

	right := sub
	right.Title = "No. participants"
	right.LegendLocation = "none"
	if _, err := ValueCountComparison(fig.Axes(1), participants, right); err != nil {
		return fig, err
	}
	// The panels share the category axis.
	fig.Axes(1).HideYTickLabels = true
	return fig, nil
}

// Salary median columns.
const (
	colMedianCountry  = "country"
	colMedianSalary   = "salary"
	colMedianVariable = "variable"
)

// medianVariables are the variables drawn by SalaryMedians.
var medianVariables = []string{"Filtered", "Unfiltered"}

// SalaryMedians draws the median salary per country as horizontal
// bars, one per variable ("Filtered" then "Unfiltered"; other
// variables are left out unless neither is present). Countries
// are listed bottom to top in table order. The table needs country,
// salary and variable columns. The default size is 22.4 by 8 inches.
func SalaryMedians(t *table.Table, opts Options) (*chart.Figure, error) {
	g, err := aggregate(t, colMedianCountry, colMedianVariable, colMedianSalary)
	if err != nil {
		return nil, err
	}
	// Countries are drawn in reverse order of appearance.
	for i, j := 0, len(g.cats)-1; i < j; i, j = i+1, j-1 {
		g.cats[i], g.cats[j] = g.cats[j], g.cats[i]
	}
	g.hues = selectLabels(g.hues, medianVariables)

	w, h := opts.size(22.4, 8)
	fig := opts.newFigure(w, h, 1, 1)
	ax := fig.Axes(0)
	legend := g.draw(ax, annotate.Horizontal, opts.palette(style.Dark))
	ax.HideXTickLabels = true
	ax.Despine(false, true, true, true)
	if err := setLegend(ax, opts.LegendLocation, legend); err != nil {
		return nil, err
	}
	ax.Title = opts.title("")

	format := opts.format("$%.0f")
	for _, p := range ax.Patches() {
		ax.Annotate(annotate.Annotation{
			Text:  fmt.Sprintf(format, p.Width),
			X:     p.X + p.Width,
			Y:     p.Y + p.Height/2,
			DX:    4,
			Align: annotate.Left,
			Color: color.Black,
		})
	}
	return fig, nil
}
