// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots draws the survey charts.
//
// Bar charts are built on the chart package and annotate every bar
// with its value. Probability density charts are built with go-gg.
// Every function takes an Options value; zero fields select the
// defaults documented on each function.
package plots

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"sync"

	"github.com/aclements/go-gg/table"
	"github.com/kagglelib/surveyplot/annotate"
	"github.com/kagglelib/surveyplot/chart"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/style"
	"github.com/mitchellh/go-wordwrap"
)

// A Chart can be rendered as SVG. *chart.Figure is a Chart.
type Chart interface {
	WriteSVG(w io.Writer) error
}

// Limits is a fixed axis range. The zero Limits selects the default
// range.
type Limits struct {
	Lo, Hi float64
}

func (l Limits) isZero() bool {
	return l == Limits{}
}

// Options control a plot.
type Options struct {
	// Width and Height are the figure size in inches.
	Width, Height float64

	// Title is the chart title.
	Title string

	// TitleWrapLength, if positive, wraps the title at this many
	// characters.
	TitleWrapLength int

	// Orientation is "vertical" (or "v") or "horizontal" (or "h").
	// The default is vertical.
	Orientation string

	// Format is the fmt verb used to label bars, such as "%.1f".
	Format string

	// AnnotationMapping, if non-nil, maps bar values to labels.
	AnnotationMapping map[float64]string

	// BarWidth, if positive, resizes every bar after annotating
	// it.
	BarWidth float64

	// LegendLocation places the legend. "" is "best" and "none"
	// removes the legend.
	LegendLocation string

	// XTickRotation and YTickRotation rotate tick labels, in
	// degrees.
	XTickRotation, YTickRotation float64

	// KeepOrder keeps categories in table order instead of
	// natural order.
	KeepOrder bool

	// Palette colors the series. Each plot has its own default.
	Palette []color.Color

	// Style overrides the default font sizes.
	Style style.Config

	// XLimit1 and XLimit2 fix the value axis of the first and
	// second panel of side by side plots.
	XLimit1, XLimit2 Limits

	// Labels name the panels of side by side plots.
	Labels []string

	// BandwidthAdjust scales the estimated KDE bandwidth, per
	// series. A single value applies to every series.
	BandwidthAdjust []float64

	// Bandwidth is a fixed KDE bandwidth.
	Bandwidth float64

	// LogScale estimates and plots densities over log10 of the
	// values.
	LogScale bool

	// Metrics measures text. The default uses the Go fonts.
	Metrics fontmetrics.Measurer
}

// Shape limits of stacked tables.
const (
	MinColumns = 3
	MaxRows    = 50
)

// ShapeError reports a table that cannot be drawn as a grouped bar
// chart.
type ShapeError struct {
	Columns, Rows int
}

func (e *ShapeError) Error() string {
	if e.Columns < MinColumns {
		return fmt.Sprintf("stacked tables need at least %d columns; got %d", MinColumns, e.Columns)
	}
	return fmt.Sprintf("refusing to draw a bar plot with more than %d bins; got %d", MaxRows, e.Rows)
}

// OrientationError reports an unknown orientation.
type OrientationError struct {
	Orientation string
}

func (e *OrientationError) Error() string {
	return fmt.Sprintf("orientation must be horizontal or vertical, not %q", e.Orientation)
}

// DimensionsError reports a plot that has neither an Axes to draw on
// nor a figure size.
type DimensionsError struct {
	Width, Height float64
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("either an axes or both width and height must be given; got %gx%g", e.Width, e.Height)
}

// LegendLocationError reports an unknown legend placement.
type LegendLocationError = chart.LegendLocationError

// CheckStacked checks that t has the shape of a stacked table: at
// least MinColumns columns and at most MaxRows rows.
func CheckStacked(t *table.Table) error {
	cols, rows := len(t.Columns()), t.Len()
	if cols < MinColumns || rows > MaxRows {
		return &ShapeError{Columns: cols, Rows: rows}
	}
	return nil
}

// ParseOrientation parses a bar orientation.
func ParseOrientation(s string) (annotate.Orientation, error) {
	switch s {
	case "", "vertical", "v":
		return annotate.Vertical, nil
	case "horizontal", "h":
		return annotate.Horizontal, nil
	}
	return 0, &OrientationError{s}
}

// WrapTitle wraps title at n characters. n <= 0 leaves title as is.
func WrapTitle(title string, n int) string {
	if n <= 0 {
		return title
	}
	return wordwrap.WrapString(title, uint(n))
}

var (
	goFontOnce sync.Once
	goFont     fontmetrics.Measurer
)

func (o *Options) metrics() fontmetrics.Measurer {
	if o.Metrics != nil {
		return o.Metrics
	}
	goFontOnce.Do(func() {
		g, err := fontmetrics.NewGoFont()
		if err != nil {
			goFont = fontmetrics.Approx{}
			return
		}
		goFont = g
	})
	return goFont
}

func (o *Options) palette(def []color.Color) []color.Color {
	if len(o.Palette) > 0 {
		return o.Palette
	}
	return def
}

func (o *Options) title(def string) string {
	t := o.Title
	if t == "" {
		t = def
	}
	return WrapTitle(t, o.TitleWrapLength)
}

func (o *Options) format(def string) string {
	if o.Format != "" {
		return o.Format
	}
	return def
}

func (o *Options) label(i int, def string) string {
	if i < len(o.Labels) && o.Labels[i] != "" {
		return o.Labels[i]
	}
	return def
}

func (o *Options) size(w, h float64) (float64, float64) {
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}
	return w, h
}

// newFigure returns a figure of the given size in inches using the
// style and metrics of o.
func (o *Options) newFigure(w, h float64, rows, cols int) *chart.Figure {
	return chart.NewFigure(w, h, rows, cols, style.Merge(o.Style), o.metrics())
}

// annotateBars labels every bar on ax and then applies the bar width.
// It stops at the first labeling error, leaving the bars drawn so
// far on ax.
func annotateBars(ax *chart.Axes, opts annotate.Options, barWidth float64) error {
	for _, p := range ax.Patches() {
		if err := annotate.Annotate(ax, ax, p.Bar, opts); err != nil {
			return err
		}
		if barWidth > 0 {
			annotate.Resize(&p.Bar, barWidth)
		}
	}
	return nil
}

func setLegend(ax *chart.Axes, loc string, entries []chart.LegendEntry) error {
	if strings.EqualFold(loc, "none") {
		ax.RemoveLegend()
		return nil
	}
	if loc == "" {
		loc = "best"
	}
	return ax.SetLegend(loc, entries)
}
