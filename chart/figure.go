// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart is a small bar chart surface that renders to SVG.
//
// A Figure is a grid of Axes. Each Axes has a category axis and a
// value axis, holds bars and their annotations in data coordinates,
// and maps data coordinates to pixels using linear scales. Figures
// are drawn at 72 DPI, so one point is one pixel.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/style"
)

// Figure is a grid of Axes with an optional title.
type Figure struct {
	// Width and Height are the canvas size in points.
	Width, Height float64

	// Title is drawn centered above all Axes. It may contain
	// newlines.
	Title string

	// Style supplies font sizes.
	Style style.Config

	// Metrics measures text for layout and annotation placement.
	Metrics fontmetrics.Measurer

	rows, cols int
	axes       []*Axes
}

// NewFigure returns a figure of width by height inches holding a
// rows by cols grid of empty Axes.
func NewFigure(width, height float64, rows, cols int, st style.Config, m fontmetrics.Measurer) *Figure {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if st == nil {
		st = style.Default()
	}
	if m == nil {
		m = fontmetrics.Approx{}
	}
	f := &Figure{
		Width:   width * fontmetrics.DPI,
		Height:  height * fontmetrics.DPI,
		Style:   st,
		Metrics: m,
		rows:    rows,
		cols:    cols,
	}
	for i := 0; i < rows*cols; i++ {
		f.axes = append(f.axes, newAxes(f, i/cols, i%cols))
	}
	return f
}

// Axes returns the i'th Axes in row-major order.
func (f *Figure) Axes(i int) *Axes {
	return f.axes[i]
}

// AllAxes returns every Axes in row-major order.
func (f *Figure) AllAxes() []*Axes {
	return append([]*Axes(nil), f.axes...)
}

// Grid returns the number of rows and columns of Axes.
func (f *Figure) Grid() (rows, cols int) {
	return f.rows, f.cols
}

func (f *Figure) titleLines() []string {
	if f.Title == "" {
		return nil
	}
	return strings.Split(f.Title, "\n")
}

// WriteSVG renders the figure as an SVG document.
func (f *Figure) WriteSVG(w io.Writer) error {
	f.layout()

	width, height := round(f.Width), round(f.Height)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("figure has no area: %gx%g", f.Width, f.Height)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="%s"`, f.Style.Get(style.FontSize), strings.Replace(fontmetrics.FontFamily, `"`, "&quot;", -1)))
	canvas.Rect(0, 0, width, height, "fill:white")

	if lines := f.titleLines(); len(lines) > 0 {
		size := f.Style.Get(style.FigureTitleSize)
		drawLines(canvas, f.Width/2, f.margin()+size, lines, size, "text-anchor:middle")
	}

	for _, ax := range f.axes {
		ax.render(canvas)
	}
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error so rendering code can
// ignore errors from the SVG writer.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
