// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/kagglelib/surveyplot/annotate"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/style"
)

func newHorizontal(t *testing.T) *Axes {
	f := NewFigure(10, 6, 1, 1, style.Default(), fontmetrics.Approx{})
	ax := f.Axes(0)
	ax.SetCategories([]string{"a", "b", "c"}, annotate.Horizontal)
	for i, v := range []float64{0.5, 40, 80} {
		ax.AddBar(annotate.Bar{Y: float64(i) - 0.4, Height: 0.8, Width: v, Orientation: annotate.Horizontal}, color.Black)
	}
	return ax
}

func TestLimits(t *testing.T) {
	ax := newHorizontal(t)
	if lo, hi := ax.XLim(); lo != 0 || hi != 84 {
		t.Errorf("XLim = %v, %v; want 0, 84", lo, hi)
	}
	if lo, hi := ax.YLim(); lo != -0.5 || hi != 2.5 {
		t.Errorf("YLim = %v, %v; want -0.5, 2.5", lo, hi)
	}
	ax.SetXLim(0, 19)
	if lo, hi := ax.XLim(); lo != 0 || hi != 19 {
		t.Errorf("XLim after SetXLim = %v, %v; want 0, 19", lo, hi)
	}
}

func TestCategoryOrder(t *testing.T) {
	ax := newHorizontal(t)
	_, top := ax.DataToPixel(0, 0)
	_, bottom := ax.DataToPixel(0, 2)
	if !(top < bottom) {
		t.Errorf("first category should be drawn above the last: %v >= %v", top, bottom)
	}

	f := NewFigure(10, 6, 1, 1, nil, nil)
	v := f.Axes(0)
	v.SetCategories([]string{"a", "b"}, annotate.Vertical)
	v.AddBar(annotate.Bar{X: -0.4, Width: 0.8, Height: 5}, color.Black)
	_, y0 := v.DataToPixel(0, 0)
	_, y5 := v.DataToPixel(0, 5)
	if !(y5 < y0) {
		t.Errorf("larger values should be drawn higher: %v >= %v", y5, y0)
	}
}

func TestTextWidth(t *testing.T) {
	ax := newHorizontal(t)
	const text = "100.0"
	w := ax.TextWidth(text, 14, fontmetrics.Bold)
	x0, _ := ax.DataToPixel(0, 0)
	x1, _ := ax.DataToPixel(w, 0)
	want := fontmetrics.Approx{}.Measure(text, 14, fontmetrics.Bold)
	if math.Abs((x1-x0)-want) > 1e-6 {
		t.Errorf("text spans %v pixels; want %v", x1-x0, want)
	}

	// Doubling the axis range doubles the data width.
	ax.SetXLim(0, 168)
	if w2 := ax.TextWidth(text, 14, fontmetrics.Bold); math.Abs(w2-2*w) > 1e-9 {
		t.Errorf("TextWidth with doubled range = %v; want %v", w2, 2*w)
	}
}

func TestAnnotatePlacement(t *testing.T) {
	ax := newHorizontal(t)
	for _, p := range ax.Patches() {
		if err := annotate.Annotate(ax, ax, p.Bar, annotate.Options{Format: "%.0f", FontSize: 14}); err != nil {
			t.Fatal(err)
		}
	}
	as := ax.Annotations()
	if len(as) != 3 {
		t.Fatalf("got %d annotations; want 3", len(as))
	}
	// The shortest bar is too narrow for its label.
	if as[0].Align != annotate.Left {
		t.Errorf("short bar label align = %v; want left", as[0].Align)
	}
	if as[2].Align != annotate.Right {
		t.Errorf("long bar label align = %v; want right", as[2].Align)
	}
}

func TestLegend(t *testing.T) {
	ax := newHorizontal(t)
	err := ax.SetLegend("somewhere", nil)
	var lerr *LegendLocationError
	if !errors.As(err, &lerr) {
		t.Errorf("want LegendLocationError; got %v", err)
	}
	if err := ax.SetLegend("best", []LegendEntry{{"Filtered", color.Black}}); err != nil {
		t.Fatal(err)
	}
	if len(ax.Legend()) != 1 {
		t.Errorf("legend has %d entries; want 1", len(ax.Legend()))
	}
	ax.RemoveLegend()
	if len(ax.Legend()) != 0 {
		t.Errorf("legend not removed")
	}
}

func TestDespine(t *testing.T) {
	ax := newHorizontal(t)
	ax.Despine(false, true, false, false)
	if want := (Spines{Left: true, Top: true, Right: true}); ax.Spines != want {
		t.Errorf("Spines = %+v; want %+v", ax.Spines, want)
	}
}

func TestWriteSVG(t *testing.T) {
	ax := newHorizontal(t)
	ax.Title = "Median salary"
	ax.Figure().Title = "Participants\nvs salary"
	if err := ax.SetLegend("lower right", []LegendEntry{{"USA", color.Black}}); err != nil {
		t.Fatal(err)
	}
	for _, p := range ax.Patches() {
		if err := annotate.Annotate(ax, ax, p.Bar, annotate.Options{Format: "%.1f", FontSize: 14}); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := ax.Figure().WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "Median salary", "Participants", "vs salary", "80.0", "USA", "font-weight:bold", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteSVGError(t *testing.T) {
	ax := newHorizontal(t)
	if err := ax.Figure().WriteSVG(failWriter{}); err == nil || err.Error() != "disk full" {
		t.Errorf("want disk full error; got %v", err)
	}
}

func TestCSSColor(t *testing.T) {
	for _, test := range []struct {
		c    color.Color
		want string
	}{
		{color.Black, "#000000"},
		{color.White, "#ffffff"},
		{color.RGBA{0xea, 0xea, 0xf2, 0xff}, "#eaeaf2"},
		{color.Transparent, "none"},
		{nil, "none"},
	} {
		if got := cssColor(test.c); got != test.want {
			t.Errorf("cssColor(%v) = %q; want %q", test.c, got, test.want)
		}
	}
}
