// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"errors"
	"image/color"
	"testing"

	"github.com/kagglelib/surveyplot/fontmetrics"
)

// fixedWidth reports the same width for every label.
type fixedWidth float64

func (w fixedWidth) TextWidth(text string, size float64, weight fontmetrics.Weight) float64 {
	return float64(w)
}

type recorder []Annotation

func (r *recorder) Annotate(a Annotation) {
	*r = append(*r, a)
}

func TestLabel(t *testing.T) {
	for _, test := range []struct {
		value   float64
		format  string
		mapping map[float64]string
		want    string
	}{
		{3.14159, "%.1f", nil, "3.1"},
		{3.14159, "%.1f", map[float64]string{3.14159: "π"}, "π"},
		{42, "%.0f", nil, "42"},
		{999, "%.0f", map[float64]string{999: "$0-999", 1999: "1,000-1,999"}, "$0-999"},
	} {
		got, err := Label(test.value, test.format, test.mapping)
		if err != nil {
			t.Errorf("Label(%v, %q, %v): %v", test.value, test.format, test.mapping, err)
			continue
		}
		if got != test.want {
			t.Errorf("Label(%v, %q, %v) = %q; want %q", test.value, test.format, test.mapping, got, test.want)
		}
	}
}

func TestLabelMissing(t *testing.T) {
	_, err := Label(2.5, "%.1f", map[float64]string{3.14159: "π"})
	var missing *MissingAnnotationError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingAnnotationError; got %v", err)
	}
	if missing.Value != 2.5 {
		t.Errorf("error value = %v; want 2.5", missing.Value)
	}
}

func TestPlaceHorizontalThreshold(t *testing.T) {
	const (
		width    = 10.0
		fontSize = 14.0
	)
	threshold := Threshold(width, fontSize)

	inside := PlaceHorizontal(Bar{Width: threshold, Height: 0.8, Y: -0.4, Orientation: Horizontal}, "x", fontSize, fixedWidth(width))
	if inside.Align != Right || inside.DX != -Offset || inside.Color != color.White {
		t.Errorf("bar at threshold: got %+v; want inside, right aligned, white", inside)
	}
	if inside.X != threshold || inside.Y != 0 {
		t.Errorf("anchor = (%v, %v); want (%v, 0)", inside.X, inside.Y, threshold)
	}

	outside := PlaceHorizontal(Bar{Width: threshold - 1, Height: 0.8, Orientation: Horizontal}, "x", fontSize, fixedWidth(width))
	if outside.Align != Left || outside.DX != Offset || outside.Color != color.Black {
		t.Errorf("bar below threshold: got %+v; want outside, left aligned, black", outside)
	}
	if !inside.Bold || !outside.Bold {
		t.Errorf("labels should be bold")
	}
}

func TestThreshold(t *testing.T) {
	// 1.1 * (10 + 3*72/72)
	x := 13.0
	if got, want := Threshold(10, 72), 1.1*x; got != want {
		t.Errorf("Threshold(10, 72) = %v; want %v", got, want)
	}
}

func TestPlaceVertical(t *testing.T) {
	a := PlaceVertical(Bar{X: 1.5, Width: 1, Height: 25}, "25.0")
	want := Annotation{Text: "25.0", X: 2, Y: 25, DY: VerticalOffset, Align: Center, Color: color.Black, Bold: true}
	if a != want {
		t.Errorf("PlaceVertical = %+v; want %+v", a, want)
	}
}

func TestResize(t *testing.T) {
	b := Bar{X: 10, Width: 4, Height: 7}
	Resize(&b, 2)
	if b.X != 11 || b.Width != 2 || b.Height != 7 {
		t.Errorf("vertical Resize = %+v; want X=11 Width=2", b)
	}
	if c := b.X + b.Width/2; c != 12 {
		t.Errorf("center = %v; want 12", c)
	}

	h := Bar{Y: 10, Height: 4, Width: 7, Orientation: Horizontal}
	Resize(&h, 6)
	if h.Y != 9 || h.Height != 6 || h.Width != 7 {
		t.Errorf("horizontal Resize = %+v; want Y=9 Height=6", h)
	}
}

func TestAnnotate(t *testing.T) {
	var r recorder
	bars := []Bar{
		{X: -0.4, Width: 0.8, Height: 3.14159},
		{Y: -0.4, Height: 0.8, Width: 100, Orientation: Horizontal},
	}
	for _, b := range bars {
		if err := Annotate(&r, fixedWidth(5), b, Options{Format: "%.1f", FontSize: 14}); err != nil {
			t.Fatal(err)
		}
	}
	if len(r) != 2 {
		t.Fatalf("got %d annotations; want 2", len(r))
	}
	if r[0].Text != "3.1" || r[0].Align != Center {
		t.Errorf("vertical annotation = %+v", r[0])
	}
	if r[1].Text != "100.0" || r[1].Align != Right {
		t.Errorf("horizontal annotation = %+v", r[1])
	}

	err := Annotate(&r, fixedWidth(5), bars[0], Options{Format: "%.1f", Mapping: map[float64]string{1: "one"}})
	var missing *MissingAnnotationError
	if !errors.As(err, &missing) {
		t.Errorf("want MissingAnnotationError; got %v", err)
	}
	if len(r) != 2 {
		t.Errorf("failed annotation was drawn")
	}
}
