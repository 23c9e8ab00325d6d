// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotate places value labels on bar chart bars.
//
// Vertical bars are always labeled just above their top. Horizontal
// bars are labeled inside their far end when the label fits and just
// past it otherwise; whether a label fits depends on its rendered
// width, so placement needs a TextMeasurer that reports widths in the
// chart's data units.
package annotate

import (
	"fmt"
	"image/color"

	"github.com/kagglelib/surveyplot/fontmetrics"
)

// Orientation is the direction along which a bar's length encodes
// its value.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Bar is a drawn rectangle in data coordinates. (X, Y) is the corner
// with the smallest coordinates.
type Bar struct {
	X, Y          float64
	Width, Height float64
	Orientation   Orientation
}

// Value returns the quantity the bar encodes: its height for vertical
// bars and its width for horizontal bars.
func (b Bar) Value() float64 {
	if b.Orientation == Horizontal {
		return b.Width
	}
	return b.Height
}

// Thickness returns the bar's extent across the category axis.
func (b Bar) Thickness() float64 {
	if b.Orientation == Horizontal {
		return b.Height
	}
	return b.Width
}

// Resize sets the bar's thickness to width and moves it so that its
// center line stays where it was.
func Resize(b *Bar, width float64) {
	if b.Orientation == Horizontal {
		diff := b.Height - width
		b.Height = width
		b.Y += diff / 2
		return
	}
	diff := b.Width - width
	b.Width = width
	b.X += diff / 2
}

// HAlign is the horizontal alignment of a label relative to its
// anchor.
type HAlign int

const (
	Left HAlign = iota
	Center
	Right
)

func (a HAlign) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "center"
}

// Annotation is an instruction to draw Text at (X, Y) in data
// coordinates, shifted by (DX, DY) points. Positive DY moves the text
// up.
type Annotation struct {
	Text   string
	X, Y   float64
	DX, DY float64
	Align  HAlign
	Color  color.Color
	Bold   bool
}

// A Surface is something annotations can be drawn on.
type Surface interface {
	Annotate(a Annotation)
}

// A TextMeasurer returns the width of text, in data units along the
// value axis of horizontal bars, when drawn at size points.
type TextMeasurer interface {
	TextWidth(text string, size float64, weight fontmetrics.Weight) float64
}

// MissingAnnotationError is returned when an annotation mapping has
// no label for a bar's value.
type MissingAnnotationError struct {
	Value float64
}

func (e *MissingAnnotationError) Error() string {
	return fmt.Sprintf("no annotation for value %v", e.Value)
}

// Label returns the text for value. If mapping is non-nil, the text
// is mapping[value] and a missing entry is an error. Otherwise value
// is formatted with the fmt verb format.
func Label(value float64, format string, mapping map[float64]string) (string, error) {
	if mapping != nil {
		text, ok := mapping[value]
		if !ok {
			return "", &MissingAnnotationError{value}
		}
		return text, nil
	}
	return fmt.Sprintf(format, value), nil
}

// Offset is the gap in points between a horizontal bar's end and its
// label.
const Offset = 3

// VerticalOffset is the gap in points between a vertical bar's top
// and its label.
const VerticalOffset = 8

// Threshold returns the bar length a horizontal bar needs for a
// label of width annotationWidth to fit inside it. The offset term
// converts Offset from points using the base font size.
func Threshold(annotationWidth, fontSize float64) float64 {
	return 1.1 * (annotationWidth + Offset*fontSize/72)
}

// PlaceHorizontal places text on a horizontal bar, inside the bar in
// white when it fits and outside in black otherwise.
func PlaceHorizontal(b Bar, text string, fontSize float64, m TextMeasurer) Annotation {
	width := m.TextWidth(text, fontSize, fontmetrics.Bold)
	a := Annotation{
		Text: text,
		X:    b.X + b.Width,
		Y:    b.Y + b.Height/2,
		Bold: true,
	}
	if Threshold(width, fontSize) <= b.Width {
		a.Align, a.DX, a.Color = Right, -Offset, color.White
	} else {
		a.Align, a.DX, a.Color = Left, Offset, color.Black
	}
	return a
}

// PlaceVertical places text centered above a vertical bar.
func PlaceVertical(b Bar, text string) Annotation {
	return Annotation{
		Text:  text,
		X:     b.X + b.Width/2,
		Y:     b.Y + b.Height,
		DY:    VerticalOffset,
		Align: Center,
		Color: color.Black,
		Bold:  true,
	}
}

// Options control how Annotate labels a bar.
type Options struct {
	// Format is a fmt verb for the bar's value, such as "%.1f".
	Format string

	// Mapping, if non-nil, supplies the label for each value
	// instead of Format.
	Mapping map[float64]string

	// FontSize is the base font size in points.
	FontSize float64
}

// Annotate labels b and draws the label on s. m is only consulted
// for horizontal bars and may be nil otherwise.
func Annotate(s Surface, m TextMeasurer, b Bar, opts Options) error {
	text, err := Label(b.Value(), opts.Format, opts.Mapping)
	if err != nil {
		return err
	}
	if b.Orientation == Horizontal {
		s.Annotate(PlaceHorizontal(b, text, opts.FontSize, m))
	} else {
		s.Annotate(PlaceVertical(b, text))
	}
	return nil
}
