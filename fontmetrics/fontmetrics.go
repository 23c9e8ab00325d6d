// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontmetrics measures the rendered width of chart labels.
//
// Widths are in points. Charts are drawn at 72 DPI, so a point is
// also an SVG pixel.
package fontmetrics

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DPI is the resolution at which text is measured and drawn.
const DPI = 72

// Weight is a font weight.
type Weight int

const (
	Normal Weight = iota
	Bold
)

func (w Weight) String() string {
	switch w {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	}
	return fmt.Sprintf("Weight(%d)", int(w))
}

// A Measurer returns the width in points of text drawn at size
// points in the given weight.
type Measurer interface {
	Measure(text string, size float64, weight Weight) float64
}

// FontFamily is the CSS font family that matches GoFont's metrics.
const FontFamily = `Go,"Helvetica Neue",Helvetica,Arial,sans-serif`

// GoFont measures text with the Go font family. It is safe for
// concurrent use.
type GoFont struct {
	fonts [2]*opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size   float64
	weight Weight
}

// NewGoFont parses the embedded Go Regular and Go Bold fonts.
func NewGoFont() (*GoFont, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Bold: %w", err)
	}
	return &GoFont{
		fonts: [2]*opentype.Font{regular, bold},
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Measure returns the advance width of text.
func (g *GoFont) Measure(text string, size float64, weight Weight) float64 {
	face, err := g.face(size, weight)
	if err != nil {
		// Only possible for nonsensical sizes.
		return Approx{}.Measure(text, size, weight)
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64
}

func (g *GoFont) face(size float64, weight Weight) (font.Face, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := faceKey{size, weight}
	if f, ok := g.faces[k]; ok {
		return f, nil
	}
	fnt := g.fonts[0]
	if weight == Bold {
		fnt = g.fonts[1]
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	g.faces[k] = f
	return f, nil
}

// Approx estimates text width from the number of runes. It needs no
// font data and is deterministic, which makes it useful in tests.
type Approx struct{}

func (Approx) Measure(text string, size float64, weight Weight) float64 {
	w := 0.5 * size * float64(utf8.RuneCountInString(text))
	if weight == Bold {
		w *= 1.1
	}
	return w
}

// Leading returns the distance between baselines of text set at
// size points.
func Leading(size float64) float64 {
	return 1.25 * size
}
