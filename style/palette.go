// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palettes used by the survey charts.
var (
	// IncomeGroup shades the World Bank income groups.
	IncomeGroup = Cubehelix(10, 0, -0.25, 0.7)

	// USAvsROW contrasts the USA with the rest of the world.
	USAvsROW = []color.Color{
		Desaturate(colornames.Lightcoral, 0.9),
		Desaturate(colornames.Deepskyblue, 0.6),
	}

	// Comparison colors one panel or series per group.
	Comparison = desaturateAll(0.4, colornames.Red, colornames.Magenta, colornames.Cyan, colornames.Blue, colornames.Cornflowerblue, colornames.Green)

	// OriginalVsFiltered contrasts an unfiltered dataset with its
	// filtered version.
	OriginalVsFiltered = []color.Color{
		Desaturate(colornames.Red, 0.4),
		Desaturate(colornames.Cornflowerblue, 0.75),
	}

	// Dark is a deep palette for series that need strong contrast.
	Dark = []color.Color{
		color.RGBA{0x00, 0x1c, 0x7f, 0xff},
		color.RGBA{0xb1, 0x40, 0x0d, 0xff},
		color.RGBA{0x12, 0x71, 0x1c, 0xff},
		color.RGBA{0x8c, 0x08, 0x00, 0xff},
	}

	// Highlight marks bars that deserve attention.
	Highlight color.Color = colornames.Darkcyan

	// Age is the base color of age distribution bars.
	Age = Desaturate(colornames.Darkred, 0.85)
)

// Named returns the CSS color called name.
func Named(name string) (color.Color, bool) {
	c, ok := colornames.Map[name]
	return c, ok
}

// Desaturate scales the HSL saturation of c by prop, which must be
// in [0, 1].
func Desaturate(c color.Color, prop float64) color.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent.
		return c
	}
	h, s, l := cf.Hsl()
	return colorful.Hsl(h, s*prop, l).Clamped()
}

func desaturateAll(prop float64, cs ...color.RGBA) []color.Color {
	out := make([]color.Color, len(cs))
	for i, c := range cs {
		out[i] = Desaturate(c, prop)
	}
	return out
}

// Cubehelix returns n colors from Green's cubehelix scheme, starting
// at hue start and rotating rot times. The colors are sampled from a
// 256 level ramp at evenly spaced intensities running from light down
// to a fixed dark level.
func Cubehelix(n int, start, rot, light float64) []color.Color {
	const (
		gamma  = 1.0
		hue    = 0.8
		dark   = 0.15
		levels = 256
	)
	ramp := make([]color.RGBA, levels)
	for i := range ramp {
		x := float64(i) / (levels - 1)
		xg := math.Pow(x, gamma)
		phi := 2 * math.Pi * (start/3 + rot*x)
		a := hue * xg * (1 - xg) / 2
		cos, sin := math.Cos(phi), math.Sin(phi)
		r := xg + a*(-0.14861*cos+1.78277*sin)
		g := xg + a*(-0.29227*cos-0.90649*sin)
		b := xg + a*(1.97294*cos)
		ramp[i] = color.RGBA{clamp8(r), clamp8(g), clamp8(b), 255}
	}

	grad := palette.RGBGradient{Colors: ramp}
	out := make([]color.Color, n)
	for i := range out {
		x := light
		if n > 1 {
			x = light + (dark-light)*float64(i)/float64(n-1)
		}
		out[i] = grad.Map(x)
	}
	return out
}

func clamp8(x float64) uint8 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}
