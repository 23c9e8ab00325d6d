// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/aclements/go-moremath/scale"
	"github.com/ajstarks/svgo"
	"github.com/kagglelib/surveyplot/annotate"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/style"
)

// Colors of the "dark" seaborn look.
var (
	axesBackground = color.RGBA{0xea, 0xea, 0xf2, 0xff}
	gridColor      = color.White
	spineColor     = color.RGBA{0x26, 0x26, 0x26, 0xff}
	textColor      = color.RGBA{0x26, 0x26, 0x26, 0xff}
)

// valueTicks returns the major ticks and their labels for the range
// [lo, hi].
func (ax *Axes) valueTicks(lo, hi float64) ([]float64, []string) {
	if !(lo < hi) {
		return nil, nil
	}
	major, _ := scale.Linear{Min: lo, Max: hi}.Ticks(scale.TickOptions{Max: maxTicks})
	labels := make([]string, len(major))
	for i, x := range major {
		labels[i] = fmt.Sprintf("%.6g", x)
	}
	return major, labels
}

func (ax *Axes) render(canvas *svg.SVG) {
	r := ax.rect
	st := ax.fig.Style

	canvas.Rect(round(r.x), round(r.y), round(r.w), round(r.h), "fill:"+cssColor(axesBackground))

	// Grid lines on the value axis.
	if ax.XGrid {
		ticks, _ := ax.valueTicks(ax.XLim())
		if ax.orientation == annotate.Vertical && len(ax.categories) > 0 {
			ticks = nil
		}
		for _, t := range ticks {
			x := round(ax.pixelX(t))
			canvas.Line(x, round(r.y), x, round(r.y+r.h), "stroke:"+cssColor(gridColor))
		}
	}
	if ax.YGrid {
		ticks, _ := ax.valueTicks(ax.YLim())
		if ax.orientation == annotate.Horizontal && len(ax.categories) > 0 {
			ticks = nil
		}
		for _, t := range ticks {
			y := round(ax.pixelY(t))
			canvas.Line(round(r.x), y, round(r.x+r.w), y, "stroke:"+cssColor(gridColor))
		}
	}

	// Bars, clipped to the data area.
	for _, p := range ax.patches {
		x0, x1 := ax.pixelX(p.X), ax.pixelX(p.X+p.Width)
		y0, y1 := ax.pixelY(p.Y), ax.pixelY(p.Y+p.Height)
		x0, x1 = clip(math.Min(x0, x1), r.x, r.x+r.w), clip(math.Max(x0, x1), r.x, r.x+r.w)
		y0, y1 = clip(math.Min(y0, y1), r.y, r.y+r.h), clip(math.Max(y0, y1), r.y, r.y+r.h)
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		canvas.Rect(round(x0), round(y0), round(x1-x0), round(y1-y0), "fill:"+cssColor(p.Fill))
	}

	// Spines.
	spine := "stroke-width:0.5;stroke:" + cssColor(spineColor)
	x0, y0, x1, y1 := round(r.x), round(r.y), round(r.x+r.w), round(r.y+r.h)
	if ax.Spines.Left {
		canvas.Line(x0, y0, x0, y1, spine)
	}
	if ax.Spines.Right {
		canvas.Line(x1, y0, x1, y1, spine)
	}
	if ax.Spines.Top {
		canvas.Line(x0, y0, x1, y0, spine)
	}
	if ax.Spines.Bottom {
		canvas.Line(x0, y1, x1, y1, spine)
	}

	ax.renderTicks(canvas)

	// Annotations.
	for _, a := range ax.annotations {
		px, py := ax.pixelX(a.X)+a.DX, ax.pixelY(a.Y)-a.DY
		s := fmt.Sprintf("font-size:%.6gpx;dominant-baseline:central;text-anchor:%s;fill:%s", a.size, textAnchor(a.Align), cssColor(a.Color))
		if a.Bold {
			s += ";font-weight:bold"
		}
		canvas.Text(round(px), round(py), a.Text, s)
	}

	// Titles and axis labels.
	if ax.Title != "" {
		size := st.Get(style.AxesTitleSize)
		lines := strings.Split(ax.Title, "\n")
		lead := fontmetrics.Leading(size)
		top := r.y - 6 - float64(len(lines)-1)*lead - 0.2*size
		drawLines(canvas, r.x+r.w/2, top, lines, size, "text-anchor:middle")
	}
	_, _, _, bottom := ax.padding()
	if ax.XLabel != "" {
		size := st.Get(style.AxesLabelSize)
		drawLines(canvas, r.x+r.w/2, r.y+r.h+bottom-6, []string{ax.XLabel}, size, "text-anchor:middle")
	}
	left, _, _, _ := ax.padding()
	if ax.YLabel != "" {
		size := st.Get(style.AxesLabelSize)
		x, y := round(r.x-left+size), round(r.y+r.h/2)
		rotate(canvas, x, y, -90)
		canvas.Text(0, 0, ax.YLabel, fmt.Sprintf("font-size:%.6gpx;text-anchor:middle", size))
		canvas.Gend()
	}

	ax.renderLegend(canvas)
}

func (ax *Axes) renderTicks(canvas *svg.SVG) {
	r := ax.rect
	st := ax.fig.Style

	if !ax.HideXTickLabels {
		size := st.Get(style.XTickLabelSize)
		var xs []float64
		labels := ax.xTickLabels()
		if ax.orientation == annotate.Vertical && len(ax.categories) > 0 {
			for i := range labels {
				xs = append(xs, float64(i))
			}
		} else {
			xs, _ = ax.valueTicks(ax.XLim())
		}
		y := r.y + r.h + tickPad + size
		for i, x := range xs {
			ax.tickLabel(canvas, ax.pixelX(x), y, labels[i], size, ax.XTickRotation, "middle")
		}
	}

	if !ax.HideYTickLabels {
		size := st.Get(style.YTickLabelSize)
		var ys []float64
		labels := ax.yTickLabels()
		if ax.orientation == annotate.Horizontal && len(ax.categories) > 0 {
			for i := range labels {
				ys = append(ys, float64(i))
			}
		} else {
			ys, _ = ax.valueTicks(ax.YLim())
		}
		x := r.x - tickPad
		for i, y := range ys {
			ax.tickLabel(canvas, x, ax.pixelY(y), labels[i], size, ax.YTickRotation, "end")
		}
	}
}

func (ax *Axes) tickLabel(canvas *svg.SVG, x, y float64, label string, size, rot float64, anchor string) {
	s := fmt.Sprintf("font-size:%.6gpx;text-anchor:%s;dominant-baseline:central;fill:%s", size, anchor, cssColor(textColor))
	if rot == 0 {
		canvas.Text(round(x), round(y), label, s)
		return
	}
	if anchor == "middle" {
		// Rotated x labels hang from their end.
		s = strings.Replace(s, "text-anchor:middle", "text-anchor:end", 1)
	}
	rotate(canvas, round(x), round(y), -rot)
	canvas.Text(0, 0, label, s)
	canvas.Gend()
}

func (ax *Axes) renderLegend(canvas *svg.SVG) {
	if len(ax.legend) == 0 {
		return
	}
	corner, err := legendCorner(ax.legendLoc)
	if err != nil {
		return
	}
	size := ax.fig.Style.Get(style.LegendFontSize)
	lead := fontmetrics.Leading(size)
	labels := make([]string, len(ax.legend))
	for i, e := range ax.legend {
		labels[i] = e.Label
	}
	const pad = 6
	w := maxWidth(ax.fig.Metrics, labels, size) + size + 3*pad
	h := float64(len(ax.legend))*lead + 2*pad

	r := ax.rect
	x := r.x + pad + corner[0]*(r.w-w-2*pad)
	y := r.y + pad + corner[1]*(r.h-h-2*pad)
	canvas.Rect(round(x), round(y), round(w), round(h), "fill:white;fill-opacity:0.8;stroke:#cccccc")
	for i, e := range ax.legend {
		ly := y + pad + float64(i)*lead
		canvas.Rect(round(x+pad), round(ly+(lead-size)/2), round(size), round(size), "fill:"+cssColor(e.Color))
		canvas.Text(round(x+2*pad+size), round(ly+lead/2), e.Label, fmt.Sprintf("font-size:%.6gpx;dominant-baseline:central;fill:%s", size, cssColor(textColor)))
	}
}

// drawLines draws lines of text starting with a baseline at y.
func drawLines(canvas *svg.SVG, x, y float64, lines []string, size float64, s string) {
	lead := fontmetrics.Leading(size)
	for i, l := range lines {
		canvas.Text(round(x), round(y+float64(i)*lead), l, fmt.Sprintf("font-size:%.6gpx;%s", size, s))
	}
}

// rotate opens a group whose origin is (x, y) and whose axes are
// rotated by deg degrees. The caller must close it with Gend.
func rotate(canvas *svg.SVG, x, y int, deg float64) {
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(%.6g)", x, y, deg))
}

func textAnchor(a annotate.HAlign) string {
	switch a {
	case annotate.Left:
		return "start"
	case annotate.Right:
		return "end"
	}
	return "middle"
}

func cssColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	// Un-premultiply.
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func clip(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
