// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strings"

	"github.com/kagglelib/surveyplot/annotate"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/style"
)

// tickPad is the gap in points between tick labels and the axes.
const tickPad = 6

// maxTicks is the maximum number of value axis ticks.
const maxTicks = 6

// margin returns the figure margin. Like the go-gg plots this is 5%
// of the smaller dimension, but capped so large figures don't waste
// space.
func (f *Figure) margin() float64 {
	return math.Min(0.05*math.Min(f.Width, f.Height), 20)
}

// layout assigns a pixel rectangle to every Axes. It depends on the
// titles, labels and categories currently set, so it is recomputed
// whenever a pixel mapping is needed.
func (f *Figure) layout() {
	m := f.margin()
	top := m
	if lines := f.titleLines(); len(lines) > 0 {
		top += float64(len(lines))*fontmetrics.Leading(f.Style.Get(style.FigureTitleSize)) + m
	}
	cellW := (f.Width - 2*m) / float64(f.cols)
	cellH := (f.Height - top - m) / float64(f.rows)

	for _, ax := range f.axes {
		l, t, r, b := ax.padding()
		ax.rect = rect{
			x: m + float64(ax.col)*cellW + l,
			y: top + float64(ax.row)*cellH + t,
			w: math.Max(cellW-l-r, 1),
			h: math.Max(cellH-t-b, 1),
		}
	}
}

// padding returns the space around ax's data area needed for its
// title, axis labels and tick labels.
func (ax *Axes) padding() (left, top, right, bottom float64) {
	st, m := ax.fig.Style, ax.fig.Metrics
	right, top, bottom = 10, 6, 6

	if ax.Title != "" {
		n := strings.Count(ax.Title, "\n") + 1
		top += float64(n) * fontmetrics.Leading(st.Get(style.AxesTitleSize))
	}
	if ax.XLabel != "" {
		bottom += fontmetrics.Leading(st.Get(style.AxesLabelSize))
	}
	if ax.YLabel != "" {
		left += fontmetrics.Leading(st.Get(style.AxesLabelSize))
	}

	if !ax.HideXTickLabels {
		size := st.Get(style.XTickLabelSize)
		w := maxWidth(m, ax.xTickLabels(), size)
		bottom += tickPad + rotatedExtent(w, size, ax.XTickRotation, false)
	}
	if !ax.HideYTickLabels {
		size := st.Get(style.YTickLabelSize)
		w := maxWidth(m, ax.yTickLabels(), size)
		left += tickPad + rotatedExtent(w, size, ax.YTickRotation, true)
	}
	return
}

// xTickLabels returns the labels that will be drawn on the x axis.
func (ax *Axes) xTickLabels() []string {
	if ax.orientation == annotate.Vertical && len(ax.categories) > 0 {
		return ax.categories
	}
	_, labels := ax.valueTicks(ax.XLim())
	return labels
}

func (ax *Axes) yTickLabels() []string {
	if ax.orientation == annotate.Horizontal && len(ax.categories) > 0 {
		return ax.categories
	}
	_, labels := ax.valueTicks(ax.YLim())
	return labels
}

func maxWidth(m fontmetrics.Measurer, labels []string, size float64) float64 {
	w := 0.0
	for _, l := range labels {
		w = math.Max(w, m.Measure(l, size, fontmetrics.Normal))
	}
	return w
}

// rotatedExtent returns the extent across an axis of a label of
// width w rotated by deg degrees. across is true for the y axis,
// where an unrotated label extends by its width.
func rotatedExtent(w, size, deg float64, across bool) float64 {
	h := fontmetrics.Leading(size)
	rad := deg * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	if across {
		return w*cos + h*sin
	}
	return w*sin + h*cos
}
