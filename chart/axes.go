// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/kagglelib/surveyplot/annotate"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/style"
)

// Patch is a bar drawn on an Axes.
type Patch struct {
	annotate.Bar
	Fill color.Color
}

// LegendEntry is one swatch of a legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Spines selects which edges of an Axes get a border line.
type Spines struct {
	Left, Bottom, Top, Right bool
}

// Axes is one panel of a Figure.
type Axes struct {
	fig      *Figure
	row, col int
	rect     rect

	// Title is drawn above the panel and may contain newlines.
	Title string

	// XLabel and YLabel label the axes.
	XLabel, YLabel string

	// HideXTickLabels and HideYTickLabels suppress tick labels.
	HideXTickLabels, HideYTickLabels bool

	// XTickRotation and YTickRotation rotate tick labels by the
	// given number of degrees counter-clockwise.
	XTickRotation, YTickRotation float64

	// XGrid and YGrid draw grid lines at the major ticks of the
	// value axis.
	XGrid, YGrid bool

	// Spines are the visible borders.
	Spines Spines

	categories  []string
	orientation annotate.Orientation

	xlim, ylim       [2]float64
	xlimSet, ylimSet bool

	patches     []*Patch
	annotations []annotation

	legend    []LegendEntry
	legendLoc string
}

type annotation struct {
	annotate.Annotation
	size float64
}

type rect struct {
	x, y, w, h float64
}

func newAxes(f *Figure, row, col int) *Axes {
	return &Axes{
		fig:    f,
		row:    row,
		col:    col,
		Spines: Spines{true, true, true, true},
	}
}

// Figure returns the figure ax belongs to.
func (ax *Axes) Figure() *Figure {
	return ax.fig
}

// SetCategories sets the labels of the category axis. Category i is
// centered on coordinate i. For horizontal bars the category axis is
// the y axis and the first category is drawn at the top.
func (ax *Axes) SetCategories(labels []string, o annotate.Orientation) {
	ax.categories = append([]string(nil), labels...)
	ax.orientation = o
}

// Categories returns the category labels.
func (ax *Axes) Categories() []string {
	return ax.categories
}

// Orientation returns the orientation of bars on ax.
func (ax *Axes) Orientation() annotate.Orientation {
	return ax.orientation
}

// AddBar adds a bar filled with fill and returns its patch. The
// patch may be modified until the figure is rendered.
func (ax *Axes) AddBar(b annotate.Bar, fill color.Color) *Patch {
	p := &Patch{b, fill}
	ax.patches = append(ax.patches, p)
	return p
}

// Patches returns the bars on ax in the order they were added.
func (ax *Axes) Patches() []*Patch {
	return ax.patches
}

// Annotate draws a at the base font size. It implements
// annotate.Surface.
func (ax *Axes) Annotate(a annotate.Annotation) {
	ax.AnnotateSize(a, ax.fig.Style.Get(style.FontSize))
}

// AnnotateSize draws a at size points.
func (ax *Axes) AnnotateSize(a annotate.Annotation, size float64) {
	ax.annotations = append(ax.annotations, annotation{a, size})
}

// Annotations returns the annotations drawn on ax.
func (ax *Axes) Annotations() []annotate.Annotation {
	out := make([]annotate.Annotation, len(ax.annotations))
	for i, a := range ax.annotations {
		out[i] = a.Annotation
	}
	return out
}

// SetLegend sets the legend entries and placement. loc is "best" or
// a position such as "upper left" or "center right".
func (ax *Axes) SetLegend(loc string, entries []LegendEntry) error {
	if _, err := legendCorner(loc); err != nil {
		return err
	}
	ax.legendLoc = loc
	ax.legend = append([]LegendEntry(nil), entries...)
	return nil
}

// RemoveLegend removes the legend.
func (ax *Axes) RemoveLegend() {
	ax.legend = nil
}

// Legend returns the legend entries.
func (ax *Axes) Legend() []LegendEntry {
	return ax.legend
}

// Despine hides the given spines.
func (ax *Axes) Despine(left, bottom, top, right bool) {
	ax.Spines = Spines{!left && ax.Spines.Left, !bottom && ax.Spines.Bottom, !top && ax.Spines.Top, !right && ax.Spines.Right}
}

// SetXLim fixes the x axis range.
func (ax *Axes) SetXLim(lo, hi float64) {
	ax.xlim, ax.xlimSet = [2]float64{lo, hi}, true
}

// SetYLim fixes the y axis range.
func (ax *Axes) SetYLim(lo, hi float64) {
	ax.ylim, ax.ylimSet = [2]float64{lo, hi}, true
}

// XLim returns the x axis range, computing it from the data if it
// was not set.
func (ax *Axes) XLim() (lo, hi float64) {
	if ax.xlimSet {
		return ax.xlim[0], ax.xlim[1]
	}
	if ax.orientation == annotate.Horizontal {
		return ax.valueRange()
	}
	return ax.categoryRange()
}

// YLim returns the y axis range, computing it from the data if it
// was not set.
func (ax *Axes) YLim() (lo, hi float64) {
	if ax.ylimSet {
		return ax.ylim[0], ax.ylim[1]
	}
	if ax.orientation == annotate.Horizontal {
		return ax.categoryRange()
	}
	return ax.valueRange()
}

func (ax *Axes) categoryRange() (lo, hi float64) {
	n := len(ax.categories)
	if n == 0 {
		for _, p := range ax.patches {
			end := p.X + p.Width
			if p.Orientation == annotate.Horizontal {
				end = p.Y + p.Height
			}
			n = int(math.Max(float64(n), math.Ceil(end)))
		}
	}
	if n == 0 {
		n = 1
	}
	return -0.5, float64(n) - 0.5
}

// valueRange includes 0 and adds a 5% margin past the data.
func (ax *Axes) valueRange() (lo, hi float64) {
	for _, p := range ax.patches {
		v := p.Value()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo == hi {
		return 0, 1
	}
	span := hi - lo
	if lo < 0 {
		lo -= 0.05 * span
	}
	return lo, hi + 0.05*span
}

func (ax *Axes) xscale() scale.Linear {
	lo, hi := ax.XLim()
	return scale.Linear{Min: lo, Max: hi}
}

func (ax *Axes) yscale() scale.Linear {
	lo, hi := ax.YLim()
	return scale.Linear{Min: lo, Max: hi}
}

// invertY reports whether y grows downward, which is the case for a
// category y axis so the first category is on top.
func (ax *Axes) invertY() bool {
	return ax.orientation == annotate.Horizontal
}

// DataToPixel maps data coordinates to figure pixels.
func (ax *Axes) DataToPixel(x, y float64) (px, py float64) {
	ax.fig.layout()
	return ax.pixelX(x), ax.pixelY(y)
}

func (ax *Axes) pixelX(x float64) float64 {
	return ax.rect.x + ax.xscale().Map(x)*ax.rect.w
}

func (ax *Axes) pixelY(y float64) float64 {
	f := ax.yscale().Map(y)
	if ax.invertY() {
		return ax.rect.y + f*ax.rect.h
	}
	return ax.rect.y + ax.rect.h - f*ax.rect.h
}

// TextWidth returns the width of text drawn at size points, in data
// units along the x axis. It implements annotate.TextMeasurer.
func (ax *Axes) TextWidth(text string, size float64, weight fontmetrics.Weight) float64 {
	ax.fig.layout()
	if ax.rect.w <= 0 {
		return math.Inf(1)
	}
	px := ax.fig.Metrics.Measure(text, size, weight)
	s := ax.xscale()
	return math.Abs(s.Unmap(px/ax.rect.w) - s.Unmap(0))
}

// legendCorner returns the fractional position of the legend box
// anchor within the axes for loc.
func legendCorner(loc string) ([2]float64, error) {
	switch loc {
	case "best", "upper right", "":
		return [2]float64{1, 0}, nil
	case "upper left":
		return [2]float64{0, 0}, nil
	case "lower right":
		return [2]float64{1, 1}, nil
	case "lower left":
		return [2]float64{0, 1}, nil
	case "center right", "right":
		return [2]float64{1, 0.5}, nil
	case "center left":
		return [2]float64{0, 0.5}, nil
	case "upper center":
		return [2]float64{0.5, 0}, nil
	case "lower center":
		return [2]float64{0.5, 1}, nil
	case "center":
		return [2]float64{0.5, 0.5}, nil
	}
	return [2]float64{}, &LegendLocationError{loc}
}

// LegendLocationError reports an unknown legend placement.
type LegendLocationError struct {
	Location string
}

func (e *LegendLocationError) Error() string {
	return fmt.Sprintf("unknown legend location %q", e.Location)
}
