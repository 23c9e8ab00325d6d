// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/style"
	"github.com/kagglelib/surveyplot/survey"
)

// Columns of a density table.
const (
	colSeries  = "series"
	colX       = "salary"
	colDensity = "probability density"
	colFill    = "fill"
)

// A Curve is a density estimate sampled at X.
type Curve struct {
	Name string
	X, Y []float64
}

// EstimateDensity returns the Gaussian kernel density estimate of
// s. The bandwidth is adjust times Scott's rule. If log is set the
// estimate is over log10 of the values, which must be positive. The
// curve is sampled at 200 points spanning the data widened by three
// bandwidths.
func EstimateDensity(s survey.Series, adjust float64, log bool) Curve {
	xs := make([]float64, 0, len(s.Values))
	for _, x := range s.Values {
		if math.IsNaN(x) {
			continue
		}
		if log {
			if x <= 0 {
				continue
			}
			x = math.Log10(x)
		}
		xs = append(xs, x)
	}
	c := Curve{Name: s.Name}
	sample := stats.Sample{Xs: xs}
	if len(xs) < 2 {
		return c
	}
	bw := adjust * stats.BandwidthScott(sample)
	if !(bw > 0) {
		return c
	}

	lo, hi := sample.Bounds()
	tab := new(table.Builder).Add(colX, xs).Done()
	d := ggstat.Density{
		X:         colX,
		N:         200,
		Domain:    ggstat.DomainFixed{Min: lo - 3*bw, Max: hi + 3*bw},
		Kernel:    stats.GaussianKernel,
		Bandwidth: bw,
	}.F(tab)
	for _, gid := range d.Tables() {
		t := d.Table(gid)
		c.X = append(c.X, t.MustColumn(colX).([]float64)...)
		c.Y = append(c.Y, t.MustColumn(colDensity).([]float64)...)
	}
	return c
}

// EvaluateDensity returns the Gaussian kernel density estimate of s
// with a fixed bandwidth, sampled at the sorted salary thresholds.
func EvaluateDensity(s survey.Series, bandwidth float64) Curve {
	var xs []float64
	for _, x := range s.Values {
		if !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	at := survey.SortedThresholds()
	c := Curve{Name: s.Name, X: at}
	if len(xs) == 0 || !(bandwidth > 0) {
		c.Y = make([]float64, len(at))
		return c
	}
	kde := stats.KDE{
		Sample:    stats.Sample{Xs: xs},
		Kernel:    stats.GaussianKernel,
		Bandwidth: bandwidth,
	}
	c.Y = vec.Map(kde.PDF, at)
	return c
}

// densityChart is a go-gg plot with a fixed size.
type densityChart struct {
	plot          *gg.Plot
	width, height int
}

func (c *densityChart) WriteSVG(w io.Writer) error {
	return c.plot.WriteSVG(w, c.width, c.height)
}

// errNoDensity is returned when no series has enough values to
// estimate a density.
var errNoDensity = errors.New("no series has enough salary answers for a density estimate")

// densityPlot draws one facet per curve, filled with pal and
// outlined in white. xlog indicates that X holds log10 values. A
// curve without samples is drawn as a flat row over the span of the
// other curves.
func densityPlot(curves []Curve, title string, pal []color.Color, xlog bool, w, h float64) (Chart, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		for _, x := range c.X {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	if lo > hi {
		return nil, errNoDensity
	}
	curves = append([]Curve(nil), curves...)
	for i, c := range curves {
		if len(c.X) == 0 {
			curves[i] = Curve{Name: c.Name, X: []float64{lo, hi}, Y: []float64{0, 0}}
		}
	}

	var idx []int
	var xs, ys []float64
	var fills []color.Color
	names := make([]string, len(curves))
	for i, c := range curves {
		names[i] = c.Name
		for j := range c.X {
			idx = append(idx, i)
			xs = append(xs, c.X[j])
			ys = append(ys, c.Y[j])
			fills = append(fills, pal[i%len(pal)])
		}
	}
	tab := new(table.Builder).
		Add(colSeries, idx).
		Add(colX, xs).
		Add(colDensity, ys).
		Add(colFill, fills).
		Done()

	plot := gg.NewPlot(tab)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	xscale := gg.NewLinearScaler()
	if xlog {
		xscale.SetFormatter(func(x float64) string {
			return fmt.Sprintf("%.0f", math.Pow(10, x))
		})
	}
	plot.SetScale("x", xscale)

	plot.Add(gg.FacetY{
		Col:          colSeries,
		SplitYScales: true,
		Labeler: func(v interface{}) string {
			return names[v.(int)]
		},
	})
	plot.Add(gg.LayerArea{
		X:     colX,
		Upper: colDensity,
		Fill:  colFill,
	})
	plot.Add(gg.LayerLines{
		X:     colX,
		Y:     colDensity,
		Color: plot.Const(color.White),
	})
	if title != "" {
		plot.Add(gg.Title(title))
	}
	return &densityChart{
		plot:   plot,
		width:  int(w * fontmetrics.DPI),
		height: int(h * fontmetrics.DPI),
	}, nil
}

// adjustments returns n bandwidth adjustments from opts, repeating a
// single value and padding with def.
func adjustments(opts Options, def []float64, n int) []float64 {
	src := opts.BandwidthAdjust
	if len(src) == 0 {
		src = def
	}
	out := make([]float64, n)
	for i := range out {
		switch {
		case len(src) == 1:
			out[i] = src[0]
		case i < len(src):
			out[i] = src[i]
		default:
			out[i] = src[len(src)-1]
		}
	}
	return out
}

// SalaryPDEPerIncomeGroup draws the salary density of each income
// group series of survey.SplitByIncomeGroup in its own row. The
// bandwidth adjustments default to 0.8, 0.6, 0.5, 0.5 and 0.5. The
// default size is 18 by 10 inches.
func SalaryPDEPerIncomeGroup(t *table.Table, opts Options) (Chart, error) {
	series, err := survey.SplitByIncomeGroup(t)
	if err != nil {
		return nil, err
	}
	adj := adjustments(opts, []float64{0.8, 0.6, 0.5, 0.5, 0.5}, len(series))
	curves := make([]Curve, len(series))
	for i, s := range series {
		curves[i] = EstimateDensity(s, adj[i], opts.LogScale)
	}
	w, h := opts.size(18, 10)
	title := opts.title(pdeTitle("Salary PDE per WB income groups", opts.LogScale))
	return densityPlot(curves, title, opts.palette(style.IncomeGroup), opts.LogScale, w, h)
}

// PDEComparison draws a fixed bandwidth density of each series,
// evaluated at the salary thresholds, in its own row. The bandwidth
// defaults to 10. The default size is 18 by 14 inches.
func PDEComparison(series []survey.Series, opts Options) (Chart, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no series to compare")
	}
	bw := opts.Bandwidth
	if bw == 0 {
		bw = 10
	}
	curves := make([]Curve, len(series))
	for i, s := range series {
		c := EvaluateDensity(s, bw)
		if opts.LogScale {
			c.X = vec.Map(math.Log10, c.X)
		}
		curves[i] = c
	}
	w, h := opts.size(18, 14)
	title := opts.title(pdeTitle("Salary PDE per role", opts.LogScale))
	return densityPlot(curves, title, opts.palette(style.IncomeGroup), opts.LogScale, w, h)
}

// SalaryPDEPerRole draws the salary density of each job role of
// survey.Roles in its own row. The bandwidth adjustment defaults to
// 0.6. The default size is 18 by 14 inches.
func SalaryPDEPerRole(t *table.Table, opts Options) (Chart, error) {
	series, err := survey.SplitByRole(t)
	if err != nil {
		return nil, err
	}
	adj := adjustments(opts, []float64{0.6}, len(series))
	curves := make([]Curve, len(series))
	for i, s := range series {
		curves[i] = EstimateDensity(s, adj[i], opts.LogScale)
	}
	w, h := opts.size(18, 14)
	title := opts.title(pdeTitle("Salary PDE per role", opts.LogScale))
	return densityPlot(curves, title, opts.palette(style.IncomeGroup), opts.LogScale, w, h)
}

func pdeTitle(base string, log bool) string {
	if log {
		return base + " (log scale)"
	}
	return base
}
