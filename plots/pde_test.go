// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/kagglelib/surveyplot/survey"
)

func integrate(xs, ys []float64) float64 {
	sum := 0.0
	for i := 1; i < len(xs); i++ {
		sum += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	return sum
}

func TestEstimateDensity(t *testing.T) {
	var vals []float64
	for i := 1; i <= 100; i++ {
		vals = append(vals, float64(i*i))
	}
	for _, log := range []bool{false, true} {
		c := EstimateDensity(survey.Series{Name: "x", Values: vals}, 0.5, log)
		if len(c.X) != 200 || len(c.Y) != 200 {
			t.Fatalf("log=%v: got %d points; want 200", log, len(c.X))
		}
		if area := integrate(c.X, c.Y); math.Abs(area-1) > 0.01 {
			t.Errorf("log=%v: density integrates to %v; want 1", log, area)
		}
		// A Gaussian kernel still has mass three bandwidths out.
		if !(c.Y[0] > 0 && c.Y[len(c.Y)-1] > 0) {
			t.Errorf("log=%v: density at the domain edges = %v, %v; want > 0", log, c.Y[0], c.Y[len(c.Y)-1])
		}
		if log && (c.X[0] > 0 || c.X[len(c.X)-1] < 4) {
			t.Errorf("log range %v..%v does not cover log10 of the data", c.X[0], c.X[len(c.X)-1])
		}
	}

	if c := EstimateDensity(survey.Series{Values: []float64{5}}, 1, false); len(c.X) != 0 {
		t.Errorf("single value should give an empty curve; got %d points", len(c.X))
	}
	if c := EstimateDensity(survey.Series{Values: []float64{-1, 0, math.NaN()}}, 1, true); len(c.X) != 0 {
		t.Errorf("no positive values should give an empty log curve")
	}
}

func TestEvaluateDensity(t *testing.T) {
	c := EvaluateDensity(survey.Series{Name: "USA", Values: []float64{7499}}, 10)
	if !reflect.DeepEqual(survey.SortedThresholds(), c.X) {
		t.Errorf("not evaluated at the salary thresholds: %v", c.X)
	}
	peak := 1 / (10 * math.Sqrt(2*math.Pi))
	for i, x := range c.X {
		want := 0.0
		if x == 7499 {
			want = peak
		}
		if math.Abs(c.Y[i]-want) > 1e-9 {
			t.Errorf("density at %v = %v; want %v", x, c.Y[i], want)
		}
	}

	c = EvaluateDensity(survey.Series{}, 10)
	if len(c.Y) != len(c.X) {
		t.Errorf("empty series: %d values at %d points", len(c.Y), len(c.X))
	}
}

func TestAdjustments(t *testing.T) {
	for _, test := range []struct {
		opts []float64
		def  []float64
		n    int
		want []float64
	}{
		{nil, []float64{0.8, 0.6, 0.5}, 3, []float64{0.8, 0.6, 0.5}},
		{[]float64{1}, []float64{0.8, 0.6}, 3, []float64{1, 1, 1}},
		{[]float64{1, 2}, nil, 3, []float64{1, 2, 2}},
		{nil, []float64{0.6}, 2, []float64{0.6, 0.6}},
	} {
		got := adjustments(Options{BandwidthAdjust: test.opts}, test.def, test.n)
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("adjustments(%v, %v, %d) = %v; want %v", test.opts, test.def, test.n, got, test.want)
		}
	}
}

const incomeCSV = `country,income_group,role,salary,salary_threshold
USA,3 - High income,Data Scientist,100000-124999,124999
USA,3 - High income,Data Analyst,50000-59999,59999
USA,3 - High income,Data Scientist,150000-199999,199999
Germany,3 - High income,Data Scientist,60000-69999,69999
Germany,3 - High income,Data Analyst,40000-49999,49999
India,1 - Lower middle income,Software Engineer,5000-7499,7499
India,1 - Lower middle income,Data Scientist,10000-14999,14999
Brazil,2 - Upper middle income,Statistician,10000-14999,14999
Brazil,2 - Upper middle income,Data Scientist,20000-24999,24999
Egypt,1 - Lower middle income,Data Scientist,2000-2999,2999
Egypt,1 - Lower middle income,Data Analyst,1000-1999,1999
`

func TestDensityCharts(t *testing.T) {
	tab, err := survey.ReadCSV(strings.NewReader(incomeCSV))
	if err != nil {
		t.Fatal(err)
	}
	byIncome, err := SalaryPDEPerIncomeGroup(tab, Options{LogScale: true})
	if err != nil {
		t.Fatal(err)
	}
	byRole, err := SalaryPDEPerRole(tab, Options{LogScale: true, Width: 8, Height: 6})
	if err != nil {
		t.Fatal(err)
	}
	series, err := survey.SplitByIncomeGroup(tab)
	if err != nil {
		t.Fatal(err)
	}
	compared, err := PDEComparison(series, Options{Bandwidth: 5000})
	if err != nil {
		t.Fatal(err)
	}

	for name, c := range map[string]Chart{"income": byIncome, "role": byRole, "comparison": compared} {
		var buf bytes.Buffer
		if err := c.WriteSVG(&buf); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if !strings.Contains(buf.String(), "<svg") {
			t.Errorf("%s: output is not SVG", name)
		}
	}

	if _, err := PDEComparison(nil, Options{}); err == nil {
		t.Errorf("PDEComparison of no series succeeded")
	}
}

func TestDensityRowPerSeries(t *testing.T) {
	const sparse = `country,income_group,role,salary,salary_threshold
USA,3 - High income,Data Scientist,100000-124999,124999
Germany,3 - High income,Data Scientist,60000-69999,69999
France,3 - High income,Data Analyst,50000-59999,59999
Brazil,2 - Upper middle income,Statistician,10000-14999,14999
`
	tab, err := survey.ReadCSV(strings.NewReader(sparse))
	if err != nil {
		t.Fatal(err)
	}
	for name, plot := range map[string]func() (Chart, error){
		"role": func() (Chart, error) {
			return SalaryPDEPerRole(tab, Options{LogScale: true})
		},
		"income": func() (Chart, error) {
			return SalaryPDEPerIncomeGroup(tab, Options{LogScale: true})
		},
	} {
		c, err := plot()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		var buf bytes.Buffer
		if err := c.WriteSVG(&buf); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		labels := survey.Roles
		if name == "income" {
			labels = survey.IncomeGroups
		}
		for _, l := range labels {
			if !strings.Contains(buf.String(), l) {
				t.Errorf("%s: no row labeled %q", name, l)
			}
		}
	}
}

func TestDensityNoRespondents(t *testing.T) {
	const others = `country,income_group,role,salary,salary_threshold
Other,3 - High income,Data Scientist,100000-124999,124999
USA,3 - High income,Data Analyst,,
`
	tab, err := survey.ReadCSV(strings.NewReader(others))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := SalaryPDEPerIncomeGroup(tab, Options{}); err != errNoDensity {
		t.Errorf("SalaryPDEPerIncomeGroup: want %v; got %v", errNoDensity, err)
	}
	if _, err := SalaryPDEPerRole(tab, Options{}); err != errNoDensity {
		t.Errorf("SalaryPDEPerRole: want %v; got %v", errNoDensity, err)
	}
}
