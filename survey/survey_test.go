// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestSalaryThresholdsRoundTrip(t *testing.T) {
	fwd, rev := SalaryThresholds(), ReverseSalaryThresholds()
	if len(fwd) != len(SalaryBrackets) || len(rev) != len(SalaryBrackets) {
		t.Fatalf("got %d and %d thresholds; want %d", len(fwd), len(rev), len(SalaryBrackets))
	}
	for label, x := range fwd {
		if got := rev[x]; got != label {
			t.Errorf("reverse of %v is %q; want %q", x, got, label)
		}
	}
	xs := SortedThresholds()
	for i := 1; i < len(xs); i++ {
		if xs[i-1] >= xs[i] {
			t.Errorf("thresholds not increasing at %d: %v", i, xs)
		}
	}
}

func TestBracketsNaturalOrder(t *testing.T) {
	labels := make([]string, len(SalaryBrackets))
	for i, b := range SalaryBrackets {
		labels[len(labels)-1-i] = b.Label
	}
	NaturalSort(labels)
	for i, b := range SalaryBrackets {
		if labels[i] != b.Label {
			t.Fatalf("natural order %v does not match bracket order", labels)
		}
	}
}

func TestNaturalSort(t *testing.T) {
	got := []string{"10000-14999", "5000-7499", "0-999", "1000-1999"}
	NaturalSort(got)
	want := []string{"0-999", "1000-1999", "5000-7499", "10000-14999"}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("want %v; got %v", want, got)
	}
	if NaturalLess("a", "a") {
		t.Errorf("NaturalLess(a, a) = true; want false")
	}
}

func TestValueCounts(t *testing.T) {
	vals := []string{"b2", "b10", "", "b2", "a", "b2"}
	d := ValueCounts(vals, false)
	want := Distribution{[]string{"a", "b2", "b10"}, []float64{1, 3, 1}}
	if !reflect.DeepEqual(want, d) {
		t.Errorf("want %v; got %v", want, d)
	}

	d = ValueCounts(vals, true)
	want = Distribution{[]string{"a", "b2", "b10"}, []float64{20, 60, 20}}
	if !reflect.DeepEqual(want, d) {
		t.Errorf("normalized: want %v; got %v", want, d)
	}

	r := d.Reverse()
	if w := []string{"b10", "b2", "a"}; !reflect.DeepEqual(w, r.Labels) {
		t.Errorf("reversed labels: want %v; got %v", w, r.Labels)
	}
	if v, ok := r.Get("b2"); !ok || v != 60 {
		t.Errorf("Get(b2) = %v, %v; want 60, true", v, ok)
	}
}

func TestBinWidth(t *testing.T) {
	for _, test := range []struct {
		label string
		want  float64
		ok    bool
	}{
		{"18-21", 4, true},
		{"22-24", 3, true},
		{"25-29", 5, true},
		{"60-69", 10, true},
		{"70+", 10, true},
		{"x+", 0, false},
		{"old", 0, false},
		{"30-20", 0, false},
	} {
		got, ok := BinWidth(test.label)
		if got != test.want || ok != test.ok {
			t.Errorf("BinWidth(%q) = %v, %v; want %v, %v", test.label, got, ok, test.want, test.ok)
		}
	}
}

func TestAgeDistribution(t *testing.T) {
	var ages []string
	add := func(label string, n int) {
		for i := 0; i < n; i++ {
			ages = append(ages, label)
		}
	}
	add("18-21", 4)
	add("22-24", 6)
	add("25-29", 10)
	tab := new(table.Builder).Add(ColAge, ages).Done()

	ds, err := AgeDistribution(tab)
	if err != nil {
		t.Fatal(err)
	}
	if w := []string{"18-21", "22-24", "25-29"}; !reflect.DeepEqual(w, ds.Default.Labels) {
		t.Errorf("labels: want %v; got %v", w, ds.Default.Labels)
	}
	if w := []float64{20, 30, 50}; !reflect.DeepEqual(w, ds.Default.Values) {
		t.Errorf("default: want %v; got %v", w, ds.Default.Values)
	}
	// Scaled to 5 years: 5, 10, 10.
	if w := []float64{20, 40, 40}; !reflect.DeepEqual(w, ds.Adjusted.Values) {
		t.Errorf("adjusted: want %v; got %v", w, ds.Adjusted.Values)
	}
	if w := []float64{1, 2, 2}; !reflect.DeepEqual(w, ds.Average.Values) {
		t.Errorf("average: want %v; got %v", w, ds.Average.Values)
	}

	_, err = AgeDistribution(new(table.Builder).Add("x", []int{1}).Done())
	var merr *MissingColumnError
	if !errors.As(err, &merr) || merr.Column != ColAge {
		t.Errorf("want missing age column error; got %v", err)
	}
}

const surveyCSV = `country,income_group,role,age,salary,salary_threshold
USA,3 - High income,Data Scientist,25-29,100000-124999,124999
USA,3 - High income,Data Analyst,30-34,50000-59999,59999
Germany,3 - High income,Data Scientist,30-34,60000-69999,69999
India,1 - Lower middle income,Software Engineer,22-24,5000-7499,7499
Nigeria,1 - Lower middle income,Data Analyst,18-21,,
Brazil,2 - Upper middle income,Statistician,35-39,10000-14999,14999
Other,2 - Upper middle income,Data Scientist,25-29,1000-1999,1999
Egypt,1 - Lower middle income,Data Scientist,25-29,2000-2999,2999
`

func TestReadCSV(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(surveyCSV))
	if err != nil {
		t.Fatal(err)
	}
	if w := []string{"country", "income_group", "role", "age", "salary", "salary_threshold"}; !reflect.DeepEqual(w, tab.Columns()) {
		t.Errorf("columns: want %v; got %v", w, tab.Columns())
	}
	th, ok := tab.MustColumn(ColSalaryThreshold).([]float64)
	if !ok {
		t.Fatalf("salary_threshold is %T; want []float64", tab.MustColumn(ColSalaryThreshold))
	}
	if !math.IsNaN(th[4]) || th[0] != 124999 {
		t.Errorf("salary_threshold = %v; want NaN at 4 and 124999 at 0", th)
	}
	if _, ok := tab.MustColumn(ColSalary).([]string); !ok {
		t.Errorf("salary is %T; want []string", tab.MustColumn(ColSalary))
	}

	ints, err := ReadCSV(strings.NewReader("a,b\nx,1\ny,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if w := []int{1, 2}; !reflect.DeepEqual(w, ints.MustColumn("b")) {
		t.Errorf("want %v; got %v", w, ints.MustColumn("b"))
	}

	if _, err := ReadCSV(strings.NewReader("a,a\n1,2\n")); err == nil {
		t.Errorf("duplicate column accepted")
	}
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Errorf("empty input accepted")
	}
}

func TestSplitByIncomeGroup(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(surveyCSV))
	if err != nil {
		t.Fatal(err)
	}
	series, err := SplitByIncomeGroup(tab)
	if err != nil {
		t.Fatal(err)
	}
	want := []Series{
		{GroupUSA, []float64{124999, 59999}},
		{GroupHigh, []float64{69999}},
		{GroupUpperMiddle, []float64{14999}},
		{GroupIndia, []float64{7499}},
		{GroupLowerMiddle, []float64{2999}},
	}
	if !reflect.DeepEqual(want, series) {
		t.Errorf("want %v; got %v", want, series)
	}
}

func TestSplitByRole(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(surveyCSV))
	if err != nil {
		t.Fatal(err)
	}
	series, err := SplitByRole(tab)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != len(Roles) {
		t.Fatalf("got %d series; want %d", len(series), len(Roles))
	}
	got := make(map[string][]float64)
	for _, s := range series {
		if len(s.Values) > 0 {
			got[s.Name] = s.Values
		}
	}
	want := map[string][]float64{
		"Data Scientist":    {124999, 69999, 2999},
		"Data Analyst":      {59999},
		"Software Engineer": {7499},
		"Statistician":      {14999},
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("want %v; got %v", want, got)
	}

	_, err = SplitByRole(new(table.Builder).Add(ColCountry, []string{"USA"}).Done())
	var merr *MissingColumnError
	if !errors.As(err, &merr) {
		t.Errorf("want MissingColumnError; got %v", err)
	}
}

func TestStrings(t *testing.T) {
	got := Strings([]float64{1.5, math.NaN(), 2})
	if w := []string{"1.5", "", "2"}; !reflect.DeepEqual(w, got) {
		t.Errorf("want %v; got %v", w, got)
	}
	if _, err := Floats([]string{"1"}); err == nil {
		t.Errorf("Floats of strings succeeded")
	}
}

func ExampleValueCounts() {
	d := ValueCounts([]string{"5000-7499", "10000-14999", "5000-7499", "0-999"}, true)
	for i, l := range d.Labels {
		fmt.Printf("%s %.2f\n", l, d.Values[i])
	}
	// Output:
	// 0-999 25.00
	// 5000-7499 50.00
	// 10000-14999 25.00
}
