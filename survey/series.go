// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Column names of a cleaned survey table.
const (
	ColCountry         = "country"
	ColIncomeGroup     = "income_group"
	ColRole            = "role"
	ColAge             = "age"
	ColSalary          = "salary"
	ColSalaryThreshold = "salary_threshold"
)

// Roles are the job roles compared by salary, in plot order.
var Roles = []string{
	"Business Analyst",
	"DBA/Database Engineer",
	"Data Analyst",
	"Data Engineer",
	"Data Scientist",
	"Machine Learning Engineer",
	"Research Scientist",
	"Software Engineer",
	"Product/Project Manager",
	"Statistician",
	"Other",
}

// Income group series names, in plot order.
const (
	GroupUSA         = "USA"
	GroupHigh        = "High"
	GroupUpperMiddle = "Upper Middle"
	GroupIndia       = "India"
	GroupLowerMiddle = "Lower Middle"
)

// IncomeGroups lists the income group series in plot order.
var IncomeGroups = []string{GroupUSA, GroupHigh, GroupUpperMiddle, GroupIndia, GroupLowerMiddle}

// A Series is a named sample of values.
type Series struct {
	Name   string
	Values []float64
}

// MissingColumnError reports that a table lacks a required column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table has no %q column", e.Column)
}

// respondent is one usable row of a survey table.
type respondent struct {
	country, incomeGroup, role string
	threshold                  float64
}

// respondents returns the rows of t that have a salary answer and a
// known country. role is only read when withRole is set.
func respondents(t *table.Table, withRole bool) ([]respondent, error) {
	need := []string{ColCountry, ColSalary, ColSalaryThreshold}
	if withRole {
		need = append(need, ColRole)
	} else {
		need = append(need, ColIncomeGroup)
	}
	for _, col := range need {
		if t.Column(col) == nil {
			return nil, &MissingColumnError{col}
		}
	}

	countries := Strings(t.MustColumn(ColCountry))
	salaries := t.MustColumn(ColSalary)
	thresholds, err := Floats(t.MustColumn(ColSalaryThreshold))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", ColSalaryThreshold, err)
	}
	var groups, roles []string
	if withRole {
		roles = Strings(t.MustColumn(ColRole))
	} else {
		groups = Strings(t.MustColumn(ColIncomeGroup))
	}

	var out []respondent
	for i := 0; i < t.Len(); i++ {
		if isMissing(salaries, i) || countries[i] == "Other" {
			continue
		}
		r := respondent{country: countries[i], threshold: thresholds[i]}
		if withRole {
			r.role = roles[i]
		} else {
			r.incomeGroup = groups[i]
		}
		out = append(out, r)
	}
	return out, nil
}

// SplitByIncomeGroup splits the salary thresholds of t into the
// IncomeGroups series. India is taken out of the lower middle income
// group and the USA out of the high income group. Rows without a
// salary or from country "Other" are dropped.
//
// Income groups are recognized by the leading digit of the
// income_group column: 1 is lower middle, 2 upper middle, 3 high.
func SplitByIncomeGroup(t *table.Table) ([]Series, error) {
	rs, err := respondents(t, false)
	if err != nil {
		return nil, err
	}
	series := make([]Series, len(IncomeGroups))
	for i, name := range IncomeGroups {
		series[i].Name = name
	}
	for _, r := range rs {
		var i int
		switch {
		case r.country == "USA":
			i = 0
		case r.country == "India":
			i = 3
		case strings.HasPrefix(r.incomeGroup, "3"):
			i = 1
		case strings.HasPrefix(r.incomeGroup, "2"):
			i = 2
		case strings.HasPrefix(r.incomeGroup, "1"):
			i = 4
		default:
			continue
		}
		series[i].Values = append(series[i].Values, r.threshold)
	}
	return series, nil
}

// SplitByRole splits the salary thresholds of t into one series per
// entry of Roles, dropping the same rows as SplitByIncomeGroup.
func SplitByRole(t *table.Table) ([]Series, error) {
	rs, err := respondents(t, true)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int, len(Roles))
	series := make([]Series, len(Roles))
	for i, name := range Roles {
		series[i].Name = name
		idx[name] = i
	}
	for _, r := range rs {
		if i, ok := idx[r.role]; ok {
			series[i].Values = append(series[i].Values, r.threshold)
		}
	}
	return series, nil
}

// Strings returns the values of a table column as strings. NaN
// becomes the empty string.
func Strings(col table.Slice) []string {
	if ss, ok := col.([]string); ok {
		return ss
	}
	v := reflect.ValueOf(col)
	out := make([]string, v.Len())
	for i := range out {
		x := v.Index(i).Interface()
		if f, ok := x.(float64); ok && math.IsNaN(f) {
			continue
		}
		out[i] = fmt.Sprint(x)
	}
	return out
}

// Floats returns the values of a numeric table column as float64s.
func Floats(col table.Slice) ([]float64, error) {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return nil, fmt.Errorf("cannot use %T as numbers", col)
	}
	var xs []float64
	slice.Convert(&xs, col)
	return xs, nil
}

func isMissing(col table.Slice, i int) bool {
	switch col := col.(type) {
	case []string:
		return col[i] == ""
	case []float64:
		return math.IsNaN(col[i])
	}
	return false
}
