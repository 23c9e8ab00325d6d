// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package survey knows the layout of the Kaggle salary and
// demographics survey: salary brackets, job roles, income groups and
// age bins. It turns raw survey tables into the series and
// distributions that the plots package draws.
package survey

import "sort"

// A Bracket is one answer to the yearly compensation question.
// Threshold is the upper bound of the bracket in US dollars and is
// what numeric salary columns hold.
type Bracket struct {
	Label     string
	Threshold float64
}

// SalaryBrackets lists the compensation brackets in increasing order.
var SalaryBrackets = []Bracket{
	{"0-999", 999},
	{"1000-1999", 1999},
	{"2000-2999", 2999},
	{"3000-3999", 3999},
	{"4000-4999", 4999},
	{"5000-7499", 7499},
	{"7500-9999", 9999},
	{"10000-14999", 14999},
	{"15000-19999", 19999},
	{"20000-24999", 24999},
	{"25000-29999", 29999},
	{"30000-39999", 39999},
	{"40000-49999", 49999},
	{"50000-59999", 59999},
	{"60000-69999", 69999},
	{"70000-79999", 79999},
	{"80000-89999", 89999},
	{"90000-99999", 99999},
	{"100000-124999", 124999},
	{"125000-149999", 149999},
	{"150000-199999", 199999},
	{"200000-249999", 249999},
	{"250000-299999", 299999},
	{"300000-500000", 500000},
	{"500000-999999", 999999},
}

// SalaryThresholds returns a new map from bracket label to threshold.
func SalaryThresholds() map[string]float64 {
	m := make(map[string]float64, len(SalaryBrackets))
	for _, b := range SalaryBrackets {
		m[b.Label] = b.Threshold
	}
	return m
}

// ReverseSalaryThresholds returns a new map from threshold to
// bracket label. It is suitable as an annotation mapping for bars
// whose length is a salary threshold.
func ReverseSalaryThresholds() map[float64]string {
	m := make(map[float64]string, len(SalaryBrackets))
	for _, b := range SalaryBrackets {
		m[b.Threshold] = b.Label
	}
	return m
}

// SortedThresholds returns the bracket thresholds in increasing
// order.
func SortedThresholds() []float64 {
	xs := make([]float64, len(SalaryBrackets))
	for i, b := range SalaryBrackets {
		xs[i] = b.Threshold
	}
	sort.Float64s(xs)
	return xs
}
