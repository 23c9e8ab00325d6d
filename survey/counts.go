// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/facette/natsort"
)

// A Distribution is a value per category label.
type Distribution struct {
	Labels []string
	Values []float64
}

// Len returns the number of categories in d.
func (d Distribution) Len() int {
	return len(d.Labels)
}

// Get returns the value of label and whether d has it.
func (d Distribution) Get(label string) (float64, bool) {
	for i, l := range d.Labels {
		if l == label {
			return d.Values[i], true
		}
	}
	return 0, false
}

// Table returns d as a two column table.
func (d Distribution) Table(labelCol, valueCol string) *table.Table {
	return new(table.Builder).
		Add(labelCol, append([]string(nil), d.Labels...)).
		Add(valueCol, append([]float64(nil), d.Values...)).
		Done()
}

// NaturalLess reports whether a sorts before b when runs of digits
// are compared by their numeric value, so "5000-7499" sorts before
// "10000-14999".
func NaturalLess(a, b string) bool {
	if a == b {
		return false
	}
	return natsort.Compare(a, b)
}

// NaturalSort sorts labels in natural order.
func NaturalSort(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return NaturalLess(labels[i], labels[j])
	})
}

// ValueCounts counts the distinct non-empty values of vals. Labels
// are in natural order. If normalize is set the counts are converted
// to percentages of the total and rounded to two decimals.
func ValueCounts(vals []string, normalize bool) Distribution {
	counts := make(map[string]float64)
	var labels []string
	total := 0.0
	for _, v := range vals {
		if v == "" {
			continue
		}
		if _, ok := counts[v]; !ok {
			labels = append(labels, v)
		}
		counts[v]++
		total++
	}
	NaturalSort(labels)
	d := Distribution{Labels: labels, Values: make([]float64, len(labels))}
	for i, l := range labels {
		d.Values[i] = counts[l]
		if normalize {
			d.Values[i] = round2(100 * counts[l] / total)
		}
	}
	return d
}

// Reverse returns d with its categories in reverse order.
func (d Distribution) Reverse() Distribution {
	n := d.Len()
	r := Distribution{Labels: make([]string, n), Values: make([]float64, n)}
	for i := range d.Labels {
		r.Labels[n-1-i], r.Values[n-1-i] = d.Labels[i], d.Values[i]
	}
	return r
}

// ColumnValueCounts is ValueCounts over a column of t.
func ColumnValueCounts(t *table.Table, col string, normalize bool) (Distribution, error) {
	if t.Column(col) == nil {
		return Distribution{}, &MissingColumnError{col}
	}
	return ValueCounts(Strings(t.MustColumn(col)), normalize), nil
}

// AgeBinWidth is the width in years of the standard age bins. Other
// bins are adjusted to this width.
const AgeBinWidth = 5

// openBinWidth is the assumed width of an open ended bin like "70+".
const openBinWidth = 10

// BinWidth returns the number of years an age bin label such as
// "18-21" or "70+" covers.
func BinWidth(label string) (float64, bool) {
	if strings.HasSuffix(label, "+") {
		if _, err := strconv.Atoi(strings.TrimSuffix(label, "+")); err != nil {
			return 0, false
		}
		return openBinWidth, true
	}
	i := strings.IndexByte(label, '-')
	if i < 0 {
		return 0, false
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(label[:i]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(label[i+1:]))
	if err1 != nil || err2 != nil || hi < lo {
		return 0, false
	}
	return float64(hi - lo + 1), true
}

// AgeDistributions holds three views of the answers to the age
// question.
type AgeDistributions struct {
	// Default is the share of respondents per bin, in percent.
	Default Distribution

	// Adjusted is the share per bin after scaling every bin's count
	// to AgeBinWidth years, in percent.
	Adjusted Distribution

	// Average is the mean number of respondents per year of age in
	// each bin.
	Average Distribution
}

// AgeDistribution computes the age distributions of the age column
// of t. Bins whose width cannot be parsed are counted as
// AgeBinWidth years wide.
func AgeDistribution(t *table.Table) (AgeDistributions, error) {
	counts, err := ColumnValueCounts(t, ColAge, false)
	if err != nil {
		return AgeDistributions{}, err
	}
	total := 0.0
	for _, c := range counts.Values {
		total += c
	}

	n := counts.Len()
	ds := AgeDistributions{
		Default:  Distribution{counts.Labels, make([]float64, n)},
		Adjusted: Distribution{append([]string(nil), counts.Labels...), make([]float64, n)},
		Average:  Distribution{append([]string(nil), counts.Labels...), make([]float64, n)},
	}
	adjTotal := 0.0
	for i, l := range counts.Labels {
		w, ok := BinWidth(l)
		if !ok {
			w = AgeBinWidth
		}
		c := counts.Values[i]
		ds.Default.Values[i] = round2(100 * c / total)
		ds.Adjusted.Values[i] = c * AgeBinWidth / w
		ds.Average.Values[i] = round2(c / w)
		adjTotal += ds.Adjusted.Values[i]
	}
	for i, v := range ds.Adjusted.Values {
		ds.Adjusted.Values[i] = round2(100 * v / adjTotal)
	}
	return ds, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
