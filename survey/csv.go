// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// ReadCSV reads a table from CSV data whose first record is the
// header.
//
// Columns are coerced to the narrowest type that holds every cell:
// []int if every cell is an integer, []float64 if every non-empty
// cell is a number (empty cells become NaN), and []string otherwise.
func ReadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading CSV: no header")
	}
	header, rows := records[0], records[1:]

	seen := make(map[string]bool)
	b := new(table.Builder)
	for c, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("reading CSV: duplicate column %q", name)
		}
		seen[name] = true
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = strings.TrimSpace(row[c])
		}
		b.Add(name, coerce(cells))
	}
	return b.Done(), nil
}

// ReadCSVFile reads a table from the CSV file at path, or from
// standard input if path is "-".
func ReadCSVFile(path string) (*table.Table, error) {
	if path == "-" {
		return ReadCSV(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func coerce(cells []string) table.Slice {
	ints := make([]int, len(cells))
	isInt := len(cells) > 0
	for i, c := range cells {
		v, err := strconv.Atoi(c)
		if err != nil {
			isInt = false
			break
		}
		ints[i] = v
	}
	if isInt {
		return ints
	}

	floats := make([]float64, len(cells))
	nonEmpty := 0
	for i, c := range cells {
		if c == "" {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return cells
		}
		floats[i] = v
		nonEmpty++
	}
	if nonEmpty == 0 {
		return cells
	}
	return floats
}
