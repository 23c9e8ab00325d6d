// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command surveyplot draws charts of Kaggle survey data.
//
// Each subcommand reads one or more CSV files, builds a chart and
// writes it as SVG to the file given by -o or to standard output.
// With --table, the input table is printed instead of a chart.
//
//	surveyplot compare -o years.svg --width 12 --height 8 years.csv
//	surveyplot pde-income --log salaries.csv > pde.svg
//	surveyplot counts --normalize survey.csv age
//	surveyplot batch charts.txt
//
// Font sizes can be overridden with a TOML file passed to --style:
//
//	"font.size" = 16
//	[axes]
//	titlesize = 26
package main

import (
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		newLogger(os.Stderr, false).Error(err)
		os.Exit(1)
	}
}
