// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/kagglelib/surveyplot/plots"
	"github.com/kagglelib/surveyplot/survey"
	"github.com/spf13/cobra"
)

// barFlags binds the flags of bar charts to opts.
func barFlags(cmd *cobra.Command, opts *plots.Options) {
	f := cmd.Flags()
	f.StringVar(&opts.Format, "format", "", "fmt `verb` for bar labels (e.g. %.1f)")
	f.Float64Var(&opts.BarWidth, "bar-width", 0, "resize bars to this `width` in category units")
	f.Float64Var(&opts.XTickRotation, "xrot", 0, "rotate x tick labels by `degrees`")
	f.Float64Var(&opts.YTickRotation, "yrot", 0, "rotate y tick labels by `degrees`")
}

// densityFlags binds the flags of density charts to opts.
func densityFlags(cmd *cobra.Command, opts *plots.Options) {
	f := cmd.Flags()
	f.BoolVar(&opts.LogScale, "log", true, "estimate densities over log10 of the salary")
	f.Float64SliceVar(&opts.BandwidthAdjust, "bw-adjust", nil, "bandwidth adjustment per series")
}

// run loads the inputs of a command, prints them if --table was
// given, and otherwise builds and writes a chart.
func (e *env) run(cmd *cobra.Command, name string, paths []string, build func([]*table.Table) (plots.Chart, error)) error {
	l := loggerFromContext(cmd.Context())
	p := newProgress(l)
	tabs := make([]*table.Table, len(paths))
	for i, path := range paths {
		t, err := e.load(cmd, path)
		if err != nil {
			return err
		}
		tabs[i] = t
	}
	if e.table {
		for _, t := range tabs {
			if err := e.printTable(cmd, t); err != nil {
				return err
			}
		}
		return nil
	}

	l.Debug("building chart", "plot", name, "inputs", len(tabs))
	c, err := build(tabs)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return e.write(cmd, name, c, p)
}

func newCompareCmd(e *env) *cobra.Command {
	var salaryLabels bool
	cmd := &cobra.Command{
		Use:   "compare file.csv",
		Short: "Compare value counts of a stacked table as grouped bars",
		Long: `Compare draws a grouped bar chart of a stacked table. The first
column holds the categories, the second the dataset and the last the
values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := e.opts
			if salaryLabels {
				opts.AnnotationMapping = survey.ReverseSalaryThresholds()
			}
			return e.run(cmd, "compare", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.ValueCountComparison(nil, ts[0], opts)
			})
		},
	}
	barFlags(cmd, &e.opts)
	f := cmd.Flags()
	f.StringVar(&e.opts.Orientation, "orientation", "vertical", "bar orientation: vertical, horizontal, v or h")
	f.StringVar(&e.opts.LegendLocation, "legend", "best", "legend location, or none")
	f.BoolVar(&e.opts.KeepOrder, "keep-order", false, "keep categories in table order")
	f.BoolVar(&salaryLabels, "salary-labels", false, "label bars with salary brackets")
	return cmd
}

func newParticipantsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "participants participants.csv medians.csv",
		Short: "Compare the number of participants with their median salary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, "participants", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.ParticipantsVsMedianSalary(ts[0], ts[1], e.opts)
			})
		},
	}
}

func newMediansCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medians file.csv",
		Short: "Draw median salaries per country",
		Long: `Medians draws the median salary per country for the filtered and
unfiltered datasets. The table needs country, salary and variable
columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, "medians", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.SalaryMedians(ts[0], e.opts)
			})
		},
	}
	cmd.Flags().StringVar(&e.opts.LegendLocation, "legend", "best", "legend location, or none")
	return cmd
}

func newAgeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "age file.csv",
		Short: "Draw the age distribution three ways",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, "age", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.AgeDistribution(ts[0], e.opts)
			})
		},
	}
	barFlags(cmd, &e.opts)
	return cmd
}

func newGlobalSalaryCmd(e *env) *cobra.Command {
	var xlim1, xlim2 []float64
	cmd := &cobra.Command{
		Use:   "global-salary unfiltered.csv filtered.csv",
		Short: "Compare the salary distributions of two datasets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := e.opts
			var err error
			if opts.XLimit1, err = parseLimits(xlim1); err != nil {
				return err
			}
			if opts.XLimit2, err = parseLimits(xlim2); err != nil {
				return err
			}
			return e.run(cmd, "global-salary", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.GlobalSalaryDistributionComparison(ts[0], ts[1], opts)
			})
		},
	}
	barFlags(cmd, &e.opts)
	f := cmd.Flags()
	f.Float64SliceVar(&xlim1, "xlim1", nil, "value axis `lo,hi` of the first panel")
	f.Float64SliceVar(&xlim2, "xlim2", nil, "value axis `lo,hi` of the second panel")
	f.StringSliceVar(&e.opts.Labels, "labels", nil, "panel labels")
	return cmd
}

func newSalaryComparisonCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary-comparison file.csv",
		Short: "Draw one salary distribution panel per column of a wide table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, "salary-comparison", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.SalaryDistributionComparison(ts[0], e.opts)
			})
		},
	}
	barFlags(cmd, &e.opts)
	return cmd
}

func newPDEIncomeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pde-income file.csv",
		Short: "Draw salary densities per income group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, "pde-income", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.SalaryPDEPerIncomeGroup(ts[0], e.opts)
			})
		},
	}
	densityFlags(cmd, &e.opts)
	return cmd
}

func newPDERoleCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pde-role file.csv",
		Short: "Draw salary densities per job role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, "pde-role", args, func(ts []*table.Table) (plots.Chart, error) {
				return plots.SalaryPDEPerRole(ts[0], e.opts)
			})
		},
	}
	densityFlags(cmd, &e.opts)
	return cmd
}

func newPDECompareCmd(e *env) *cobra.Command {
	var byRole bool
	cmd := &cobra.Command{
		Use:   "pde-compare file.csv",
		Short: "Draw fixed bandwidth salary densities at the bracket thresholds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, "pde-compare", args, func(ts []*table.Table) (plots.Chart, error) {
				split := survey.SplitByIncomeGroup
				if byRole {
					split = survey.SplitByRole
				}
				series, err := split(ts[0])
				if err != nil {
					return nil, err
				}
				return plots.PDEComparison(series, e.opts)
			})
		},
	}
	f := cmd.Flags()
	f.BoolVar(&e.opts.LogScale, "log", true, "plot on a log10 salary axis")
	f.Float64Var(&e.opts.Bandwidth, "bandwidth", 10, "kernel bandwidth in dollars")
	f.BoolVar(&byRole, "by-role", false, "compare job roles instead of income groups")
	return cmd
}

func newCountsCmd(e *env) *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "counts file.csv column",
		Short: "Print the value counts of a column in natural order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := e.load(cmd, args[0])
			if err != nil {
				return err
			}
			d, err := survey.ColumnValueCounts(t, args[1], normalize)
			if err != nil {
				return err
			}
			valueCol := "count"
			if normalize {
				valueCol = "percentage"
			}
			loggerFromContext(cmd.Context()).Debug("counted values", "column", args[1], "distinct", d.Len())
			return e.printTable(cmd, d.Table(args[1], valueCol))
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "print percentages instead of counts")
	return cmd
}

// parseLimits parses a "lo,hi" flag value. No value selects the
// default limits.
func parseLimits(xs []float64) (plots.Limits, error) {
	switch len(xs) {
	case 0:
		return plots.Limits{}, nil
	case 2:
		if xs[0] >= xs[1] {
			return plots.Limits{}, fmt.Errorf("axis limits %v..%v are empty", xs[0], xs[1])
		}
		return plots.Limits{Lo: xs[0], Hi: xs[1]}, nil
	}
	return plots.Limits{}, fmt.Errorf("axis limits need two values; got %d", len(xs))
}
