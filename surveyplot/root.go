// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kagglelib/surveyplot/fontmetrics"
	"github.com/kagglelib/surveyplot/plots"
	"github.com/kagglelib/surveyplot/style"
	"github.com/spf13/cobra"
)

// env holds the flags shared by all subcommands.
type env struct {
	verbose   bool
	stylePath string
	output    string
	table     bool
	font      string
	palette   []string

	opts plots.Options
}

func newRootCmd() *cobra.Command {
	e := new(env)
	root := &cobra.Command{
		Use:           "surveyplot",
		Short:         "Draw charts of Kaggle survey data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger(cmd.ErrOrStderr(), e.verbose)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, l))
			return e.setup(l)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&e.stylePath, "style", "", "read font size overrides from TOML `file`")
	pf.StringVarP(&e.output, "output", "o", "", "write output to `file` (default: stdout)")
	pf.BoolVar(&e.table, "table", false, "print the input table instead of a chart")
	pf.StringVar(&e.font, "font", "go", "text metrics: go or approx")
	pf.StringSliceVar(&e.palette, "palette", nil, "color series with these CSS color `names`")
	pf.Float64Var(&e.opts.Width, "width", 0, "figure width in inches")
	pf.Float64Var(&e.opts.Height, "height", 0, "figure height in inches")
	pf.StringVar(&e.opts.Title, "title", "", "chart title")
	pf.IntVar(&e.opts.TitleWrapLength, "title-wrap", 0, "wrap the title at `n` characters")

	root.AddCommand(
		newCompareCmd(e),
		newParticipantsCmd(e),
		newMediansCmd(e),
		newAgeCmd(e),
		newGlobalSalaryCmd(e),
		newSalaryComparisonCmd(e),
		newPDEIncomeCmd(e),
		newPDERoleCmd(e),
		newPDECompareCmd(e),
		newCountsCmd(e),
		newBatchCmd(),
	)
	return root
}

// setup loads the style overrides and text metrics.
func (e *env) setup(l *log.Logger) error {
	if e.stylePath != "" {
		f, err := os.Open(e.stylePath)
		if err != nil {
			return err
		}
		defer f.Close()
		st, err := style.Load(f)
		if err != nil {
			return fmt.Errorf("%s: %w", e.stylePath, err)
		}
		e.opts.Style = st
		l.Debug("loaded style", "file", e.stylePath, "options", st.Keys())
	}

	if len(e.palette) > 0 {
		pal := make([]color.Color, len(e.palette))
		for i, name := range e.palette {
			c, ok := style.Named(name)
			if !ok {
				return fmt.Errorf("unknown color %q", name)
			}
			pal[i] = c
		}
		e.opts.Palette = pal
	}

	switch e.font {
	case "go":
		g, err := fontmetrics.NewGoFont()
		if err != nil {
			return err
		}
		e.opts.Metrics = g
	case "approx":
		e.opts.Metrics = fontmetrics.Approx{}
	default:
		return fmt.Errorf("unknown font %q; want go or approx", e.font)
	}
	return nil
}
