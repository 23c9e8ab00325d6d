// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/kagglelib/surveyplot/plots"
	"github.com/kagglelib/surveyplot/survey"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

var errTerminal = errors.New("refusing to write SVG to a terminal; use -o")

// load reads the CSV file at path.
func (e *env) load(cmd *cobra.Command, path string) (*table.Table, error) {
	l := loggerFromContext(cmd.Context())
	t, err := survey.ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	l.Debug("read table", "file", path, "rows", t.Len(), "columns", len(t.Columns()))
	return t, nil
}

// output opens the destination of a command. The caller must call
// the returned close function.
func (e *env) openOutput(cmd *cobra.Command, svg bool) (io.Writer, func() error, error) {
	if e.output != "" {
		f, err := os.Create(e.output)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
	w := cmd.OutOrStdout()
	if f, ok := w.(*os.File); ok && svg && terminal.IsTerminal(int(f.Fd())) {
		return nil, nil, errTerminal
	}
	return w, func() error { return nil }, nil
}

// printTable writes t as text.
func (e *env) printTable(cmd *cobra.Command, t *table.Table) error {
	w, closeOut, err := e.openOutput(cmd, false)
	if err != nil {
		return err
	}
	if err := table.Fprint(w, t); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

// write renders c as SVG.
func (e *env) write(cmd *cobra.Command, name string, c plots.Chart, p *progress) error {
	w, closeOut, err := e.openOutput(cmd, true)
	if err != nil {
		return err
	}
	if err := c.WriteSVG(w); err != nil {
		closeOut()
		return fmt.Errorf("writing %s chart: %w", name, err)
	}
	if err := closeOut(); err != nil {
		return err
	}
	dest := e.output
	if dest == "" {
		dest = "stdout"
	}
	p.done("wrote chart", "plot", name, "output", dest)
	return nil
}
