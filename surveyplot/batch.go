// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "batch script",
		Short: "Run surveyplot commands from a script",
		Long: `Batch runs one surveyplot command per line of script. Lines are
split like a shell would split them. Blank lines and lines starting
with # are ignored. A script of "-" is read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var r io.Reader = cmd.InOrStdin()
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			lines, err := readScript(r)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			l := loggerFromContext(cmd.Context())
			p := newProgress(l)
			failed := 0
			for _, line := range lines {
				l.Debug("running", "line", line.num, "args", line.args)
				sub := newRootCmd()
				sub.SetArgs(line.args)
				sub.SetIn(cmd.InOrStdin())
				sub.SetOut(cmd.OutOrStdout())
				sub.SetErr(cmd.ErrOrStderr())
				if err := sub.ExecuteContext(cmd.Context()); err != nil {
					err = fmt.Errorf("%s:%d: %w", path, line.num, err)
					if !keepGoing {
						return err
					}
					l.Error(err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d commands failed", failed, len(lines))
			}
			p.done("ran script", "script", path, "commands", len(lines))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "continue after a failed command")
	return cmd
}

type scriptLine struct {
	num  int
	args []string
}

// readScript splits the commands of a batch script into arguments.
func readScript(r io.Reader) ([]scriptLine, error) {
	var lines []scriptLine
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args, err := shellquote.Split(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", num, err)
		}
		if len(args) > 0 && args[0] == "batch" {
			return nil, fmt.Errorf("line %d: batch scripts cannot run batch", num)
		}
		lines = append(lines, scriptLine{num, args})
	}
	return lines, scanner.Err()
}
