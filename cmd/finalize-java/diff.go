// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"
	"github.com/spf13/cobra"

	"fillmore-labs.com/finalfields/internal/edit"
	"fillmore-labs.com/finalfields/internal/java"
)

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
	colorCyan  = "\x1b[36m"
)

func (a *app) newDiffCmd() *cobra.Command {
	var noColor, stat bool

	cmd := &cobra.Command{
		Use:   "diff [paths]",
		Short: "Show the changes apply would make",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.analyze(cmd.Context(), args)
			if err != nil {
				return err
			}

			changes, err := edit.Preview(java.Edits(results)...)
			if err != nil {
				return err
			}

			patch, err := unifiedDiff(changes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if stat {
				return writeStat(out, patch)
			}

			if colorEnabled(out, noColor) {
				patch = colorize(patch)
			}

			_, err = io.WriteString(out, patch)

			return err
		},
	}

	cmd.Flags().BoolVar(&noColor, noColorFlagName, false, "disable colored output")
	cmd.Flags().BoolVar(&stat, statFlagName, false, "only print the number of changed lines per file")

	return cmd
}

func unifiedDiff(changes []edit.Change) (string, error) {
	var sb strings.Builder

	for _, c := range changes {
		name := filepath.ToSlash(c.Path)

		ud := difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(c.Old)),
			B:        difflib.SplitLines(string(c.New)),
			FromFile: "a/" + name,
			ToFile:   "b/" + name,
			Context:  3,
		}

		if err := difflib.WriteUnifiedDiff(&sb, ud); err != nil {
			return "", fmt.Errorf("diff %s: %w", c.Path, err)
		}
	}

	return sb.String(), nil
}

func writeStat(w io.Writer, patch string) error {
	if patch == "" {
		return nil
	}

	fileDiffs, err := diff.ParseMultiFileDiff([]byte(patch))
	if err != nil {
		return fmt.Errorf("parse diff: %w", err)
	}

	for _, fd := range fileDiffs {
		s := fd.Stat()
		name := strings.TrimPrefix(fd.NewName, "b/")

		if _, err := fmt.Fprintf(w, "%s | %d changed\n", name, s.Added+s.Changed+s.Deleted); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "%d files changed\n", len(fileDiffs))

	return err
}

func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorize(patch string) string {
	lines := strings.SplitAfter(patch, "\n")

	for i, l := range lines {
		var color string

		switch {
		case strings.HasPrefix(l, "+++"), strings.HasPrefix(l, "---"):
			// file headers
		case strings.HasPrefix(l, "@@"):
			color = colorCyan
		case strings.HasPrefix(l, "+"):
			color = colorGreen
		case strings.HasPrefix(l, "-"):
			color = colorRed
		}

		if color == "" {
			continue
		}

		body, nl := strings.CutSuffix(l, "\n")

		lines[i] = color + body + colorReset
		if nl {
			lines[i] += "\n"
		}
	}

	return strings.Join(lines, "")
}
