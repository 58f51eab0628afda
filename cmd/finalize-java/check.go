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
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/finalfields/internal/java"
)

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths]",
		Short: "List fields that can be made final",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.analyze(cmd.Context(), args)
			if err != nil {
				return err
			}

			if a.settings.Format == "yaml" {
				return renderYAML(cmd.OutOrStdout(), results)
			}

			_, err = io.WriteString(cmd.OutOrStdout(), renderTable(results))

			return err
		},
	}

	cmd.Flags().String(formatFlagName, "table", "output format (table, yaml)")
	cobra.CheckErr(a.v.BindPFlag(formatFlagName, cmd.Flags().Lookup(formatFlagName)))

	return cmd
}

func renderTable(results []java.Result) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class", "Field", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	count := 0

	for _, r := range results {
		for _, f := range r.Fields {
			table.Append([]string{r.Class.QualifiedName(), f.Name, location(r.Class.File.Path, f.Line)})

			count++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Total Classes %d", len(results)), strconv.Itoa(count), ""})

	table.Render()

	return tableBuffer.String()
}

func location(path string, line int) string {
	return filepath.ToSlash(path) + ":" + strconv.Itoa(line)
}

type classReport struct {
	Class  string        `yaml:"class"`
	File   string        `yaml:"file"`
	Fields []fieldReport `yaml:"fields"`
}

type fieldReport struct {
	Name string `yaml:"name"`
	Line int    `yaml:"line"`
}

func renderYAML(w io.Writer, results []java.Result) error {
	reports := make([]classReport, 0, len(results))

	for _, r := range results {
		cr := classReport{Class: r.Class.QualifiedName(), File: filepath.ToSlash(r.Class.File.Path)}
		for _, f := range r.Fields {
			cr.Fields = append(cr.Fields, fieldReport{Name: f.Name, Line: f.Line})
		}

		reports = append(reports, cr)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(reports); err != nil {
		return err
	}

	return enc.Close()
}
