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

package java

import (
	"context"
	"log/slog"

	"fillmore-labs.com/finalfields/internal/edit"
	"fillmore-labs.com/finalfields/internal/finality"
)

// DefaultMockAnnotations are the annotations of fields set by a mocking framework.
var DefaultMockAnnotations = []string{"Mock", "org.mockito.Mock"}

// Config configures [Project.Analyze].
type Config struct {
	// Options are passed to [finality.Select].
	Options finality.Options

	// MockAnnotations exempt fields when [finality.Options.HonorMockAnnotation] is set.
	MockAnnotations []string

	// Class restricts the analysis to the named classes.
	Class string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Options: finality.DefaultOptions(), MockAnnotations: DefaultMockAnnotations}
}

// LogValue implements [slog.LogValuer].
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("options", c.Options),
		slog.Any("mocks", c.MockAnnotations),
		slog.String("class", c.Class),
	)
}

// Result are the fields of a class that can be marked final. A field sharing its declaration
// with a field that can not is left out, since the modifier applies to the whole declaration.
type Result struct {
	Class  *Class
	Fields []*Field
}

// Analyze selects the fields that can be marked final, per editable class.
// An unknown [Config.Class] returns an error wrapping [ErrClassNotFound].
func (p *Project) Analyze(ctx context.Context, cfg Config) ([]Result, error) {
	classes := p.classes

	if cfg.Class != "" {
		var err error
		if classes, err = p.Class(cfg.Class); err != nil {
			return nil, err
		}
	}

	var results []Result

	for _, c := range classes {
		if c.File.ReadOnly {
			continue
		}

		fields := editable(finality.Select[*Field](p.Host(c, cfg.MockAnnotations), cfg.Options))

		slog.DebugContext(ctx, "class analyzed", slog.String("class", c.QualifiedName()), slog.Int("eligible", len(fields)))

		if len(fields) > 0 {
			results = append(results, Result{Class: c, Fields: fields})
		}
	}

	return results, nil
}

// Edits returns the edits inserting the final modifier for the selected fields. A declaration
// of several fields is only edited when all of them are selected, and each declaration at most once.
func Edits(results []Result) []edit.Edit {
	selected := make(map[*Field]struct{})
	for _, r := range results {
		for _, f := range r.Fields {
			selected[f] = struct{}{}
		}
	}

	var (
		edits []edit.Edit
		done  = make(map[*Declaration]struct{})
	)

	for _, r := range results {
		for _, f := range r.Fields {
			d := f.Decl
			if d == nil || f.Final || f.Class.File.ReadOnly {
				continue
			}

			if _, ok := done[d]; ok {
				continue
			}

			done[d] = struct{}{}

			if allSelected(d.Fields, selected) {
				edits = append(edits, edit.Insert(f.Class.File.Path, d.TypeOffset, "final "))
			}
		}
	}

	return edits
}

func allSelected(fields []*Field, selected map[*Field]struct{}) bool {
	for _, f := range fields {
		if _, ok := selected[f]; !ok {
			return false
		}
	}

	return true
}

// editable keeps the fields whose declarations are selected as a whole.
func editable(fields []*Field) []*Field {
	selected := make(map[*Field]struct{}, len(fields))
	for _, f := range fields {
		selected[f] = struct{}{}
	}

	result := fields[:0]

	for _, f := range fields {
		if f.Decl != nil && allSelected(f.Decl.Fields, selected) {
			result = append(result, f)
		}
	}

	return result
}
