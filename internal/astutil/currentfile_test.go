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

package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/finalfields/internal/astutil"
	"fillmore-labs.com/finalfields/internal/testsource"
)

func TestNoLintType(t *testing.T) {
	t.Parallel()

	const src = `package test

//nolint:finalfields
type quiet struct{ a int }

type (
	//nolint:all
	grouped struct{ b int }

	loud struct{ c int }
)

type inline struct { //nolint:finalfields
	d int
}

// documented is reported.
type documented struct{ e int }
`

	fset, f := testsource.Parse(t, src)
	cf := NewCurrentFile(fset, f)

	if cf.NoLint() {
		t.Error("NoLint() = true for a file without directive")
	}

	want := map[string]bool{
		"quiet":      true,
		"grouped":    true,
		"loud":       false,
		"inline":     true,
		"documented": false,
	}

	for _, d := range f.Decls {
		decl, ok := d.(*ast.GenDecl)
		if !ok {
			continue
		}

		for _, s := range decl.Specs {
			spec := s.(*ast.TypeSpec)

			if got := cf.NoLintType(decl, spec); got != want[spec.Name.Name] {
				t.Errorf("NoLintType(%s) = %v, want %v", spec.Name.Name, got, want[spec.Name.Name])
			}
		}
	}
}

func TestDocHasNoLint(t *testing.T) {
	t.Parallel()

	if DocHasNoLint(nil) {
		t.Error("DocHasNoLint(nil) = true")
	}

	doc := &ast.CommentGroup{List: []*ast.Comment{{Text: "// Package p."}, {Text: "//nolint:finalfields"}}}
	if !DocHasNoLint(doc) {
		t.Error("DocHasNoLint() = false for a trailing directive")
	}

	doc = &ast.CommentGroup{List: []*ast.Comment{{Text: "//nolint:finalfields"}, {Text: "// Package p."}}}
	if DocHasNoLint(doc) {
		t.Error("DocHasNoLint() = true for a leading directive")
	}
}
