// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/finalfields/internal/astutil"
	"fillmore-labs.com/finalfields/internal/gohost"
)

// Marked keeps track of field declarations that received an edit in this pass, so that a
// field promoted into several structs is marked once.
type Marked map[*ast.Field]struct{}

// Candidates reports the fields of a struct that can be marked final.
//
// A single diagnostic is reported at the type name, with one suggested fix containing the
// edits for all fields, so the change applies (and reverts) as one unit. Only fields the fix
// marks are named: a field sharing its declaration with a field that is not eligible, or
// followed by another field on the same line, is left out. Nothing is reported when no field
// remains.
func Candidates(ctx context.Context, p *analysis.Pass, idx *gohost.Index, st *gohost.Struct, fields []*types.Var, marked Marked) {
	if len(fields) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ReportCandidates").End()

	edits := createEdits(p, idx, st, fields, marked)

	names := make([]string, 0, len(fields))

	for _, v := range fields {
		if f := idx.Field(v); f != nil {
			if _, ok := marked[f.Decl]; ok {
				names = append(names, v.Name())
			}
		}
	}

	if len(names) == 0 {
		return
	}

	format := "Field %s of '%s' can be marked final"
	if len(names) > 1 {
		format = "Fields %s of '%s' can be marked final"
	}

	message := fmt.Sprintf(format, concatNames(names), st.Name.Name())

	diagnostic := analysis.Diagnostic{
		Pos:     st.Spec.Name.Pos(),
		End:     st.Spec.Name.End(),
		Message: message,
	}

	if len(edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: "Mark fields final", TextEdits: edits}}
	}

	p.Report(diagnostic)
}

// createEdits appends a final marker to each field declaration and records it in marked.
// A declaration naming several fields is only marked when all of them are eligible.
func createEdits(p *analysis.Pass, idx *gohost.Index, st *gohost.Struct, fields []*types.Var, marked Marked) []analysis.TextEdit {
	eligible := make(map[*types.Var]struct{}, len(fields))
	for _, v := range fields {
		eligible[v] = struct{}{}
	}

	var edits []analysis.TextEdit

	for _, v := range fields {
		f := idx.Field(v)
		if f == nil {
			astutil.InternalError(p, st.Spec.Name, "eligible field %s of %s has no declaration", v.Name(), st.Name.Name())

			continue
		}

		if f.Marked {
			continue
		}

		if _, ok := marked[f.Decl]; ok {
			continue
		}

		if !allEligible(idx, f.Owner, f.Decl, eligible) || !endsLine(p.Fset, f.Owner, f.Decl) {
			continue
		}

		marked[f.Decl] = struct{}{}

		edits = append(edits, analysis.TextEdit{
			Pos:     f.Decl.End(),
			End:     f.Decl.End(),
			NewText: []byte(" " + astutil.FinalMarker),
		})
	}

	return edits
}

func allEligible(idx *gohost.Index, owner *gohost.Struct, decl *ast.Field, eligible map[*types.Var]struct{}) bool {
	ts, ok := owner.Name.Type().Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for i := range ts.NumFields() {
		v := ts.Field(i)
		if f := idx.Field(v); f == nil || f.Decl != decl {
			continue
		}

		if _, ok := eligible[v]; !ok {
			return false
		}
	}

	return true
}

// endsLine reports whether nothing but a comment follows the field declaration on its line,
// so that a line comment can be appended.
func endsLine(fset *token.FileSet, owner *gohost.Struct, decl *ast.Field) bool {
	next := owner.Type.Fields.Closing

	list := owner.Type.Fields.List
	for i, f := range list {
		if f == decl && i+1 < len(list) {
			next = list[i+1].Pos()
			if doc := list[i+1].Doc; doc != nil {
				next = doc.Pos()
			}

			break
		}
	}

	return fset.Position(decl.End()).Line != fset.Position(next).Line
}

// concatNames formats a list of field names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
