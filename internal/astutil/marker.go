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

package astutil

import (
	"go/ast"
	"strings"
)

// FinalMarker is the line comment marking a struct field as final.
const FinalMarker = "//@final"

// IsFinalMarker reports whether the comment is a final marker.
// Both `//@final` and `// @final` are accepted, optionally followed by more text.
func IsFinalMarker(comment *ast.Comment) bool {
	text, ok := strings.CutPrefix(comment.Text, "//")
	if !ok {
		return false
	}

	rest, ok := strings.CutPrefix(strings.TrimLeft(text, " \t"), "@final")
	if !ok {
		return false
	}

	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// HasFinalMarker reports whether the field's doc or line comment carries a final marker.
func HasFinalMarker(field *ast.Field) bool {
	return groupHasFinalMarker(field.Doc) || groupHasFinalMarker(field.Comment)
}

func groupHasFinalMarker(group *ast.CommentGroup) bool {
	if group == nil {
		return false
	}

	for _, c := range group.List {
		if IsFinalMarker(c) {
			return true
		}
	}

	return false
}
