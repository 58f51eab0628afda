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

// Package analyzer implements the finalfields static analysis pass.
//
// # Overview
//
// FinalFields detects struct fields that are only assigned while the value is
// constructed and suggests marking them with a //@final comment. Marked fields are
// enforced: any later write is reported.
//
// # Example
//
// Before:
//
//	type point struct {
//	    x, y int
//	}
//
//	func newPoint(x, y int) *point {
//	    return &point{x: x, y: y}
//	}
//
// After applying finalfields' suggested fix:
//
//	type point struct {
//	    x, y int //@final
//	}
//
// # Constructors
//
// A constructor of T is a package level function returning T or *T. Writes inside
// constructors, including composite literals, never disqualify a field. Writes inside
// methods, function literals or other functions do.
//
// # Exemptions
//
//   - Exported fields of importable packages, unless -exported is set
//   - Fields tagged for injection (see -inject-tags), unless -honor-inject=false
//   - Fields declared in generated files, unless -generated is set
//   - Declarations with a //nolint:finalfields comment
//
// With -halt a struct is not examined past its first non-editable or injected field.
package analyzer
