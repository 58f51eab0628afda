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

// Package gohost presents Go struct types to the finality analysis.
//
// Each named struct type is analyzed on its own. Its constructors are the package-level
// functions returning the type or a pointer to it.
//
// A field is written by assignment, increment or decrement, range assignment, or by taking
// its address. Writing a field also writes the value fields enclosing it, and a write through
// a pointer to a struct writes all of its fields. Composite literals initialize and are not
// writes.
package gohost
