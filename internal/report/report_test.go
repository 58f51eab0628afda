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

package report_test

import (
	"go/types"
	"testing"

	"fillmore-labs.com/finalfields/internal/gohost"
	. "fillmore-labs.com/finalfields/internal/report"
	"fillmore-labs.com/finalfields/internal/testsource"
)

func TestConcatNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"One", []string{"a"}, "'a'"},
		{"Two", []string{"a", "b"}, "'a' and 'b'"},
		{"Three", []string{"a", "b", "c"}, "'a', 'b' and 'c'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConcatNames(tt.names); got != tt.want {
				t.Errorf("Got ConcatNames() = %q, want %q", got, tt.want)
			}
		})
	}
}

const src = `package test

type account struct {
	id    int
	count int
}

func (a *account) update() {
	a.id = 1
	a.count++
	_ = &a.id
}
`

func TestViolationMessage(t *testing.T) {
	t.Parallel()

	fset, pkg, info, in := testsource.Load(t, src)
	idx := gohost.NewIndex(t.Context(), fset, pkg, info, in)

	owner, ok := pkg.Scope().Lookup("account").(*types.TypeName)
	if !ok {
		t.Fatal("account not found")
	}

	want := []string{
		"Assignment to final field 'account.id' outside of a constructor",
		"Final field 'account.count' modified outside of a constructor",
		"Address of final field 'account.id' taken outside of a constructor",
	}

	sites := idx.Sites()
	if len(sites) != len(want) {
		t.Fatalf("Got %d sites, want %d", len(sites), len(want))
	}

	for i, s := range sites {
		if got := ViolationMessage(s, owner); got != want[i] {
			t.Errorf("Got ViolationMessage() = %q, want %q", got, want[i])
		}
	}

	if got, want := ViolationMessage(sites[0], nil), "Assignment to final field 'id' outside of a constructor"; got != want {
		t.Errorf("Got ViolationMessage() = %q, want %q", got, want)
	}
}
