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

package finality_test

import (
	"iter"
	"slices"
	"testing"

	. "fillmore-labs.com/finalfields/internal/finality"
)

type field struct {
	name      string
	inherited bool
	readOnly  bool
	enum      bool
	mock      bool
	final     bool
	sites     []Site
}

type class []*field

func (c class) Fields(inherited bool) iter.Seq[*field] {
	return func(yield func(*field) bool) {
		for _, f := range c {
			if f.inherited && !inherited {
				continue
			}

			if !yield(f) {
				return
			}
		}
	}
}

func (class) Sites(f *field) []Site { return f.sites }
func (class) Editable(f *field) bool { return !f.readOnly }
func (class) EnumConstant(f *field) bool { return f.enum }
func (class) Annotated(f *field) bool { return f.mock }
func (class) Final(f *field) bool { return f.final }

var (
	ctor  = Site{InConstructor: true}
	other = Site{InConstructor: false}
)

func names(fields []*field) []string {
	n := make([]string, 0, len(fields))
	for _, f := range fields {
		n = append(n, f.name)
	}

	return n
}

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class class
		opts  Options
		want  []string
	}{
		{
			name: "Point",
			class: class{
				{name: "x", sites: []Site{ctor}},
				{name: "y", sites: []Site{ctor}},
			},
			opts: DefaultOptions(),
			want: []string{"x", "y"},
		},
		{
			name:  "Counter",
			class: class{{name: "n", sites: []Site{other}}},
			opts:  DefaultOptions(),
			want:  nil,
		},
		{
			name: "Config",
			class: class{
				{name: "MAX", final: true},
				{name: "svc", mock: true},
			},
			opts: DefaultOptions(),
			want: nil,
		},
		{
			name: "Color",
			class: class{
				{name: "RED", enum: true},
				{name: "GREEN", enum: true},
			},
			opts: DefaultOptions(),
			want: nil,
		},
		{
			name:  "Unassigned",
			class: class{{name: "z"}},
			opts:  DefaultOptions(),
			want:  []string{"z"},
		},
		{
			name:  "Mixed sites",
			class: class{{name: "a", sites: []Site{ctor, other, ctor}}},
			opts:  DefaultOptions(),
			want:  nil,
		},
		{
			name: "Mock not honored",
			class: class{
				{name: "svc", mock: true},
			},
			opts: Options{},
			want: []string{"svc"},
		},
		{
			name: "Read only skipped",
			class: class{
				{name: "a"},
				{name: "b", readOnly: true},
				{name: "c", sites: []Site{ctor}},
			},
			opts: DefaultOptions(),
			want: []string{"a", "c"},
		},
		{
			name: "Read only halts",
			class: class{
				{name: "a"},
				{name: "b", readOnly: true},
				{name: "c", sites: []Site{ctor}},
			},
			opts: Options{HaltOnReadOnlyField: true},
			want: []string{"a"},
		},
		{
			name: "Read only final halts",
			class: class{
				{name: "a"},
				{name: "b", readOnly: true, final: true},
				{name: "c"},
			},
			opts: Options{HaltOnReadOnlyField: true},
			want: []string{"a"},
		},
		{
			name: "Read only final skipped",
			class: class{
				{name: "a"},
				{name: "b", readOnly: true, final: true},
				{name: "c"},
			},
			opts: DefaultOptions(),
			want: []string{"a", "c"},
		},
		{
			name: "Mock halts",
			class: class{
				{name: "a"},
				{name: "m", mock: true},
				{name: "c"},
			},
			opts: Options{HonorMockAnnotation: true, HaltOnReadOnlyField: true},
			want: []string{"a"},
		},
		{
			name: "Enum does not halt",
			class: class{
				{name: "RED", enum: true},
				{name: "code"},
			},
			opts: Options{HaltOnReadOnlyField: true},
			want: []string{"code"},
		},
		{
			name: "Inherited excluded",
			class: class{
				{name: "own"},
				{name: "base", inherited: true},
			},
			opts: DefaultOptions(),
			want: []string{"own"},
		},
		{
			name: "Inherited included",
			class: class{
				{name: "own"},
				{name: "base", inherited: true},
			},
			opts: Options{IncludeInheritedFields: true},
			want: []string{"own", "base"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := names(Select(tt.class, tt.opts))

			if !slices.Equal(got, tt.want) {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectUnique(t *testing.T) {
	t.Parallel()

	shared := &field{name: "shared"}
	c := class{shared, {name: "own"}, shared}

	got := Select(c, DefaultOptions())

	if len(got) != 2 {
		t.Fatalf("Select() returned %d fields, want 2", len(got))
	}

	if got[0] != shared || got[1].name != "own" {
		t.Errorf("Select() = %v, want [shared own]", names(got))
	}
}

func TestSelectSubset(t *testing.T) {
	t.Parallel()

	c := class{
		{name: "a"},
		{name: "b", sites: []Site{other}},
		{name: "c", enum: true},
		{name: "d", sites: []Site{ctor}},
	}

	got := Select(c, DefaultOptions())

	if len(got) > len(c) {
		t.Fatalf("Select() returned %d fields for %d declared", len(got), len(c))
	}

	for _, f := range got {
		if !slices.Contains(c, f) {
			t.Errorf("Select() returned undeclared field %s", f.name)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	c := class{
		{name: "a", final: true},
		{name: "b", readOnly: true},
		{name: "c", enum: true},
		{name: "d", mock: true},
		{name: "e", sites: []Site{other}},
		{name: "f"},
	}

	want := []Verdict{Final, ReadOnly, EnumConstant, Annotated, Modified, Eligible}

	var got []Verdict
	for d := range Classify(c, DefaultOptions()) {
		got = append(got, d.Verdict)
	}

	if !slices.Equal(got, want) {
		t.Errorf("Classify() = %v, want %v", got, want)
	}
}

func TestClassifyHalted(t *testing.T) {
	t.Parallel()

	c := class{
		{name: "a"},
		{name: "b", readOnly: true},
		{name: "c"},
	}

	var got []string
	for d := range Classify(c, Options{HaltOnReadOnlyField: true}) {
		got = append(got, d.Field.name+":"+d.Verdict.String())
	}

	if want := []string{"a:eligible", "b:read-only"}; !slices.Equal(got, want) {
		t.Errorf("Classify() = %v, want %v", got, want)
	}
}

func TestClassifyHaltedFinal(t *testing.T) {
	t.Parallel()

	c := class{
		{name: "a", readOnly: true, final: true},
		{name: "b"},
	}

	var got []Verdict
	for d := range Classify(c, Options{HaltOnReadOnlyField: true}) {
		got = append(got, d.Verdict)
	}

	if want := []Verdict{ReadOnly}; !slices.Equal(got, want) {
		t.Errorf("Classify() = %v, want %v", got, want)
	}

	got = got[:0]
	for d := range Classify(c, DefaultOptions()) {
		got = append(got, d.Verdict)
	}

	if want := []Verdict{Final, Eligible}; !slices.Equal(got, want) {
		t.Errorf("Classify() = %v, want %v", got, want)
	}
}

func TestVerdictString(t *testing.T) {
	t.Parallel()

	if got, want := Verdict(42).String(), "Verdict(42)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
