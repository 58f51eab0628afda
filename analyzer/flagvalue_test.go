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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/finalfields/analyzer"
	"fillmore-labs.com/finalfields/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.AnalyzerFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.EnforceAnalyzer,
			args:    []string{"-suggest"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.SuggestAnalyzer,
			args:    []string{"-suggest=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.SuggestAnalyzer,
			args:    []string{"-suggest=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Analyzers
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.SuggestAnalyzer
			fv := NewAnalyzerValue(&flags, value)
			fs.Var(fv, "suggest", "suggest fields to mark final")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("SuggestAnalyzer enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewBehaviorValue(&flags, config.HaltOnReadOnly), "halt", "halt")

	if err := fs.Parse([]string{"-halt=maybe"}); err == nil {
		t.Error("Parse succeeded, want error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Analyzers
	flags.Set(config.SuggestAnalyzer, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewAnalyzerValue(&flags, config.SuggestAnalyzer)
	fs.Var(fv, "suggest", "suggest fields to mark final")

	const expectedUsage = `
  -suggest
    	suggest fields to mark final (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New()

	if err := a.Flags.Parse([]string{"-enforce=false", "-inherited", "-inject-tags", "wire, fx"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"suggest", "true"},
		{"enforce", "false"},
		{"inherited", "true"},
		{"honor-inject", "true"},
		{"halt", "false"},
		{"inject-tags", "wire,fx"},
	}

	for _, tt := range tests {
		f := a.Flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("flag %s not registered", tt.name)

			continue
		}

		if got := f.Value.String(); got != tt.want {
			t.Errorf("flag %s = %q, want %q", tt.name, got, tt.want)
		}
	}
}
