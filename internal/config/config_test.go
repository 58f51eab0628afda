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

package config_test

import (
	"testing"

	. "fillmore-labs.com/finalfields/internal/config"
	"fillmore-labs.com/finalfields/internal/finality"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated, HaltOnReadOnly)

	if !b.Enabled(IncludeGenerated) || !b.Enabled(HaltOnReadOnly) {
		t.Fatalf("NewBitMask() did not enable flags")
	}

	b.Set(IncludeGenerated, false)
	b.Set(IncludeExported, true)

	if b.Enabled(IncludeGenerated) {
		t.Errorf("IncludeGenerated still enabled")
	}

	if !b.Enabled(IncludeExported) {
		t.Errorf("IncludeExported not enabled")
	}
}

func TestFinalityOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		behavior Behavior
		want     finality.Options
	}{
		{
			name:     "Default",
			behavior: DefaultBehavior(),
			want:     finality.DefaultOptions(),
		},
		{
			name:     "All",
			behavior: NewBitMask(IncludeInherited, HonorInjectTags, HaltOnReadOnly),
			want:     finality.Options{IncludeInheritedFields: true, HonorMockAnnotation: true, HaltOnReadOnlyField: true},
		},
		{
			name:     "None",
			behavior: NewBitMask[Config](),
			want:     finality.Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FinalityOptions(tt.behavior); got != tt.want {
				t.Errorf("FinalityOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
