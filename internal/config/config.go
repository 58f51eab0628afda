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

package config

import "fillmore-labs.com/finalfields/internal/finality"

// AnalyzerFlags represents specific analyzers.
type AnalyzerFlags uint8

const (
	// SuggestAnalyzer reports struct fields that can be marked final.
	SuggestAnalyzer AnalyzerFlags = 1 << iota

	// EnforceAnalyzer reports assignments to fields marked final outside of constructors.
	EnforceAnalyzer
)

// Analyzers is the set of enabled analyzers.
type Analyzers = BitMask[AnalyzerFlags]

// DefaultAnalyzers enables all analyzers.
func DefaultAnalyzers() Analyzers {
	return NewBitMask(SuggestAnalyzer, EnforceAnalyzer)
}

// Config represents configuration options for the analyzers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// IncludeExported specifies whether exported fields are candidates. Importing packages
	// can assign exported fields, which a single package pass does not see.
	IncludeExported

	// IncludeInherited extends candidates to fields promoted from embedded structs.
	IncludeInherited

	// HonorInjectTags exempts fields tagged for injection or mocking.
	HonorInjectTags

	// HaltOnReadOnly stops scanning a struct at the first non-editable or tagged field.
	HaltOnReadOnly
)

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(HonorInjectTags)
}

// FinalityOptions converts the behavior into options for [finality.Select].
func FinalityOptions(b Behavior) finality.Options {
	return finality.Options{
		IncludeInheritedFields: b.Enabled(IncludeInherited),
		HonorMockAnnotation:    b.Enabled(HonorInjectTags),
		HaltOnReadOnlyField:    b.Enabled(HaltOnReadOnly),
	}
}
