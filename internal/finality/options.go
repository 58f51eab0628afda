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

package finality

import "log/slog"

// Options configure the field scan.
type Options struct {
	// IncludeInheritedFields extends the scan to fields of super types.
	IncludeInheritedFields bool

	// HonorMockAnnotation exempts fields carrying a mock or injection marker.
	HonorMockAnnotation bool

	// HaltOnReadOnlyField stops the whole scan at the first read-only or annotated field
	// instead of skipping just that field. Eligible fields following the halting one are
	// dropped, so this is only useful to compare against older results.
	HaltOnReadOnlyField bool
}

// DefaultOptions scan directly declared fields, exempt annotated fields and continue past
// exempt fields.
func DefaultOptions() Options {
	return Options{HonorMockAnnotation: true}
}

func (o Options) halts(v Verdict) bool {
	if !o.HaltOnReadOnlyField {
		return false
	}

	return v == ReadOnly || v == Annotated
}

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("inherited", o.IncludeInheritedFields),
		slog.Bool("honor-mock", o.HonorMockAnnotation),
		slog.Bool("halt-on-read-only", o.HaltOnReadOnlyField),
	)
}
