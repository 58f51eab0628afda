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

package gclplugin

import finalfields "fillmore-labs.com/finalfields/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Suggest enables suggestions of fields to mark final.
	Suggest *bool `json:"suggest,omitzero"`
	// Enforce enables reporting writes to final fields.
	Enforce *bool `json:"enforce,omitzero"`
	// Exported treats exported fields like unexported ones.
	Exported *bool `json:"exported,omitzero"`
	// Inherited includes fields promoted from embedded structs.
	Inherited *bool `json:"inherited,omitzero"`
	// HonorInject exempts fields with injection tags.
	HonorInject *bool `json:"honor-inject,omitzero"`
	// InjectTags sets the struct tag keys of injected fields.
	InjectTags []string `json:"inject-tags,omitzero"`
	// Halt stops examining a struct at its first non-editable or injected field.
	Halt *bool `json:"halt,omitzero"`
}

// Options converts [Settings] into a list of [finalfields.Option] for the finalfields analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []finalfields.Option {
	var opts []finalfields.Option

	opts = appendOption(opts, s.Suggest, finalfields.WithSuggest)
	opts = appendOption(opts, s.Enforce, finalfields.WithEnforce)
	opts = appendOption(opts, s.Exported, finalfields.WithExported)
	opts = appendOption(opts, s.Inherited, finalfields.WithInherited)
	opts = appendOption(opts, s.HonorInject, finalfields.WithHonorInject)
	opts = appendOption(opts, s.Halt, finalfields.WithHaltOnReadOnly)

	if s.InjectTags != nil {
		opts = append(opts, finalfields.WithInjectTags(s.InjectTags...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [finalfields.Option] list.
func appendOption[T any](opts []finalfields.Option, value *T, constructor func(T) finalfields.Option) []finalfields.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
