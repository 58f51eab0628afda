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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/finalfields/internal/config"
	"fillmore-labs.com/finalfields/internal/run"
)

// Option configures specific behavior of a [New] finalfields analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSuggest is an [Option] to configure whether fields are suggested for marking final.
func WithSuggest(suggest bool) Option { return suggestOption{suggest: suggest} }

type suggestOption struct{ suggest bool }

func (o suggestOption) apply(r *run.Options) {
	r.Analyzers.Set(config.SuggestAnalyzer, o.suggest)
}

func (o suggestOption) LogAttr() slog.Attr {
	return slog.Bool("suggest", o.suggest)
}

// WithEnforce is an [Option] to configure whether writes to final fields are reported.
func WithEnforce(enforce bool) Option { return enforceOption{enforce: enforce} }

type enforceOption struct{ enforce bool }

func (o enforceOption) apply(r *run.Options) {
	r.Analyzers.Set(config.EnforceAnalyzer, o.enforce)
}

func (o enforceOption) LogAttr() slog.Attr {
	return slog.Bool("enforce", o.enforce)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithExported is an [Option] to treat exported fields like unexported ones.
//
// Only enable this for packages that are not imported elsewhere, since writes from
// importing packages are not visible to the analysis.
func WithExported(exported bool) Option { return exportedOption{exported: exported} }

type exportedOption struct{ exported bool }

func (o exportedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeExported, o.exported)
}

func (o exportedOption) LogAttr() slog.Attr {
	return slog.Bool("exported", o.exported)
}

// WithInherited is an [Option] to include fields promoted from embedded structs.
func WithInherited(inherited bool) Option { return inheritedOption{inherited: inherited} }

type inheritedOption struct{ inherited bool }

func (o inheritedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeInherited, o.inherited)
}

func (o inheritedOption) LogAttr() slog.Attr {
	return slog.Bool("inherited", o.inherited)
}

// WithHonorInject is an [Option] to configure whether fields with injection tags are exempt.
func WithHonorInject(honor bool) Option { return honorInjectOption{honor: honor} }

type honorInjectOption struct{ honor bool }

func (o honorInjectOption) apply(r *run.Options) {
	r.Behavior.Set(config.HonorInjectTags, o.honor)
}

func (o honorInjectOption) LogAttr() slog.Attr {
	return slog.Bool("honor-inject", o.honor)
}

// WithInjectTags is an [Option] to configure the struct tag keys of injected fields.
func WithInjectTags(tags ...string) Option { return injectTagsOption{tags: slices.Clone(tags)} }

type injectTagsOption struct{ tags []string }

func (o injectTagsOption) apply(r *run.Options) {
	r.InjectTags = o.tags
}

func (o injectTagsOption) LogAttr() slog.Attr {
	return slog.Any("inject-tags", o.tags)
}

// WithHaltOnReadOnly is an [Option] to stop examining a struct at its first non-editable or injected field.
func WithHaltOnReadOnly(halt bool) Option { return haltOption{halt: halt} }

type haltOption struct{ halt bool }

func (o haltOption) apply(r *run.Options) {
	r.Behavior.Set(config.HaltOnReadOnly, o.halt)
}

func (o haltOption) LogAttr() slog.Attr {
	return slog.Bool("halt", o.halt)
}
