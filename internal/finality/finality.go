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

import "iter"

// Site is a program location that writes a new value to a field.
type Site struct {
	// InConstructor is true when the write happens inside a constructor of the
	// field's declaring type.
	InConstructor bool
}

// Host exposes a snapshot of a single type to the analyzer.
//
// Implementations answer questions about fields of one class; the analyzer never
// mutates anything reachable through a Host.
type Host[F comparable] interface {
	// Fields yields the fields in declaration order. When inherited is true, fields
	// of super types follow the directly declared ones.
	Fields(inherited bool) iter.Seq[F]

	// Sites returns every assignment site of f in the whole program.
	Sites(f F) []Site

	// Editable reports whether f is declared in source that may be modified.
	Editable(f F) bool

	// EnumConstant reports whether f is an enumeration constant.
	EnumConstant(f F) bool

	// Annotated reports whether f carries a mock or injection marker.
	Annotated(f F) bool

	// Final reports whether f is already marked immutable.
	Final(f F) bool
}

// Verdict is the classification of a single field.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// Eligible fields can be marked final.
	Eligible Verdict = iota // eligible

	// Final fields are already marked.
	Final // final

	// ReadOnly fields are not declared in editable source.
	ReadOnly // read-only

	// EnumConstant fields are enumeration constants.
	EnumConstant // enum

	// Annotated fields carry a mock or injection marker.
	Annotated // annotated

	// Modified fields are assigned outside a constructor.
	Modified // modified
)

// Decision is the [Verdict] for one field.
type Decision[F comparable] struct {
	Field   F
	Verdict Verdict
}

// Classify visits the fields of host in declaration order and yields a [Decision] for each
// field visited. Fields are visited at most once. The sequence ends early when the scan halts
// on a read-only or annotated field with [Options.HaltOnReadOnlyField] set; the halting field is
// the last decision yielded.
func Classify[F comparable](host Host[F], opts Options) iter.Seq[Decision[F]] {
	return func(yield func(Decision[F]) bool) {
		seen := make(map[F]struct{})

		for f := range host.Fields(opts.IncludeInheritedFields) {
			if _, ok := seen[f]; ok {
				continue
			}

			seen[f] = struct{}{}

			v := classify(host, opts, f)
			if !yield(Decision[F]{Field: f, Verdict: v}) {
				return
			}

			if opts.halts(v) {
				return
			}
		}
	}
}

// classify checks editability first in halt mode, so a read-only field halts even when it
// is already final.
func classify[F comparable](host Host[F], opts Options, f F) Verdict {
	switch {
	case opts.HaltOnReadOnlyField && !host.Editable(f):
		return ReadOnly

	case host.Final(f):
		return Final

	case !host.Editable(f):
		return ReadOnly

	case host.EnumConstant(f):
		return EnumConstant

	case opts.HonorMockAnnotation && host.Annotated(f):
		return Annotated

	case !unmodified(host.Sites(f)):
		return Modified

	default:
		return Eligible
	}
}

// unmodified reports whether every site is in a constructor. No sites at all qualifies.
func unmodified(sites []Site) bool {
	for _, s := range sites {
		if !s.InConstructor {
			return false
		}
	}

	return true
}

// Select returns the fields of host that can be marked final, in declaration order.
func Select[F comparable](host Host[F], opts Options) []F {
	var result []F

	for d := range Classify(host, opts) {
		if d.Verdict == Eligible {
			result = append(result, d.Field)
		}
	}

	return result
}
