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

package gohost

import (
	"go/types"
	"iter"
	"reflect"

	"fillmore-labs.com/finalfields/internal/finality"
)

// Config controls how struct fields are presented to the finality analysis.
type Config struct {
	// IncludeGenerated treats fields declared in generated files as editable.
	IncludeGenerated bool

	// IncludeExported treats exported fields as only written within this package.
	IncludeExported bool

	// InjectTags are struct tag keys marking fields set by injection or mocking frameworks.
	InjectTags []string

	// ImportedFinal reports whether a field of another package is marked final.
	ImportedFinal func(v *types.Var) bool
}

// member is a field reachable from a struct, possibly through embedding.
type member struct {
	tag   reflect.StructTag
	owner *types.TypeName
}

// Host presents one struct type to [finality.Select].
type Host struct {
	index   *Index
	config  *Config
	st      *Struct
	members map[*types.Var]member
}

var _ finality.Host[*types.Var] = (*Host)(nil)

// Host returns a [finality.Host] for the struct st.
func (x *Index) Host(st *Struct, config *Config) *Host {
	return &Host{index: x, config: config, st: st, members: make(map[*types.Var]member)}
}

// Struct returns the struct presented by this host.
func (h *Host) Struct() *Struct {
	return h.st
}

// Fields implements [finality.Host]. Fields promoted from embedded structs follow
// the directly declared fields, depth first.
func (h *Host) Fields(inherited bool) iter.Seq[*types.Var] {
	return func(yield func(*types.Var) bool) {
		ts, ok := h.st.Name.Type().Underlying().(*types.Struct)
		if !ok {
			return
		}

		if !h.yieldDirect(ts, h.st.Name, yield) {
			return
		}

		if inherited {
			visited := map[*types.TypeName]struct{}{h.st.Name: {}}
			h.yieldEmbedded(ts, visited, yield)
		}
	}
}

func (h *Host) yieldDirect(ts *types.Struct, owner *types.TypeName, yield func(*types.Var) bool) bool {
	for i := range ts.NumFields() {
		v := ts.Field(i)
		h.members[v] = member{tag: reflect.StructTag(ts.Tag(i)), owner: owner}

		if !yield(v) {
			return false
		}
	}

	return true
}

func (h *Host) yieldEmbedded(ts *types.Struct, visited map[*types.TypeName]struct{}, yield func(*types.Var) bool) bool {
	for i := range ts.NumFields() {
		v := ts.Field(i)
		if !v.Embedded() {
			continue
		}

		named := embeddedNamed(v.Type())
		if named == nil {
			continue
		}

		tn := named.Origin().Obj()
		if _, ok := visited[tn]; ok {
			continue
		}

		visited[tn] = struct{}{}

		es, ok := named.Origin().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		if !h.yieldDirect(es, tn, yield) || !h.yieldEmbedded(es, visited, yield) {
			return false
		}
	}

	return true
}

func embeddedNamed(t types.Type) *types.Named {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, _ := t.(*types.Named)

	return named
}

// Owner returns the struct type declaring v.
func (h *Host) Owner(v *types.Var) *types.TypeName {
	if f := h.index.Field(v); f != nil {
		return f.Owner.Name
	}

	return h.members[v].owner
}

// Sites implements [finality.Host].
//
// Exported fields of importable packages get an extra site outside of any constructor,
// since importers may assign them.
func (h *Host) Sites(v *types.Var) []finality.Site {
	owner := h.Owner(v)

	writes := h.index.SitesOf(v)
	sites := make([]finality.Site, 0, len(writes)+1)

	for _, w := range writes {
		sites = append(sites, finality.Site{InConstructor: w.InConstructorOf(owner)})
	}

	if h.external(v) {
		sites = append(sites, finality.Site{InConstructor: false})
	}

	return sites
}

func (h *Host) external(v *types.Var) bool {
	if h.config.IncludeExported || !v.Exported() {
		return false
	}

	pkg := v.Pkg()

	return pkg != nil && pkg.Name() != "main"
}

// Editable implements [finality.Host]. Only fields declared in this package, outside of
// generated files, are editable.
func (h *Host) Editable(v *types.Var) bool {
	f := h.index.Field(v)
	if f == nil {
		return false
	}

	return h.config.IncludeGenerated || !f.Owner.File.Generated()
}

// EnumConstant implements [finality.Host]. Go has no enumeration fields.
func (*Host) EnumConstant(*types.Var) bool {
	return false
}

// Annotated implements [finality.Host]. A field is annotated when its struct tag
// has one of the configured injection keys.
func (h *Host) Annotated(v *types.Var) bool {
	tag := h.members[v].tag
	if f := h.index.Field(v); f != nil {
		tag = f.Tag
	}

	for _, key := range h.config.InjectTags {
		if _, ok := tag.Lookup(key); ok {
			return true
		}
	}

	return false
}

// Final implements [finality.Host].
func (h *Host) Final(v *types.Var) bool {
	if f := h.index.Field(v); f != nil {
		return f.Marked
	}

	return h.config.ImportedFinal != nil && h.config.ImportedFinal(v)
}
