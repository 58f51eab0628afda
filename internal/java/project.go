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

package java

import (
	"fmt"
	"iter"
	"strings"

	"fillmore-labs.com/finalfields/internal/finality"
)

// Site is a resolved write to a field.
type Site struct {
	Field *Field
	File  *File

	Line, Column int

	// InConstructor is true when the write initializes the field of the instance under
	// construction.
	InConstructor bool
}

// Project is a set of parsed files with resolved field writes.
type Project struct {
	files   []*File
	classes []*Class
	byName  map[string][]*Class
	byField map[string][]*Field
	sites   map[*Field][]Site
}

// NewProject indexes the classes of files and resolves all field writes.
func NewProject(files ...*File) *Project {
	p := &Project{
		files:   files,
		byName:  make(map[string][]*Class),
		byField: make(map[string][]*Field),
		sites:   make(map[*Field][]Site),
	}

	for _, f := range files {
		for _, c := range f.Classes {
			p.classes = append(p.classes, c)
			p.byName[c.Name] = append(p.byName[c.Name], c)

			for _, fld := range c.Fields {
				p.byField[fld.Name] = append(p.byField[fld.Name], fld)
			}
		}
	}

	for _, f := range files {
		for _, w := range f.writes {
			p.resolve(f, w)
		}
	}

	return p
}

// Files returns the files of the project.
func (p *Project) Files() []*File {
	return p.files
}

// Classes returns all named types of the project.
func (p *Project) Classes() []*Class {
	return p.classes
}

// Class returns the types matching a simple or qualified name.
func (p *Project) Class(name string) ([]*Class, error) {
	var found []*Class

	for _, c := range p.byName[simpleName(name)] {
		if !strings.Contains(name, ".") || strings.HasSuffix("."+c.QualifiedName(), "."+name) {
			found = append(found, c)
		}
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
	}

	return found, nil
}

// Sites returns the resolved writes of f.
func (p *Project) Sites(f *Field) []Site {
	return p.sites[f]
}

// Superclass returns the project class c extends, or nil.
func (p *Project) Superclass(c *Class) *Class {
	if c.Super == "" {
		return nil
	}

	candidates := p.byName[c.Super]
	for _, s := range candidates {
		if s.File == c.File && s != c {
			return s
		}
	}

	for _, s := range candidates {
		if s != c && s.Kind == ClassKind {
			return s
		}
	}

	return nil
}

// lookup finds a field declared in c or its superclasses.
func (p *Project) lookup(c *Class, name string) *Field {
	seen := make(map[*Class]struct{})

	for ; c != nil; c = p.Superclass(c) {
		if _, ok := seen[c]; ok {
			break
		}

		seen[c] = struct{}{}

		for _, f := range c.Fields {
			if f.Name == name {
				return f
			}
		}
	}

	return nil
}

// targets returns the fields a write may modify. Writes through receivers that cannot be
// resolved match every field of that name.
func (p *Project) targets(w *write) []*Field {
	all := p.byField[w.name]

	if w.anonymous && w.recv != typeName && w.recv != outerThis {
		return all
	}

	one := func(f *Field) []*Field {
		if f == nil {
			return nil
		}

		return []*Field{f}
	}

	switch w.recv {
	case bare:
		for c := w.class; c != nil; c = c.Outer {
			if f := p.lookup(c, w.name); f != nil {
				return []*Field{f}
			}
		}

		return nil

	case this:
		return one(p.lookup(w.class, w.name))

	case super:
		return one(p.lookup(p.Superclass(w.class), w.name))

	case outerThis:
		for c := w.class; c != nil; c = c.Outer {
			if c.Name == w.qualifier {
				return one(p.lookup(c, w.name))
			}
		}

		return all

	case typeName:
		classes := p.byName[w.qualifier]
		if len(classes) == 0 {
			return all
		}

		var fields []*Field

		for _, c := range classes {
			if f := p.lookup(c, w.name); f != nil {
				fields = append(fields, f)
			}
		}

		return fields

	default:
		return all
	}
}

func (p *Project) resolve(file *File, w *write) {
	for _, f := range p.targets(w) {
		site := Site{
			Field:  f,
			File:   file,
			Line:   w.line,
			Column: w.column,
			InConstructor: (w.recv == bare || w.recv == this) &&
				w.ctor != nil && w.ctor == f.Class && !f.Static && !f.Initialized,
		}

		p.sites[f] = append(p.sites[f], site)
	}
}

// Host presents one class to [finality.Select].
type Host struct {
	project *Project
	class   *Class
	mocks   []string
}

var _ finality.Host[*Field] = (*Host)(nil)

// Host returns a [finality.Host] for class c. mocks are the annotations exempting fields.
func (p *Project) Host(c *Class, mocks []string) *Host {
	return &Host{project: p, class: c, mocks: mocks}
}

// Fields implements [finality.Host]. Inherited fields follow in superclass order.
func (h *Host) Fields(inherited bool) iter.Seq[*Field] {
	return func(yield func(*Field) bool) {
		seen := make(map[*Class]struct{})

		for c := h.class; c != nil; c = h.project.Superclass(c) {
			if _, ok := seen[c]; ok {
				return
			}

			seen[c] = struct{}{}

			for _, f := range c.Fields {
				if !yield(f) {
					return
				}
			}

			if !inherited {
				return
			}
		}
	}
}

// Sites implements [finality.Host].
func (h *Host) Sites(f *Field) []finality.Site {
	sites := h.project.Sites(f)

	result := make([]finality.Site, len(sites))
	for i, s := range sites {
		result[i] = finality.Site{InConstructor: s.InConstructor}
	}

	return result
}

// Editable implements [finality.Host].
func (*Host) Editable(f *Field) bool {
	return !f.Class.File.ReadOnly
}

// EnumConstant implements [finality.Host].
func (*Host) EnumConstant(f *Field) bool {
	return f.EnumConst
}

// Annotated implements [finality.Host].
func (h *Host) Annotated(f *Field) bool {
	return f.HasAnnotation(h.mocks)
}

// Final implements [finality.Host].
func (*Host) Final(f *Field) bool {
	return f.Final
}
