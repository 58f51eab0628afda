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

import "strings"

// Kind is the kind of a type declaration.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	ClassKind     Kind = iota // class
	InterfaceKind             // interface
	EnumKind                  // enum
	RecordKind                // record
)

// File is a parsed Java source file.
type File struct {
	// Path is the file name as given to the parser.
	Path string

	// Content is the source text.
	Content []byte

	// ReadOnly is true for library sources and files without write permission.
	ReadOnly bool

	// Classes are the named type declarations of the file, outer classes before nested ones.
	Classes []*Class

	writes []*write
}

// Class is a named type declaration.
type Class struct {
	// Name is the simple name.
	Name string

	// Kind is the kind of declaration.
	Kind Kind

	// Super is the simple name of the extended class, or empty.
	Super string

	// Outer is the lexically enclosing named type, or nil.
	Outer *Class

	// File is the declaring file.
	File *File

	// Fields are the declared fields in source order. Enum constants come first.
	Fields []*Field

	// Line is the line of the name.
	Line int
}

// QualifiedName returns the name including all enclosing type names.
func (c *Class) QualifiedName() string {
	if c.Outer == nil {
		return c.Name
	}

	return c.Outer.QualifiedName() + "." + c.Name
}

// Field is a field, enum constant or record component.
type Field struct {
	// Name is the field name.
	Name string

	// Class is the declaring type.
	Class *Class

	// Decl is the declaration, shared between all declarators of a multi-declarator field.
	// Nil for enum constants and record components.
	Decl *Declaration

	// Annotations are the annotation names as written, without '@'.
	Annotations []string

	Static      bool
	Final       bool
	EnumConst   bool
	Initialized bool

	// Line is the line of the field name.
	Line int
}

// Declaration is a field declaration statement.
type Declaration struct {
	// Fields are the declared fields in source order.
	Fields []*Field

	// TypeOffset is the byte offset of the declared type.
	TypeOffset int
}

// HasAnnotation reports whether the field carries one of the annotations. Names match
// either as written or by their simple name.
func (f *Field) HasAnnotation(names []string) bool {
	for _, a := range f.Annotations {
		for _, n := range names {
			if a == n || simpleName(a) == n {
				return true
			}
		}
	}

	return false
}

func simpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// receiver is the kind of object a field write goes through.
type receiver uint8

const (
	bare      receiver = iota // f
	this                      // this.f
	super                     // super.f
	outerThis                 // Outer.this.f
	typeName                  // Type.f
	unknown                   // expr.f
)

// write is an unresolved field write.
type write struct {
	recv      receiver
	name      string
	qualifier string

	// class is the innermost named type lexically enclosing the write.
	class *Class

	// anonymous is true when an anonymous class body lies between the write and class.
	anonymous bool

	// ctor is the class whose constructor body directly contains the write.
	ctor *Class

	line, column int
}
