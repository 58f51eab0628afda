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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// frame is a set of local names visible in a block.
type frame struct {
	names  map[string]struct{}
	parent *frame
}

func (f *frame) declare(name string) {
	if f == nil || name == "" {
		return
	}

	if f.names == nil {
		f.names = make(map[string]struct{})
	}

	f.names[name] = struct{}{}
}

func (f *frame) local(name string) bool {
	for ; f != nil; f = f.parent {
		if _, ok := f.names[name]; ok {
			return true
		}
	}

	return false
}

// scope is the lexical context of a node.
type scope struct {
	class     *Class
	anonymous bool
	ctor      *Class
	locals    *frame
}

func (s scope) block() scope {
	s.locals = &frame{parent: s.locals}

	return s
}

// body returns the scope of a method, lambda or initializer body.
func (s scope) body(ctor *Class) scope {
	s.ctor = ctor

	return s.block()
}

// builder extracts the model of one file from its syntax tree.
type builder struct {
	file *File
	src  []byte
}

func (b *builder) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(b.src)
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

func (b *builder) walk(n *sitter.Node, s scope) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
		b.typeDecl(n, s)

	case "annotation_type_declaration":
		// annotation members are methods

	case "object_creation_expression":
		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c.Type() == "class_body" {
				b.classBody(c, nil, scope{class: s.class, anonymous: true, locals: s.locals})
			} else {
				b.walk(c, s)
			}
		}

	case "lambda_expression":
		ls := s.body(nil)
		b.parameters(n.ChildByFieldName("parameters"), ls)
		b.walk(n.ChildByFieldName("body"), ls)

	case "local_variable_declaration":
		b.declarators(n, s)

	case "formal_parameter", "catch_formal_parameter":
		s.locals.declare(b.text(n.ChildByFieldName("name")))

	case "spread_parameter":
		b.declarators(n, s)

	case "resource":
		b.walk(n.ChildByFieldName("value"), s)
		s.locals.declare(b.text(n.ChildByFieldName("name")))

	case "enhanced_for_statement":
		bs := s.block()
		b.walk(n.ChildByFieldName("value"), s)
		bs.locals.declare(b.text(n.ChildByFieldName("name")))
		b.walk(n.ChildByFieldName("body"), bs)

	case "block", "constructor_body", "for_statement", "catch_clause", "try_with_resources_statement",
		"switch_block_statement_group", "switch_rule":
		b.children(n, s.block())

	case "instanceof_expression":
		// Pattern bindings are flow scoped and not declared as locals, so writes
		// to their names also count against fields of the same name.
		b.children(n, s)

	case "assignment_expression":
		b.write(n.ChildByFieldName("left"), s)
		b.children(n, s)

	case "update_expression":
		if n.NamedChildCount() > 0 {
			b.write(n.NamedChild(0), s)
		}

		b.children(n, s)

	default:
		b.children(n, s)
	}
}

func (b *builder) children(n *sitter.Node, s scope) {
	for i := range int(n.NamedChildCount()) {
		b.walk(n.NamedChild(i), s)
	}
}

func (b *builder) declarators(n *sitter.Node, s scope) {
	for i := range int(n.NamedChildCount()) {
		c := n.NamedChild(i)
		if c.Type() != "variable_declarator" {
			b.walk(c, s)

			continue
		}

		b.walk(c.ChildByFieldName("value"), s)
		s.locals.declare(b.text(c.ChildByFieldName("name")))
	}
}

func (b *builder) parameters(n *sitter.Node, s scope) {
	if n == nil {
		return
	}

	if n.Type() == "identifier" {
		s.locals.declare(b.text(n))

		return
	}

	for i := range int(n.NamedChildCount()) {
		c := n.NamedChild(i)
		if c.Type() == "identifier" {
			s.locals.declare(b.text(c))
		} else {
			b.walk(c, s)
		}
	}
}

func (b *builder) typeDecl(n *sitter.Node, s scope) {
	name := n.ChildByFieldName("name")

	c := &Class{
		Name:  b.text(name),
		Outer: s.class,
		File:  b.file,
		Line:  line(name),
	}

	switch n.Type() {
	case "interface_declaration":
		c.Kind = InterfaceKind

	case "enum_declaration":
		c.Kind = EnumKind

	case "record_declaration":
		c.Kind = RecordKind

	default:
		c.Kind = ClassKind
	}

	if sc := n.ChildByFieldName("superclass"); sc != nil && sc.NamedChildCount() > 0 {
		c.Super = typeSimpleName(b.text(sc.NamedChild(0)))
	}

	b.file.Classes = append(b.file.Classes, c)

	if c.Kind == RecordKind {
		b.components(n.ChildByFieldName("parameters"), c)
	}

	b.classBody(n.ChildByFieldName("body"), c, scope{class: c})
}

// components adds the implicitly final fields of a record.
func (b *builder) components(n *sitter.Node, c *Class) {
	if n == nil {
		return
	}

	for i := range int(n.NamedChildCount()) {
		p := n.NamedChild(i)
		if p.Type() != "formal_parameter" {
			continue
		}

		name := p.ChildByFieldName("name")
		c.Fields = append(c.Fields, &Field{Name: b.text(name), Class: c, Final: true, Line: line(name)})
	}
}

// classBody walks the members of a class body. c is nil for anonymous classes.
func (b *builder) classBody(n *sitter.Node, c *Class, s scope) {
	if n == nil {
		return
	}

	for i := range int(n.NamedChildCount()) {
		m := n.NamedChild(i)

		switch m.Type() {
		case "field_declaration", "constant_declaration":
			b.fieldDecl(m, c, s)

		case "enum_constant":
			b.enumConstant(m, c, s)

		case "enum_body_declarations":
			b.classBody(m, c, s)

		case "constructor_declaration", "compact_constructor_declaration":
			cs := s.body(c)
			b.walk(m.ChildByFieldName("parameters"), cs)
			b.walk(m.ChildByFieldName("body"), cs)

		case "method_declaration":
			ms := s.body(nil)
			b.walk(m.ChildByFieldName("parameters"), ms)
			b.walk(m.ChildByFieldName("body"), ms)

		case "block", "static_initializer":
			b.walk(m, s.body(nil))

		default:
			b.walk(m, s)
		}
	}
}

func (b *builder) fieldDecl(n *sitter.Node, c *Class, s scope) {
	var (
		mods    modifiers
		decl    = &Declaration{}
		initial = s.body(nil)
	)

	if typ := n.ChildByFieldName("type"); typ != nil {
		decl.TypeOffset = int(typ.StartByte())
	}

	for i := range int(n.NamedChildCount()) {
		d := n.NamedChild(i)

		switch d.Type() {
		case "modifiers":
			mods = b.modifiers(d)

		case "variable_declarator":
			value := d.ChildByFieldName("value")
			b.walk(value, initial)

			if c == nil {
				continue
			}

			name := d.ChildByFieldName("name")
			f := &Field{
				Name:        b.text(name),
				Class:       c,
				Decl:        decl,
				Annotations: mods.annotations,
				Static:      mods.static || c.Kind == InterfaceKind,
				Final:       mods.final || c.Kind == InterfaceKind,
				Initialized: value != nil,
				Line:        line(name),
			}

			decl.Fields = append(decl.Fields, f)
			c.Fields = append(c.Fields, f)
		}
	}
}

func (b *builder) enumConstant(n *sitter.Node, c *Class, s scope) {
	b.walk(n.ChildByFieldName("arguments"), s.body(nil))

	if body := n.ChildByFieldName("body"); body != nil {
		b.classBody(body, nil, scope{class: s.class, anonymous: true})
	}

	if c == nil {
		return
	}

	var mods modifiers
	if m := childOfType(n, "modifiers"); m != nil {
		mods = b.modifiers(m)
	}

	name := n.ChildByFieldName("name")
	c.Fields = append(c.Fields, &Field{
		Name:        b.text(name),
		Class:       c,
		Annotations: mods.annotations,
		Static:      true,
		EnumConst:   true,
		Initialized: true,
		Line:        line(name),
	})
}

type modifiers struct {
	static, final bool
	annotations   []string
}

func (b *builder) modifiers(n *sitter.Node) modifiers {
	var m modifiers

	for i := range int(n.ChildCount()) {
		c := n.Child(i)

		switch c.Type() {
		case "static":
			m.static = true

		case "final":
			m.final = true

		case "marker_annotation", "annotation":
			m.annotations = append(m.annotations, b.text(c.ChildByFieldName("name")))
		}
	}

	return m
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := range int(n.NamedChildCount()) {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}

	return nil
}

// write records an assignment target that may be a field.
func (b *builder) write(target *sitter.Node, s scope) {
	for target != nil && target.Type() == "parenthesized_expression" {
		target = target.NamedChild(0)
	}

	if target == nil || s.class == nil {
		return
	}

	w := &write{
		class:     s.class,
		anonymous: s.anonymous,
		ctor:      s.ctor,
		line:      line(target),
		column:    int(target.StartPoint().Column) + 1,
	}

	switch target.Type() {
	case "identifier":
		w.name = b.text(target)
		if s.locals.local(w.name) {
			return
		}

		w.recv = bare

	case "field_access":
		field := target.ChildByFieldName("field")
		if field == nil || field.Type() != "identifier" {
			return
		}

		w.name = b.text(field)
		w.recv, w.qualifier = b.receiver(target.ChildByFieldName("object"), s)

	default:
		return // array elements, method results
	}

	b.file.writes = append(b.file.writes, w)
}

func (b *builder) receiver(obj *sitter.Node, s scope) (receiver, string) {
	if obj == nil {
		return unknown, ""
	}

	switch obj.Type() {
	case "this":
		return this, ""

	case "super":
		return super, ""

	case "field_access":
		if f := obj.ChildByFieldName("field"); f != nil && f.Type() == "this" {
			return outerThis, typeSimpleName(b.text(obj.ChildByFieldName("object")))
		}

	case "identifier":
		if name := b.text(obj); !s.locals.local(name) {
			return typeName, name
		}

	case "scoped_identifier", "scoped_type_identifier":
		return typeName, typeSimpleName(b.text(obj))
	}

	return unknown, ""
}

// typeSimpleName strips package qualifiers and type arguments.
func typeSimpleName(t string) string {
	if i := strings.IndexByte(t, '<'); i >= 0 {
		t = t[:i]
	}

	return simpleName(strings.TrimSpace(t))
}
