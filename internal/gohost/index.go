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
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"runtime/trace"
	"strconv"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/finalfields/internal/astutil"
)

// Struct is a named struct type declared in the analyzed package.
type Struct struct {
	// Name is the declared type name.
	Name *types.TypeName

	// Spec is the type declaration.
	Spec *ast.TypeSpec

	// Decl is the enclosing declaration, holding the doc comment of single type declarations.
	Decl *ast.GenDecl

	// Type is the struct type expression.
	Type *ast.StructType

	// File is the file declaring the type.
	File astutil.CurrentFile
}

// Field is a struct field declared in the analyzed package.
type Field struct {
	// Var is the field object.
	Var *types.Var

	// Decl is the field declaration, shared between all names of a multi-name field.
	Decl *ast.Field

	// Owner is the declaring struct.
	Owner *Struct

	// Tag is the field's struct tag.
	Tag reflect.StructTag

	// Marked is true when the declaration carries a final marker.
	Marked bool
}

// Site is a location where a field is written.
type Site struct {
	// Var is the written field.
	Var *types.Var

	// Node is the writing expression or statement.
	Node ast.Node

	// Kind describes how the field is written.
	Kind SiteKind

	// Constructs holds the types constructed by the enclosing function.
	Constructs []*types.TypeName

	// File is the file containing the site.
	File astutil.CurrentFile
}

// SiteKind describes the kind of write.
type SiteKind uint8

const (
	// Assign is a plain or compound assignment.
	Assign SiteKind = iota

	// IncDec is an increment or decrement statement.
	IncDec

	// AddressOf takes the address of the field.
	AddressOf

	// RangeAssign is the key or value of a range statement using =.
	RangeAssign
)

// InConstructorOf reports whether the site is inside a constructor of tn.
func (s Site) InConstructorOf(tn *types.TypeName) bool {
	if tn == nil {
		return false
	}

	for _, c := range s.Constructs {
		if c == tn {
			return true
		}
	}

	return false
}

// Index holds the structs, fields and assignment sites of a package.
type Index struct {
	pkg  *types.Package
	info *types.Info

	structs []*Struct
	fields  map[*types.Var]*Field
	sites   []Site
	byVar   map[*types.Var][]int
}

// NewIndex collects all struct declarations and field writes of the files in the inspector.
func NewIndex(ctx context.Context, fset *token.FileSet, pkg *types.Package, info *types.Info, in *inspector.Inspector) *Index {
	defer trace.StartRegion(ctx, "Index").End()

	idx := &Index{
		pkg:    pkg,
		info:   info,
		fields: make(map[*types.Var]*Field),
		byVar:  make(map[*types.Var][]int),
	}

	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		cf := astutil.NewCurrentFile(fset, file)
		if !cf.Valid() {
			continue
		}

		idx.collectStructs(f, cf)
		idx.collectSites(f, cf)
	}

	return idx
}

// Structs returns the named struct types of the package in source order.
func (x *Index) Structs() []*Struct {
	return x.structs
}

// Field returns the declaration of a field of this package, or nil.
func (x *Index) Field(v *types.Var) *Field {
	return x.fields[v]
}

// Sites returns all field writes of the package in source order.
func (x *Index) Sites() []Site {
	return x.sites
}

// SitesOf returns the writes of field v.
func (x *Index) SitesOf(v *types.Var) []Site {
	indices := x.byVar[v]
	if len(indices) == 0 {
		return nil
	}

	sites := make([]Site, len(indices))
	for i, j := range indices {
		sites[i] = x.sites[j]
	}

	return sites
}

func (x *Index) collectStructs(f inspector.Cursor, cf astutil.CurrentFile) {
	for c := range f.Preorder((*ast.TypeSpec)(nil)) {
		spec := c.Node().(*ast.TypeSpec)

		st, ok := spec.Type.(*ast.StructType)
		if !ok || spec.Assign.IsValid() {
			continue // not a struct or an alias
		}

		tn, ok := x.info.Defs[spec.Name].(*types.TypeName)
		if !ok {
			continue
		}

		ts, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		decl, _ := c.Parent().Node().(*ast.GenDecl)

		s := &Struct{Name: tn, Spec: spec, Decl: decl, Type: st, File: cf}
		x.structs = append(x.structs, s)

		i := 0
		for _, field := range st.Fields.List {
			marked := astutil.HasFinalMarker(field)

			n := max(len(field.Names), 1) // embedded fields have no names
			for range n {
				if i >= ts.NumFields() {
					break
				}

				v := ts.Field(i)
				x.fields[v] = &Field{Var: v, Decl: field, Owner: s, Tag: unquoteTag(field.Tag), Marked: marked}
				i++
			}
		}
	}
}

func (x *Index) collectSites(f inspector.Cursor, cf astutil.CurrentFile) {
	nodeTypes := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.RangeStmt)(nil),
	}

	for c := range f.Preorder(nodeTypes...) {
		switch n := c.Node().(type) {
		case *ast.AssignStmt:
			if n.Tok == token.DEFINE {
				continue
			}

			for _, lhs := range n.Lhs {
				x.addSite(c, cf, lhs, Assign)
			}

		case *ast.IncDecStmt:
			x.addSite(c, cf, n.X, IncDec)

		case *ast.UnaryExpr:
			if n.Op != token.AND {
				continue
			}

			x.addSite(c, cf, n.X, AddressOf)

		case *ast.RangeStmt:
			if n.Tok != token.ASSIGN {
				continue
			}

			if n.Key != nil {
				x.addSite(c, cf, n.Key, RangeAssign)
			}

			if n.Value != nil {
				x.addSite(c, cf, n.Value, RangeAssign)
			}
		}
	}
}

func (x *Index) addSite(c inspector.Cursor, cf astutil.CurrentFile, expr ast.Expr, kind SiteKind) {
	vars := x.writtenFields(expr)
	if len(vars) == 0 {
		return
	}

	node := c.Node()
	if kind == Assign || kind == RangeAssign {
		node = expr
	}

	constructs := x.constructs(c)

	for _, v := range vars {
		site := Site{
			Var:        v,
			Node:       node,
			Kind:       kind,
			Constructs: constructs,
			File:       cf,
		}

		x.byVar[v] = append(x.byVar[v], len(x.sites))
		x.sites = append(x.sites, site)
	}
}

// writtenFields returns the fields whose storage a write to expr changes.
//
// For a selector chain like b.inner.x these are x and every enclosing field up to the
// first pointer indirection. A write through a pointer to a struct, *p = v, changes all
// fields of the struct. Assigning a whole struct to a variable or field replaces the value
// and does not write its fields.
func (x *Index) writtenFields(expr ast.Expr) []*types.Var {
	var vars []*types.Var

	expr = ast.Unparen(expr)
	if star, ok := expr.(*ast.StarExpr); ok {
		return structFields(x.info.TypeOf(star), vars, make(map[types.Type]struct{}))
	}

	for {
		switch e := ast.Unparen(expr).(type) {
		case *ast.SelectorExpr:
			selection, ok := x.info.Selections[e]
			if !ok || selection.Kind() != types.FieldVal {
				return vars
			}

			path, direct := fieldPath(selection)
			vars = append(vars, path...)

			if !direct || isPointer(x.info.TypeOf(e.X)) {
				return vars
			}

			expr = e.X

		case *ast.IndexExpr:
			if !isArray(x.info.TypeOf(e.X)) {
				return vars // slice and map elements are not stored in the operand
			}

			expr = e.X

		default:
			return vars
		}
	}
}

// fieldPath returns the selected field followed by the embedded fields it is promoted through,
// innermost first, up to the first embedded pointer. direct is false when the path is cut
// at a pointer.
func fieldPath(selection *types.Selection) (path []*types.Var, direct bool) {
	index := selection.Index()
	fields := make([]*types.Var, 0, len(index))

	typ := selection.Recv()
	for _, i := range index {
		st, ok := deref(typ).Underlying().(*types.Struct)
		if !ok {
			break
		}

		f := st.Field(i)
		fields = append(fields, f)
		typ = f.Type()
	}

	if len(fields) == 0 {
		return nil, false
	}

	path = append(path, fields[len(fields)-1].Origin())

	for i := len(fields) - 2; i >= 0; i-- {
		if isPointer(fields[i].Type()) {
			return path, false
		}

		path = append(path, fields[i].Origin())
	}

	return path, true
}

// structFields appends the fields of struct type t, including fields of nested struct values.
func structFields(t types.Type, vars []*types.Var, seen map[types.Type]struct{}) []*types.Var {
	if t == nil {
		return vars
	}

	t = types.Unalias(t)
	if named, ok := t.(*types.Named); ok {
		if _, ok := seen[named.Origin()]; ok {
			return vars
		}

		seen[named.Origin()] = struct{}{}
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			f := u.Field(i)
			vars = append(vars, f.Origin())
			vars = structFields(f.Type(), vars, seen)
		}

	case *types.Array:
		vars = structFields(u.Elem(), vars, seen)
	}

	return vars
}

func deref(t types.Type) types.Type {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

func isArray(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Array)

	return ok
}

func isPointer(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Pointer)

	return ok
}

// constructs returns the types constructed by the function enclosing c.
func (x *Index) constructs(c inspector.Cursor) []*types.TypeName {
	for e := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		fun, ok := e.Node().(*ast.FuncDecl)
		if !ok {
			return nil // function literals are never constructors
		}

		return x.constructorOf(fun)
	}

	return nil
}

// constructorOf returns the package types a function returns by value or pointer.
func (x *Index) constructorOf(fun *ast.FuncDecl) []*types.TypeName {
	if fun.Recv != nil {
		return nil
	}

	obj, ok := x.info.Defs[fun.Name].(*types.Func)
	if !ok {
		return nil
	}

	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return nil
	}

	var result []*types.TypeName

	for r := range sig.Results().Variables() {
		typ := types.Unalias(r.Type())
		if ptr, ok := typ.(*types.Pointer); ok {
			typ = types.Unalias(ptr.Elem())
		}

		named, ok := typ.(*types.Named)
		if !ok {
			continue
		}

		if tn := named.Origin().Obj(); tn.Pkg() == x.pkg {
			result = append(result, tn)
		}
	}

	return result
}

// unquoteTag returns the value of a struct tag literal.
func unquoteTag(lit *ast.BasicLit) reflect.StructTag {
	if lit == nil {
		return ""
	}

	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return ""
	}

	return reflect.StructTag(s)
}
