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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// File size limits.
const (
	// DefaultMaxFileSize is the maximum file size the parser accepts (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024

	// WarnFileSize is the size at which a warning is logged (1MB).
	WarnFileSize = 1 * 1024 * 1024
)

var (
	// ErrFileTooLarge is returned when input content exceeds the maximum file size.
	ErrFileTooLarge = errors.New("file exceeds maximum size limit")

	// ErrInvalidContent is returned when input content is not valid UTF-8.
	ErrInvalidContent = errors.New("invalid file content")

	// ErrClassNotFound is returned when a class name does not resolve in the project.
	ErrClassNotFound = errors.New("class not found")
)

// ParseError is a syntax error in a Java source file.
type ParseError struct {
	Path         string
	Line, Column int
	Missing      bool
}

func (e *ParseError) Error() string {
	what := "syntax error"
	if e.Missing {
		what = "missing token"
	}

	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, what)
}

var tracer = otel.Tracer("fillmore-labs.com/finalfields/java")

// ParserOption configures a [Parser].
type ParserOption func(*Parser)

// WithMaxFileSize sets the maximum file size the parser will accept.
func WithMaxFileSize(bytes int64) ParserOption {
	return func(p *Parser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// Parser builds the [File] model of Java source code.
//
// A Parser is safe for concurrent use; each Parse call creates its own tree-sitter parser.
type Parser struct {
	maxFileSize int64
}

// NewParser creates a new [Parser] with the given options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{maxFileSize: DefaultMaxFileSize}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses Java source code and extracts its classes, fields and field writes.
//
// Syntax errors are reported as *[ParseError], since writes hidden in unparsable code
// could make a field look unmodified.
func (p *Parser) Parse(ctx context.Context, content []byte, path string, readOnly bool) (*File, error) {
	ctx, span := tracer.Start(ctx, "Parser.Parse",
		trace.WithAttributes(
			attribute.String("java.file", path),
			attribute.Int("java.content_size", len(content)),
		),
	)
	defer span.End()

	f, err := p.parse(ctx, content, path, readOnly)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")

		return nil, err
	}

	span.SetAttributes(
		attribute.Int("java.class_count", len(f.Classes)),
		attribute.Int("java.write_count", len(f.writes)),
	)

	return f, nil
}

func (p *Parser) parse(ctx context.Context, content []byte, path string, readOnly bool) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}

	if int64(len(content)) > p.maxFileSize {
		return nil, fmt.Errorf("%s: %w: size %d exceeds limit %d", path, ErrFileTooLarge, len(content), p.maxFileSize)
	}

	if len(content) > WarnFileSize {
		slog.WarnContext(ctx, "parsing large file", slog.String("file", path), slog.Int("size_bytes", len(content)))
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w: content is not valid UTF-8", path, ErrInvalidContent)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, &ParseError{Path: path, Line: 1, Column: 1}
	}

	if root.HasError() {
		return nil, syntaxError(root, path)
	}

	f := &File{Path: path, Content: content, ReadOnly: readOnly}

	b := builder{file: f, src: content}
	b.walk(root, scope{})

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled after extraction: %w", err)
	}

	return f, nil
}

// syntaxError locates the first error node below n.
func syntaxError(n *sitter.Node, path string) *ParseError {
	if n.IsError() || n.IsMissing() {
		pt := n.StartPoint()

		return &ParseError{Path: path, Line: int(pt.Row) + 1, Column: int(pt.Column) + 1, Missing: n.IsMissing()}
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && (c.HasError() || c.IsMissing()) {
			return syntaxError(c, path)
		}
	}

	pt := n.StartPoint()

	return &ParseError{Path: path, Line: int(pt.Row) + 1, Column: int(pt.Column) + 1}
}
