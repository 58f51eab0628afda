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
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LoadConfig configures [Load].
type LoadConfig struct {
	// Roots are source directories or files. Their files are editable.
	Roots []string

	// Libraries are read-only source directories or files.
	Libraries []string

	// Parser parses each file. Defaults to [NewParser].
	Parser *Parser

	// Concurrency limits the number of files parsed in parallel. Defaults to GOMAXPROCS.
	Concurrency int
}

type source struct {
	path     string
	readOnly bool
}

// Load parses all Java files below the configured roots and builds their [Project].
func Load(ctx context.Context, cfg LoadConfig) (*Project, error) {
	sources, err := collect(cfg.Roots, cfg.Libraries)
	if err != nil {
		return nil, err
	}

	parser := cfg.Parser
	if parser == nil {
		parser = NewParser()
	}

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	files := make([]*File, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, src := range sources {
		g.Go(func() error {
			content, err := os.ReadFile(src.path)
			if err != nil {
				return err
			}

			readOnly := src.readOnly || !writable(src.path)

			f, err := parser.Parse(gctx, content, src.path, readOnly)
			if err != nil {
				return err
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "java sources loaded", slog.Int("files", len(files)))

	return NewProject(files...), nil
}

// collect lists the Java files below roots and libraries, sorted by path. A file reachable
// from both is read-only.
func collect(roots, libraries []string) ([]source, error) {
	readOnly := make(map[string]bool)

	add := func(paths []string, library bool) error {
		for _, root := range paths {
			err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if d.IsDir() {
					if path != root && strings.HasPrefix(d.Name(), ".") {
						return filepath.SkipDir
					}

					return nil
				}

				if filepath.Ext(path) != ".java" {
					return nil
				}

				path = filepath.Clean(path)
				readOnly[path] = readOnly[path] || library

				return nil
			})
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}
		}

		return nil
	}

	if err := add(roots, false); err != nil {
		return nil, err
	}

	if err := add(libraries, true); err != nil {
		return nil, err
	}

	sources := make([]source, 0, len(readOnly))
	for path, ro := range readOnly {
		sources = append(sources, source{path: path, readOnly: ro})
	}

	slices.SortFunc(sources, func(a, b source) int { return strings.Compare(a.path, b.path) })

	return sources, nil
}
