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

package edit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrOverlap is returned when two edits of a file overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrRange is returned when an edit lies outside of its file.
	ErrRange = errors.New("edit out of range")
)

// Edit replaces the bytes [Start, End) of a file with Text.
type Edit struct {
	Path       string
	Start, End int
	Text       string
}

// Insert returns an [Edit] inserting text at offset.
func Insert(path string, offset int, text string) Edit {
	return Edit{Path: path, Start: offset, End: offset, Text: text}
}

// Change is the old and new content of a file.
type Change struct {
	Path     string
	Old, New []byte
}

// Apply applies edits of a single file to content. Insertions at the same offset keep
// their order.
func Apply(content []byte, edits []Edit) ([]byte, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int { return a.Start - b.Start })

	var (
		out  = make([]byte, 0, len(content))
		last = 0
	)

	for _, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(content) {
			return nil, fmt.Errorf("%s: %w: [%d, %d) in %d bytes", e.Path, ErrRange, e.Start, e.End, len(content))
		}

		if e.Start < last {
			return nil, fmt.Errorf("%s: %w at offset %d", e.Path, ErrOverlap, e.Start)
		}

		out = append(out, content[last:e.Start]...)
		out = append(out, e.Text...)
		last = e.End
	}

	return append(out, content[last:]...), nil
}

// Tx is a set of staged edits over several files, committed all or nothing.
type Tx struct {
	id    string
	edits map[string][]Edit
	order []string
}

func newTx() *Tx {
	return &Tx{id: uuid.NewString(), edits: make(map[string][]Edit)}
}

// ID identifies the transaction in logs.
func (tx *Tx) ID() string {
	return tx.id
}

// Add stages edits.
func (tx *Tx) Add(edits ...Edit) {
	for _, e := range edits {
		if _, ok := tx.edits[e.Path]; !ok {
			tx.order = append(tx.order, e.Path)
		}

		tx.edits[e.Path] = append(tx.edits[e.Path], e)
	}
}

// Len returns the number of staged edits.
func (tx *Tx) Len() int {
	n := 0
	for _, edits := range tx.edits {
		n += len(edits)
	}

	return n
}

// Changes reads the affected files and returns their content with the staged edits applied,
// in the order the files were first edited. Nothing is written.
func (tx *Tx) Changes() ([]Change, error) {
	changes := make([]Change, 0, len(tx.order))

	for _, path := range tx.order {
		old, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		updated, err := Apply(old, tx.edits[path])
		if err != nil {
			return nil, err
		}

		changes = append(changes, Change{Path: path, Old: old, New: updated})
	}

	return changes, nil
}

// Preview returns the changes edits would make without writing anything.
func Preview(edits ...Edit) ([]Change, error) {
	tx := newTx()
	tx.Add(edits...)

	return tx.Changes()
}

// Do runs fn with a new transaction and commits the staged edits when fn returns nil.
// When fn fails nothing is written. An empty transaction commits without touching any file.
//
// Commit writes every file to a temporary file and renames it into place. When a write
// fails, all files already written are restored.
func Do(ctx context.Context, fn func(tx *Tx) error) error {
	tx := newTx()
	logger := slog.Default().With(slog.String("tx", tx.id))

	if err := fn(tx); err != nil {
		logger.DebugContext(ctx, "transaction rolled back", slog.Any("error", err))

		return err
	}

	if tx.Len() == 0 {
		logger.DebugContext(ctx, "empty transaction committed")

		return nil
	}

	changes, err := tx.Changes()
	if err != nil {
		return err
	}

	if err := commit(ctx, changes); err != nil {
		logger.ErrorContext(ctx, "transaction failed", slog.Any("error", err))

		return err
	}

	logger.InfoContext(ctx, "transaction committed", slog.Int("files", len(changes)), slog.Int("edits", tx.Len()))

	return nil
}

func commit(ctx context.Context, changes []Change) error {
	var written []Change

	for _, c := range changes {
		err := ctx.Err()
		if err == nil {
			err = writeFile(c.Path, c.New)
		}

		if err != nil {
			return errors.Join(err, restore(written))
		}

		written = append(written, c)
	}

	return nil
}

func restore(written []Change) error {
	var errs []error

	for _, c := range slices.Backward(written) {
		if err := writeFile(c.Path, c.Old); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", c.Path, err))
		}
	}

	return errors.Join(errs...)
}

// rename is replaced in tests.
var rename = os.Rename

// writeFile atomically replaces the content of an existing file, keeping its permissions.
func writeFile(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	name := tmp.Name()

	_, err = tmp.Write(content)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}

	if err == nil {
		err = os.Chmod(name, info.Mode()&fs.ModePerm)
	}

	if err == nil {
		err = rename(name, path)
	}

	if err != nil {
		_ = os.Remove(name)

		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
