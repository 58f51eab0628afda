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

package edit_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/finalfields/internal/edit"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []Edit
		want    string
		wantErr error
	}{
		{
			name:    "insert",
			content: "private int x;",
			edits:   []Edit{Insert("A.java", 8, "final ")},
			want:    "private final int x;",
		},
		{
			name:    "unordered",
			content: "int a; int b;",
			edits:   []Edit{Insert("A.java", 7, "final "), Insert("A.java", 0, "final ")},
			want:    "final int a; final int b;",
		},
		{
			name:    "replace",
			content: "int a;",
			edits:   []Edit{{Path: "A.java", Start: 0, End: 3, Text: "long"}},
			want:    "long a;",
		},
		{
			name:    "empty",
			content: "int a;",
			want:    "int a;",
		},
		{
			name:    "out of range",
			content: "int a;",
			edits:   []Edit{Insert("A.java", 7, "final ")},
			wantErr: ErrRange,
		},
		{
			name:    "overlap",
			content: "int a;",
			edits:   []Edit{{Path: "A.java", Start: 0, End: 3, Text: "long"}, Insert("A.java", 2, "x")},
			wantErr: ErrOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply([]byte(tt.content), tt.edits)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func TestDoCommit(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"A.java": "int a;", "B.java": "int b;"})
	a, b := filepath.Join(dir, "A.java"), filepath.Join(dir, "B.java")

	err := Do(t.Context(), func(tx *Tx) error {
		tx.Add(Insert(a, 0, "final "), Insert(b, 0, "final "))
		assert.Equal(t, 2, tx.Len())
		assert.NotEmpty(t, tx.ID())

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "final int a;", readFile(t, a))
	assert.Equal(t, "final int b;", readFile(t, b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files left behind")
}

func TestDoEmpty(t *testing.T) {
	t.Parallel()

	called := false

	err := Do(t.Context(), func(*Tx) error {
		called = true

		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestDoCallbackError(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"A.java": "int a;"})
	a := filepath.Join(dir, "A.java")

	errAbort := errors.New("abort")

	err := Do(t.Context(), func(tx *Tx) error {
		tx.Add(Insert(a, 0, "final "))

		return errAbort
	})

	require.ErrorIs(t, err, errAbort)
	assert.Equal(t, "int a;", readFile(t, a))
}

func TestDoInvalidEdit(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"A.java": "int a;", "B.java": "int b;"})
	a, b := filepath.Join(dir, "A.java"), filepath.Join(dir, "B.java")

	err := Do(t.Context(), func(tx *Tx) error {
		tx.Add(Insert(a, 0, "final "), Insert(b, 100, "final "))

		return nil
	})

	require.ErrorIs(t, err, ErrRange)
	assert.Equal(t, "int a;", readFile(t, a))
	assert.Equal(t, "int b;", readFile(t, b))
}

func TestDoCanceled(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"A.java": "int a;"})
	a := filepath.Join(dir, "A.java")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := Do(ctx, func(tx *Tx) error {
		tx.Add(Insert(a, 0, "final "))

		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "int a;", readFile(t, a))
}

//nolint:paralleltest // replaces the package rename function
func TestDoRollback(t *testing.T) {
	dir := writeFiles(t, map[string]string{"A.java": "int a;", "B.java": "int b;", "C.java": "int c;"})
	a, b, c := filepath.Join(dir, "A.java"), filepath.Join(dir, "B.java"), filepath.Join(dir, "C.java")

	errDisk := errors.New("disk full")

	defer SetRename(func(oldpath, newpath string) error {
		if newpath == b {
			return errDisk
		}

		return os.Rename(oldpath, newpath)
	})()

	err := Do(t.Context(), func(tx *Tx) error {
		tx.Add(Insert(a, 0, "final "), Insert(b, 0, "final "), Insert(c, 0, "final "))

		return nil
	})

	require.ErrorIs(t, err, errDisk)
	assert.Equal(t, "int a;", readFile(t, a))
	assert.Equal(t, "int b;", readFile(t, b))
	assert.Equal(t, "int c;", readFile(t, c))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "temporary files left behind")
}

func TestChanges(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"A.java": "int a;"})
	a := filepath.Join(dir, "A.java")

	err := Do(t.Context(), func(tx *Tx) error {
		tx.Add(Insert(a, 0, "final "))

		changes, err := tx.Changes()
		require.NoError(t, err)
		require.Len(t, changes, 1)

		assert.Equal(t, "int a;", string(changes[0].Old))
		assert.Equal(t, "final int a;", string(changes[0].New))

		return errors.New("dry run")
	})

	require.Error(t, err)
	assert.Equal(t, "int a;", readFile(t, a))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"A.java": "int a;"})
	a := filepath.Join(dir, "A.java")

	changes, err := Preview(Insert(a, 0, "final "))
	require.NoError(t, err)
	require.Len(t, changes, 1)

	assert.Equal(t, "final int a;", string(changes[0].New))
	assert.Equal(t, "int a;", readFile(t, a))
}
