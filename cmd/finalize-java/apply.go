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

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/finalfields/internal/edit"
	"fillmore-labs.com/finalfields/internal/java"
)

func (a *app) newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [paths]",
		Short: "Add the final modifier to all eligible fields",
		Long: `Add the final modifier to all eligible fields.

All files are changed in one transaction: when any file cannot be written,
all files are restored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			results, err := a.analyze(ctx, args)
			if err != nil {
				return err
			}

			edits := java.Edits(results)

			err = edit.Do(ctx, func(tx *edit.Tx) error {
				a.logger.DebugContext(ctx, "staging edits", slog.String("tx", tx.ID()), slog.Int("edits", len(edits)))
				tx.Add(edits...)

				return nil
			})
			if err != nil {
				return err
			}

			files := make(map[string]struct{})
			for _, e := range edits {
				files[e.Path] = struct{}{}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d declarations in %d files made final\n", len(edits), len(files))

			return err
		},
	}
}
