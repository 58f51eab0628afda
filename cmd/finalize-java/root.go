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
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fillmore-labs.com/finalfields/internal/java"
)

const rootLongDescription = `finalize-java finds fields of Java classes that are only assigned in
constructors and adds the final modifier to them.

Paths are source directories or files (default: current directory). Files below
--library roots are read, but never changed.

Settings are read from finalize.yaml and FINALIZE_* environment variables.`

// app holds the state shared by all commands.
type app struct {
	v        *viper.Viper
	settings settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: newConfig()}

	var configFile string

	cmd := &cobra.Command{
		Use:          "finalize-java",
		Short:        "Add the final modifier to Java fields",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(a.v, configFile); err != nil {
				return err
			}

			s, err := loadSettings(a.v)
			if err != nil {
				return err
			}

			a.settings = s
			a.logger = configureLogger(a.v, s)
			slog.SetDefault(a.logger)

			a.logger.DebugContext(cmd.Context(), "configuration loaded", slog.Any("config", s.javaConfig()))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, configFlagName, "", "config file (default ./finalize.yaml)")
	flags.String(classFlagName, "", "only analyze the named class")
	flags.Bool(inheritedFlagName, false, "include fields inherited from superclasses")
	flags.Bool(honorMockFlagName, true, "skip fields with mock annotations")
	flags.Bool(haltFlagName, false, "stop examining a class at its first read-only or mocked field")
	flags.StringSlice(libraryFlagName, nil, "read-only source roots (can be repeated)")
	flags.StringSlice(mockFlagName, java.DefaultMockAnnotations, "mock annotations (can be repeated)")
	flags.Int(concurrencyFlagName, 0, "number of files parsed in parallel (default GOMAXPROCS)")
	flags.String(logFileFlagName, defaultLogFilename, "log file")
	flags.BoolP(verboseFlagName, "v", false, "log debug messages")

	cobra.CheckErr(bindFlags(a.v, flags))

	cmd.AddCommand(a.newCheckCmd(), a.newDiffCmd(), a.newApplyCmd(), newVersionCmd())

	return cmd
}

// analyze loads the Java sources below paths and selects the fields that can be made final.
// A class name that does not resolve yields no results.
func (a *app) analyze(ctx context.Context, paths []string) ([]java.Result, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	p, err := java.Load(ctx, java.LoadConfig{
		Roots:       paths,
		Libraries:   a.settings.Libraries,
		Concurrency: a.settings.Concurrency,
	})
	if err != nil {
		return nil, err
	}

	results, err := p.Analyze(ctx, a.settings.javaConfig())
	if errors.Is(err, java.ErrClassNotFound) {
		a.logger.WarnContext(ctx, "nothing to do", slog.Any("error", err))

		return nil, nil
	}

	return results, err
}
