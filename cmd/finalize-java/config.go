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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"fillmore-labs.com/finalfields/internal/finality"
	"fillmore-labs.com/finalfields/internal/java"
)

const (
	configBaseName = "finalize"
	envPrefix      = "FINALIZE"

	classFlagName       = "class"
	inheritedFlagName   = "inherited"
	honorMockFlagName   = "honor-mock"
	haltFlagName        = "halt-on-read-only"
	libraryFlagName     = "library"
	mockFlagName        = "mock-annotation"
	concurrencyFlagName = "concurrency"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"
	configFlagName      = "config"
	formatFlagName      = "format"
	noColorFlagName     = "no-color"
	statFlagName        = "stat"

	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".finalize.log"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// settings is the merged configuration of flags, environment and config file.
type settings struct {
	Class       string   `mapstructure:"class"`
	Inherited   bool     `mapstructure:"inherited"`
	HonorMock   bool     `mapstructure:"honor-mock"`
	Halt        bool     `mapstructure:"halt-on-read-only"`
	Libraries   []string `mapstructure:"library"         validate:"dive,required"`
	Mocks       []string `mapstructure:"mock-annotation" validate:"dive,required"`
	Concurrency int      `mapstructure:"concurrency"     validate:"gte=0"`
	Format      string   `mapstructure:"format"          validate:"omitempty,oneof=table yaml"`
	LogFile     string   `mapstructure:"log-file"`
	Verbose     bool     `mapstructure:"verbose"`
}

var validate = validator.New()

// newConfig returns a viper instance with defaults, environment binding and the optional
// config file read.
func newConfig() *viper.Viper {
	v := viper.New()

	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(honorMockFlagName, true)
	v.SetDefault(mockFlagName, java.DefaultMockAnnotations)
	v.SetDefault(formatFlagName, "table")
	v.SetDefault(logFileFlagName, defaultLogFilename)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// readConfig reads the config file, if any. A missing default config file is not an error.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// bindFlags wires flags to viper keys of the same name, so config and environment values
// feed the flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var errs []error

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == configFlagName {
			return
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			errs = append(errs, err)
		}
	})

	return errors.Join(errs...)
}

func loadSettings(v *viper.Viper) (settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode config: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return s, fmt.Errorf("invalid config: %w", err)
	}

	return s, nil
}

func (s settings) javaConfig() java.Config {
	return java.Config{
		Options: finality.Options{
			IncludeInheritedFields: s.Inherited,
			HonorMockAnnotation:    s.HonorMock,
			HaltOnReadOnlyField:    s.Halt,
		},
		MockAnnotations: s.Mocks,
		Class:           s.Class,
	}
}

// configureLogger returns a logger writing to a rotating log file. It logs at Info,
// at Debug when verbose.
func configureLogger(v *viper.Viper, s settings) *slog.Logger {
	logPath := strings.TrimSpace(s.LogFile)
	if logPath == "" {
		logPath = defaultLogFilename
	}

	level := slog.LevelInfo
	if s.Verbose {
		level = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})

	return slog.New(handler)
}
