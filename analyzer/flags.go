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

package analyzer

import (
	"flag"

	"fillmore-labs.com/finalfields/internal/config"
	"fillmore-labs.com/finalfields/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newAnalyzerValue(&r.Analyzers, config.SuggestAnalyzer), "suggest", "suggest fields to mark final")
	flags.Var(newAnalyzerValue(&r.Analyzers, config.EnforceAnalyzer), "enforce", "report writes to final fields outside of constructors")

	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeExported), "exported", "suggest exported fields")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeInherited), "inherited", "suggest fields promoted from embedded structs")
	flags.Var(newBehaviorValue(&r.Behavior, config.HonorInjectTags), "honor-inject", "skip fields with injection tags")
	flags.Var(newBehaviorValue(&r.Behavior, config.HaltOnReadOnly), "halt", "stop at the first non-editable or injected field")

	flags.Var((*listValue)(&r.InjectTags), "inject-tags", "comma separated struct tag keys of injected fields")
}

func newAnalyzerValue(flags *config.Analyzers, value config.AnalyzerFlags) boolValue[config.AnalyzerFlags, *config.Analyzers] {
	return boolValue[config.AnalyzerFlags, *config.Analyzers]{flags: flags, value: value}
}

func newBehaviorValue(flags *config.Behavior, value config.Config) boolValue[config.Config, *config.Behavior] {
	return boolValue[config.Config, *config.Behavior]{flags: flags, value: value}
}
