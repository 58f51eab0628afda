// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/finalfields/internal/config"
	"fillmore-labs.com/finalfields/internal/finality"
	"fillmore-labs.com/finalfields/internal/gohost"
	"fillmore-labs.com/finalfields/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the finalfields analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("finalfields: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "FinalFields")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Stage 1: Collect struct declarations and field writes
	idx := gohost.NewIndex(ctx, p.Fset, p.Pkg, p.TypesInfo, in)

	exportFacts(p, idx)

	hc := &gohost.Config{
		IncludeGenerated: r.Behavior.Enabled(config.IncludeGenerated),
		IncludeExported:  r.Behavior.Enabled(config.IncludeExported),
		InjectTags:       r.InjectTags,
		ImportedFinal:    importedFinal(p),
	}

	// Stage 2: Suggest final markers
	if r.Analyzers.Enabled(config.SuggestAnalyzer) {
		r.suggest(ctx, p, idx, hc)
	}

	// Stage 3: Report writes to final fields
	if r.Analyzers.Enabled(config.EnforceAnalyzer) {
		r.enforce(ctx, p, idx, hc)
	}

	return nil, nil
}

func (r *Options) suggest(ctx context.Context, p *analysis.Pass, idx *gohost.Index, hc *gohost.Config) {
	defer trace.StartRegion(ctx, "Suggest").End()

	opts := config.FinalityOptions(r.Behavior)
	marked := make(report.Marked)

	for _, st := range idx.Structs() {
		if r.skipped(st.File) || st.File.NoLintType(st.Decl, st.Spec) {
			continue
		}

		fields := finality.Select[*types.Var](idx.Host(st, hc), opts)

		report.Candidates(ctx, p, idx, st, fields, marked)
	}
}

func (r *Options) enforce(ctx context.Context, p *analysis.Pass, idx *gohost.Index, hc *gohost.Config) {
	defer trace.StartRegion(ctx, "Enforce").End()

	var sites []gohost.Site

	for _, s := range idx.Sites() {
		if r.skipped(s.File) || s.File.NoLintComment(s.Node.Pos()) {
			continue
		}

		if final(idx, hc, s.Var) {
			sites = append(sites, s)
		}
	}

	report.Violations(ctx, p, sites, func(v *types.Var) *types.TypeName {
		if f := idx.Field(v); f != nil {
			return f.Owner.Name
		}

		return nil
	})
}
