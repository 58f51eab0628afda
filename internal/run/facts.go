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

package run

import (
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/finalfields/internal/astutil"
	"fillmore-labs.com/finalfields/internal/config"
	"fillmore-labs.com/finalfields/internal/gohost"
)

// exportFacts exports a [gohost.FinalFact] for each marked field of a package level type.
func exportFacts(p *analysis.Pass, idx *gohost.Index) {
	scope := p.Pkg.Scope()

	for _, st := range idx.Structs() {
		if st.Name.Parent() != scope {
			continue // local types are not visible to importers
		}

		ts, ok := st.Name.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		for i := range ts.NumFields() {
			v := ts.Field(i)
			if f := idx.Field(v); f != nil && f.Marked {
				p.ExportObjectFact(v, new(gohost.FinalFact))
			}
		}
	}
}

// importedFinal returns a lookup of final markers of imported fields.
func importedFinal(p *analysis.Pass) func(*types.Var) bool {
	return func(v *types.Var) bool {
		if v.Pkg() == nil || v.Pkg() == p.Pkg {
			return false
		}

		return p.ImportObjectFact(v, new(gohost.FinalFact))
	}
}

func final(idx *gohost.Index, hc *gohost.Config, v *types.Var) bool {
	if f := idx.Field(v); f != nil {
		return f.Marked
	}

	return hc.ImportedFinal(v)
}

// skipped reports whether a file is excluded from diagnostics.
func (r *Options) skipped(cf astutil.CurrentFile) bool {
	if cf.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return true
	}

	return cf.NoLint()
}
