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

package report

import (
	"context"
	"fmt"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/finalfields/internal/gohost"
)

// Violations reports writes to final fields outside of a constructor of the declaring type.
func Violations(ctx context.Context, p *analysis.Pass, sites []gohost.Site, owner func(*types.Var) *types.TypeName) {
	if len(sites) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ReportViolations").End()

	for _, s := range sites {
		tn := owner(s.Var)
		if s.InConstructorOf(tn) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     s.Node.Pos(),
			End:     s.Node.End(),
			Message: violationMessage(s, tn),
		})
	}
}

func violationMessage(s gohost.Site, owner *types.TypeName) string {
	name := "'" + s.Var.Name() + "'"
	if owner != nil {
		name = fmt.Sprintf("'%s.%s'", owner.Name(), s.Var.Name())
	}

	switch s.Kind {
	case gohost.AddressOf:
		return fmt.Sprintf("Address of final field %s taken outside of a constructor", name)

	case gohost.IncDec:
		return fmt.Sprintf("Final field %s modified outside of a constructor", name)

	default:
		return fmt.Sprintf("Assignment to final field %s outside of a constructor", name)
	}
}
