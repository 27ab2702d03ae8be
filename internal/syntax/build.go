// Copyright 2021 The UMC Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import (
	"strconv"

	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
)

// intrinsicNames maps the reserved atom spellings to their Op, per the
// intrinsic production in §6's grammar. Anything else parsed as an Ident is
// a Call.
var intrinsicNames = map[string]ast.Op{
	"push":    ast.OpPush,
	"pop":     ast.OpPop,
	"clone":   ast.OpClone,
	"drop":    ast.OpDrop,
	"quote":   ast.OpQuote,
	"compose": ast.OpCompose,
	"apply":   ast.OpApply,
}

// build turns a parsed grammarExpr into an internal/ast.Expr, interning term
// and stack names into tbl as it goes.
func build(tbl *symtab.Table, g *grammarExpr) ast.Expr {
	parts := make([]ast.Expr, len(g.Atoms))
	for i, a := range g.Atoms {
		parts[i] = buildAtom(tbl, a)
	}
	return ast.NewCompose(parts...)
}

func buildAtom(tbl *symtab.Table, a *grammarAtom) ast.Expr {
	switch {
	case a.Context != nil:
		return buildStackContext(tbl, a.Context)
	case a.Quote != nil:
		return ast.Quote{Inner: build(tbl, a.Quote.Body)}
	default:
		if op, ok := intrinsicNames[a.Name]; ok {
			return ast.Intrinsic{Op: op}
		}
		return ast.Call{Name: tbl.InternTerm(a.Name)}
	}
}

func buildStackContext(tbl *symtab.Table, g *grammarStackContext) ast.Expr {
	return ast.StackContext{
		Stack: buildStackId(tbl, g.Stack),
		Inner: build(tbl, g.Body),
	}
}

func buildStackId(tbl *symtab.Table, g *grammarStackId) ast.StackId {
	var sub uint32
	if g.Subscript != nil {
		n, _ := strconv.ParseUint(*g.Subscript, 10, 32)
		sub = uint32(n)
	}
	return ast.StackId{Name: tbl.InternStack(g.Name), Subscript: sub}
}
