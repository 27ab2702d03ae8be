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
	"fmt"
	"sort"
	"strings"

	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
	"github.com/dawn-lang/umc/internal/value"
)

// PrintStackId renders a StackId as "name" at subscript 0, else "name'k",
// per §6.
func PrintStackId(tbl *symtab.Table, id ast.StackId) string {
	name := tbl.ResolveStack(id.Name)
	if id.Subscript == 0 {
		return name
	}
	return fmt.Sprintf("%s'%d", name, id.Subscript)
}

// PrintExpr renders e back to the same concrete syntax ParseExpr accepts.
func PrintExpr(tbl *symtab.Table, e ast.Expr) string {
	var b strings.Builder
	printExpr(&b, tbl, e)
	return b.String()
}

func printExpr(b *strings.Builder, tbl *symtab.Table, e ast.Expr) {
	switch ex := e.(type) {
	case ast.Compose:
		for i, part := range ex.Seq {
			if i > 0 {
				b.WriteByte(' ')
			}
			printExpr(b, tbl, part)
		}
	default:
		printAtom(b, tbl, e)
	}
}

// printAtom renders e as a single atom, wrapping in square brackets a Compose that
// reaches here only via a nested position (Quote/StackContext bodies use
// printExpr directly, which already juxtaposes without extra grouping).
func printAtom(b *strings.Builder, tbl *symtab.Table, e ast.Expr) {
	switch ex := e.(type) {
	case ast.Intrinsic:
		b.WriteString(ex.Op.String())
	case ast.Call:
		b.WriteString(tbl.ResolveTerm(ex.Name))
	case ast.Quote:
		b.WriteByte('[')
		printExpr(b, tbl, ex.Inner)
		b.WriteByte(']')
	case ast.StackContext:
		b.WriteByte('(')
		b.WriteString(PrintStackId(tbl, ex.Stack))
		b.WriteByte('|')
		printExpr(b, tbl, ex.Inner)
		b.WriteByte(')')
	case ast.Compose:
		b.WriteByte('[')
		printExpr(b, tbl, ex)
		b.WriteByte(']')
	}
}

// PrintValue renders a single operand-stack value: "name" for a Call,
// "[expr]" for a Quote.
func PrintValue(tbl *symtab.Table, v value.Value) string {
	switch vv := v.(type) {
	case value.Call:
		return tbl.ResolveTerm(vv.Name)
	case value.Quote:
		return "[" + PrintExpr(tbl, vv.Expr) + "]"
	default:
		return "?"
	}
}

// PrintMultistack renders every non-empty stack as a space-separated list
// of "⟨stackid|v1 v2 …⟩" literals, per §6, in a stable order (sorted by
// rendered stack id) so output is reproducible across runs.
func PrintMultistack(tbl *symtab.Table, ms *value.Multistack) string {
	ids := ms.Ids()
	rendered := make([]string, len(ids))
	for i, id := range ids {
		vals := ms.Values(id)
		parts := make([]string, len(vals))
		for j, v := range vals {
			parts[j] = PrintValue(tbl, v)
		}
		rendered[i] = fmt.Sprintf("⟨%s|%s⟩", PrintStackId(tbl, id), strings.Join(parts, " "))
	}
	sort.Strings(rendered)
	return strings.Join(rendered, " ")
}
