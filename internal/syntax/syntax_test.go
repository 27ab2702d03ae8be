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
	"testing"

	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
)

func TestParseExprAtoms(t *testing.T) {
	tbl := symtab.NewTable()
	p := NewParser(tbl)

	e, err := p.ParseExpr("push pop clone drop quote compose apply")
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	c, ok := e.(ast.Compose)
	if !ok || len(c.Seq) != 7 {
		t.Fatalf("got %#v, want a 7-element Compose", e)
	}
	wantOps := []ast.Op{ast.OpPush, ast.OpPop, ast.OpClone, ast.OpDrop, ast.OpQuote, ast.OpCompose, ast.OpApply}
	for i, op := range wantOps {
		in, ok := c.Seq[i].(ast.Intrinsic)
		if !ok || in.Op != op {
			t.Fatalf("atom %d = %#v, want Intrinsic{%v}", i, c.Seq[i], op)
		}
	}
}

func TestParseStackContextAndQuote(t *testing.T) {
	tbl := symtab.NewTable()
	p := NewParser(tbl)

	e, err := p.ParseExpr("(s|[clone apply])")
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	sc, ok := e.(ast.StackContext)
	if !ok {
		t.Fatalf("got %#v, want StackContext", e)
	}
	if tbl.ResolveStack(sc.Stack.Name) != "s" || sc.Stack.Subscript != 0 {
		t.Fatalf("stack id = %+v, want s'0", sc.Stack)
	}
	q, ok := sc.Inner.(ast.Quote)
	if !ok {
		t.Fatalf("inner = %#v, want Quote", sc.Inner)
	}
	inner, ok := q.Inner.(ast.Compose)
	if !ok || len(inner.Seq) != 2 {
		t.Fatalf("quote body = %#v, want a 2-element Compose", q.Inner)
	}
}

func TestParseSubscriptedStackId(t *testing.T) {
	tbl := symtab.NewTable()
	p := NewParser(tbl)
	e, err := p.ParseExpr("(s'3|drop)")
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	sc := e.(ast.StackContext)
	if sc.Stack.Subscript != 3 {
		t.Fatalf("subscript = %d, want 3", sc.Stack.Subscript)
	}
}

func TestParseTermDef(t *testing.T) {
	tbl := symtab.NewTable()
	p := NewParser(tbl)
	def, err := p.ParseTermDef("term swap = (s1|push)(s2|push)(s1|pop)(s2|pop);")
	if err != nil {
		t.Fatalf("ParseTermDef: %v", err)
	}
	if tbl.ResolveTerm(def.Name) != "swap" {
		t.Fatalf("name = %q, want swap", tbl.ResolveTerm(def.Name))
	}
	c, ok := def.Body.(ast.Compose)
	if !ok || len(c.Seq) != 4 {
		t.Fatalf("body = %#v, want a 4-element Compose", def.Body)
	}
}

// TestRoundTrip is invariant 6 of spec.md §8: pretty-printing then parsing
// an expression yields a structurally equal expression.
func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"push pop clone drop quote compose apply",
		"(s|[clone apply])",
		"(s1|push)(s2|push)(s1|pop)(s2|pop)",
		"foo bar (baz|qux)",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			tbl := symtab.NewTable()
			p := NewParser(tbl)
			e1, err := p.ParseExpr(src)
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", src, err)
			}
			printed := PrintExpr(tbl, e1)
			e2, err := p.ParseExpr(printed)
			if err != nil {
				t.Fatalf("ParseExpr(printed %q): %v", printed, err)
			}
			if !e1.Equal(e2) {
				t.Fatalf("round trip mismatch: %v printed as %q reparsed as %v", e1, printed, e2)
			}
		})
	}
}
