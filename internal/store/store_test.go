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

package store

import (
	"testing"

	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
	"github.com/dawn-lang/umc/internal/value"
)

func TestCompressFoldsMatchingQuote(t *testing.T) {
	tbl := symtab.NewTable()
	st := New()
	falseName := tbl.InternTerm("false")
	st.Define(falseName, ast.Quote{Inner: ast.NewCompose(ast.Intrinsic{Op: ast.OpDrop})})

	vms := value.NewMultistack()
	s := ast.StackId{Name: tbl.InternStack("s")}
	vms.At(s).Push(value.Quote{Expr: ast.NewCompose(ast.Intrinsic{Op: ast.OpDrop})})

	if compressed := st.Compress(vms); !compressed {
		t.Fatal("Compress reported no change for a matching quote")
	}
	got := vms.Values(s)
	if len(got) != 1 {
		t.Fatalf("s = %v, want one value", got)
	}
	call, ok := got[0].(value.Call)
	if !ok || call.Name != falseName {
		t.Fatalf("got %v, want Call{false}", got[0])
	}
}

func TestCompressLeavesUnmatchedQuoteAlone(t *testing.T) {
	tbl := symtab.NewTable()
	st := New()
	st.Define(tbl.InternTerm("false"), ast.NewCompose(ast.Intrinsic{Op: ast.OpDrop}))

	vms := value.NewMultistack()
	s := ast.StackId{Name: tbl.InternStack("s")}
	unmatched := value.Quote{Expr: ast.NewCompose(ast.Intrinsic{Op: ast.OpClone})}
	vms.At(s).Push(unmatched)

	if compressed := st.Compress(vms); compressed {
		t.Fatal("Compress folded a quote with no matching definition")
	}
	got := vms.Values(s)
	if len(got) != 1 || !got[0].Equal(unmatched) {
		t.Fatalf("s = %v, want unchanged %v", got, unmatched)
	}
}

// TestCompressReverifiesStaleReverseEntry covers the "reverse map is a
// hint" contract: redefining a name to a new body must not let compression
// fold a quote matching the *old* body into a Call to the redefined name.
func TestCompressReverifiesStaleReverseEntry(t *testing.T) {
	tbl := symtab.NewTable()
	st := New()
	name := tbl.InternTerm("t")
	oldBody := ast.NewCompose(ast.Intrinsic{Op: ast.OpDrop})
	st.Define(name, ast.Quote{Inner: oldBody})
	st.Define(name, ast.Quote{Inner: ast.NewCompose(ast.Intrinsic{Op: ast.OpClone})}) // redefine

	vms := value.NewMultistack()
	s := ast.StackId{Name: tbl.InternStack("s")}
	stale := value.Quote{Expr: oldBody}
	vms.At(s).Push(stale)

	if compressed := st.Compress(vms); compressed {
		t.Fatal("Compress trusted a stale reverse-map entry without re-verifying against the forward map")
	}
	got := vms.Values(s)
	if len(got) != 1 || !got[0].Equal(stale) {
		t.Fatalf("s = %v, want unchanged %v", got, stale)
	}
}

func TestUnquoteResolvesCallThroughQuoteBodiedDefinition(t *testing.T) {
	tbl := symtab.NewTable()
	st := New()
	name := tbl.InternTerm("false")
	body := ast.NewCompose(ast.Intrinsic{Op: ast.OpDrop})
	st.Define(name, ast.Quote{Inner: body})

	e, ok := st.Unquote(value.Call{Name: name})
	if !ok {
		t.Fatal("Unquote failed on a Call to a quote-bodied definition")
	}
	if !e.Equal(body) {
		t.Fatalf("Unquote = %v, want %v", e, body)
	}
}

func TestUnquoteRejectsCallToNonQuoteBody(t *testing.T) {
	tbl := symtab.NewTable()
	st := New()
	name := tbl.InternTerm("swap")
	st.Define(name, ast.Intrinsic{Op: ast.OpClone})

	if _, ok := st.Unquote(value.Call{Name: name}); ok {
		t.Fatal("Unquote succeeded on a Call whose definition is not a Quote")
	}
}
