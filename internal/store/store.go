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

// Package store holds the term-definition store: the bidirectional map
// between term names and their defining expressions that the rewriter's
// call-expansion rules and compression pass both consult.
package store

import (
	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
	"github.com/dawn-lang/umc/internal/value"
)

// Store owns the forward name->Expr map and a reverse Expr->name hint used
// only by compression. The reverse map may go stale when a name is
// redefined; compression always re-verifies against the forward map before
// trusting it.
type Store struct {
	forward map[symtab.TermSymbol]ast.Expr
	reverse map[string]symtab.TermSymbol
}

// New returns an empty term-definition store.
func New() *Store {
	return &Store{
		forward: make(map[symtab.TermSymbol]ast.Expr),
		reverse: make(map[string]symtab.TermSymbol),
	}
}

// Define deshadows body and installs it as the definition of name,
// overwriting both the forward and reverse maps. It returns the previous
// body, if any, so callers can report a redefinition.
func (s *Store) Define(name symtab.TermSymbol, body ast.Expr) (ast.Expr, bool) {
	body = ast.Deshadow(body)
	prev, had := s.forward[name]
	s.forward[name] = body
	s.reverse[ast.Key(body)] = name
	return prev, had
}

// Lookup returns the defining expression for name, if any.
func (s *Store) Lookup(name symtab.TermSymbol) (ast.Expr, bool) {
	e, ok := s.forward[name]
	return e, ok
}

// Names returns every currently defined term name.
func (s *Store) Names() []symtab.TermSymbol {
	names := make([]symtab.TermSymbol, 0, len(s.forward))
	for n := range s.forward {
		names = append(names, n)
	}
	return names
}

// Clear removes every definition.
func (s *Store) Clear() {
	s.forward = make(map[symtab.TermSymbol]ast.Expr)
	s.reverse = make(map[string]symtab.TermSymbol)
}

// Unquote returns the expression denoted by a value: a Quote's own
// expression (via value.AsExpr), or the quoted body a Call's definition
// resolves to. An undefined or non-quote-bodied Call is the caller's error
// to report as UndefinedTerm.
func (s *Store) Unquote(v value.Value) (ast.Expr, bool) {
	if e, ok := value.AsExpr(v); ok {
		return e, true
	}
	c, ok := v.(value.Call)
	if !ok {
		return nil, false
	}
	e, ok := s.forward[c.Name]
	if !ok {
		return nil, false
	}
	q, ok := e.(ast.Quote)
	if !ok {
		return nil, false
	}
	return q.Inner, true
}

// Compress replaces every Quote value on every stack whose expression
// equals some defined term's body with a Call to that name. It returns
// whether any replacement happened. Compression never changes semantics:
// Call(n) with a quote-bodied definition behaves identically to the quote
// itself under every rewrite rule.
func (s *Store) Compress(vms *value.Multistack) bool {
	compressed := false
	for _, id := range vms.Ids() {
		vals := vms.Values(id)
		for i, v := range vals {
			q, ok := v.(value.Quote)
			if !ok {
				continue
			}
			key := ast.Key(ast.Quote{Inner: q.Expr})
			name, ok := s.reverse[key]
			if !ok {
				continue
			}
			def, ok := s.forward[name]
			if !ok || ast.Key(def) != key {
				continue
			}
			vms.Replace(id, i, value.Call{Name: name})
			compressed = true
		}
	}
	return compressed
}
