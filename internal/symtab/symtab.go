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

// Package symtab interns textual names into compact, comparable symbol
// identifiers for the two disjoint namespaces the evaluator needs: term
// names and stack names.
package symtab

// TermSymbol identifies a term name. Equality is identifier equality;
// resolving it back to text requires the Table that produced it.
type TermSymbol int32

// StackSymbol identifies a stack name, independent of any subscript.
type StackSymbol int32

// interner is a bijection between strings and small integers, scoped to a
// single namespace.
type interner struct {
	byText map[string]int32
	byID   []string
}

func newInterner() *interner {
	return &interner{byText: make(map[string]int32)}
}

func (in *interner) intern(text string) int32 {
	if id, ok := in.byText[text]; ok {
		return id
	}
	id := int32(len(in.byID))
	in.byID = append(in.byID, text)
	in.byText[text] = id
	return id
}

func (in *interner) resolve(id int32) string {
	return in.byID[id]
}

// Table owns the term-name and stack-name interners for one evaluator
// instance. A Table must be shared by everything that produces or consumes
// TermSymbol/StackSymbol values, since symbols from different Tables are
// not comparable in any meaningful way even when their integer values
// coincide.
type Table struct {
	terms  *interner
	stacks *interner
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{terms: newInterner(), stacks: newInterner()}
}

// InternTerm returns the TermSymbol for name, interning it if this is the
// first time name has been seen.
func (t *Table) InternTerm(name string) TermSymbol {
	return TermSymbol(t.terms.intern(name))
}

// ResolveTerm returns the text a TermSymbol was interned from.
func (t *Table) ResolveTerm(s TermSymbol) string {
	return t.terms.resolve(int32(s))
}

// InternStack returns the StackSymbol for name, interning it if this is the
// first time name has been seen.
func (t *Table) InternStack(name string) StackSymbol {
	return StackSymbol(t.stacks.intern(name))
}

// ResolveStack returns the text a StackSymbol was interned from.
func (t *Table) ResolveStack(s StackSymbol) string {
	return t.stacks.resolve(int32(s))
}
