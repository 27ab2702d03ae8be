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

// Package value holds the runtime values that populate operand stacks, and
// the keyed multi-stack store the rewriter mutates in place.
package value

import (
	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
)

// Value is the only thing that can sit on an operand stack: either a
// reference to a defined term, or a suspended expression.
type Value interface {
	isValue()
	Equal(Value) bool
}

// Call refers to a defined term whose body must itself be a Quote.
type Call struct {
	Name symtab.TermSymbol
}

func (Call) isValue() {}

func (c Call) Equal(o Value) bool {
	oc, ok := o.(Call)
	return ok && oc.Name == c.Name
}

// Quote is a suspended expression value.
type Quote struct {
	Expr ast.Expr
}

func (Quote) isValue() {}

func (q Quote) Equal(o Value) bool {
	oq, ok := o.(Quote)
	return ok && q.Expr.Equal(oq.Expr)
}

// AsExpr returns the expression a Quote value denotes. For a Call it
// returns false: resolving a Call to its quoted definition requires the
// term store, so that is the caller's responsibility.
func AsExpr(v Value) (ast.Expr, bool) {
	q, ok := v.(Quote)
	if !ok {
		return nil, false
	}
	return q.Expr, true
}
