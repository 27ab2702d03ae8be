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

// Package rewrite implements the small-step rewriter: the single-step
// reduction relation on (multistack, expression) pairs, and the
// compression-adjacent error taxonomy it reports.
package rewrite

import (
	"fmt"

	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
)

// TooFewValues is returned when an intrinsic's operand stack is shorter
// than the intrinsic requires.
type TooFewValues struct {
	Available int
	Expected  int
}

func (e *TooFewValues) Error() string {
	return fmt.Sprintf("too few values: have %d, need %d", e.Available, e.Expected)
}

// UndefinedTerm is returned by a call-expansion or unquote that names a
// term with no current definition.
type UndefinedTerm struct {
	Name  symtab.TermSymbol
	Table *symtab.Table // may be nil; if set, Error() resolves the name
}

func (e *UndefinedTerm) Error() string {
	if e.Table != nil {
		return fmt.Sprintf("undefined term: %s", e.Table.ResolveTerm(e.Name))
	}
	return fmt.Sprintf("undefined term symbol %d", e.Name)
}

// MissingStackContexts is returned when a rewrite reaches an intrinsic,
// call, or quote that is not enclosed by the two StackContexts the
// rewriter requires to name its primary and secondary stack. This signals
// a malformed program, not a runtime shortage.
type MissingStackContexts struct {
	Expr ast.Expr
}

func (e *MissingStackContexts) Error() string {
	return "missing enclosing stack contexts"
}
