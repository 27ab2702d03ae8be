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

// Package ast defines the expression tree the rewriter operates on: the
// sum-typed Expr, the StackId a StackContext addresses, and the
// equality/construction contracts the rewriter depends on.
package ast

import (
	"fmt"

	"github.com/dawn-lang/umc/internal/symtab"
)

// StackId names one operand stack. Subscript defaults to 0; the deshadowing
// pass assigns strictly positive subscripts to shadowed occurrences so that
// no StackContext lexically encloses another with an identical (Name,
// Subscript) pair.
type StackId struct {
	Name      symtab.StackSymbol
	Subscript uint32
}

// Equal reports whether two StackIds name the same stack, including
// subscript.
func (s StackId) Equal(o StackId) bool {
	return s.Name == o.Name && s.Subscript == o.Subscript
}

func (s StackId) key() string {
	return fmt.Sprintf("%d'%d", s.Name, s.Subscript)
}
