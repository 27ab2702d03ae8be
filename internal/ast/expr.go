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

package ast

import (
	"fmt"
	"strings"

	"github.com/dawn-lang/umc/internal/symtab"
)

// Expr is the sum type of the expression tree: Intrinsic, Call, Quote,
// Compose, or StackContext. The zero-value-free set of concrete types below
// are the only implementations; nothing outside this package should add
// one.
type Expr interface {
	isExpr()
	// Equal reports structural equality. Two Composes of different shapes
	// (e.g. a singleton Compose vs. its bare element) are NOT equal as
	// data; callers that build Composes should go through NewCompose so
	// that equal expressions are always built the same way.
	Equal(Expr) bool
	// key returns a canonical string encoding used only as a map key (for
	// the term-store's reverse index); it is not a user-facing rendering.
	key() string
}

// Op names one of the seven built-in intrinsic operations.
type Op int

const (
	OpPush Op = iota
	OpPop
	OpClone
	OpDrop
	OpQuote
	OpCompose
	OpApply
)

var opNames = [...]string{"push", "pop", "clone", "drop", "quote", "compose", "apply"}

func (o Op) String() string {
	if int(o) < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Intrinsic is a primitive operation with built-in semantics.
type Intrinsic struct {
	Op Op
}

func (Intrinsic) isExpr() {}

func (i Intrinsic) Equal(o Expr) bool {
	oi, ok := o.(Intrinsic)
	return ok && oi.Op == i.Op
}

func (i Intrinsic) key() string { return "i:" + i.Op.String() }

// Call invokes a user-defined term by name.
type Call struct {
	Name symtab.TermSymbol
}

func (Call) isExpr() {}

func (c Call) Equal(o Expr) bool {
	oc, ok := o.(Call)
	return ok && oc.Name == c.Name
}

func (c Call) key() string { return fmt.Sprintf("c:%d", c.Name) }

// Quote suspends a sub-expression as data until apply executes it.
type Quote struct {
	Inner Expr
}

func (Quote) isExpr() {}

func (q Quote) Equal(o Expr) bool {
	oq, ok := o.(Quote)
	return ok && q.Inner.Equal(oq.Inner)
}

func (q Quote) key() string { return "q:(" + q.Inner.key() + ")" }

// Compose is a left-to-right juxtaposition of expressions. The invariant
// maintained by NewCompose (and relied on throughout the rewriter) is that
// no element is itself a Compose and the sequence never has length 1; the
// empty Compose is the canonical "done" expression.
type Compose struct {
	Seq []Expr
}

func (Compose) isExpr() {}

func (c Compose) Equal(o Expr) bool {
	oc, ok := o.(Compose)
	if !ok || len(oc.Seq) != len(c.Seq) {
		return false
	}
	for i := range c.Seq {
		if !c.Seq[i].Equal(oc.Seq[i]) {
			return false
		}
	}
	return true
}

func (c Compose) key() string {
	var b strings.Builder
	b.WriteString("s:[")
	for i, e := range c.Seq {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.key())
	}
	b.WriteByte(']')
	return b.String()
}

// StackContext executes Inner with Stack as its addressed stack.
type StackContext struct {
	Stack StackId
	Inner Expr
}

func (StackContext) isExpr() {}

func (s StackContext) Equal(o Expr) bool {
	os, ok := o.(StackContext)
	return ok && s.Stack.Equal(os.Stack) && s.Inner.Equal(os.Inner)
}

func (s StackContext) key() string {
	return "x:" + s.Stack.key() + ":(" + s.Inner.key() + ")"
}

// Empty is the canonical empty Compose, the "done" expression.
var Empty Expr = Compose{}

// IsEmpty reports whether e is the canonical empty Compose.
func IsEmpty(e Expr) bool {
	c, ok := e.(Compose)
	return ok && len(c.Seq) == 0
}

// Key returns the canonical map-key encoding of e, exported for use by the
// term-definition store's reverse index.
func Key(e Expr) string { return e.key() }

// NewCompose builds a Compose from parts, flattening any top-level Compose
// among them and collapsing the result per §4.1: a single element is
// returned bare, and zero elements yield the canonical Empty.
func NewCompose(parts ...Expr) Expr {
	var seq []Expr
	for _, p := range parts {
		if c, ok := p.(Compose); ok {
			seq = append(seq, c.Seq...)
		} else {
			seq = append(seq, p)
		}
	}
	switch len(seq) {
	case 0:
		return Empty
	case 1:
		return seq[0]
	default:
		return Compose{Seq: seq}
	}
}
