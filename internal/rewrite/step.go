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

package rewrite

import (
	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/store"
	"github.com/dawn-lang/umc/internal/symtab"
	"github.com/dawn-lang/umc/internal/value"
)

// Step performs exactly one rewrite of expr, mutating vms in place where
// the fired rule requires it, and returns the successor expression along
// with the rule that fired. Reduction is leftmost-innermost: when expr is
// a Compose, Step recurses into the head; within a StackContext, the
// innermost reducible node fires. For any reducible (vms, expr) there is
// exactly one next state, so repeated calls on structurally equal copies
// always agree.
//
// On error, vms and expr are left exactly as they were before the call:
// every preconditon (stack depth, term definedness) is checked before any
// mutation, so no value is ever half-popped.
func Step(st *store.Store, vms *value.Multistack, expr ast.Expr) (ast.Expr, Rule, error) {
	switch e := expr.(type) {
	case ast.Compose:
		return stepCompose(st, vms, e)
	case ast.StackContext:
		return stepOuterContext(st, vms, e)
	default:
		return expr, 0, &MissingStackContexts{Expr: expr}
	}
}

func stepCompose(st *store.Store, vms *value.Multistack, c ast.Compose) (ast.Expr, Rule, error) {
	if len(c.Seq) == 0 {
		return c, Empty, nil
	}
	head, rule, err := Step(st, vms, c.Seq[0])
	if err != nil {
		return c, rule, err
	}
	rest := c.Seq[1:]
	if hc, ok := head.(ast.Compose); ok {
		parts := append(append([]ast.Expr{}, hc.Seq...), rest...)
		return ast.NewCompose(parts...), rule, nil
	}
	parts := append([]ast.Expr{head}, rest...)
	return ast.NewCompose(parts...), rule, nil
}

// stepOuterContext handles expr == StackContext(si, inner).
func stepOuterContext(st *store.Store, vms *value.Multistack, sc ast.StackContext) (ast.Expr, Rule, error) {
	switch inner := sc.Inner.(type) {
	case ast.Compose:
		return distributeOrEmpty(sc.Stack, inner)
	case ast.StackContext:
		return stepInnerContext(st, vms, sc.Stack, inner)
	default:
		return nil, 0, &MissingStackContexts{Expr: sc}
	}
}

// stepInnerContext handles expr == StackContext(si, StackContext(sii, grand)).
func stepInnerContext(st *store.Store, vms *value.Multistack, si ast.StackId, mid ast.StackContext) (ast.Expr, Rule, error) {
	sii := mid.Stack
	switch grand := mid.Inner.(type) {
	case ast.StackContext:
		// Two innermost contexts suffice to name push/pop targets; drop the
		// outermost.
		return mid, StkCtx3Redund, nil
	case ast.Compose:
		newMid, rule, err := distributeOrEmpty(sii, grand)
		if err != nil {
			return nil, rule, err
		}
		return ast.StackContext{Stack: si, Inner: newMid}, rule, nil
	case ast.Intrinsic:
		return stepIntrinsic(st, vms, si, sii, grand.Op)
	case ast.Call:
		return stepCall(st, si, sii, grand.Name)
	case ast.Quote:
		vms.At(sii).Push(value.Quote{Expr: grand.Inner})
		return wrap(si, sii, ast.Empty), LitQuote, nil
	default:
		return nil, 0, &MissingStackContexts{Expr: mid}
	}
}

// distributeOrEmpty implements StkCtxEmpty/StkCtxDistr for StackContext(s,
// body) where body is a Compose: empty collapses the whole context node to
// Empty, otherwise the context distributes over the first element and the
// (possibly singleton) remainder.
func distributeOrEmpty(s ast.StackId, body ast.Compose) (ast.Expr, Rule, error) {
	if len(body.Seq) == 0 {
		return ast.Empty, StkCtxEmpty, nil
	}
	first := ast.StackContext{Stack: s, Inner: body.Seq[0]}
	var restInner ast.Expr
	if len(body.Seq) == 2 {
		restInner = body.Seq[1]
	} else {
		restInner = ast.Compose{Seq: append([]ast.Expr{}, body.Seq[1:]...)}
	}
	rest := ast.StackContext{Stack: s, Inner: restInner}
	return ast.NewCompose(first, rest), StkCtxDistr, nil
}

// wrap rebuilds StackContext(si, StackContext(sii, leaf)), the shape every
// intrinsic/LitQuote rule replaces its grandchild within.
func wrap(si, sii ast.StackId, leaf ast.Expr) ast.Expr {
	return ast.StackContext{Stack: si, Inner: ast.StackContext{Stack: sii, Inner: leaf}}
}

func stepIntrinsic(st *store.Store, vms *value.Multistack, si, sii ast.StackId, op ast.Op) (ast.Expr, Rule, error) {
	switch op {
	case ast.OpPush:
		if n := vms.Len(si); n < 1 {
			return nil, 0, &TooFewValues{Available: n, Expected: 1}
		}
		v := vms.At(si).Pop()
		vms.At(sii).Push(v)
		vms.Prune()
		return wrap(si, sii, ast.Empty), IntrPush, nil

	case ast.OpPop:
		if n := vms.Len(sii); n < 1 {
			return nil, 0, &TooFewValues{Available: n, Expected: 1}
		}
		v := vms.At(sii).Pop()
		vms.At(si).Push(v)
		vms.Prune()
		return wrap(si, sii, ast.Empty), IntrPop, nil

	case ast.OpClone:
		if n := vms.Len(sii); n < 1 {
			return nil, 0, &TooFewValues{Available: n, Expected: 1}
		}
		top := vms.At(sii).PeekLast()
		vms.At(sii).Push(top)
		return wrap(si, sii, ast.Empty), IntrClone, nil

	case ast.OpDrop:
		if n := vms.Len(sii); n < 1 {
			return nil, 0, &TooFewValues{Available: n, Expected: 1}
		}
		vms.At(sii).Pop()
		vms.Prune()
		return wrap(si, sii, ast.Empty), IntrDrop, nil

	case ast.OpQuote:
		if n := vms.Len(sii); n < 1 {
			return nil, 0, &TooFewValues{Available: n, Expected: 1}
		}
		v := vms.At(sii).Pop()
		var qe ast.Expr
		switch vv := v.(type) {
		case value.Call:
			qe = ast.Call{Name: vv.Name}
		case value.Quote:
			qe = vv.Expr
		}
		vms.At(sii).Push(value.Quote{Expr: qe})
		return wrap(si, sii, ast.Empty), IntrQuote, nil

	case ast.OpCompose:
		if n := vms.Len(sii); n < 2 {
			return nil, 0, &TooFewValues{Available: n, Expected: 2}
		}
		vals := vms.Values(sii)
		v2, v1 := vals[len(vals)-1], vals[len(vals)-2]
		e2, ok := st.Unquote(v2)
		if !ok {
			return nil, 0, undefinedFrom(v2)
		}
		e1, ok := st.Unquote(v1)
		if !ok {
			return nil, 0, undefinedFrom(v1)
		}
		vms.At(sii).Pop()
		vms.At(sii).Pop()
		vms.At(sii).Push(value.Quote{Expr: ast.NewCompose(e1, e2)})
		return wrap(si, sii, ast.Empty), IntrCompose, nil

	case ast.OpApply:
		if n := vms.Len(sii); n < 1 {
			return nil, 0, &TooFewValues{Available: n, Expected: 1}
		}
		v := vms.At(sii).PeekLast()
		e, ok := st.Unquote(v)
		if !ok {
			return nil, 0, undefinedFrom(v)
		}
		vms.At(sii).Pop()
		// Prune before splicing in the applied body, per the
		// prune-then-replace resolution of the two divergent source
		// sketches.
		vms.Prune()
		return ast.Deshadow(wrap(si, sii, e)), IntrApply, nil

	default:
		return nil, 0, &MissingStackContexts{}
	}
}

// stepCall implements LitCall: the innermost Call is replaced by a clone of
// its definition, keeping both enclosing stack contexts, and the whole
// result is deshadowed since the definition's own StackContexts are now
// lexically nested inside si/sii.
func stepCall(st *store.Store, si, sii ast.StackId, name symtab.TermSymbol) (ast.Expr, Rule, error) {
	def, ok := st.Lookup(name)
	if !ok {
		return nil, 0, &UndefinedTerm{Name: name}
	}
	return ast.Deshadow(wrap(si, sii, def)), LitCall, nil
}

func undefinedFrom(v value.Value) error {
	if c, ok := v.(value.Call); ok {
		return &UndefinedTerm{Name: c.Name}
	}
	return &UndefinedTerm{}
}
