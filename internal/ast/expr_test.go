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

import "testing"

func TestNewComposeCollapsesAndFlattens(t *testing.T) {
	push := Intrinsic{Op: OpPush}
	pop := Intrinsic{Op: OpPop}
	clone := Intrinsic{Op: OpClone}

	tests := []struct {
		name string
		in   []Expr
		want Expr
	}{
		{"empty", nil, Empty},
		{"single element returned bare", []Expr{push}, push},
		{"two elements stay a Compose", []Expr{push, pop}, Compose{Seq: []Expr{push, pop}}},
		{
			"nested Compose flattens one level",
			[]Expr{Compose{Seq: []Expr{push, pop}}, clone},
			Compose{Seq: []Expr{push, pop, clone}},
		},
		{
			"an empty Compose among parts contributes nothing",
			[]Expr{push, Empty, pop},
			Compose{Seq: []Expr{push, pop}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCompose(tt.in...)
			if !got.Equal(tt.want) {
				t.Errorf("NewCompose(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComposeNormalForm(t *testing.T) {
	// §8 invariant 3: no Step should ever need to special-case a Compose
	// nested inside a Compose, because NewCompose never builds one.
	c := NewCompose(NewCompose(Intrinsic{Op: OpDrop}))
	if _, ok := c.(Compose); ok {
		t.Fatalf("NewCompose of a singleton Compose produced a Compose wrapper: %#v", c)
	}
}

func TestEqualDistinguishesShape(t *testing.T) {
	a := StackId{Name: 1, Subscript: 0}
	b := StackId{Name: 1, Subscript: 1}
	if a.Equal(b) {
		t.Fatalf("StackIds with different subscripts compared equal")
	}

	x := StackContext{Stack: a, Inner: Empty}
	y := StackContext{Stack: b, Inner: Empty}
	if x.Equal(y) {
		t.Fatalf("StackContexts over different StackIds compared equal")
	}
}

func TestKeyStableForEqualExprs(t *testing.T) {
	e1 := Quote{Inner: NewCompose(Intrinsic{Op: OpQuote}, Intrinsic{Op: OpApply})}
	e2 := Quote{Inner: NewCompose(Intrinsic{Op: OpQuote}, Intrinsic{Op: OpApply})}
	if Key(e1) != Key(e2) {
		t.Fatalf("Key differed for structurally equal expressions: %q vs %q", Key(e1), Key(e2))
	}
	e3 := Quote{Inner: NewCompose(Intrinsic{Op: OpApply}, Intrinsic{Op: OpQuote})}
	if Key(e1) == Key(e3) {
		t.Fatalf("Key agreed for structurally different expressions")
	}
}
