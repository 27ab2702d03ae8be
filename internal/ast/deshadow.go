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

import "github.com/dawn-lang/umc/internal/symtab"

// Deshadow renames StackId subscripts so that no StackContext lexically
// encloses another StackContext with the same stack name and subscript.
// Quotations are lexical barriers: deshadowing does not descend into a
// Quote, since a quoted sub-expression is data until apply splices it into
// its (fresh) enclosing context.
func Deshadow(e Expr) Expr {
	depth := make(map[symtab.StackSymbol]uint32)
	return deshadow(e, depth)
}

func deshadow(e Expr, depth map[symtab.StackSymbol]uint32) Expr {
	switch v := e.(type) {
	case Intrinsic, Call:
		return e
	case Quote:
		return e
	case Compose:
		if len(v.Seq) == 0 {
			return e
		}
		seq := make([]Expr, len(v.Seq))
		for i, c := range v.Seq {
			seq[i] = deshadow(c, depth)
		}
		return Compose{Seq: seq}
	case StackContext:
		name := v.Stack.Name
		if cur, shadowed := depth[name]; shadowed {
			next := cur + 1
			depth[name] = next
			inner := deshadow(v.Inner, depth)
			depth[name] = cur
			return StackContext{Stack: StackId{Name: name, Subscript: next}, Inner: inner}
		}
		depth[name] = 0
		inner := deshadow(v.Inner, depth)
		delete(depth, name)
		return StackContext{Stack: StackId{Name: name, Subscript: 0}, Inner: inner}
	default:
		return e
	}
}
