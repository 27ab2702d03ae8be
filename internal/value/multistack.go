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

package value

import "github.com/dawn-lang/umc/internal/ast"

// Stack is an ordered sequence of values; the top of stack is the last
// element.
type Stack struct {
	vals []Value
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int { return len(s.vals) }

// Push appends v to the top of the stack.
func (s *Stack) Push(v Value) { s.vals = append(s.vals, v) }

// Pop removes and returns the top value. It panics if the stack is empty;
// callers must check Len first, exactly as the rewriter does before every
// call.
func (s *Stack) Pop() Value {
	n := len(s.vals) - 1
	v := s.vals[n]
	s.vals = s.vals[:n]
	return v
}

// PeekLast returns the top value without removing it.
func (s *Stack) PeekLast() Value { return s.vals[len(s.vals)-1] }

// Multistack is a finite keyed collection of operand stacks. The zero value
// is ready to use. After every rewrite, Prune must be called so that keys
// with an empty sequence never persist.
type Multistack struct {
	stacks map[ast.StackId]*Stack
}

// NewMultistack returns an empty Multistack.
func NewMultistack() *Multistack {
	return &Multistack{stacks: make(map[ast.StackId]*Stack)}
}

// At returns the Stack for id, creating and recording an empty one on
// first use so the caller can push onto it.
func (m *Multistack) At(id ast.StackId) *Stack {
	if m.stacks == nil {
		m.stacks = make(map[ast.StackId]*Stack)
	}
	s, ok := m.stacks[id]
	if !ok {
		s = &Stack{}
		m.stacks[id] = s
	}
	return s
}

// Len returns the number of values on the named stack, 0 if it does not
// exist.
func (m *Multistack) Len(id ast.StackId) int {
	if s, ok := m.stacks[id]; ok {
		return s.Len()
	}
	return 0
}

// Prune removes every key whose stack is empty, so that equality of
// Multistacks reflects only observable state.
func (m *Multistack) Prune() {
	for id, s := range m.stacks {
		if s.Len() == 0 {
			delete(m.stacks, id)
		}
	}
}

// Ids returns every stack id currently keyed, for iteration by compression
// and by the pretty printer. After Prune these are exactly the non-empty
// stacks.
func (m *Multistack) Ids() []ast.StackId {
	ids := make([]ast.StackId, 0, len(m.stacks))
	for id := range m.stacks {
		ids = append(ids, id)
	}
	return ids
}

// Values returns a copy of the named stack's values, bottom to top.
func (m *Multistack) Values(id ast.StackId) []Value {
	s, ok := m.stacks[id]
	if !ok {
		return nil
	}
	out := make([]Value, len(s.vals))
	copy(out, s.vals)
	return out
}

// Replace overwrites the value at index i (0-based, bottom of stack) on the
// named stack. Used only by compression.
func (m *Multistack) Replace(id ast.StackId, i int, v Value) {
	m.stacks[id].vals[i] = v
}

// Equal reports whether two Multistacks hold the same non-empty stacks with
// the same values in the same order.
func (m *Multistack) Equal(o *Multistack) bool {
	others := 0
	for _, s := range o.stacks {
		if s.Len() > 0 {
			others++
		}
	}
	for id, s := range m.stacks {
		if s.Len() == 0 {
			continue
		}
		others--
		os, ok := o.stacks[id]
		if !ok || len(s.vals) != len(os.vals) {
			return false
		}
		for i := range s.vals {
			if !s.vals[i].Equal(os.vals[i]) {
				return false
			}
		}
	}
	return others == 0
}
