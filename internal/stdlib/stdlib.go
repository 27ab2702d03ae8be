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

// Package stdlib holds the predefined term library spec.md's scope leaves
// external: a small set of terms built only from intrinsics and earlier
// terms, parsed from the same concrete syntax a user's "term ... = ...;"
// would use, so that no term here has any semantics a user couldn't also
// express.
package stdlib

import (
	"fmt"

	"github.com/dawn-lang/umc/internal/store"
	"github.com/dawn-lang/umc/internal/syntax"
)

// termDefSrcs lists each definition in dependency order: every term's body
// only calls terms earlier in the list (or intrinsics). swap is first since
// true, quote2/quote3, rotate3/rotate4, succ and add all call it.
var termDefSrcs = []string{
	"term swap = (s1|push)(s2|push)(s1|pop)(s2|pop);",

	// v1..v4 are opaque placeholder values, useful as test fixtures; each
	// is defined independently so they remain distinguishable Calls.
	"term v1 = [];",
	"term v2 = [];",
	"term v3 = [];",
	"term v4 = [];",

	// Church-encoded booleans: false discards the consequent, true swaps it
	// to the top and discards the alternative.
	"term false = [drop];",
	"term true = [swap drop];",
	"term or = clone apply;",

	// quote2/quote3 quote the top N values as a single Compose, preserving
	// order; rotate3/4 build on them to rotate the top N values.
	"term quote2 = quote swap quote swap compose;",
	"term quote3 = quote2 swap quote swap compose;",
	"term rotate3 = quote2 swap quote compose apply;",
	"term rotate4 = quote3 swap quote compose apply;",

	// composeN composes the top N quotations into one.
	"term compose2 = compose;",
	"term compose3 = compose compose2;",
	"term compose4 = compose compose3;",
	"term compose5 = compose compose4;",

	// Church numerals: n0 discards its argument; nK+1 applies its argument
	// K+1 times by composing K+1 clone/compose-guarded applications.
	"term n0 = [drop];",
	"term n1 = [[clone] n0 apply [compose] n0 apply apply];",
	"term n2 = [[clone] n1 apply [compose] n1 apply apply];",
	"term n3 = [[clone] n2 apply [compose] n2 apply apply];",
	"term n4 = [[clone] n3 apply [compose] n3 apply apply];",
	"term succ = quote [apply] compose [[clone]] swap clone [[compose]] swap [apply] compose5;",
	"term add = [succ] swap apply;",
	"term mul = n0 rotate3 quote [add] compose rotate3 apply;",
}

// TermDefs parses every predefined term using p, in dependency order.
// It panics on a parse error, since termDefSrcs is a fixed, already-debugged
// constant and any failure here is a programming error in this package, not
// a runtime condition callers should handle.
func TermDefs(p *syntax.Parser) []syntax.TermDef {
	defs := make([]syntax.TermDef, len(termDefSrcs))
	for i, src := range termDefSrcs {
		def, err := p.ParseTermDef(src)
		if err != nil {
			panic(fmt.Sprintf("stdlib: %q: %v", src, err))
		}
		defs[i] = def
	}
	return defs
}

// DefineAll parses and installs every predefined term into st via p, the
// way the teacher's common/stdlib registers the CEL standard library at
// Env construction time.
func DefineAll(p *syntax.Parser, st *store.Store) {
	for _, def := range TermDefs(p) {
		st.Define(def.Name, def.Body)
	}
}
