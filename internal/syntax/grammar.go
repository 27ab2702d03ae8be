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

// Package syntax implements the concrete surface syntax spec.md §6
// describes but does not define the internals of: a participle grammar for
// terms and expressions, a builder from the parse tree into internal/ast,
// and a pretty printer back to the same surface syntax.
package syntax

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var concreteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[][()|=';]`},
})

// grammarExpr is the parse tree for a juxtaposition of atoms; it may be
// empty (an empty quotation body, or the empty program).
type grammarExpr struct {
	Atoms []*grammarAtom `@@*`
}

type grammarAtom struct {
	Context *grammarStackContext `  @@`
	Quote   *grammarQuote        `| @@`
	Name    string               `| @Ident`
}

type grammarStackId struct {
	Name      string  `@Ident`
	Subscript *string `("'" @Number)?`
}

type grammarStackContext struct {
	Stack *grammarStackId `"(" @@ "|"`
	Body  *grammarExpr    `@@ ")"`
}

type grammarQuote struct {
	Body *grammarExpr `"[" @@ "]"`
}

type grammarTermDef struct {
	Name string       `"term" @Ident "="`
	Body *grammarExpr `@@ ";"`
}

var (
	exprParser = participle.MustBuild[grammarExpr](
		participle.Lexer(concreteLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	termDefParser = participle.MustBuild[grammarTermDef](
		participle.Lexer(concreteLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)
