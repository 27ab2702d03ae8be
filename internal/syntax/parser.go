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

package syntax

import (
	"fmt"

	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/symtab"
)

// TermDef is a single "term name = expr;" surface form, already built into
// internal/ast.
type TermDef struct {
	Name symtab.TermSymbol
	Body ast.Expr
}

// Parser wraps the participle grammar with a shared symbol table, so that
// names parsed across many calls intern consistently.
type Parser struct {
	Table *symtab.Table
}

// NewParser returns a Parser that interns into tbl.
func NewParser(tbl *symtab.Table) *Parser {
	return &Parser{Table: tbl}
}

// ParseExpr parses a single expr production (§6) from src.
func (p *Parser) ParseExpr(src string) (ast.Expr, error) {
	g, err := exprParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("parse expr: %w", err)
	}
	return build(p.Table, g), nil
}

// ParseTermDef parses a single "term name = expr;" production from src.
func (p *Parser) ParseTermDef(src string) (TermDef, error) {
	g, err := termDefParser.ParseString("", src)
	if err != nil {
		return TermDef{}, fmt.Errorf("parse term def: %w", err)
	}
	return TermDef{
		Name: p.Table.InternTerm(g.Name),
		Body: build(p.Table, g.Body),
	}, nil
}
