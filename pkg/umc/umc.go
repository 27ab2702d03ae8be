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

// Package umc is the embedding facade: it wires a symbol table, a term
// store preloaded with the predefined term library, a parser, and an
// eval.Driver behind a handful of constructors, the way cel.Env and
// cel.Program front the lower-level checker/interpreter packages.
package umc

import (
	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/config"
	"github.com/dawn-lang/umc/internal/eval"
	"github.com/dawn-lang/umc/internal/stdlib"
	"github.com/dawn-lang/umc/internal/store"
	"github.com/dawn-lang/umc/internal/symtab"
	"github.com/dawn-lang/umc/internal/syntax"
	"github.com/dawn-lang/umc/internal/value"
)

// Env is one self-contained evaluator instance: its own symbol table (so
// names from two Envs are never comparable), its own term store seeded
// with the predefined library, and the driver configuration opts selected.
type Env struct {
	Table  *symtab.Table
	Store  *store.Store
	Parser *syntax.Parser
	cfg    config.Config
}

// NewEnv returns an Env with the predefined term library already defined,
// configured by opts.
func NewEnv(opts ...config.Option) *Env {
	cfg := config.Default()
	for _, o := range opts {
		o(&cfg)
	}
	tbl := symtab.NewTable()
	p := syntax.NewParser(tbl)
	st := store.New()
	stdlib.DefineAll(p, st)
	return &Env{Table: tbl, Store: st, Parser: p, cfg: cfg}
}

// Define parses a single "term name = expr;" surface form and installs it.
func (e *Env) Define(src string) (syntax.TermDef, error) {
	def, err := e.Parser.ParseTermDef(src)
	if err != nil {
		return syntax.TermDef{}, err
	}
	e.Store.Define(def.Name, def.Body)
	return def, nil
}

// ParseExpr parses a single expr surface form without evaluating it.
func (e *Env) ParseExpr(src string) (ast.Expr, error) {
	return e.Parser.ParseExpr(src)
}

// Wrap adds whichever of the two reserved stack contexts expr is missing,
// per spec.md §6: an expression with no enclosing context gets both (outer
// reserved name around inner reserved name); one with exactly one gets the
// outer reserved name added around it; one that already has two, or is the
// empty program, is returned unchanged.
func (e *Env) Wrap(expr ast.Expr) ast.Expr {
	inner := ast.StackId{Name: e.Table.InternStack(e.cfg.InnerReservedStack)}
	outer := ast.StackId{Name: e.Table.InternStack(e.cfg.OuterReservedStack)}
	if ast.IsEmpty(expr) {
		return expr
	}
	if sc, ok := expr.(ast.StackContext); ok {
		if _, ok := sc.Inner.(ast.StackContext); ok {
			return expr
		}
		return ast.StackContext{Stack: outer, Inner: expr}
	}
	return ast.StackContext{Stack: outer, Inner: ast.StackContext{Stack: inner, Inner: expr}}
}

// Program pairs a driver configured from e with a fresh, empty multistack:
// the minimal unit of state a Run/Trace call needs beyond the expression
// itself, mirroring cel.Program bundling a checked Ast with its evaluation
// state.
type Program struct {
	driver *eval.Driver
	VMS    *value.Multistack
}

// NewProgram returns a Program over a fresh empty multistack, configured
// with e's step budget.
func (e *Env) NewProgram() *Program {
	return &Program{
		driver: eval.NewDriver(
			eval.WithStepBudget(e.cfg.StepBudget),
			eval.WithCompressEveryStep(e.cfg.CompressEveryStep),
		),
		VMS: value.NewMultistack(),
	}
}

// Run evaluates expr (already wrapped, if needed, via Env.Wrap) to
// quiescence against p's multistack and e's store.
func (e *Env) Run(p *Program, expr ast.Expr) (ast.Expr, int, error) {
	return p.driver.Run(e.Store, p.VMS, expr)
}

// Trace evaluates like Run but calls obs after every step.
func (e *Env) Trace(p *Program, expr ast.Expr, obs eval.TraceFunc) (ast.Expr, int, error) {
	return p.driver.Trace(e.Store, p.VMS, expr, obs)
}
