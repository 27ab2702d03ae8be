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

// Package repl implements the interactive command surface of spec.md §6
// over github.com/chzyer/readline, colorized with github.com/fatih/color.
package repl

import (
	"fmt"
	"io"
	"sort"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/dawn-lang/umc/internal/eval"
	"github.com/dawn-lang/umc/internal/stdlib"
	"github.com/dawn-lang/umc/internal/syntax"
	"github.com/dawn-lang/umc/internal/value"
	"github.com/dawn-lang/umc/pkg/umc"
)

// Session owns one REPL's Env, multistack, and output stream; it is the
// thing Run loops over.
type Session struct {
	Env *umc.Env
	VMS *value.Multistack
	Out io.Writer
}

// NewSession returns a Session over env and an empty multistack.
func NewSession(env *umc.Env, out io.Writer) *Session {
	return &Session{Env: env, VMS: value.NewMultistack(), Out: out}
}

// Run drives the readline loop until EOF, interrupt, or ":exit"/":quit".
func Run(env *umc.Env, out io.Writer) error {
	rl, err := readline.New("umc> ")
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	sess := NewSession(env, out)
	fmt.Fprintln(out, "umc — multi-stack concatenative calculus")
	fmt.Fprintln(out, ":help for commands, :exit or EOF to quit.")

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		cmd := Parse(line)
		if cmd.Cmd() == "exit" {
			return nil
		}
		sess.dispatch(cmd)
	}
}

func (s *Session) dispatch(cmd Cmder) {
	switch c := cmd.(type) {
	case simpleCmd:
		s.simple(c.name)
	case termDefCmd:
		s.termDef(c.src)
	case showCmd:
		s.show(c.name)
	case evalCmd:
		s.eval(c.src)
	case traceCmd:
		s.trace(c.src)
	}
}

func (s *Session) simple(name string) {
	switch name {
	case "empty":
		return
	case "help":
		fmt.Fprintln(s.Out, helpText)
	case "list":
		names := s.Env.Store.Names()
		texts := make([]string, len(names))
		for i, n := range names {
			texts[i] = s.Env.Table.ResolveTerm(n)
		}
		sort.Strings(texts)
		for _, t := range texts {
			fmt.Fprintln(s.Out, t)
		}
	case "drop":
		s.VMS = value.NewMultistack()
	case "clear":
		s.Env.Store.Clear()
	case "reset":
		s.VMS = value.NewMultistack()
		s.Env.Store.Clear()
		stdlib.DefineAll(s.Env.Parser, s.Env.Store)
	default:
		color.Red("unknown command")
	}
}

func (s *Session) termDef(src string) {
	def, err := s.Env.Define(src)
	if err != nil {
		color.Red("%v", err)
		return
	}
	fmt.Fprintf(s.Out, "Defined %q.\n", s.Env.Table.ResolveTerm(def.Name))
}

func (s *Session) show(name string) {
	sym := s.Env.Table.InternTerm(name)
	body, ok := s.Env.Store.Lookup(sym)
	if !ok {
		color.Red("not defined: %s", name)
		return
	}
	fmt.Fprintf(s.Out, "term %s = %s;\n", name, syntax.PrintExpr(s.Env.Table, body))
}

func (s *Session) eval(src string) {
	e, err := s.Env.ParseExpr(src)
	if err != nil {
		color.Red("%v", err)
		return
	}
	e = s.Env.Wrap(e)
	prog := s.Env.NewProgram()
	prog.VMS = s.VMS
	final, steps, err := s.Env.Run(prog, e)
	s.VMS = prog.VMS
	if err != nil {
		color.Red("%v", err)
		return
	}
	color.Green("⇓ %d step(s)", steps)
	fmt.Fprintln(s.Out, syntax.PrintMultistack(s.Env.Table, s.VMS), syntax.PrintExpr(s.Env.Table, final))
}

func (s *Session) trace(src string) {
	e, err := s.Env.ParseExpr(src)
	if err != nil {
		color.Red("%v", err)
		return
	}
	e = s.Env.Wrap(e)
	prog := s.Env.NewProgram()
	prog.VMS = s.VMS
	_, _, err = s.Env.Trace(prog, e, func(o eval.Observation) {
		rule := color.New(color.FgCyan).Sprint(o.Rule.String())
		fmt.Fprintf(s.Out, "%s %s %s\n", rule, syntax.PrintMultistack(s.Env.Table, prog.VMS), syntax.PrintExpr(s.Env.Table, o.Expr))
	})
	s.VMS = prog.VMS
	if err != nil {
		color.Red("%v", err)
	}
}
