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

package repl

import "strings"

// Cmder normalizes every command the REPL accepts to its name; callers
// type-switch on the concrete type to get at command-specific fields.
type Cmder interface {
	Cmd() string
}

type evalCmd struct{ src string }

func (evalCmd) Cmd() string { return "eval" }

type traceCmd struct{ src string }

func (traceCmd) Cmd() string { return "trace" }

type termDefCmd struct{ src string }

func (termDefCmd) Cmd() string { return "termdef" }

type showCmd struct{ name string }

func (showCmd) Cmd() string { return "show" }

type simpleCmd struct{ name string }

func (c simpleCmd) Cmd() string { return c.name }

// Parse classifies one line of REPL input into a Cmder. It never returns
// an error: anything that isn't a recognized ":command" or a "term ... ="
// definition is an evalCmd, and the parser layer reports its own syntax
// errors when that eval is attempted.
func Parse(line string) Cmder {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return simpleCmd{name: "empty"}
	case strings.HasPrefix(trimmed, ":trace "):
		return traceCmd{src: strings.TrimSpace(strings.TrimPrefix(trimmed, ":trace "))}
	case strings.HasPrefix(trimmed, ":show "):
		return showCmd{name: strings.TrimSpace(strings.TrimPrefix(trimmed, ":show "))}
	case trimmed == ":list":
		return simpleCmd{name: "list"}
	case trimmed == ":drop":
		return simpleCmd{name: "drop"}
	case trimmed == ":clear":
		return simpleCmd{name: "clear"}
	case trimmed == ":reset":
		return simpleCmd{name: "reset"}
	case trimmed == ":help":
		return simpleCmd{name: "help"}
	case trimmed == ":exit", trimmed == ":quit":
		return simpleCmd{name: "exit"}
	case strings.HasPrefix(trimmed, "term "):
		return termDefCmd{src: trimmed}
	default:
		return evalCmd{src: trimmed}
	}
}

const helpText = `<expr>                evaluate expr to quiescence
:trace <expr>          evaluate expr, printing every small step
term <name> = <expr>;  add or replace a term definition
:show <name>           print a term's definition
:list                  list every defined term name
:drop                  clear the multistack
:clear                 clear every definition (including the standard library)
:reset                 clear the multistack and every definition, then reload the standard library
:help                  print this message
:exit, :quit           leave the REPL`
