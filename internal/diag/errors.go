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

package diag

import "fmt"

// Errors accumulates diagnostics across one parse or one REPL command, so
// that a parser can keep going after a syntax error and report everything
// it found in one pass.
type Errors struct {
	errors []Error
}

// NewErrors returns an empty accumulator.
func NewErrors() *Errors {
	return &Errors{}
}

// Report appends a formatted diagnostic located at l.
func (e *Errors) Report(l Location, format string, args ...interface{}) {
	e.errors = append(e.errors, Error{Location: l, Message: fmt.Sprintf(format, args...)})
}

// Errs returns every diagnostic accumulated so far.
func (e *Errors) Errs() []Error {
	return e.errors[:]
}

// Empty reports whether no diagnostic has been accumulated.
func (e *Errors) Empty() bool {
	return len(e.errors) == 0
}

func (e *Errors) String() string {
	var b []byte
	for i, err := range e.errors {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, err.ToDisplayString()...)
	}
	return string(b)
}
