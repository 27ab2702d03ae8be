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

import (
	"fmt"
	"strings"
)

// Error is a single located diagnostic: a parse failure, or a core error
// (TooFewValues, UndefinedTerm, ...) the REPL has attached a location to.
type Error struct {
	Location Location
	Message  string
}

// ToDisplayString renders e with a source snippet and a caret under the
// offending column, when the location's source can produce one.
func (e *Error) ToDisplayString() string {
	result := fmt.Sprintf("ERROR: %s:%d:%d: %s", e.Location.Source().Name(), e.Location.Line(), e.Location.Column(), e.Message)
	if snippet, found := e.Location.Source().Snippet(e.Location.Line()); found {
		result += "\n | " + snippet
		result += "\n | " + strings.Repeat(".", e.Location.Column()-1) + "^"
	}
	return result
}
