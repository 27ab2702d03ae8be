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

// Location names a line and column within a Source.
type Location interface {
	Source() Source
	Line() int   // 1-based.
	Column() int // 1-based.
}

// SourceLocation is the concrete Location the parser and REPL construct.
type SourceLocation struct {
	source Source
	line   int
	column int
}

var _ Location = &SourceLocation{}

// NoLocation is used when a diagnostic has no specific position to point
// at, e.g. a step-budget report over an already-deshadowed expression.
var NoLocation = &SourceLocation{source: NewTextSource("", "")}

// NewLocation returns a Location at line/column within src.
func NewLocation(src Source, line, column int) Location {
	return &SourceLocation{source: src, line: line, column: column}
}

func (l *SourceLocation) Source() Source { return l.source }
func (l *SourceLocation) Line() int      { return l.line }
func (l *SourceLocation) Column() int    { return l.column }
