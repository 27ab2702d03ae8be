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

// Package eval iterates the small-step rewriter into a big-step
// evaluation: the driver that loops Step until quiescence, an error, or a
// caller-supplied step budget is exceeded.
package eval

import (
	"fmt"

	"github.com/dawn-lang/umc/internal/ast"
	"github.com/dawn-lang/umc/internal/rewrite"
	"github.com/dawn-lang/umc/internal/store"
	"github.com/dawn-lang/umc/internal/value"
)

// StepBudgetExceeded is a diagnostic, not a semantic failure: the
// expression may still be reducible, but the caller asked to stop looking.
type StepBudgetExceeded struct {
	Budget int
}

func (e *StepBudgetExceeded) Error() string {
	return fmt.Sprintf("exceeded step budget of %d", e.Budget)
}

// Driver owns the knobs that govern how Run/Trace iterate Step: the step
// budget and whether compression runs after every step or is left to the
// caller (Trace reports each step after that choice has been applied).
type Driver struct {
	StepBudget        int // 0 means unbounded
	CompressEveryStep bool
}

// NewDriver returns a Driver configured by opts, defaulting to an
// unbounded step budget with compression after every step.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{CompressEveryStep: true}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Option configures a Driver.
type Option func(*Driver)

// WithStepBudget bounds the number of small-steps Run/Trace will take
// before reporting StepBudgetExceeded.
func WithStepBudget(n int) Option {
	return func(d *Driver) { d.StepBudget = n }
}

// WithCompressEveryStep controls whether Run/Trace fold Quote values back
// into Call values after every step, or leave the multistack uncompressed
// until the caller compresses it explicitly.
func WithCompressEveryStep(v bool) Option {
	return func(d *Driver) { d.CompressEveryStep = v }
}

// Observation is reported to a TraceFunc after every successful step.
type Observation struct {
	Step  int
	Rule  rewrite.Rule
	Expr  ast.Expr
	Compressed bool
}

// TraceFunc is called once per small-step in Trace mode, after compression
// has had a chance to run for that step.
type TraceFunc func(Observation)

// Run iterates small-steps to quiescence, compressing the multistack after
// every step when CompressEveryStep is set. It returns the final expression (ast.Empty on success) and
// the number of steps taken.
func (d *Driver) Run(st *store.Store, vms *value.Multistack, expr ast.Expr) (ast.Expr, int, error) {
	steps := 0
	for !ast.IsEmpty(expr) {
		if d.StepBudget > 0 && steps >= d.StepBudget {
			return expr, steps, &StepBudgetExceeded{Budget: d.StepBudget}
		}
		next, _, err := rewrite.Step(st, vms, expr)
		if err != nil {
			return expr, steps, err
		}
		expr = next
		steps++
		if d.CompressEveryStep {
			st.Compress(vms)
		}
	}
	return expr, steps, nil
}

// Trace iterates small-steps to quiescence like Run, but calls obs after
// every step with the rule that fired and whether compression found
// anything to fold, instead of only returning the final state.
func (d *Driver) Trace(st *store.Store, vms *value.Multistack, expr ast.Expr, obs TraceFunc) (ast.Expr, int, error) {
	steps := 0
	for !ast.IsEmpty(expr) {
		if d.StepBudget > 0 && steps >= d.StepBudget {
			return expr, steps, &StepBudgetExceeded{Budget: d.StepBudget}
		}
		next, rule, err := rewrite.Step(st, vms, expr)
		if err != nil {
			return expr, steps, err
		}
		expr = next
		steps++
		var compressed bool
		if d.CompressEveryStep {
			compressed = st.Compress(vms)
		}
		if obs != nil {
			obs(Observation{Step: steps, Rule: rule, Expr: expr, Compressed: compressed})
		}
	}
	return expr, steps, nil
}
