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

// Package config collects the evaluator's knobs behind functional options,
// in the style of cel.EnvOption/cel.ProgramOption: small, composable
// constructors a caller passes to umc.NewEnv rather than a struct literal
// with exported fields.
package config

// Config holds every knob the driver and the bare-expression REPL wrapper
// consult. Default returns the default configuration (unbounded step
// budget, compression after every step, reserved stacks "_"/"__"); the
// zero value has compression off and empty reserved stack names.
type Config struct {
	StepBudget         int
	CompressEveryStep  bool
	InnerReservedStack string
	OuterReservedStack string
}

// Default returns the configuration every umc.Env starts from before opts
// are applied.
func Default() Config {
	return Config{
		StepBudget:         0,
		CompressEveryStep:  true,
		InnerReservedStack: "_",
		OuterReservedStack: "__",
	}
}

// Option is a functional configuration knob, applied in order by umc.NewEnv.
type Option func(*Config)

// WithStepBudget bounds the number of small-steps a Run/Trace call will
// take before reporting eval.StepBudgetExceeded. 0 means unbounded.
func WithStepBudget(n int) Option {
	return func(c *Config) { c.StepBudget = n }
}

// WithCompressEveryStep controls whether the driver folds Quote values
// back into Call values after every step (the default, matching spec.md's
// evaluation mode) or leaves compression to the caller (trace mode can
// still call it explicitly between observations).
func WithCompressEveryStep(v bool) Option {
	return func(c *Config) { c.CompressEveryStep = v }
}

// WithReservedStacks overrides the stack names the REPL synthesizes around
// a bare expression lacking its own enclosing stack contexts.
func WithReservedStacks(inner, outer string) Option {
	return func(c *Config) {
		c.InnerReservedStack = inner
		c.OuterReservedStack = outer
	}
}
