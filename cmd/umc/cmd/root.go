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

// Package cmd implements the umc command-line interface: repl, eval, and
// trace subcommands over the pkg/umc embedding facade.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	stepBudget        int
	compressEveryStep bool
)

var rootCmd = &cobra.Command{
	Use:   "umc",
	Short: "A multi-stack concatenative calculus evaluator",
	Long: `umc evaluates programs in a small point-free, quotation-based
rewriting calculus with labeled stack contexts for multiple operand
stacks. It bundles a standard library of boolean and Church-numeral
terms and exposes a REPL, single-shot eval, and step-by-step trace.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&stepBudget, "step-budget", 0, "bound the number of small-steps taken before giving up (0 = unbounded)")
	rootCmd.PersistentFlags().BoolVar(&compressEveryStep, "compress-every-step", true, "fold Quote values back into Call values after every step")
}
