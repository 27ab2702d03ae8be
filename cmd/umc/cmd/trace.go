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

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dawn-lang/umc/internal/config"
	"github.com/dawn-lang/umc/internal/eval"
	"github.com/dawn-lang/umc/internal/syntax"
	"github.com/dawn-lang/umc/pkg/umc"
)

var traceExpr string

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Evaluate an expression or file, printing every small step",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		src, err := sourceFrom(traceExpr, args)
		if err != nil {
			return err
		}
		env := umc.NewEnv(config.WithStepBudget(stepBudget), config.WithCompressEveryStep(compressEveryStep))
		expr, err := env.ParseExpr(src)
		if err != nil {
			log.Printf("parse error: %v", err)
			return err
		}
		expr = env.Wrap(expr)
		prog := env.NewProgram()
		_, _, err = env.Trace(prog, expr, func(o eval.Observation) {
			fmt.Fprintf(os.Stdout, "%s %s %s\n", o.Rule, syntax.PrintMultistack(env.Table, prog.VMS), syntax.PrintExpr(env.Table, o.Expr))
		})
		if err != nil {
			log.Printf("trace error: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVarP(&traceExpr, "eval", "e", "", "trace an inline expression instead of reading a file")
}
