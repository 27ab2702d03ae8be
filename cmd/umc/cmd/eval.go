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
	"github.com/dawn-lang/umc/internal/syntax"
	"github.com/dawn-lang/umc/pkg/umc"
)

var evalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate an expression or file to quiescence",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		src, err := sourceFrom(evalExpr, args)
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
		final, steps, err := env.Run(prog, expr)
		if err != nil {
			log.Printf("eval error after %d step(s): %v", steps, err)
			return err
		}
		fmt.Fprintln(os.Stdout, syntax.PrintMultistack(env.Table, prog.VMS), syntax.PrintExpr(env.Table, final))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline expression instead of reading a file")
}

// sourceFrom resolves the source text from the -e flag or, when that is
// empty, from a single file argument; giving neither is an error. When both
// are given, the -e text is used and the file is not read.
func sourceFrom(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e/--eval for an inline expression")
}
