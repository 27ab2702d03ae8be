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
	"os"

	"github.com/spf13/cobra"

	"github.com/dawn-lang/umc/internal/config"
	"github.com/dawn-lang/umc/internal/repl"
	"github.com/dawn-lang/umc/pkg/umc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	RunE: func(_ *cobra.Command, _ []string) error {
		env := umc.NewEnv(config.WithStepBudget(stepBudget), config.WithCompressEveryStep(compressEveryStep))
		return repl.Run(env, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
