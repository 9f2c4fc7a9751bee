// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/consensys/go-hilbert/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// errFailed indicates that some goal was not established (e.g. no proof was
// found).  Its details have already been reported.
var errFailed = errors.New("goal not established")

// NewRootCmd constructs the base command, along with all of its subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hilbert",
		Short: "A proof search tool for propositional logic.",
		Long: `Search for proofs of propositional formulas in a Hilbert-style
	system, along with various tools for manipulating formulas.  Formulas are
	written in prefix form, such as "(implies A (not B))".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !GetFlag(cmd, "version") {
				return cmd.Help()
			}
			//
			out := cmd.OutOrStdout()
			//
			fmt.Fprint(out, "hilbert ")
			//
			if Version != "" {
				// Built via "make"
				fmt.Fprintf(out, "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Fprintf(out, "%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Fprintf(out, "(unknown version)")
			}
			//
			fmt.Fprintln(out)
			//
			return nil
		},
	}
	//
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	//
	rootCmd.AddCommand(newProveCmd())
	rootCmd.AddCommand(newNormaliseCmd())
	rootCmd.AddCommand(newEqualCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newCheckCmd())
	//
	return rootCmd
}

// Execute runs the root command and exits with an appropriate status code.
// This is called by main.main().
func Execute() {
	os.Exit(ExitCode(NewRootCmd().Execute()))
}

// ExitCode determines the exit status for the outcome of a command.  Syntax
// errors and other malformed input give 2, whilst goals which could not be
// established give 1.
func ExitCode(err error) int {
	var serr *source.SyntaxError
	//
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	case errors.As(err, &serr):
		// already reported
		return 2
	default:
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
}
