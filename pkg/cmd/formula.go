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
	"fmt"

	"github.com/consensys/go-hilbert/pkg/formula"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newNormaliseCmd() *cobra.Command {
	normaliseCmd := &cobra.Command{
		Use:     "normalise [flags] formula(s)",
		Aliases: []string{"normalize"},
		Short:   "express formulas using only implication and negation.",
		Long: `Rewrite conjunctions and disjunctions using implication and
	negation.  By default, only top-level connectives are rewritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normaliser := getNormaliser(GetFlag(cmd, "deep"), false)
			//
			formulas, err := parseArgs(cmd, "arg", args)
			if err != nil {
				return err
			}
			//
			for _, f := range formulas {
				fmt.Fprintln(cmd.OutOrStdout(), normaliser(f).String())
			}
			//
			return nil
		},
	}
	//
	normaliseCmd.Flags().Bool("deep", false, "normalise all subformulas, not just top-level connectives")
	//
	return normaliseCmd
}

func newEqualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal formula formula",
		Short: "check whether two formulas are equal.",
		Long: `Check whether two formulas are structurally equal, where the
	operands of conjunctions and disjunctions may appear in either order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formulas, err := parseArgs(cmd, "arg", args)
			if err != nil {
				return err
			}
			//
			for _, f := range formulas {
				log.Debugf("hash(%s) = %#016x", f, f.Hash())
			}
			//
			fmt.Fprintln(cmd.OutOrStdout(), formula.Equal(formulas[0], formulas[1]))
			//
			return nil
		},
	}
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match pattern formula",
		Short: "match a pattern against a formula.",
		Long: `Find a substitution for the variables of a pattern which makes it
	equal to a given formula.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formulas, err := parseArgs(cmd, "arg", args)
			if err != nil {
				return err
			}
			//
			if subst, ok := formula.Match(formulas[0], formulas[1], nil); ok {
				fmt.Fprintln(cmd.OutOrStdout(), subst.String())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
			}
			//
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check formula(s)",
		Short: "check whether formulas are tautologies.",
		Long: `Check whether each formula holds under every assignment to its
	variables, reporting a countermodel when it does not.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed bool
			//
			formulas, err := parseArgs(cmd, "arg", args)
			if err != nil {
				return err
			}
			//
			for _, f := range formulas {
				if model, ok := formula.Tautology(f); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", f)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid (countermodel %s)\n", f, model)
					failed = true
				}
			}
			//
			if failed {
				return errFailed
			}
			//
			return nil
		},
	}
}
