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
	"github.com/consensys/go-hilbert/pkg/prover"
	"github.com/consensys/go-hilbert/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newProveCmd() *cobra.Command {
	proveCmd := &cobra.Command{
		Use:   "prove [flags] formula(s)",
		Short: "search for proofs of one or more formulas.",
		Long: `Search for a proof of each given formula, from zero or more
	hypotheses.  Formulas are first normalised such that conjunctions and
	disjunctions are expressed using implication and negation.  Goals can
	be given on the command line, or read from files.`,
		RunE: runProveCmd,
	}
	//
	proveCmd.Flags().StringArrayP("hypothesis", "H", nil, "add a hypothesis")
	proveCmd.Flags().StringArrayP("file", "f", nil, "read goals from a file")
	proveCmd.Flags().Uint("max-depth", prover.DEFAULT_MAX_DEPTH, "maximum depth of proof search")
	proveCmd.Flags().Bool("deep", false, "normalise all subformulas, not just top-level connectives")
	proveCmd.Flags().Bool("no-normalise", false, "prove formulas as given")
	proveCmd.Flags().Bool("entailment", false, "check goals are entailed before searching")
	proveCmd.Flags().String("format", "text", "output format (text or yaml)")
	proveCmd.Flags().Uint("textwidth", DEFAULT_TEXT_WIDTH, "maximum textwidth to use")
	//
	return proveCmd
}

func runProveCmd(cmd *cobra.Command, args []string) error {
	var (
		out        = cmd.OutOrStdout()
		config     = prover.DefaultConfig()
		format     = GetString(cmd, "format")
		textWidth  = getTextWidth(cmd)
		normaliser = getNormaliser(GetFlag(cmd, "deep"), GetFlag(cmd, "no-normalise"))
		failures   = 0
	)
	//
	config.MaxDepth = GetUint(cmd, "max-depth")
	config.Entailment = GetFlag(cmd, "entailment")
	//
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown output format \"%s\"", format)
	}
	// Read hypotheses & goals
	hypotheses, err := parseArgs(cmd, "hypothesis", GetStringArray(cmd, "hypothesis"))
	if err != nil {
		return err
	}
	//
	goals, err := parseArgs(cmd, "arg", args)
	if err != nil {
		return err
	}
	//
	fileGoals, err := readFormulaFiles(cmd, GetStringArray(cmd, "file"))
	if err != nil {
		return err
	}
	//
	if goals = append(goals, fileGoals...); len(goals) == 0 {
		return fmt.Errorf("no goals given")
	}
	//
	for i, h := range hypotheses {
		hypotheses[i] = normaliser(h)
	}
	//
	p := prover.NewProver(config)
	perf := util.NewPerfStats()
	//
	for i, goal := range goals {
		target := normaliser(goal)
		//
		log.Debugf("proving %s from %d hypotheses", target, len(hypotheses))
		//
		proof := p.Prove(target, hypotheses...)
		//
		if proof == nil {
			failures++
			//
			fmt.Fprintf(out, "%s: no proof found\n", goal)
			//
			if model, ok := formula.Entails(hypotheses, target); !ok {
				fmt.Fprintf(out, "countermodel: %s\n", model)
			}
			//
			continue
		}
		//
		switch format {
		case "yaml":
			bytes, err := prover.MarshalYAML(proof)
			if err != nil {
				return err
			}
			//
			if i != 0 {
				fmt.Fprintln(out, "---")
			}
			//
			fmt.Fprint(out, string(bytes))
		default:
			fmt.Fprint(out, prover.Format(proof, textWidth))
		}
	}
	//
	perf.Log(fmt.Sprintf("proving %d goal(s)", len(goals)))
	//
	if failures > 0 {
		return errFailed
	}
	//
	return nil
}

// Determine how formulas should be normalised.
func getNormaliser(deep bool, none bool) func(formula.Formula) formula.Formula {
	switch {
	case none:
		return func(f formula.Formula) formula.Formula { return f }
	case deep:
		return formula.NormaliseAll
	default:
		return formula.Normalise
	}
}
