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
package prover

import (
	"github.com/consensys/go-hilbert/pkg/formula"
	"github.com/goccy/go-yaml"
)

// Step provides a document view of a single proof step, suitable for encoding
// as YAML (or similar).
type Step struct {
	// Inference rule applied at this step (hypothesis, deduction, mp or axiom).
	Rule string `yaml:"rule"`
	// Hypothesis index (for hypothesis and mp), or axiom number (for axiom).
	Index *uint `yaml:"index,omitempty"`
	// Formula established by this step.
	Formula string `yaml:"formula"`
	// Assumption discharged by a deduction step.
	Discharges string `yaml:"discharges,omitempty"`
	// Bindings used to instantiate an axiom schema.
	Substitution map[string]string `yaml:"substitution,omitempty"`
	// Steps on which this step depends.
	Premises []Step `yaml:"premises,omitempty"`
}

// Export converts a proof into a tree of steps.
func Export(proof Proof) Step {
	switch p := proof.(type) {
	case *Hypothesis:
		return Step{Rule: "hypothesis", Index: index(p.Index), Formula: p.Target.String()}
	case *Deduction:
		return Step{
			Rule:       "deduction",
			Formula:    p.Conclusion().String(),
			Discharges: p.Antecedent.String(),
			Premises:   []Step{Export(p.Premise)},
		}
	case *ModusPonens:
		return Step{
			Rule:     "mp",
			Index:    index(p.Index),
			Formula:  p.Target.String(),
			Premises: []Step{Export(p.Premise)},
		}
	case *Axiom:
		return Step{
			Rule:         "axiom",
			Index:        index(p.Index),
			Formula:      p.Target.String(),
			Substitution: exportSubstitution(p.Substitution),
		}
	default:
		panic("unreachable")
	}
}

// MarshalYAML encodes a proof as a YAML document.
func MarshalYAML(proof Proof) ([]byte, error) {
	return yaml.Marshal(Export(proof))
}

func index(n uint) *uint {
	return &n
}

func exportSubstitution(subst formula.Substitution) map[string]string {
	bindings := make(map[string]string, len(subst))
	//
	for name, f := range subst {
		bindings[name] = f.String()
	}
	//
	return bindings
}
