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
package formula

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/crillab/gophersat/bf"
)

// Model assigns a truth value to each variable.  Variables missing from a
// model are considered false.
type Model map[string]bool

func (p Model) String() string {
	var builder strings.Builder
	//
	for i, name := range slices.Sorted(maps.Keys(p)) {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%s=%t", name, p[name]))
	}
	//
	return builder.String()
}

// Eval determines the truth value of a formula under a given model.
func Eval(f Formula, model Model) bool {
	switch f := f.(type) {
	case *Variable:
		return model[f.name]
	case *Not:
		return !Eval(f.arg, model)
	case *And:
		return Eval(f.left, model) && Eval(f.right, model)
	case *Or:
		return Eval(f.left, model) || Eval(f.right, model)
	case *Implies:
		return !Eval(f.left, model) || Eval(f.right, model)
	default:
		panic("unreachable")
	}
}

// Entails determines whether every model satisfying all the hypotheses also
// satisfies the target.  When this is not the case, a countermodel is returned
// which satisfies the hypotheses but falsifies the target.  The check is
// performed by handing "hypotheses ∧ ¬target" to a SAT solver.
func Entails(hypotheses []Formula, target Formula) (Model, bool) {
	conjuncts := make([]bf.Formula, 0, len(hypotheses)+1)
	//
	for _, h := range hypotheses {
		conjuncts = append(conjuncts, toBooleanFormula(h))
	}
	//
	conjuncts = append(conjuncts, bf.Not(toBooleanFormula(target)))
	//
	solution := bf.Solve(bf.And(conjuncts...))
	//
	if solution == nil {
		return nil, true
	}
	// Restrict attention to the variables actually involved.
	model := make(Model)
	//
	for _, name := range Variables(append(slices.Clone(hypotheses), target)...) {
		model[name] = solution[name]
	}
	//
	return model, false
}

// Tautology determines whether a formula holds in every model, returning a
// countermodel if not.
func Tautology(f Formula) (Model, bool) {
	return Entails(nil, f)
}

func toBooleanFormula(f Formula) bf.Formula {
	switch f := f.(type) {
	case *Variable:
		return bf.Var(f.name)
	case *Not:
		return bf.Not(toBooleanFormula(f.arg))
	case *And:
		return bf.And(toBooleanFormula(f.left), toBooleanFormula(f.right))
	case *Or:
		return bf.Or(toBooleanFormula(f.left), toBooleanFormula(f.right))
	case *Implies:
		return bf.Implies(toBooleanFormula(f.left), toBooleanFormula(f.right))
	default:
		panic("unreachable")
	}
}
