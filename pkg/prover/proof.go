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
	"fmt"

	"github.com/consensys/go-hilbert/pkg/formula"
	"github.com/consensys/go-hilbert/pkg/util/source/sexp"
)

// Proof represents a derivation of some formula (its conclusion) from a
// sequence of hypotheses.  Every step either refers to a hypothesis, discharges
// an assumption (deduction), applies modus ponens with a hypothesis, or
// instantiates an axiom schema.
type Proof interface {
	// Conclusion returns the formula established by this proof.
	Conclusion() formula.Formula
	// Size returns the number of steps in this proof.
	Size() uint
	// SExp returns an S-expression rendering of this proof, suitable for
	// formatting.
	SExp() sexp.SExp
	// String returns a single-line rendering of this proof.
	String() string
	// Prevent implementations outside of this package.
	sealed()
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ Proof = (*Hypothesis)(nil)
	_ Proof = (*Deduction)(nil)
	_ Proof = (*ModusPonens)(nil)
	_ Proof = (*Axiom)(nil)
)

// Hypothesis proves its target by observing that it is the hypothesis at the
// given (0-based) index.
type Hypothesis struct {
	Index  uint
	Target formula.Formula
}

// Conclusion implementation for Proof interface.
func (p *Hypothesis) Conclusion() formula.Formula { return p.Target }

// Size implementation for Proof interface.
func (p *Hypothesis) Size() uint { return 1 }

// SExp implementation for Proof interface.
func (p *Hypothesis) SExp() sexp.SExp {
	return list(sexp.NewSymbol("hypothesis"), number(p.Index), formula.ToSExp(p.Target))
}

func (p *Hypothesis) String() string { return p.SExp().String() }

func (p *Hypothesis) sealed() {}

// Deduction proves an implication "Antecedent → Consequent" by proving the
// consequent with the antecedent added as a final hypothesis.
type Deduction struct {
	Antecedent formula.Formula
	Consequent formula.Formula
	// Proof of the consequent under the extended hypotheses.
	Premise Proof
}

// Conclusion implementation for Proof interface.
func (p *Deduction) Conclusion() formula.Formula {
	return formula.NewImplies(p.Antecedent, p.Consequent)
}

// Size implementation for Proof interface.
func (p *Deduction) Size() uint { return 1 + p.Premise.Size() }

// SExp implementation for Proof interface.
func (p *Deduction) SExp() sexp.SExp {
	return list(sexp.NewSymbol("deduction"), formula.ToSExp(p.Antecedent), formula.ToSExp(p.Consequent),
		p.Premise.SExp())
}

func (p *Deduction) String() string { return p.SExp().String() }

func (p *Deduction) sealed() {}

// ModusPonens proves its target from the hypothesis at the given (0-based)
// index, which has the form "X → Target", and a proof of X.
type ModusPonens struct {
	Index uint
	// Proof of the antecedent of the hypothesis.
	Premise Proof
	Target  formula.Formula
}

// Conclusion implementation for Proof interface.
func (p *ModusPonens) Conclusion() formula.Formula { return p.Target }

// Size implementation for Proof interface.
func (p *ModusPonens) Size() uint { return 1 + p.Premise.Size() }

// SExp implementation for Proof interface.
func (p *ModusPonens) SExp() sexp.SExp {
	return list(sexp.NewSymbol("mp"), number(p.Index), p.Premise.SExp(), formula.ToSExp(p.Target))
}

func (p *ModusPonens) String() string { return p.SExp().String() }

func (p *ModusPonens) sealed() {}

// Axiom proves its target as an instance of the axiom schema with the given
// (1-based) index, under the given substitution.
type Axiom struct {
	Index        uint
	Substitution formula.Substitution
	Target       formula.Formula
}

// Conclusion implementation for Proof interface.
func (p *Axiom) Conclusion() formula.Formula { return p.Target }

// Size implementation for Proof interface.
func (p *Axiom) Size() uint { return 1 }

// SExp implementation for Proof interface.  The substitution is rendered as a
// list of (name formula) pairs in sorted order.
func (p *Axiom) SExp() sexp.SExp {
	var bindings []sexp.SExp
	//
	for _, name := range p.Substitution.Names() {
		bindings = append(bindings, list(sexp.NewSymbol(name), formula.ToSExp(p.Substitution[name])))
	}
	//
	return list(sexp.NewSymbol("axiom"), number(p.Index), sexp.NewList(bindings), formula.ToSExp(p.Target))
}

func (p *Axiom) String() string { return p.SExp().String() }

func (p *Axiom) sealed() {}

func list(elements ...sexp.SExp) *sexp.List {
	return sexp.NewList(elements)
}

func number(n uint) *sexp.Symbol {
	return sexp.NewSymbol(fmt.Sprintf("%d", n))
}
