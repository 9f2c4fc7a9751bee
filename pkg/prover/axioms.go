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
	"slices"

	"github.com/consensys/go-hilbert/pkg/formula"
)

// The axiom schemas of the Hilbert system over implication and negation.  These
// are parsed once and shared (read-only) between all provers.
var axioms = []formula.Formula{
	// A → (B → A)
	formula.MustParse("(implies A (implies B A))"),
	// (A → (B → C)) → ((A → B) → (A → C))
	formula.MustParse("(implies (implies A (implies B C)) (implies (implies A B) (implies A C)))"),
	// (¬B → ¬A) → ((¬B → A) → B)
	formula.MustParse("(implies (implies (not B) (not A)) (implies (implies (not B) A) B))"),
	// A → A
	formula.MustParse("(implies A A)"),
}

// Axioms returns the axiom schemas used by the prover.  Observe that axioms are
// numbered from 1 within proofs, such that Axioms()[0] is axiom 1.
func Axioms() []formula.Formula {
	return slices.Clone(axioms)
}

// AxiomSchema returns the axiom schema with the given (1-based) index.
func AxiomSchema(index uint) formula.Formula {
	return axioms[index-1]
}
