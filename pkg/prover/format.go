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
	"github.com/consensys/go-hilbert/pkg/util/source/sexp"
)

// Format a proof as text for a given maximum line width.  Proof steps are
// broken over multiple lines (with their premises indented) only when they do
// not fit within the width.
func Format(proof Proof, width uint) string {
	formatter := sexp.NewFormatter(width)
	// Keep the rule name and its immediate arguments on the first line.
	formatter.Add(&sexp.HeadFormatter{Head: "deduction", Inline: 3, Priority: 1})
	formatter.Add(&sexp.HeadFormatter{Head: "mp", Inline: 2, Priority: 1})
	formatter.Add(&sexp.HeadFormatter{Head: "axiom", Inline: 2, Priority: 1})
	formatter.Add(&sexp.HeadFormatter{Head: "hypothesis", Inline: 2, Priority: 2})
	//
	return formatter.Format(proof.SExp())
}
