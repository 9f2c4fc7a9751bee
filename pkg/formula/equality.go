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
	"slices"
)

// Equal determines whether two formulas are the same.  Variables are equal
// when their names match; negations are equal when their operands are equal;
// implications are equal when their left and right operands are equal
// respectively; finally, conjunctions and disjunctions are equal when their
// operands are equal in either order.  Two nil formulas are equal, but a nil
// formula is not equal to any other formula.
func Equal(a Formula, b Formula) bool {
	switch {
	case a == nil || b == nil:
		return a == nil && b == nil
	case a == b:
		return true
	case a.Kind() != b.Kind() || a.Hash() != b.Hash():
		// Since equal formulas always have equal hashes, differing hashes
		// rule out equality.
		return false
	}
	//
	switch a := a.(type) {
	case *Variable:
		return a.name == b.(*Variable).name
	case *Not:
		return Equal(a.arg, b.(*Not).arg)
	case *Implies:
		c := b.(*Implies)
		return Equal(a.left, c.left) && Equal(a.right, c.right)
	case *And:
		return commutativeEqual(&a.binary, &b.(*And).binary)
	case *Or:
		return commutativeEqual(&a.binary, &b.(*Or).binary)
	default:
		panic("unreachable")
	}
}

func commutativeEqual(a *binary, b *binary) bool {
	return (Equal(a.left, b.left) && Equal(a.right, b.right)) ||
		(Equal(a.left, b.right) && Equal(a.right, b.left))
}

// EqualAll checks whether two sequences of formulas are element-wise equal.
func EqualAll(as []Formula, bs []Formula) bool {
	return slices.EqualFunc(as, bs, Equal)
}

// IndexOf returns the index of the first formula in a given sequence which is
// equal to the given formula, or -1 if no such formula exists.
func IndexOf(fs []Formula, f Formula) int {
	return slices.IndexFunc(fs, func(g Formula) bool { return Equal(f, g) })
}

// Clone produces a deep copy of a given formula, such that the result shares no
// nodes with the original.
func Clone(f Formula) Formula {
	switch f := f.(type) {
	case nil:
		return nil
	case *Variable:
		return &Variable{f.name, f.hash}
	case *Not:
		return &Not{Clone(f.arg), f.hash}
	case *And:
		return &And{binary{Clone(f.left), Clone(f.right), f.hash}}
	case *Or:
		return &Or{binary{Clone(f.left), Clone(f.right), f.hash}}
	case *Implies:
		return &Implies{binary{Clone(f.left), Clone(f.right), f.hash}}
	default:
		panic("unreachable")
	}
}

// Variables returns the names of all variables occurring in the given formulas,
// in sorted order and without duplicates.
func Variables(fs ...Formula) []string {
	var names []string
	//
	for _, f := range fs {
		names = collectVariables(f, names)
	}
	//
	slices.Sort(names)
	//
	return slices.Compact(names)
}

func collectVariables(f Formula, names []string) []string {
	switch f := f.(type) {
	case *Variable:
		return append(names, f.name)
	case *Not:
		return collectVariables(f.arg, names)
	case Binary:
		names = collectVariables(f.Left(), names)
		return collectVariables(f.Right(), names)
	default:
		return names
	}
}

// Size returns the number of nodes in a given formula.
func Size(f Formula) uint {
	switch f := f.(type) {
	case *Variable:
		return 1
	case *Not:
		return 1 + Size(f.arg)
	case Binary:
		return 1 + Size(f.Left()) + Size(f.Right())
	default:
		return 0
	}
}
