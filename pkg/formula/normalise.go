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

// Normalise rewrites conjunctions and disjunctions into the core connectives
// (Implies and Not) using the classical encodings:
//
//	(and a b) ==> (not (implies a (not b)))
//	(or a b)  ==> (implies (not a) b)
//
// Only conjunctions and disjunctions reached by unwrapping conjunctions and
// disjunctions from the root are rewritten.  In particular, variables,
// negations and implications are returned as is, without considering their
// operands.  Thus, (not (and A B)) is unchanged.  Use NormaliseAll to rewrite
// every occurrence.
func Normalise(f Formula) Formula {
	switch f := f.(type) {
	case *And:
		lhs := Normalise(f.left)
		rhs := Normalise(f.right)
		//
		return NewNot(NewImplies(lhs, NewNot(rhs)))
	case *Or:
		lhs := Normalise(f.left)
		rhs := Normalise(f.right)
		//
		return NewImplies(NewNot(lhs), rhs)
	default:
		return f
	}
}

// NormaliseAll rewrites every conjunction and disjunction within a formula
// into the core connectives, such that the result contains only variables,
// negations and implications.
func NormaliseAll(f Formula) Formula {
	switch f := f.(type) {
	case *Not:
		return NewNot(NormaliseAll(f.arg))
	case *And:
		return NewNot(NewImplies(NormaliseAll(f.left), NewNot(NormaliseAll(f.right))))
	case *Or:
		return NewImplies(NewNot(NormaliseAll(f.left)), NormaliseAll(f.right))
	case *Implies:
		return NewImplies(NormaliseAll(f.left), NormaliseAll(f.right))
	default:
		return f
	}
}

// IsCore checks whether a formula is built only from variables, negations and
// implications.
func IsCore(f Formula) bool {
	switch f := f.(type) {
	case *Variable:
		return true
	case *Not:
		return IsCore(f.arg)
	case *Implies:
		return IsCore(f.left) && IsCore(f.right)
	default:
		return false
	}
}
