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
	"math/rand/v2"
	"testing"
)

func Test_Equal_01(t *testing.T) {
	checkEqual(t, "(and A B)", "(and B A)", true)
}

func Test_Equal_02(t *testing.T) {
	checkEqual(t, "(and A B)", "(or A B)", false)
}

func Test_Equal_03(t *testing.T) {
	checkEqual(t, "(or (and A B) (not C))", "(or (not C) (and A B))", true)
}

func Test_Equal_04(t *testing.T) {
	checkEqual(t, "(implies A B)", "(implies B A)", false)
}

func Test_Equal_05(t *testing.T) {
	checkEqual(t, "(implies A A)", "(implies A A)", true)
}

func Test_Equal_06(t *testing.T) {
	checkEqual(t, "(not (or A B))", "(not (or B A))", true)
}

func Test_Equal_07(t *testing.T) {
	checkEqual(t, "(implies (and A B) C)", "(implies (and B A) C)", true)
}

func Test_Equal_08(t *testing.T) {
	checkEqual(t, "(and A (and B C))", "(and (and A B) C)", false)
}

func Test_Equal_09(t *testing.T) {
	checkEqual(t, "A", "(A)", true)
}

func Test_Equal_10(t *testing.T) {
	checkEqual(t, "(and A A)", "(and A B)", false)
}

func Test_Equal_Nil(t *testing.T) {
	if !Equal(nil, nil) {
		t.Errorf("expected nil formulas to be equal")
	} else if Equal(NewVariable("A"), nil) || Equal(nil, NewVariable("A")) {
		t.Errorf("expected nil formula to differ from variable")
	}
}

// Swapping the operands of any conjunction or disjunction must preserve both
// equality and the hashcode.
func Test_Equal_Commutative(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	//
	for range 500 {
		var (
			a = randomFormula(rng, 4)
			b = randomFormula(rng, 4)
		)
		//
		checkSwapped(t, NewAnd(a, b), NewAnd(b, a), true)
		checkSwapped(t, NewOr(a, b), NewOr(b, a), true)
		checkSwapped(t, NewImplies(a, b), NewImplies(b, a), Equal(a, b))
		// Deep swaps
		f := randomFormula(rng, 5)
		checkSwapped(t, f, swapAll(f), true)
	}
}

func Test_Print_01(t *testing.T) {
	f := NewOr(NewAnd(NewVariable("B"), NewVariable("A")), NewNot(NewVariable("C")))
	//
	if s := f.String(); s != "(or (and B A) (not C))" {
		t.Errorf("unexpected rendering %s", s)
	}
}

func Test_Print_02(t *testing.T) {
	// Printing never reorders operands
	f := NewAnd(NewVariable("Z"), NewVariable("A"))
	g := NewAnd(NewVariable("A"), NewVariable("Z"))
	//
	if f.String() == g.String() {
		t.Errorf("expected renderings to differ")
	} else if !Equal(f, g) {
		t.Errorf("expected formulas to be equal")
	}
}

func Test_ToSExp_01(t *testing.T) {
	f := MustParse("(implies (not A) (or B (C)))")
	//
	if s := ToSExp(f).String(); s != f.String() {
		t.Errorf("expected %s, got %s", f.String(), s)
	}
}

func Test_Clone_01(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	//
	for range 100 {
		f := randomFormula(rng, 5)
		g := Clone(f)
		//
		if !Equal(f, g) || f.String() != g.String() || f.Hash() != g.Hash() {
			t.Errorf("clone of %s differs: %s", f, g)
		} else if shared := sharedNodes(f, g); shared {
			t.Errorf("clone of %s shares nodes with original", f)
		}
	}
}

func Test_Variables_01(t *testing.T) {
	vars := Variables(MustParse("(implies (and B A) (or C (not A)))"), MustParse("D"))
	//
	if !equalStrings(vars, []string{"A", "B", "C", "D"}) {
		t.Errorf("unexpected variables %v", vars)
	}
}

func Test_Size_01(t *testing.T) {
	if n := Size(MustParse("(implies (and B A) (not A))")); n != 6 {
		t.Errorf("expected 6 nodes, got %d", n)
	}
}

func Test_Constructor_Nil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for missing operand")
		}
	}()
	//
	NewImplies(NewVariable("A"), nil)
}

// ============================================================================
// Test Helpers
// ============================================================================

func checkEqual(t *testing.T, lhs string, rhs string, expected bool) {
	f1 := MustParse(lhs)
	f2 := MustParse(rhs)
	//
	if actual := Equal(f1, f2); actual != expected {
		t.Errorf("expected %s == %s to be %t", lhs, rhs, expected)
	} else if Equal(f2, f1) != expected {
		t.Errorf("expected %s == %s to be %t", rhs, lhs, expected)
	} else if expected && f1.Hash() != f2.Hash() {
		t.Errorf("equal formulas %s and %s have different hashes", lhs, rhs)
	}
}

func checkSwapped(t *testing.T, f Formula, g Formula, expected bool) {
	if Equal(f, g) != expected {
		t.Errorf("expected %s == %s to be %t", f, g, expected)
	} else if expected && f.Hash() != g.Hash() {
		t.Errorf("equal formulas %s and %s have different hashes", f, g)
	} else if Equal(f, g) && !f.Equals(g) {
		t.Errorf("Equal and Equals disagree for %s and %s", f, g)
	}
}

var testVariables = []string{"A", "B", "C", "D"}

// randomFormula generates an arbitrary formula of at most the given depth
// over a small set of variables.
func randomFormula(rng *rand.Rand, depth uint) Formula {
	if depth == 0 || rng.IntN(4) == 0 {
		return NewVariable(testVariables[rng.IntN(len(testVariables))])
	}
	//
	switch rng.IntN(4) {
	case 0:
		return NewNot(randomFormula(rng, depth-1))
	case 1:
		return NewAnd(randomFormula(rng, depth-1), randomFormula(rng, depth-1))
	case 2:
		return NewOr(randomFormula(rng, depth-1), randomFormula(rng, depth-1))
	default:
		return NewImplies(randomFormula(rng, depth-1), randomFormula(rng, depth-1))
	}
}

// swapAll swaps the operands of every conjunction and disjunction.
func swapAll(f Formula) Formula {
	switch f := f.(type) {
	case *Not:
		return NewNot(swapAll(f.Arg()))
	case *And:
		return NewAnd(swapAll(f.Right()), swapAll(f.Left()))
	case *Or:
		return NewOr(swapAll(f.Right()), swapAll(f.Left()))
	case *Implies:
		return NewImplies(swapAll(f.Left()), swapAll(f.Right()))
	default:
		return f
	}
}

// sharedNodes checks whether two formulas share any node (by identity).
func sharedNodes(f Formula, g Formula) bool {
	seen := make(map[Formula]bool)
	//
	visit(f, func(n Formula) { seen[n] = true })
	//
	shared := false
	//
	visit(g, func(n Formula) { shared = shared || seen[n] })
	//
	return shared
}

func visit(f Formula, fn func(Formula)) {
	fn(f)
	//
	switch f := f.(type) {
	case *Not:
		visit(f.Arg(), fn)
	case Binary:
		visit(f.Left(), fn)
		visit(f.Right(), fn)
	}
}

func equalStrings(as []string, bs []string) bool {
	if len(as) != len(bs) {
		return false
	}
	//
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	//
	return true
}
