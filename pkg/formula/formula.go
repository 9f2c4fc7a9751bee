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
	"strings"

	"github.com/consensys/go-hilbert/pkg/util/collection/hash"
	"github.com/consensys/go-hilbert/pkg/util/source/sexp"
)

// Kind identifies which of the five (fixed) node types a formula is.
type Kind uint8

const (
	// VARIABLE is a propositional variable, such as "A".
	VARIABLE Kind = iota
	// NOT is logical negation.
	NOT
	// AND is logical conjunction.  This is commutative.
	AND
	// OR is logical disjunction.  This is commutative.
	OR
	// IMPLIES is logical implication.
	IMPLIES
)

func (k Kind) String() string {
	switch k {
	case VARIABLE:
		return "variable"
	case NOT:
		return "not"
	case AND:
		return "and"
	case OR:
		return "or"
	case IMPLIES:
		return "implies"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Formula represents an immutable propositional formula.  The set of
// implementations is closed: a formula is exactly one of *Variable, *Not, *And,
// *Or or *Implies.  Equality is structural except that the operands of And and
// Or may be swapped.  Formulas satisfy hash.Hasher[Formula] and, hence, can be
// used directly as keys in a hash.Map.
type Formula interface {
	// Kind returns the node type of this formula.
	Kind() Kind
	// Equals checks whether this formula is equal to another, treating And and
	// Or as commutative.
	Equals(Formula) bool
	// Hash returns a hashcode consistent with Equals.
	Hash() uint64
	// String returns the canonical prefix rendering of this formula.
	String() string
	// Prevent implementations outside of this package.
	sealed()
}

// Binary captures those formulas which have exactly two operands, namely And,
// Or and Implies.
type Binary interface {
	Formula
	// Left returns the left-hand operand.
	Left() Formula
	// Right returns the right-hand operand.
	Right() Formula
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ Formula               = (*Variable)(nil)
	_ Formula               = (*Not)(nil)
	_ Binary                = (*And)(nil)
	_ Binary                = (*Or)(nil)
	_ Binary                = (*Implies)(nil)
	_ hash.Hasher[Formula] = (Formula)(nil)
)

// ===================================================================
// Variable
// ===================================================================

// Variable is a leaf formula identified by its name.
type Variable struct {
	name string
	hash uint64
}

// NewVariable constructs a variable with the given name.
func NewVariable(name string) *Variable {
	return &Variable{name, hash.Combine(uint64(VARIABLE), hash.String(name))}
}

// Name returns the name of this variable.
func (p *Variable) Name() string { return p.name }

// Kind implementation for Formula interface.
func (p *Variable) Kind() Kind { return VARIABLE }

// Equals implementation for Formula interface.
func (p *Variable) Equals(o Formula) bool { return Equal(p, o) }

// Hash implementation for Formula interface.
func (p *Variable) Hash() uint64 { return p.hash }

func (p *Variable) String() string { return p.name }

func (p *Variable) sealed() {}

// ===================================================================
// Not
// ===================================================================

// Not is the logical negation of its operand.
type Not struct {
	arg  Formula
	hash uint64
}

// NewNot constructs the negation of a given formula.
func NewNot(arg Formula) *Not {
	if arg == nil {
		panic("missing operand for not")
	}
	//
	return &Not{arg, hash.Combine(uint64(NOT), arg.Hash())}
}

// Arg returns the negated formula.
func (p *Not) Arg() Formula { return p.arg }

// Kind implementation for Formula interface.
func (p *Not) Kind() Kind { return NOT }

// Equals implementation for Formula interface.
func (p *Not) Equals(o Formula) bool { return Equal(p, o) }

// Hash implementation for Formula interface.
func (p *Not) Hash() uint64 { return p.hash }

func (p *Not) String() string { return toString(p) }

func (p *Not) sealed() {}

// ===================================================================
// Binary connectives
// ===================================================================

// binary holds the operands (and precomputed hash) shared by all binary
// connectives.
type binary struct {
	left  Formula
	right Formula
	hash  uint64
}

func newBinary(kind Kind, left Formula, right Formula) binary {
	if left == nil || right == nil {
		panic(fmt.Sprintf("missing operand for %s", kind))
	}
	//
	var (
		lhs = left.Hash()
		rhs = right.Hash()
	)
	// Commutative connectives hash their operands in sorted order, so that
	// swapping operands has no effect.
	if (kind == AND || kind == OR) && lhs > rhs {
		lhs, rhs = rhs, lhs
	}
	//
	return binary{left, right, hash.Combine(uint64(kind), lhs, rhs)}
}

// Left returns the left-hand operand.
func (p *binary) Left() Formula { return p.left }

// Right returns the right-hand operand.
func (p *binary) Right() Formula { return p.right }

// Hash implementation for Formula interface.
func (p *binary) Hash() uint64 { return p.hash }

func (p *binary) sealed() {}

// And is the (commutative) conjunction of two formulas.
type And struct{ binary }

// NewAnd constructs the conjunction of two formulas.
func NewAnd(left Formula, right Formula) *And {
	return &And{newBinary(AND, left, right)}
}

// Kind implementation for Formula interface.
func (p *And) Kind() Kind { return AND }

// Equals implementation for Formula interface.
func (p *And) Equals(o Formula) bool { return Equal(p, o) }

func (p *And) String() string { return toString(p) }

// Or is the (commutative) disjunction of two formulas.
type Or struct{ binary }

// NewOr constructs the disjunction of two formulas.
func NewOr(left Formula, right Formula) *Or {
	return &Or{newBinary(OR, left, right)}
}

// Kind implementation for Formula interface.
func (p *Or) Kind() Kind { return OR }

// Equals implementation for Formula interface.
func (p *Or) Equals(o Formula) bool { return Equal(p, o) }

func (p *Or) String() string { return toString(p) }

// Implies is the (ordered) implication from its left operand to its right.
type Implies struct{ binary }

// NewImplies constructs the implication from left to right.
func NewImplies(left Formula, right Formula) *Implies {
	return &Implies{newBinary(IMPLIES, left, right)}
}

// Kind implementation for Formula interface.
func (p *Implies) Kind() Kind { return IMPLIES }

// Equals implementation for Formula interface.
func (p *Implies) Equals(o Formula) bool { return Equal(p, o) }

func (p *Implies) String() string { return toString(p) }

// NewBinary constructs a binary formula of the given kind.  This panics if the
// kind is not a binary connective.
func NewBinary(kind Kind, left Formula, right Formula) Binary {
	switch kind {
	case AND:
		return NewAnd(left, right)
	case OR:
		return NewOr(left, right)
	case IMPLIES:
		return NewImplies(left, right)
	default:
		panic(fmt.Sprintf("%s is not a binary connective", kind))
	}
}

// ===================================================================
// Printing
// ===================================================================

// toString renders a formula in canonical prefix form.  The order of operands
// is always that of construction, even for And and Or.
func toString(f Formula) string {
	var builder strings.Builder
	//
	write(&builder, f)
	//
	return builder.String()
}

func write(builder *strings.Builder, f Formula) {
	switch f := f.(type) {
	case *Variable:
		builder.WriteString(f.name)
	case *Not:
		builder.WriteString("(not ")
		write(builder, f.arg)
		builder.WriteString(")")
	case Binary:
		builder.WriteString("(")
		builder.WriteString(f.Kind().String())
		builder.WriteString(" ")
		write(builder, f.Left())
		builder.WriteString(" ")
		write(builder, f.Right())
		builder.WriteString(")")
	default:
		panic("unreachable")
	}
}

// ToSExp converts a formula into the equivalent S-expression.  This is useful
// for embedding formulas within larger S-expressions for formatting.
func ToSExp(f Formula) sexp.SExp {
	switch f := f.(type) {
	case *Variable:
		return sexp.NewSymbol(f.name)
	case *Not:
		return sexp.NewList([]sexp.SExp{sexp.NewSymbol("not"), ToSExp(f.arg)})
	case Binary:
		return sexp.NewList([]sexp.SExp{sexp.NewSymbol(f.Kind().String()), ToSExp(f.Left()), ToSExp(f.Right())})
	default:
		panic("unreachable")
	}
}
