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
	"maps"
	"slices"
	"strings"
)

// Substitution maps the variables of a pattern (or schema) to the formulas
// they stand for.
type Substitution map[string]Formula

// Clone returns a copy of this substitution which can be extended without
// affecting the original.  Cloning a nil substitution gives an empty one.
func (p Substitution) Clone() Substitution {
	if p == nil {
		return make(Substitution)
	}
	//
	return maps.Clone(p)
}

// Equals checks whether two substitutions bind the same names to equal
// formulas.
func (p Substitution) Equals(o Substitution) bool {
	return maps.EqualFunc(p, o, Equal)
}

// Names returns the bound names of this substitution in sorted order.
func (p Substitution) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

func (p Substitution) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, name := range p.Names() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(name)
		builder.WriteString(":=")
		builder.WriteString(p[name].String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Match attempts to find a substitution which, when applied to the pattern,
// yields the target.  Matching is one-directional: only variables of the
// pattern are bound, whilst variables of the target are treated as opaque
// subformulas.  Operands are matched in order only, even for And and Or, though
// a variable bound twice need only be bound to equal (i.e. commutatively
// equivalent) formulas.
//
// Matching extends the given substitution (which may be nil), though the given
// substitution itself is never modified.  If no match exists, then false is
// returned.
func Match(pattern Formula, target Formula, subst Substitution) (Substitution, bool) {
	result := subst.Clone()
	//
	if match(pattern, target, result) {
		return result, true
	}
	//
	return nil, false
}

func match(pattern Formula, target Formula, subst Substitution) bool {
	if pattern == nil || target == nil {
		return false
	} else if v, ok := pattern.(*Variable); ok {
		if binding, ok := subst[v.name]; ok {
			return Equal(binding, target)
		}
		// Bind variable for first time
		subst[v.name] = Clone(target)
		//
		return true
	} else if pattern.Kind() != target.Kind() {
		return false
	}
	//
	switch p := pattern.(type) {
	case *Not:
		return match(p.arg, target.(*Not).arg, subst)
	case Binary:
		t := target.(Binary)
		return match(p.Left(), t.Left(), subst) && match(p.Right(), t.Right(), subst)
	default:
		return false
	}
}

// Apply instantiates a pattern using a given substitution.  Every bound
// variable is replaced by a copy of its binding, whilst unbound variables are
// retained.  The resulting formula shares no nodes with either the pattern or
// the substitution.
func Apply(pattern Formula, subst Substitution) Formula {
	switch p := pattern.(type) {
	case *Variable:
		if binding, ok := subst[p.name]; ok {
			return Clone(binding)
		}
		//
		return NewVariable(p.name)
	case *Not:
		return NewNot(Apply(p.arg, subst))
	case Binary:
		return NewBinary(p.Kind(), Apply(p.Left(), subst), Apply(p.Right(), subst))
	default:
		panic("unreachable")
	}
}
