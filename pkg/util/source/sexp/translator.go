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
package sexp

import (
	"fmt"

	"github.com/consensys/go-hilbert/pkg/util/source"
)

// SymbolRule is a symbol generator is responsible for converting a terminating
// expression (i.e. a symbol) into an expression type T.  The boolean indicates
// whether the rule applies at all.  An error indicates the rule applies, but
// the symbol is malformed.
type SymbolRule[T comparable] func(string) (T, bool, error)

// ListRule is a list translator is responsible converting a list with a given
// sequence of zero or more arguments into an expression type T.
type ListRule[T comparable] func(*List) (T, []source.SyntaxError)

// RecursiveRule is a recursive translator is a wrapper for translating lists whose
// elements can be built by recursively reusing the enclosing
// translator.
type RecursiveRule[T comparable] func(string, []T) (T, error)

// ===================================================================
// Translator
// ===================================================================

// Translator is a generic mechanism for translating S-Expressions into a structured
// form.
type Translator[T comparable] struct {
	srcfile *source.File
	// Rules for parsing lists
	lists map[string]ListRule[T]
	// Fallback rule for lists whose head has no dedicated rule.
	list_default ListRule[T]
	// Rules for parsing symbols
	symbols []SymbolRule[T]
	// Maps S-Expressions to their spans in the original source file.  This is
	// used to build the new source map.
	old_srcmap *source.Map[SExp]
	// Maps translated expressions to their spans in the original source file.
	// This is constructed using the old source map.
	new_srcmap *source.Map[T]
}

// NewTranslator constructs a new Translator instance.
func NewTranslator[T comparable](srcfile *source.File, srcmap *source.Map[SExp]) *Translator[T] {
	return &Translator[T]{
		srcfile:      srcfile,
		lists:        make(map[string]ListRule[T]),
		list_default: nil,
		symbols:      make([]SymbolRule[T], 0),
		old_srcmap:   srcmap,
		new_srcmap:   source.NewSourceMap[T](srcmap.Source()),
	}
}

// SourceMap returns the source map maintained for terms constructed by this
// translator.
func (p *Translator[T]) SourceMap() *source.Map[T] {
	return p.new_srcmap
}

// SpanOf gets the span associated with a given S-Expression in the original
// source file.
func (p *Translator[T]) SpanOf(sexp SExp) source.Span {
	return p.old_srcmap.Get(sexp)
}

// Translate a given S-Expression into a given structured representation T
// using the rules registered with this translator.
func (p *Translator[T]) Translate(sexp SExp) (T, []source.SyntaxError) {
	return translateSExp(p, sexp)
}

// AddListRule adds a raw list rule to this expression translator.
func (p *Translator[T]) AddListRule(name string, rule ListRule[T]) {
	p.lists[name] = rule
}

// AddRecursiveListRule adds a new list translator for lists with a given head
// and exactly arity operands.  The operands are translated first, and then
// given to the constructor.  Surplus operands are reported at the first
// offending operand, whilst missing operands are reported at the closing
// parenthesis.
func (p *Translator[T]) AddRecursiveListRule(name string, arity int, t RecursiveRule[T]) {
	p.lists[name] = p.createRecursiveListRule(arity, t)
}

// AddDefaultListRule adds a default rule to be applied when no other list
// rules apply.
func (p *Translator[T]) AddDefaultListRule(rule ListRule[T]) {
	p.list_default = rule
}

// AddSymbolRule adds a new symbol translator to this expression translator.
func (p *Translator[T]) AddSymbolRule(t SymbolRule[T]) {
	p.symbols = append(p.symbols, t)
}

func (p *Translator[T]) createRecursiveListRule(arity int, t RecursiveRule[T]) ListRule[T] {
	return func(l *List) (T, []source.SyntaxError) {
		var (
			empty  T
			errors []source.SyntaxError
			n      = len(l.Elements) - 1
		)
		// Extract expression name
		head := (l.Elements[0].(*Symbol)).Value
		// Check operand count
		if n > arity {
			return empty, p.SyntaxErrors(l.Elements[arity+1], "unexpected operand, expected )")
		} else if n < arity {
			span := p.SpanOf(l)
			msg := fmt.Sprintf("missing operand for %s (expected %d, found %d)", head, arity, n)
			//
			return empty, []source.SyntaxError{*p.srcfile.SyntaxError(span.Last(), msg)}
		}
		// Translate arguments
		args := make([]T, n)
		//
		for i, s := range l.Elements[1:] {
			var errs []source.SyntaxError
			args[i], errs = translateSExp(p, s)
			errors = append(errors, errs...)
		}
		// Don't construct anything from broken operands
		if len(errors) > 0 {
			return empty, errors
		}
		// Apply constructor
		term, err := t(head, args)
		// Check error
		if err != nil {
			return empty, p.SyntaxErrors(l, err.Error())
		}
		//
		return term, nil
	}
}

// SyntaxError constructs a suitable syntax error for a given S-Expression.
//
//nolint:revive
func (p *Translator[T]) SyntaxError(s SExp, msg string) *source.SyntaxError {
	// Get span of enclosing list
	span := p.old_srcmap.Get(s)
	// Construct syntax error
	return p.srcfile.SyntaxError(span, msg)
}

// SyntaxErrors constructs a suitable syntax error for a given S-Expression.
//
//nolint:revive
func (p *Translator[T]) SyntaxErrors(s SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(s, msg)}
}

// ===================================================================
// Private
// ===================================================================

// Translate an S-Expression into a term.  Observe that this can still fail in
// the event that the given S-Expression does not describe a well-formed term.
func translateSExp[T comparable](p *Translator[T], s SExp) (T, []source.SyntaxError) {
	var empty T

	switch e := s.(type) {
	case *List:
		return translateSExpList(p, e)
	case *Symbol:
		for i := 0; i != len(p.symbols); i++ {
			node, ok, err := (p.symbols[i])(e.Value)
			if ok && err != nil {
				// Transform into syntax error
				return empty, p.SyntaxErrors(s, err.Error())
			} else if ok {
				// Update source map
				map2sexp(p, node, s)
				// Done
				return node, nil
			}
		}
		//
		return empty, p.SyntaxErrors(s, fmt.Sprintf("unknown symbol \"%s\"", e.Value))
	}
	// This should be unreachable.
	return empty, p.SyntaxErrors(s, fmt.Sprintf("invalid s-expression (%T)", s))
}

// Translate a list of S-Expressions into a unary, binary or n-ary
// expression of some kind.  This type of expression is determined by
// the first element of the list.  The remaining elements are treated
// as arguments which are first recursively translated.
func translateSExpList[T comparable](p *Translator[T], l *List) (T, []source.SyntaxError) {
	var (
		empty  T
		node   T
		errors []source.SyntaxError
	)
	// Extract expression name
	name, ok := l.Head()
	// Sanity check this list makes sense
	if !ok {
		return empty, p.SyntaxErrors(l, "expected operator or variable after (")
	}
	// Lookup appropriate translator
	if t := p.lists[name]; t != nil {
		node, errors = t(l)
	} else if p.list_default != nil {
		node, errors = p.list_default(l)
	} else {
		return empty, p.SyntaxErrors(l, fmt.Sprintf("unknown operator \"%s\"", name))
	}
	// Map source node
	if len(errors) == 0 {
		map2sexp(p, node, l)
	}
	// Done
	return node, errors
}

// Add a mapping from a given item to the S-expression from which it was
// generated.  This updates the underlying source map to reflect this.
func map2sexp[T comparable](p *Translator[T], item T, sexp SExp) {
	// Lookup enclosing span
	span := p.old_srcmap.Get(sexp)
	// Map it the new source map
	p.new_srcmap.Put(item, span)
}
