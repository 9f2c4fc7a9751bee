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

	"github.com/consensys/go-hilbert/pkg/util/source"
	"github.com/consensys/go-hilbert/pkg/util/source/sexp"
)

// Parse a formula written in prefix notation, such as "(implies A (not B))".
// Any error returned is a *source.SyntaxError which identifies the offending
// character offset.  The grammar is:
//
//	formula := "(" "not" formula ")"
//	         | "(" ("and"|"or"|"implies") formula formula ")"
//	         | "(" atom ")"
//	         | atom
//
// Here, an atom is any token (i.e. text not containing whitespace or
// parentheses) other than one of the keywords.
func Parse(text string) (Formula, error) {
	f, _, err := ParseFile(source.NewInlineFile("<input>", text))
	// NOTE: must avoid returning a typed nil.
	if err != nil {
		return nil, err
	}
	//
	return f, nil
}

// MustParse parses a formula which is known to be well-formed, panicking
// otherwise.
func MustParse(text string) Formula {
	f, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("invalid formula \"%s\": %s", text, err))
	}
	//
	return f
}

// ParseFile parses a source file containing exactly one formula.  A source map
// is also returned, identifying the span of text from which each node of the
// formula was parsed.
func ParseFile(srcfile *source.File) (Formula, *source.Map[Formula], *source.SyntaxError) {
	term, srcmap, err := sexp.Parse(srcfile)
	if err != nil {
		return nil, nil, err
	}
	//
	translator := newTranslator(srcfile, srcmap)
	//
	f, errs := translator.Translate(term)
	if len(errs) > 0 {
		return nil, nil, &errs[0]
	}
	//
	return f, translator.SourceMap(), nil
}

// ParseAll parses a source file containing zero or more formulas, such as a
// file of proof goals.
func ParseAll(srcfile *source.File) ([]Formula, *source.Map[Formula], *source.SyntaxError) {
	terms, srcmap, err := sexp.ParseAll(srcfile)
	if err != nil {
		return nil, nil, err
	}
	//
	var (
		translator = newTranslator(srcfile, srcmap)
		formulas   = make([]Formula, len(terms))
	)
	//
	for i, term := range terms {
		var errs []source.SyntaxError
		//
		if formulas[i], errs = translator.Translate(term); len(errs) > 0 {
			return nil, nil, &errs[0]
		}
	}
	//
	return formulas, translator.SourceMap(), nil
}

// IsKeyword checks whether a given token is reserved for a logical connective,
// and therefore cannot be used as a variable name.
func IsKeyword(token string) bool {
	switch token {
	case "not", "and", "or", "implies":
		return true
	default:
		return false
	}
}

func newTranslator(srcfile *source.File, srcmap *source.Map[sexp.SExp]) *sexp.Translator[Formula] {
	p := sexp.NewTranslator[Formula](srcfile, srcmap)
	// Connectives
	p.AddRecursiveListRule("not", 1, notRule)
	p.AddRecursiveListRule("and", 2, binaryRule(AND))
	p.AddRecursiveListRule("or", 2, binaryRule(OR))
	p.AddRecursiveListRule("implies", 2, binaryRule(IMPLIES))
	// Parenthesised variables, e.g. "(x)"
	p.AddDefaultListRule(func(l *sexp.List) (Formula, []source.SyntaxError) {
		if l.Len() != 1 {
			return nil, p.SyntaxErrors(l.Get(1), "unexpected operand, expected )")
		}
		//
		name, _ := l.Head()
		//
		return NewVariable(name), nil
	})
	// Bare variables
	p.AddSymbolRule(variableRule)
	//
	return p
}

func notRule(_ string, args []Formula) (Formula, error) {
	return NewNot(args[0]), nil
}

func binaryRule(kind Kind) sexp.RecursiveRule[Formula] {
	return func(_ string, args []Formula) (Formula, error) {
		return NewBinary(kind, args[0], args[1]), nil
	}
}

func variableRule(token string) (Formula, bool, error) {
	if IsKeyword(token) {
		return nil, true, fmt.Errorf("unexpected keyword \"%s\"", token)
	}
	//
	return NewVariable(token), true, nil
}
