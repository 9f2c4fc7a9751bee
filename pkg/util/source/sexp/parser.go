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
	"unicode"

	"github.com/consensys/go-hilbert/pkg/util/source"
)

// Parse a given source file into exactly one S-expression, or return an error
// if the text is malformed.  A source map is also returned which identifies,
// for each S-expression, the span of text from which it was parsed.
func Parse(s *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	// Parse the input
	sExp, err := p.Parse()
	// Sanity check what was parsed
	if err != nil {
		return nil, nil, err
	} else if sExp == nil {
		return nil, nil, p.error("unexpected end of input")
	}
	// Trailing whitespace is permitted, anything else is not.
	p.SkipWhiteSpace()
	//
	if p.index != len(p.text) {
		return nil, nil, p.error("unexpected remainder")
	}
	// Done
	return sExp, p.SourceMap(), nil
}

// ParseAll converts a given source file into zero or more S-expressions, or
// returns an error if the text is malformed.  The key distinction from Parse is
// that this function continues parsing after the first S-expression is
// encountered.
func ParseAll(s *source.File) ([]SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	//
	terms := make([]SExp, 0)
	// Parse the input
	for {
		term, err := p.Parse()
		// Sanity check everything was parsed
		if err != nil {
			return terms, p.srcmap, err
		} else if term == nil {
			// EOF reached
			return terms, p.srcmap, nil
		}

		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.  Only lists and symbols are recognised: "(" and ")"
// are always single-character tokens, whilst a symbol runs until the next
// whitespace character or parenthesis.
type Parser struct {
	// Source file being parsed
	srcfile *source.File
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		srcmap:  source.NewSourceMap[SExp](*srcfile),
	}
}

// SourceMap returns the internal source map constructing during parsing.  Using
// this one can determine, for each SExp, where in the original text it
// originated.  This is helpful, for example, when reporting syntax errors.
func (p *Parser) SourceMap() *source.Map[SExp] {
	return p.srcmap
}

// Parse the next S-Expression from the input stream.  This returns nil (without
// an error) when the end of the input is reached.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	var term SExp
	// Skip over any whitespace.  This is import to get the correct starting
	// point for this term.
	p.SkipWhiteSpace()
	// Record start of this term
	start := p.index
	// Extract next token from the stream
	token := p.Next()
	//
	switch {
	case token == nil:
		return nil, nil
	case len(token) == 1 && token[0] == ')':
		p.index-- // backup
		return nil, p.error("unexpected end-of-list")
	case len(token) == 1 && token[0] == '(':
		elements, err := p.parseSequence()
		// Check for error
		if err != nil {
			return nil, err
		}
		// Done
		term = &List{elements}
	default:
		term = &Symbol{string(token)}
	}
	// Register item in source map
	p.srcmap.Put(term, source.NewSpan(start, p.index))
	// Done
	return term, nil
}

// Next extracts the next token from a given string.
func (p *Parser) Next() []rune {
	p.SkipWhiteSpace()
	// Catch end-of-file
	if p.index == len(p.text) {
		return nil
	}
	// Check what we have
	switch p.text[p.index] {
	case '(', ')':
		// List begin / end
		p.index = p.index + 1
		return p.text[p.index-1 : p.index]
	}
	// Symbol
	return p.parseSymbol()
}

// SkipWhiteSpace skips over any whitespace.
func (p *Parser) SkipWhiteSpace() {
	for p.index < len(p.text) && unicode.IsSpace(p.text[p.index]) {
		p.index++
	}
}

func (p *Parser) parseSymbol() []rune {
	// Parse token
	i := len(p.text)

	for j := p.index; j < i; j++ {
		c := p.text[j]
		if c == '(' || c == ')' || unicode.IsSpace(c) {
			i = j
			break
		}
	}
	// Reached end of token
	token := p.text[p.index:i]
	p.index = i

	return token
}

func (p *Parser) parseSequence() ([]SExp, *source.SyntaxError) {
	var elements []SExp
	//
	for {
		p.SkipWhiteSpace()
		//
		if p.index == len(p.text) {
			return nil, p.error("unexpected end-of-file, expected )")
		} else if p.text[p.index] == ')' {
			// Consume terminator
			p.index++
			return elements, nil
		}
		// Parse next element
		element, err := p.Parse()
		if err != nil {
			return nil, err
		}
		// Continue around!
		elements = append(elements, element)
	}
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *source.SyntaxError {
	span := source.NewSpan(p.index, min(p.index+1, len(p.text)))
	return p.srcfile.SyntaxError(span, msg)
}
