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

import "math"

// FormattingRule provides a generic mechanism for writing custom formatting
// rules.  Whenever a list is encountered during formatting, the formatting
// rules will be given the opportunity to direct formatting of the list.  That
// is, whether to start a new line and indent the list as whole and/or any of
// its children.  A formatting rule should return nil for the formatting chunks
// when it doesn't handle the given list.
type FormattingRule interface {
	Split(*List) ([]FormattingChunk, uint)
}

// HeadFormatter indents lists with a matching head symbol, keeping the first
// Inline elements on the opening line.  For example, with Inline=2:
//
//	(head child1
//	  child2
//	  ...
//	  childn)
//
// Children after the inline ones are each indented one more position, but only
// broken onto their own line once the formatting priority reaches Priority.
type HeadFormatter struct {
	// Head symbol to match
	Head string
	// Number of leading elements (including the head) kept on the first line.
	Inline int
	// Priority to give for matching.
	Priority uint
}

// Split a list using this formatter, provided the list matches.
func (p *HeadFormatter) Split(list *List) ([]FormattingChunk, uint) {
	if head, ok := list.Head(); !ok || head != p.Head {
		return nil, 0
	}
	//
	var chunks []FormattingChunk
	//
	for i := 0; i < list.Len(); i++ {
		var chunk FormattingChunk
		//
		chunk.Contents = list.Get(i)
		//
		if i < max(p.Inline, 1) {
			chunk.Priority = math.MaxUint
		} else {
			chunk.Priority = p.Priority
			chunk.Indent = 1
		}
		//
		chunks = append(chunks, chunk)
	}
	//
	return chunks, math.MaxUint
}
