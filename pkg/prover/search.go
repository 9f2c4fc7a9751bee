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
	"github.com/consensys/go-hilbert/pkg/formula"
	"github.com/consensys/go-hilbert/pkg/util/collection/hash"
	"github.com/consensys/go-hilbert/pkg/util/collection/stack"
)

// goal identifies a single (sub)problem encountered during search, and acts as
// the key for the proof cache.  Hypotheses are compared in order.
type goal struct {
	target     formula.Formula
	hypotheses hash.Array[formula.Formula]
	depth      uint
}

// Equals implementation for hash.Hasher interface.
func (p goal) Equals(other goal) bool {
	return p.depth == other.depth && formula.Equal(p.target, other.target) &&
		p.hypotheses.Equals(other.hypotheses)
}

// Hash implementation for hash.Hasher interface.
func (p goal) Hash() uint64 {
	return hash.Combine(p.target.Hash(), p.hypotheses.Hash(), uint64(p.depth))
}

// stage identifies how far the search for a given goal has progressed.  Stages
// mirror the order in which the inference rules are attempted.
type stage uint8

const (
	// Check cache, depth bound and hypotheses.
	stageEnter stage = iota
	// Awaiting proof of consequent under extended hypotheses.
	stageDeduction
	// Awaiting proof of antecedent of some hypothesis (if pending), or
	// searching for the next applicable hypothesis.
	stageModusPonens
	// Attempt to match axiom schemas.
	stageAxioms
)

// frame captures the state of the search for a single goal.  The search is
// performed on an explicit stack of frames, rather than by native recursion,
// so that deep searches cannot exhaust the call stack.
type frame struct {
	goal
	// Hypotheses in order, as held in the key.
	hyps []formula.Formula
	// Current stage of this frame.
	stage stage
	// Index of the next hypothesis to consider for modus ponens.
	next int
	// Indicates whether a subgoal for hypothesis next-1 is outstanding.
	pending bool
}

func newFrame(target formula.Formula, hypotheses []formula.Formula, depth uint) *frame {
	return &frame{
		goal:  goal{target, hash.NewArray(hypotheses), depth},
		hyps:  hypotheses,
		stage: stageEnter,
	}
}

// Search for a proof of the goal identified by the given (root) frame.  Each
// iteration advances the frame on top of the stack by one stage, either pushing
// a subgoal or completing the frame.  When a frame completes, its outcome is
// left in result for the frame beneath it.
func (p *Prover) search(root *frame, maxDepth uint) Proof {
	var (
		frames = stack.NewStack[*frame]()
		result Proof
	)
	//
	frames.Push(root)
	//
	for !frames.IsEmpty() {
		f := frames.Peek(0)
		//
		switch f.stage {
		case stageEnter:
			p.stats.Goals++
			//
			if proof, ok := p.cache.Get(f.goal); ok {
				p.stats.CacheHits++
				result = proof
				//
				frames.Pop()
			} else if f.depth > maxDepth {
				result = nil
				//
				frames.Pop()
			} else if i := formula.IndexOf(f.hyps, f.target); i >= 0 {
				result = p.complete(frames, &Hypothesis{uint(i), f.target})
			} else if imp, ok := f.target.(*formula.Implies); ok {
				// Discharge antecedent as hypothesis
				hypotheses := append(f.hyps[:len(f.hyps):len(f.hyps)], imp.Left())
				f.stage = stageDeduction
				//
				frames.Push(newFrame(imp.Right(), hypotheses, f.depth+1))
			} else {
				f.stage = stageModusPonens
			}
		case stageDeduction:
			if result != nil {
				imp := f.target.(*formula.Implies)
				result = p.complete(frames, &Deduction{imp.Left(), imp.Right(), result})
			} else {
				f.stage = stageModusPonens
			}
		case stageModusPonens:
			if f.pending && result != nil {
				result = p.complete(frames, &ModusPonens{uint(f.next - 1), result, f.target})
			} else if f.pending = p.nextModusPonens(frames, f); !f.pending {
				f.stage = stageAxioms
			}
		case stageAxioms:
			result = nil
			//
			for i, axiom := range axioms {
				if subst, ok := formula.Match(axiom, f.target, nil); ok {
					result = &Axiom{uint(i + 1), subst, f.target}
					break
				}
			}
			//
			if result != nil {
				p.complete(frames, result)
			} else {
				// Failures are never cached.
				frames.Pop()
			}
		}
	}
	//
	return result
}

// Find the next hypothesis of the form "X → target" and push a subgoal for X.
// This returns false if no such hypothesis remains.
func (p *Prover) nextModusPonens(frames *stack.Stack[*frame], f *frame) bool {
	for f.next < len(f.hyps) {
		h := f.hyps[f.next]
		f.next++
		//
		if imp, ok := h.(*formula.Implies); ok && formula.Equal(imp.Right(), f.target) {
			frames.Push(newFrame(imp.Left(), f.hyps, f.depth+1))
			//
			return true
		}
	}
	//
	return false
}

// Complete the frame on top of the stack with a given proof, which is cached
// against its goal.
func (p *Prover) complete(frames *stack.Stack[*frame], proof Proof) Proof {
	f := frames.Pop()
	//
	p.cache.Insert(f.goal, proof)
	//
	return proof
}
