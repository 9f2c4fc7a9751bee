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
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/consensys/go-hilbert/pkg/formula"
	"github.com/consensys/go-hilbert/pkg/util/collection/hash"
	log "github.com/sirupsen/logrus"
)

// DEFAULT_MAX_DEPTH determines the default bound on search depth.
//
//nolint:revive
const DEFAULT_MAX_DEPTH = 1000

// Config provides the various options which control proof search.
type Config struct {
	// MaxDepth bounds the depth of the search.  Depth increases only when
	// applying deduction or modus ponens.
	MaxDepth uint
	// Entailment determines whether to first check (using a SAT solver) that
	// the hypotheses semantically entail the target.  When they do not, no
	// search is performed since no proof can exist.
	Entailment bool
}

// DefaultConfig returns the default configuration for proof search.
func DefaultConfig() Config {
	return Config{MaxDepth: DEFAULT_MAX_DEPTH, Entailment: false}
}

// Statistics records information about the most recent search.
type Statistics struct {
	// Number of goals visited.
	Goals uint
	// Number of goals answered from the cache.
	CacheHits uint
	// Number of proofs held in the cache after the search.
	CacheSize uint
	// Time taken by the search.
	Elapsed time.Duration
}

func (p Statistics) String() string {
	return fmt.Sprintf("%d goals, %d cache hits, %d cached proofs in %s", p.Goals, p.CacheHits, p.CacheSize,
		p.Elapsed)
}

// Prover searches for proofs in a Hilbert system for implication and negation,
// using (in order of preference) hypotheses, the deduction theorem, modus
// ponens with a hypothesis, and finally the axiom schemas.  Successful proofs
// are remembered, such that they can be reused across searches.  A single
// prover may be shared between goroutines, though searches are serialised.
type Prover struct {
	config Config
	// Serialises access to the cache and statistics.
	mutex sync.Mutex
	// Proofs found so far, indexed by goal.
	cache *hash.Map[goal, Proof]
	// Statistics from most recent search.
	stats Statistics
}

// NewProver constructs a prover with an empty cache.
func NewProver(config Config) *Prover {
	return &Prover{
		config: config,
		cache:  hash.NewMap[goal, Proof](128),
	}
}

// Config returns the configuration of this prover.
func (p *Prover) Config() Config {
	return p.config
}

// Prove attempts to find a proof of a given target from a given sequence of
// hypotheses, using the configured maximum depth.  This returns nil when no
// proof exists within that depth.
func (p *Prover) Prove(target formula.Formula, hypotheses ...formula.Formula) Proof {
	return p.ProveAt(target, hypotheses, 0, p.config.MaxDepth)
}

// ProveAt attempts to find a proof of a given target from a given sequence of
// hypotheses, starting from a given depth and searching no deeper than
// maxDepth.  This returns nil when no such proof is found.  Observe that a
// cached proof is returned for a previously solved goal regardless of maxDepth.
func (p *Prover) ProveAt(target formula.Formula, hypotheses []formula.Formula, depth uint, maxDepth uint) Proof {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	//
	var (
		start = time.Now()
		proof Proof
	)
	// Reset statistics
	p.stats = Statistics{}
	// Hypotheses are retained in cache keys, so must not be modified
	// afterwards.
	hypotheses = slices.Clone(hypotheses)
	//
	if p.config.Entailment {
		if model, ok := formula.Entails(hypotheses, target); !ok {
			log.Debugf("%s is not entailed (countermodel %s)", target, model)
			//
			return nil
		}
	}
	//
	proof = p.search(newFrame(target, hypotheses, depth), maxDepth)
	// Finalise statistics
	p.stats.CacheSize = p.cache.Size()
	p.stats.Elapsed = time.Since(start)
	//
	log.Debugf("search for %s: %s", target, p.stats.String())
	//
	return proof
}

// Statistics returns information about the most recent search.
func (p *Prover) Statistics() Statistics {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	//
	return p.stats
}

// Reset clears all proofs remembered by this prover.
func (p *Prover) Reset() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	//
	p.cache.Clear()
}
