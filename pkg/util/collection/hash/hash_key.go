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
package hash

// A reasonably simple hashmap implementation which permits collisions.  Observe
// that, for example, hashicorp's go-set is *not* a suitable replacement here,
// since that does not handle collisions.  Specifically, it assumes the hash
// function always uniquely identifies the data in question.  I don't want to
// make that assumption here, since formulas which are equal up to commutativity
// must share a hashcode (but not vice-versa).

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashmap.  This is similar to the Hasher interface provided in
// go-set, except that it additionally includes equality.  Implementations must
// ensure that Equals(x,y) implies x.Hash() == y.Hash().
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Combine mixes an ordered sequence of 64-bit values into a single hashcode
// using FNV1a.  Swapping any two (distinct) values will typically produce a
// different hashcode.
func Combine(values ...uint64) uint64 {
	hash := offset64
	//
	for _, v := range values {
		hash ^= v
		hash *= prime64
	}
	//
	return hash
}

// String generates a 64-bit FNV1a hashcode for a given string.
func String(s string) uint64 {
	hash := offset64
	//
	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime64
	}
	//
	return hash
}

// ============================================================================
// Array Implementation
// ============================================================================

// Array provides a mechanism for hashing an ordered sequence of hashable
// items.  Two arrays are equal when they have the same length and are
// element-wise equal.
type Array[F Hasher[F]] struct {
	elements []F
}

// NewArray constructs a new array key.  The given slice is retained, hence it
// should not be modified afterwards.
func NewArray[F Hasher[F]](elements []F) Array[F] {
	return Array[F]{elements}
}

// Len returns the number of elements in this array.
func (p Array[F]) Len() int {
	return len(p.elements)
}

// Equals compares two arrays to check whether they are element-wise equal (or
// not).
func (p Array[F]) Equals(other Array[F]) bool {
	if len(p.elements) != len(other.elements) {
		return false
	}
	//
	for i := range p.elements {
		if !p.elements[i].Equals(other.elements[i]) {
			return false
		}
	}
	//
	return true
}

// Hash generates a 64-bit hashcode from the hashcodes of the underlying
// elements, taking their order into account.
func (p Array[F]) Hash() uint64 {
	hash := offset64
	//
	for _, c := range p.elements {
		hash ^= c.Hash()
		hash *= prime64
	}
	//
	return hash
}
