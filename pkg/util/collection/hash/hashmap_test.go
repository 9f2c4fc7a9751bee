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

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func Test_HashMap_01(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_HashMap(t, items)
}

func Test_HashMap_02(t *testing.T) {
	check_HashMap(t, randomUints(10, 32))
}

func Test_HashMap_03(t *testing.T) {
	check_HashMap(t, randomUints(100, 32))
}

func Test_HashMap_04(t *testing.T) {
	check_HashMap(t, randomUints(1000, 32))
}

func Test_HashMap_05(t *testing.T) {
	check_HashMap(t, randomUints(100000, 128))
}

func Test_HashMap_Clear(t *testing.T) {
	hmap := NewMap[testKey, uint](0)
	hmap.Insert(testKey{1}, 1)
	hmap.Insert(testKey{17}, 2)
	//
	if hmap.MaxBucket() != 2 {
		t.Errorf("expected colliding keys to share a bucket")
	}
	//
	hmap.Clear()
	//
	if hmap.Size() != 0 || hmap.ContainsKey(testKey{1}) {
		t.Errorf("expected empty map, got %s", hmap.String())
	}
}

func Test_HashArray_01(t *testing.T) {
	a := NewArray([]testKey{{1}, {2}, {3}})
	b := NewArray([]testKey{{1}, {2}, {3}})
	c := NewArray([]testKey{{3}, {2}, {1}})
	d := NewArray([]testKey{{1}, {2}})
	//
	if !a.Equals(b) || a.Hash() != b.Hash() {
		t.Errorf("expected equal arrays with equal hashes")
	} else if a.Equals(c) || a.Equals(d) {
		t.Errorf("expected arrays to differ")
	} else if a.Hash() == c.Hash() {
		t.Errorf("expected order-sensitive hashes")
	}
}

func Test_HashCombine_01(t *testing.T) {
	if Combine(1, 2) == Combine(2, 1) {
		t.Errorf("expected order-sensitive combination")
	} else if String("A") == String("B") {
		t.Errorf("expected distinct string hashes")
	} else if String("A") != String("A") {
		t.Errorf("expected deterministic string hashes")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_HashMap(t *testing.T, items []uint) {
	gmap := initGoMap(items)
	hmap := NewMap[testKey, uint](0)
	// Insert items
	for key, val := range gmap {
		hmap.Insert(testKey{key}, val)
	}
	// Sanity check number of unique items
	if hmap.Size() != uint(len(gmap)) {
		t.Errorf("expected %d items, got %d: %s", len(gmap), hmap.Size(), hmap.String())
	}
	// Sanity check containership
	for key, val := range gmap {
		if !hmap.ContainsKey(testKey{key}) {
			t.Errorf("missing key %d: %s", key, hmap.String())
		} else if v, ok := hmap.Get(testKey{key}); !ok {
			t.Errorf("missing item %d=>%d: %s", key, val, hmap.String())
		} else if v != val {
			t.Errorf("expecting %d=>%d, got %d=>%d: %s", key, val, key, v, hmap.String())
		}
	}
}

func initGoMap(items []uint) map[uint]uint {
	gmap := make(map[uint]uint)
	//
	for _, v := range items {
		gmap[v]++
	}
	//
	return gmap
}

func randomUints(n uint, bound uint) []uint {
	items := make([]uint, n)
	//
	for i := range items {
		items[i] = uint(rand.UintN(bound))
	}
	//
	return items
}

// A simple wrapper around a uint.  This is deliberately broken to ensure a
// relatively limited spread of hash values.  This helps to ensure that we get
// some collisions.
type testKey struct {
	value uint
}

func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

func (p testKey) Hash() uint64 {
	// This is a deliberate act to limit the quality of this hash function.
	return uint64(p.value % 16)
}

func (p testKey) String() string {
	return fmt.Sprintf("%d", p.value)
}
