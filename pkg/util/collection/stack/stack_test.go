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
package stack

import "testing"

func Test_Stack_01(t *testing.T) {
	s := NewStack[int]()
	//
	for i := range 10 {
		s.Push(i)
	}
	//
	if s.Len() != 10 || s.Peek(0) != 9 || s.Peek(9) != 0 {
		t.Fatalf("unexpected stack contents")
	}
	//
	for i := 9; i >= 0; i-- {
		if v := s.Pop(); v != i {
			t.Errorf("expected %d, got %d", i, v)
		}
	}
	//
	if !s.IsEmpty() {
		t.Errorf("expected empty stack")
	}
}

func Test_Stack_02(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic popping empty stack")
		}
	}()
	//
	NewStack[string]().Pop()
}
