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
	"reflect"
	"strings"
	"testing"

	"github.com/consensys/go-hilbert/pkg/util/source"
)

func Test_SExp_01(t *testing.T) {
	e1 := List{nil}
	checkOk(t, &e1, "()")
}

func Test_SExp_02(t *testing.T) {
	e1 := List{nil}
	e2 := List{[]SExp{&e1}}
	checkOk(t, &e2, "(())")
}

func Test_SExp_03(t *testing.T) {
	e1 := Symbol{"symbol"}
	checkOk(t, &e1, "symbol")
}

func Test_SExp_04(t *testing.T) {
	e1 := Symbol{"A"}
	e2 := List{[]SExp{&e1}}
	checkOk(t, &e2, "(A)")
}

func Test_SExp_05(t *testing.T) {
	e1 := Symbol{"implies"}
	e2 := Symbol{"A"}
	e3 := Symbol{"B"}
	e4 := List{[]SExp{&e1, &e2, &e3}}
	checkOk(t, &e4, "(implies A B)")
}

func Test_SExp_06(t *testing.T) {
	e1 := Symbol{"not"}
	e2 := Symbol{"x"}
	e3 := List{[]SExp{&e1, &e2}}
	e4 := List{[]SExp{&e1, &e3}}
	checkOk(t, &e4, "  (not\n\t(not x))  ")
}

// Semicolons and brackets carry no special meaning.
func Test_SExp_07(t *testing.T) {
	e1 := Symbol{"a;b[c]"}
	checkOk(t, &e1, "a;b[c]")
}

func Test_SExp_Err_01(t *testing.T) {
	checkErr(t, ")", 0)
}

func Test_SExp_Err_02(t *testing.T) {
	checkErr(t, "())", 2)
}

func Test_SExp_Err_03(t *testing.T) {
	checkErr(t, "(and A B", 8)
}

func Test_SExp_Err_04(t *testing.T) {
	checkErr(t, "", 0)
}

func Test_SExp_Err_05(t *testing.T) {
	checkErr(t, "A B", 2)
}

func Test_SExp_ParseAll_01(t *testing.T) {
	srcfile := source.NewInlineFile("test", "A (not B)\n(implies C D)")
	terms, _, err := ParseAll(srcfile)
	//
	if err != nil {
		t.Fatal(err)
	} else if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(terms))
	} else if terms[2].String() != "(implies C D)" {
		t.Errorf("unexpected term %s", terms[2].String())
	}
}

func Test_SExp_SourceMap_01(t *testing.T) {
	srcfile := source.NewInlineFile("test", "(not  x)")
	term, srcmap, err := Parse(srcfile)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	list := term.AsList()
	outer := srcmap.Get(list)
	inner := srcmap.Get(list.Get(1))
	//
	if outer.Start() != 0 || outer.End() != 8 {
		t.Errorf("unexpected span %d:%d", outer.Start(), outer.End())
	} else if inner.Start() != 6 || inner.End() != 7 {
		t.Errorf("unexpected span %d:%d", inner.Start(), inner.End())
	}
}

func Test_SExp_Format_01(t *testing.T) {
	checkFormat(t, 80, "(deduction A A (hypothesis 0 A))", "(deduction A A (hypothesis 0 A))\n")
}

func Test_SExp_Format_02(t *testing.T) {
	input := "(deduction A (implies B A) (deduction B A (hypothesis 0 A)))"
	expected := "(deduction A (implies B A)\n   (deduction B A\n      (hypothesis 0 A)))\n"
	checkFormat(t, 30, input, expected)
}

// ============================================================================
// Test Helpers
// ============================================================================

func checkOk(t *testing.T, sexp1 SExp, input string) {
	sexp2, _, err := Parse(source.NewInlineFile("test", input))
	//
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(sexp1, sexp2) {
		t.Errorf("%s != %s", sexp1, sexp2)
	}
}

func checkErr(t *testing.T, input string, offset int) {
	_, _, err := Parse(source.NewInlineFile("test", input))
	//
	if err == nil {
		t.Errorf("input should not have parsed!")
	} else if err.Offset() != offset {
		t.Errorf("expected error at offset %d, got %d (%s)", offset, err.Offset(), err.Message())
	}
}

func checkFormat(t *testing.T, width uint, input string, expected string) {
	term, _, err := Parse(source.NewInlineFile("test", input))
	if err != nil {
		t.Fatal(err)
	}
	//
	formatter := NewFormatter(width)
	formatter.Add(&HeadFormatter{Head: "deduction", Inline: 3, Priority: 1})
	formatter.Add(&HeadFormatter{Head: "hypothesis", Inline: 3, Priority: 1})
	//
	if actual := formatter.Format(term); actual != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, strings.ReplaceAll(actual, " ", "·"))
	}
}
