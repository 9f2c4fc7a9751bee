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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-hilbert/pkg/util/source"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "A", "A")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "(x)", "x")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "  (not   (not A))\n", "(not (not A))")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "(implies (and B A) (or (C) (not D)))", "(implies (and B A) (or C (not D)))")
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "(and p_1 q->r)", "(and p_1 q->r)")
}

func Test_Parse_06(t *testing.T) {
	// Keywords are case sensitive
	checkParse(t, "(not Not)", "(not Not)")
}

func Test_Parse_Err_01(t *testing.T) {
	checkParseErr(t, "", 0)
}

func Test_Parse_Err_02(t *testing.T) {
	checkParseErr(t, ")", 0)
}

func Test_Parse_Err_03(t *testing.T) {
	checkParseErr(t, "(and A B", 8)
}

func Test_Parse_Err_04(t *testing.T) {
	checkParseErr(t, "(not A B)", 7)
}

func Test_Parse_Err_05(t *testing.T) {
	checkParseErr(t, "(and A)", 6)
}

func Test_Parse_Err_06(t *testing.T) {
	checkParseErr(t, "()", 0)
}

func Test_Parse_Err_07(t *testing.T) {
	checkParseErr(t, "((A) B)", 0)
}

func Test_Parse_Err_08(t *testing.T) {
	checkParseErr(t, "(A B)", 3)
}

func Test_Parse_Err_09(t *testing.T) {
	checkParseErr(t, "and", 0)
}

func Test_Parse_Err_10(t *testing.T) {
	checkParseErr(t, "(implies and B)", 9)
}

func Test_Parse_Err_11(t *testing.T) {
	checkParseErr(t, "A B", 2)
}

func Test_Parse_Err_12(t *testing.T) {
	checkParseErr(t, "(or A B))", 8)
}

// Printing then parsing any formula must give back an identical formula.
func Test_Parse_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	//
	for range 500 {
		f := randomFormula(rng, 6)
		g, err := Parse(f.String())
		//
		if err != nil {
			t.Fatalf("failed parsing %s: %s", f, err)
		} else if !Equal(f, g) || f.String() != g.String() {
			t.Errorf("expected %s, got %s", f, g)
		}
	}
}

func Test_ParseAll_01(t *testing.T) {
	srcfile := source.NewInlineFile("goals", "A\n(implies A A)\n\n(or A (not A))\n")
	//
	formulas, _, err := ParseAll(srcfile)
	//
	if err != nil {
		t.Fatal(err.Error())
	} else if len(formulas) != 3 {
		t.Fatalf("expected 3 formulas, got %d", len(formulas))
	} else if formulas[2].String() != "(or A (not A))" {
		t.Errorf("unexpected formula %s", formulas[2])
	}
}

func Test_ParseAll_02(t *testing.T) {
	srcfile := source.NewInlineFile("goals", "A (and B)")
	//
	if _, _, err := ParseAll(srcfile); err == nil {
		t.Errorf("expected syntax error")
	} else if err.Offset() != 8 {
		t.Errorf("expected error at offset 8, got %d", err.Offset())
	}
}

func Test_ParseFile_SourceMap(t *testing.T) {
	srcfile := source.NewInlineFile("goal", "(implies A (not B))")
	//
	f, srcmap, err := ParseFile(srcfile)
	if err != nil {
		t.Fatal(err.Error())
	}
	//
	implies := f.(*Implies)
	//
	checkSpan(t, srcmap, implies, 0, 19)
	checkSpan(t, srcmap, implies.Left(), 9, 10)
	checkSpan(t, srcmap, implies.Right(), 11, 18)
}

func Test_IsKeyword(t *testing.T) {
	for _, kw := range []string{"not", "and", "or", "implies"} {
		if !IsKeyword(kw) {
			t.Errorf("expected %s to be a keyword", kw)
		}
	}
	//
	if IsKeyword("A") || IsKeyword("iff") {
		t.Errorf("unexpected keyword")
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func checkParse(t *testing.T, input string, expected string) {
	f, err := Parse(input)
	//
	if err != nil {
		t.Errorf("failed parsing \"%s\": %s", input, err)
	} else if f.String() != expected {
		t.Errorf("parsing \"%s\": expected %s, got %s", input, expected, f)
	}
}

func checkParseErr(t *testing.T, input string, offset int) {
	var (
		serr   *source.SyntaxError
		f, err = Parse(input)
	)
	//
	if err == nil {
		t.Errorf("parsing \"%s\": expected error, got %s", input, f)
	} else if f != nil {
		t.Errorf("parsing \"%s\": unexpected formula %s", input, f)
	} else if !errors.As(err, &serr) {
		t.Errorf("parsing \"%s\": expected syntax error, got %s", input, err)
	} else if serr.Offset() != offset {
		t.Errorf("parsing \"%s\": expected error at offset %d, got %d (%s)", input, offset, serr.Offset(),
			serr.Message())
	}
}

func checkSpan(t *testing.T, srcmap *source.Map[Formula], f Formula, start int, end int) {
	if !srcmap.Has(f) {
		t.Errorf("missing span for %s", f)
	} else if span := srcmap.Get(f); span.Start() != start || span.End() != end {
		t.Errorf("expected span [%d,%d) for %s, got [%d,%d)", start, end, f, span.Start(), span.End())
	}
}
