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
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-hilbert/pkg/formula"
	"github.com/consensys/go-hilbert/pkg/util/source"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DEFAULT_TEXT_WIDTH is used when the width of the terminal cannot be
// determined (e.g. output is redirected).
//
//nolint:revive
const DEFAULT_TEXT_WIDTH = 80

var (
	locationStyle = color.New(color.FgCyan, color.Bold)
	errorStyle    = color.New(color.FgRed, color.Bold)
	caretStyle    = color.New(color.FgRed, color.Bold)
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Determine the text width to use for output.  An explicit "textwidth" flag
// takes precedence, followed by the width of the terminal (if any).
func getTextWidth(cmd *cobra.Command) uint {
	if cmd.Flags().Changed("textwidth") {
		return GetUint(cmd, "textwidth")
	}
	//
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return DEFAULT_TEXT_WIDTH
}

// Parse formulas given on the command line, reporting any syntax error.  Each
// formula is treated as a separate source file, named after its position.
func parseArgs(cmd *cobra.Command, name string, args []string) ([]formula.Formula, error) {
	formulas := make([]formula.Formula, len(args))
	//
	for i, arg := range args {
		srcfile := source.NewInlineFile(fmt.Sprintf("<%s%d>", name, i+1), arg)
		//
		f, _, err := formula.ParseFile(srcfile)
		if err != nil {
			printSyntaxError(cmd.ErrOrStderr(), err)
			return nil, err
		}
		//
		formulas[i] = f
	}
	//
	return formulas, nil
}

// Read zero or more formulas from each of the given files, reporting any syntax
// error.
func readFormulaFiles(cmd *cobra.Command, filenames []string) ([]formula.Formula, error) {
	var formulas []formula.Formula
	//
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, err
	}
	//
	for i := range files {
		fs, _, err := formula.ParseAll(&files[i])
		if err != nil {
			printSyntaxError(cmd.ErrOrStderr(), err)
			return nil, err
		}
		//
		formulas = append(formulas, fs...)
	}
	//
	return formulas, nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(w io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := min(span.Start()-line.Start(), line.Length())
	// Calculate length (ensures don't overflow line, but always highlight
	// something)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	locationStyle.Fprintf(w, "%s:%d:%d-%d ", err.SourceFile().Filename(), line.Number(), 1+lineOffset,
		1+lineOffset+length)
	errorStyle.Fprintln(w, err.Message())
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(w, strings.Repeat(" ", lineOffset))
	// Print highlight
	caretStyle.Fprintln(w, strings.Repeat("^", length))
}
