// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package testsource provides utilities for parsing TypeScript source code in tests.
//
// It is designed to simplify testing of the rule internals by handling the parser
// setup and the search for nodes in the resulting tree.
package testsource

import (
	"go/token"
	"testing"

	"fillmore-labs.com/explicitreturn/internal/tsparse"
	"fillmore-labs.com/explicitreturn/syntax"
)

// Parse parses a TypeScript source fragment into a linked syntax tree.
func Parse(tb testing.TB, src string) *syntax.File {
	tb.Helper()

	return parse(tb, "test.ts", src, tsparse.TypeScript)
}

// ParseTSX parses a TypeScript source fragment that may contain JSX.
func ParseTSX(tb testing.TB, src string) *syntax.File {
	tb.Helper()

	return parse(tb, "test.tsx", src, tsparse.TSX)
}

func parse(tb testing.TB, name, src string, dialect tsparse.Dialect) *syntax.File {
	tb.Helper()

	p, err := tsparse.NewParser()
	if err != nil {
		tb.Fatalf("Can't create parser: %v", err)
	}
	defer p.Close()

	f, err := p.ParseDialect(token.NewFileSet(), name, []byte(src), dialect)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

// Find returns the first node of type T in source order.
func Find[T syntax.Node](tb testing.TB, f *syntax.File) T {
	tb.Helper()

	return FindFunc(tb, f, func(T) bool { return true })
}

// FindFunc returns the first node of type T in source order for which match returns true.
func FindFunc[T syntax.Node](tb testing.TB, f *syntax.File, match func(T) bool) T {
	tb.Helper()

	for n := range syntax.Preorder(f.Program) {
		if t, ok := n.(T); ok && match(t) {
			return t
		}
	}

	var zero T
	tb.Fatalf("Can't find %T", zero)

	return zero
}

// Function returns the first function in source order.
func Function(tb testing.TB, f *syntax.File) syntax.FunctionNode {
	tb.Helper()

	return FindFunc(tb, f, func(syntax.FunctionNode) bool { return true })
}

// Functions returns all functions in source order.
func Functions(f *syntax.File) []syntax.FunctionNode {
	var fns []syntax.FunctionNode

	for n := range syntax.Preorder(f.Program) {
		if fn, ok := n.(syntax.FunctionNode); ok {
			fns = append(fns, fn)
		}
	}

	return fns
}
