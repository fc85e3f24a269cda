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

package analyzer_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/explicitreturn/analyzer"
	"fillmore-labs.com/explicitreturn/rule"
)

const source = `// Code generated by hand. DO NOT EDIT.

export function load() {
  return fetch('/')
}

export const handleClick = () => {}
`

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		args    []string
		want    int
	}{
		{
			name: "Generated",
		},
		{
			name:    "Default",
			options: WithGenerated(true),
			want:    2,
		},
		{
			name:    "AllowedNames",
			options: Options{WithGenerated(true), WithRule(rule.WithAllowedNames("^handle"))},
			want:    1,
		},
		{
			name:    "Flags",
			options: WithGenerated(true),
			args:    []string{"-allowed-names=^handle,^load"},
			want:    0,
		},
		{
			name:    "Excluded",
			options: Options{WithGenerated(true), WithExclude("*.ts")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			p, got := pass(t)

			if _, err := a.Run(p); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if len(*got) != tt.want {
				t.Errorf("Got %d diagnostics, want %d", len(*got), tt.want)
			}
		})
	}
}

func TestAnalyzerMetadata(t *testing.T) {
	t.Parallel()

	if Analyzer.Name != "explicitreturn" {
		t.Errorf("Got name %q, want %q", Analyzer.Name, "explicitreturn")
	}

	if Analyzer.Flags.Lookup("allow-expressions") == nil {
		t.Error("Got no flag allow-expressions")
	}

	if err := analysis.Validate([]*analysis.Analyzer{Analyzer}); err != nil {
		t.Errorf("Invalid analyzer: %v", err)
	}
}

func pass(tb testing.TB) (*analysis.Pass, *[]analysis.Diagnostic) {
	tb.Helper()

	dir := tb.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "app.ts"), []byte(source), 0o600); err != nil {
		tb.Fatal(err)
	}

	gofile := filepath.Join(dir, "embed.go")
	if err := os.WriteFile(gofile, []byte("package web\n"), 0o600); err != nil {
		tb.Fatal(err)
	}

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, gofile, nil, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatal(err)
	}

	var diagnostics []analysis.Diagnostic

	return &analysis.Pass{
		Analyzer: Analyzer,
		Fset:     fset,
		Files:    []*ast.File{f},
		Report:   func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}, &diagnostics
}
