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

package run_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/explicitreturn/internal/run"
)

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := map[string]string{
		"a.go":          "package a\n",
		"app.ts":        "export function load() {\n  return fetch('/')\n}\n",
		"broken.ts":     "function (",
		"sub/nested.ts": "function nested() {}\n",
	}

	for name, src := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filepath.Join(dir, "a.go"), nil, parser.SkipObjectResolution)
	if err != nil {
		t.Fatal(err)
	}

	var got []analysis.Diagnostic

	p := &analysis.Pass{
		Fset:   fset,
		Files:  []*ast.File{f},
		Pkg:    types.NewPackage("a", "a"),
		Report: func(d analysis.Diagnostic) { got = append(got, d) },
	}

	if _, err := DefaultOptions().Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(got))
	}

	pos := fset.Position(got[0].Pos)

	if want := filepath.Join(dir, "app.ts"); pos.Filename != want || pos.Line != 1 || pos.Column != 8 {
		t.Errorf("Got diagnostic at %s, want %s:1:8", pos, want)
	}
}

func TestRunNoFiles(t *testing.T) {
	t.Parallel()

	p := &analysis.Pass{
		Fset:   token.NewFileSet(),
		Report: func(d analysis.Diagnostic) { t.Errorf("Unexpected diagnostic %q", d.Message) },
	}

	if _, err := DefaultOptions().Run(p); err != nil {
		t.Errorf("Run failed: %v", err)
	}
}
