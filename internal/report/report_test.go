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

package report_test

import (
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/explicitreturn/internal/report"
	"fillmore-labs.com/explicitreturn/syntax"
)

func newFile(src string) *syntax.File {
	return syntax.NewFile(token.NewFileSet(), "app.ts", []byte(src))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	f := newFile("const a = 1\nconst 🏳️‍🌈 = () => 1\r\n")

	arrow := strings.Index(string(f.Src), "=>")
	ds := Resolve(f, []analysis.Diagnostic{
		{Pos: f.Pos(arrow), End: f.Pos(arrow + 2), Category: "c", Message: "m"},
		{Pos: f.Pos(0), Message: "first"},
	})

	if len(ds) != 2 {
		t.Fatalf("Got %d diagnostics, want 2", len(ds))
	}

	if ds[0].Message != "first" {
		t.Errorf("Got first message %q, want %q", ds[0].Message, "first")
	}

	d := ds[1]

	if d.Position.Line != 2 {
		t.Errorf("Got line %d, want 2", d.Position.Line)
	}

	if d.Column != 14 {
		t.Errorf("Got column %d, want 14", d.Column)
	}

	if d.Line != "const 🏳️‍🌈 = () => 1" {
		t.Errorf("Got line %q", d.Line)
	}

	if d.Span != 2 {
		t.Errorf("Got span %d, want 2", d.Span)
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	f := newFile("\tfunction load() {}\n")

	start := strings.Index(string(f.Src), "function")
	end := strings.Index(string(f.Src), " {")

	ds := Resolve(f, []analysis.Diagnostic{{
		Pos:      f.Pos(start),
		End:      f.Pos(end),
		Category: "missingReturnType",
		Message:  "Missing return type on function.",
	}})

	var out strings.Builder

	p := NewPrinter(&out, false)
	if err := p.PrintAll(ds); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	const want = "app.ts:1:2: Missing return type on function. (missingReturnType)\n" +
		"  \tfunction load() {}\n" +
		"  \t^~~~~~~~~~~~~~~\n"

	if got := out.String(); got != want {
		t.Errorf("Got output\n%s\nwant\n%s", got, want)
	}
}

func TestPrintTruncated(t *testing.T) {
	t.Parallel()

	f := newFile("const f = () => 1 // " + strings.Repeat("x", 200) + "\n")

	arrow := strings.Index(string(f.Src), "=>")
	ds := Resolve(f, []analysis.Diagnostic{{Pos: f.Pos(arrow), End: f.Pos(arrow + 2), Message: "m"}})

	var out strings.Builder

	p := NewPrinter(&out, false)
	p.SetWidth(20)

	if err := p.Print(ds[0]); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("Got %d lines, want 4: %q", len(lines), out.String())
	}

	if got, want := lines[1], "  const f = () => 1 /…"; got != want {
		t.Errorf("Got snippet %q, want %q", got, want)
	}

	if got, want := lines[2], "               ^~"; got != want {
		t.Errorf("Got marker %q, want %q", got, want)
	}
}

func TestPrintNoSnippet(t *testing.T) {
	t.Parallel()

	f := newFile("function f() {}\n")
	ds := Resolve(f, []analysis.Diagnostic{{Pos: f.Pos(0), End: f.Pos(12), Message: "m"}})

	var out strings.Builder

	p := NewPrinter(&out, true)
	p.SetWidth(0)

	if err := p.Print(ds[0]); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "app.ts:1:1:") || strings.Count(got, "\n") != 1 {
		t.Errorf("Got output %q, want a single colored line", got)
	}
}
