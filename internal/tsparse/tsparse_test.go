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

package tsparse_test

import (
	"errors"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/explicitreturn/internal/testsource"
	. "fillmore-labs.com/explicitreturn/internal/tsparse"
	"fillmore-labs.com/explicitreturn/syntax"
)

func TestDialectOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dialect Dialect
		ok      bool
	}{
		{"app.ts", TypeScript, true},
		{"lib/module.mts", TypeScript, true},
		{"lib/module.cts", TypeScript, true},
		{"LEGACY.TS", TypeScript, true},
		{"view.tsx", TSX, true},
		{"types.d.ts", TypeScript, true},
		{"app.js", 0, false},
		{"README", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dialect, ok := DialectOf(tt.name)
			if ok != tt.ok || dialect != tt.dialect {
				t.Errorf("Got (%d, %t), want (%d, %t)", dialect, ok, tt.dialect, tt.ok)
			}
		})
	}
}

func newParser(tb testing.TB) *Parser {
	tb.Helper()

	p, err := NewParser()
	if err != nil {
		tb.Fatalf("Can't create parser: %v", err)
	}

	tb.Cleanup(p.Close)

	return p
}

func TestParseUnsupported(t *testing.T) {
	t.Parallel()

	p := newParser(t)

	_, err := p.Parse(token.NewFileSet(), "app.js", []byte("const a = 1;"))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Got error %v, want %v", err, ErrUnsupported)
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	p := newParser(t)

	_, err := p.Parse(token.NewFileSet(), "bad.ts", []byte("const a = 1;\nconst f = (;\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("Got error %v, want %v", err, ErrSyntax)
	}

	if msg := err.Error(); !strings.HasPrefix(msg, "bad.ts:2:") {
		t.Errorf("Got error %q, want position on line 2", msg)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	p := newParser(t)

	fset := token.NewFileSet()

	f, err := p.Parse(fset, "app.ts", []byte("function f(): number {\n  return 1;\n}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := len(f.Program.Body); got != 1 {
		t.Fatalf("Got %d statements, want 1", got)
	}

	fn, ok := f.Program.Body[0].(*syntax.FunctionDeclaration)
	if !ok {
		t.Fatalf("Got %T, want *syntax.FunctionDeclaration", f.Program.Body[0])
	}

	if fn.ID == nil || fn.ID.Name != "f" {
		t.Errorf("Got name %v, want f", fn.ID)
	}

	if fn.ReturnType == nil {
		t.Error("Got no return type")
	}

	if got := fset.Position(fn.Rparen); got.Line != 1 || got.Column != 12 {
		t.Errorf("Got closing parenthesis at %v, want 1:12", got)
	}

	for n := range syntax.Preorder(f.Program) {
		if n != syntax.Node(f.Program) && n.Parent() == nil {
			t.Errorf("Got %s without parent", n.Kind())
		}
	}
}

func TestArrow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        string
		expression bool
		params     int
	}{
		{"concise", "const f = (a: number, b = 2) => a + b;", true, 2},
		{"block", "const f = () => { return 1; };", false, 0},
		{"bare parameter", "const f = async x => x;", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			fn := testsource.Find[*syntax.ArrowFunctionExpression](t, f)

			if fn.Expression != tt.expression {
				t.Errorf("Got expression body %t, want %t", fn.Expression, tt.expression)
			}

			if got := len(fn.Params); got != tt.params {
				t.Errorf("Got %d parameters, want %d", got, tt.params)
			}

			if tok, ok := f.TokenAfter(fn.Arrow); !ok || tok.Value != "=>" || tok.Start != fn.Arrow {
				t.Errorf("Got token %q at arrow position, want =>", tok.Value)
			}
		})
	}
}

func TestMethodKind(t *testing.T) {
	t.Parallel()

	const src = `class C {
  constructor() {}
  get x(): number { return 1; }
  set x(v: number) {}
  m() {}
}`

	f := testsource.Parse(t, src)

	var got []syntax.MethodKind

	for n := range syntax.Preorder(f.Program) {
		if m, ok := n.(*syntax.MethodDefinition); ok {
			got = append(got, m.MethodKind)
		}
	}

	want := []syntax.MethodKind{syntax.MethodConstructor, syntax.MethodGet, syntax.MethodSet, syntax.MethodNormal}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Method kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoratedMethod(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "class C {\n  @log\n  method() {}\n}")
	m := testsource.Find[*syntax.MethodDefinition](t, f)

	if got := len(m.Decorators); got != 1 {
		t.Fatalf("Got %d decorators, want 1", got)
	}

	if m.Pos() != m.Decorators[0].Pos() {
		t.Errorf("Got method start %d, want decorator start %d", m.Pos(), m.Decorators[0].Pos())
	}

	if got := f.Text(m.Value); !strings.HasPrefix(got, "()") {
		t.Errorf("Got method value %q, want it to start at the parameter list", got)
	}
}

func TestExpressionShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want syntax.Kind
	}{
		{"optional call", "a?.b();", syntax.KindChainExpression},
		{"plain call", "a.b();", syntax.KindCallExpression},
		{"nullish", "a ?? b;", syntax.KindLogicalExpression},
		{"and", "a && b;", syntax.KindLogicalExpression},
		{"or", "a || b;", syntax.KindLogicalExpression},
		{"plus", "a + b;", syntax.KindBinaryExpression},
		{"satisfies", "({}) satisfies object;", syntax.KindTSSatisfiesExpression},
		{"non null", "a!;", syntax.KindTSNonNullExpression},
		{"parenthesized", "(a);", syntax.KindIdentifier},
		{"tagged template", "tag`x`;", syntax.KindTaggedTemplateExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			stmt := testsource.Find[*syntax.ExpressionStatement](t, f)

			if got := stmt.Expression.Kind(); got != tt.want {
				t.Errorf("Got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConstAssertion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"as const", "const x = () => ({ a: 1 } as const);"},
		{"angle bracket", "const x = () => <const>{ a: 1 };"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			fn := testsource.Find[*syntax.ArrowFunctionExpression](t, f)

			var typ syntax.Node

			switch body := fn.Body.(type) {
			case *syntax.TSAsExpression:
				typ = body.TypeAnnotation

			case *syntax.TSTypeAssertion:
				typ = body.TypeAnnotation

			default:
				t.Fatalf("Got body %T, want a type assertion", fn.Body)
			}

			ref, ok := typ.(*syntax.TSTypeReference)
			if !ok {
				t.Fatalf("Got type %T, want *syntax.TSTypeReference", typ)
			}

			if id, ok := ref.TypeName.(*syntax.Identifier); !ok || id.Name != "const" {
				t.Errorf("Got type name %v, want const", ref.TypeName)
			}
		})
	}
}

func TestJSX(t *testing.T) {
	t.Parallel()

	f := testsource.ParseTSX(t, "const e = <button onClick={() => 1} />;")
	c := testsource.Find[*syntax.JSXExpressionContainer](t, f)

	if got := c.Expression.Kind(); got != syntax.KindArrowFunctionExpression {
		t.Errorf("Got %s, want %s", got, syntax.KindArrowFunctionExpression)
	}
}

func TestExportDefault(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "export default function () {}")
	e := testsource.Find[*syntax.ExportDefaultDeclaration](t, f)

	fn, ok := e.Declaration.(*syntax.FunctionDeclaration)
	if !ok {
		t.Fatalf("Got %T, want *syntax.FunctionDeclaration", e.Declaration)
	}

	if fn.ID != nil {
		t.Errorf("Got name %q, want anonymous function", fn.ID.Name)
	}
}

func TestParameters(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "function f(a = 1, b?: string, ...rest: number[]) {}")
	fn := testsource.Find[*syntax.FunctionDeclaration](t, f)

	if got := len(fn.Params); got != 3 {
		t.Fatalf("Got %d parameters, want 3", got)
	}

	if ap, ok := fn.Params[0].(*syntax.AssignmentPattern); !ok {
		t.Errorf("Got %T, want *syntax.AssignmentPattern", fn.Params[0])
	} else if f.Text(ap) != "a = 1" {
		t.Errorf("Got %q, want %q", f.Text(ap), "a = 1")
	}

	if id, ok := fn.Params[1].(*syntax.Identifier); !ok || !id.Optional || id.TypeAnnotation == nil {
		t.Errorf("Got %#v, want optional typed identifier", fn.Params[1])
	}

	if _, ok := fn.Params[2].(*syntax.RestElement); !ok {
		t.Errorf("Got %T, want *syntax.RestElement", fn.Params[2])
	}
}

func TestTokensAndComments(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "// line\n/* block */ const a = `x${b}`;\n")

	comments := make([]bool, 0, len(f.Comments))
	for _, c := range f.Comments {
		comments = append(comments, c.Block)
	}

	if diff := cmp.Diff([]bool{false, true}, comments); diff != "" {
		t.Errorf("Comment kinds mismatch (-want +got):\n%s", diff)
	}

	if len(f.Tokens) == 0 || f.Tokens[0].Value != "const" {
		t.Fatalf("Got tokens %v, want to start with const", f.Tokens)
	}

	last, ok := f.LastToken(f.Program)
	if !ok || last.Value != ";" {
		t.Errorf("Got last token %q, want ;", last.Value)
	}
}

func TestModifiers(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "class C {\n  static async *items() { yield* other(); }\n}")
	m := testsource.Find[*syntax.MethodDefinition](t, f)

	if !m.Static {
		t.Error("Got instance method, want static")
	}

	if fn := m.Value.Func(); !fn.Async || !fn.Generator {
		t.Errorf("Got async %t, generator %t, want both", fn.Async, fn.Generator)
	}

	if y := testsource.Find[*syntax.YieldExpression](t, f); !y.Delegate {
		t.Error("Got plain yield, want delegating yield*")
	}
}
