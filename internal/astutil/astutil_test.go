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

package astutil_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/explicitreturn/internal/astutil"
	"fillmore-labs.com/explicitreturn/internal/testsource"
	"fillmore-labs.com/explicitreturn/syntax"
)

func TestMemberPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         string
		constructor bool
		setter      bool
	}{
		{"constructor", `class A { constructor() {} }`, true, false},
		{"class setter", `class A { set x(v) {} }`, false, true},
		{"object setter", `const o = { set x(v) {} }`, false, true},
		{"getter", `class A { get x() { return 1 } }`, false, false},
		{"method", `class A { m() {} }`, false, false},
		{"property", `const o = { m() {} }`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			parent := testsource.Function(t, f).Parent()

			if got := IsConstructor(parent); got != tt.constructor {
				t.Errorf("Got IsConstructor %t, want %t", got, tt.constructor)
			}

			if got := IsSetter(parent); got != tt.setter {
				t.Errorf("Got IsSetter %t, want %t", got, tt.setter)
			}
		})
	}
}

func TestTypeAssertion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
		typ  string
	}{
		{`x as Foo`, true, "Foo"},
		{`<Foo>x`, true, "Foo"},
		{`x satisfies Foo`, false, ""},
		{`x!`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			e := testsource.Find[*syntax.ExpressionStatement](t, f).Expression

			if got := IsTypeAssertion(e); got != tt.want {
				t.Errorf("Got IsTypeAssertion %t, want %t", got, tt.want)
			}

			typ, ok := AssertedType(e)
			if ok != tt.want {
				t.Fatalf("Got AssertedType ok %t, want %t", ok, tt.want)
			}

			if ok && f.Text(typ) != tt.typ {
				t.Errorf("Got asserted type %q, want %q", f.Text(typ), tt.typ)
			}
		})
	}
}

func TestThisExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
	}{
		{`this`, true},
		{`this.a.b`, true},
		{`this.a.b()`, true},
		{`this.a?.b()`, true},
		{`this.f()()`, true},
		{`foo.bar()`, false},
		{`foo(this)`, false},
		{`this[0] + 1`, false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			e := testsource.Find[*syntax.ExpressionStatement](t, f).Expression

			this, ok := ThisExpression(e)
			if ok != tt.want {
				t.Fatalf("Got ThisExpression ok %t, want %t", ok, tt.want)
			}

			if ok && f.Text(this) != "this" {
				t.Errorf("Got %q, want this", f.Text(this))
			}
		})
	}
}

func TestIsIIFE(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
	}{
		{`(function () {})()`, true},
		{`(() => 1)()`, true},
		{`(async () => {})()`, true},
		{`foo(() => 1)`, false},
		{`const f = () => 1`, false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)

			if got := IsIIFE(testsource.Function(t, f)); got != tt.want {
				t.Errorf("Got IsIIFE %t, want %t", got, tt.want)
			}
		})
	}
}

func TestFunctionName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
		ok   bool
	}{
		{`function load() {}`, "load", true},
		{`const f = function named() {}`, "named", true},
		{`const f = function () {}`, "f", true},
		{`let g = () => 1`, "g", true},
		{`class A { m() {} }`, "m", true},
		{`class A { static s = () => 1 }`, "s", true},
		{`class A { #p() {} }`, "", false},
		{`class A { ["c"]() {} }`, "", false},
		{`const o = { p: () => 1 }`, "p", true},
		{`const o = { "q": () => 1 }`, "", false},
		{`const [a] = [() => 1]`, "", false},
		{`export default function () {}`, "", false},
		{`foo(() => 1)`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)

			got, ok := FunctionName(testsource.Function(t, f))
			if got != tt.want || ok != tt.ok {
				t.Errorf("Got FunctionName %q, %t, want %q, %t", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFunctionHead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
	}{
		{`function f(a, b) {}`, "function f(a, b)"},
		{`async function* g() {}`, "async function* g()"},
		{`const f = async (x) => x`, "=>"},
		{`const f = x => x`, "=>"},
		{`class A { @a @b(1) static async m<T>() {} }`, "static async m<T>()"},
		{`class A { p = () => 1 }`, "p = () =>"},
		{`const o = { get x() { return 1 } }`, "get x()"},
		{`const o = { k: function () {} }`, "k: function ()"},
		{`const o = { k: () => 1 }`, "=>"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			head := FunctionHead(testsource.Function(t, f), f)

			if got := f.Slice(head.Pos(), head.End()); got != tt.want {
				t.Errorf("Got head %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustParent(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `x`)

	defer func() {
		r := recover()

		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, MissingParent) {
			t.Errorf("Got panic %v, want %q", r, MissingParent)
		}
	}()

	MustParent(f.Program)
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"// nolint", true},
		{"//nolint:explicitreturn", true},
		{"// nolint:gosec,explicitreturn // reason", true},
		{"// nolint:all", true},
		{"// nolint:other", false},
		{"/* nolint */", false},
		{"// nolintx", false},
		{"// something else", false},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(tt.comment); got != tt.want {
				t.Errorf("Got CommentHasNoLint %t, want %t", got, tt.want)
			}
		})
	}
}

func TestSuppressed(t *testing.T) {
	t.Parallel()

	const rule = "explicit-function-return-type-with-regex"

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"none", "function f() {}", false},
		{"next line", "// eslint-disable-next-line\nfunction f() {}", true},
		{"next line block", "/* eslint-disable-next-line " + rule + " */\nfunction f() {}", true},
		{"next line plugin prefix", "// eslint-disable-next-line explicitreturn/" + rule + "\nfunction f() {}", true},
		{"next line description", "// eslint-disable-next-line " + rule + " -- legacy\nfunction f() {}", true},
		{"next line other", "// eslint-disable-next-line no-var\nfunction f() {}", false},
		{"same line", "function f() {} // eslint-disable-line " + rule, true},
		{"same line next line", "function f() {} // eslint-disable-next-line", false},
		{"two lines above", "// eslint-disable-next-line\n\nfunction f() {}", false},
		{"nolint above", "// nolint:explicitreturn\nfunction f() {}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			c := NewCurrentFile(f, rule)

			if c.Disabled() || c.Generated() {
				t.Fatal("Got file disabled or generated")
			}

			if got := c.Suppressed(testsource.Function(t, f).Pos(), rule); got != tt.want {
				t.Errorf("Got Suppressed %t, want %t", got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const rule = "explicit-function-return-type-with-regex"

	tests := []struct {
		name      string
		file      string
		src       string
		generated bool
		disabled  bool
		decl      bool
	}{
		{"plain", "a.ts", "function f() {}", false, false, false},
		{"generated", "a.ts", "// Code generated by tsc. DO NOT EDIT.\n\nfunction f() {}", true, false, false},
		{"generated tag", "a.ts", "/**\n * @generated\n */\nfunction f() {}", true, false, false},
		{"generated late", "a.ts", "function f() {}\n// Code generated by tsc. DO NOT EDIT.", false, false, false},
		{"disabled", "a.ts", "/* eslint-disable */\nfunction f() {}", false, true, false},
		{"disabled rule", "a.ts", "/* eslint-disable " + rule + " */\nfunction f() {}", false, true, false},
		{"disabled other", "a.ts", "/* eslint-disable no-var */\nfunction f() {}", false, false, false},
		{"declaration", "a.d.ts", "declare function f(): void;", false, false, true},
		{"module declaration", "a.d.mts", "declare function f(): void;", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)
			f.Name = tt.file

			c := NewCurrentFile(f, rule)

			if got := c.Generated(); got != tt.generated {
				t.Errorf("Got Generated %t, want %t", got, tt.generated)
			}

			if got := c.Disabled(); got != tt.disabled {
				t.Errorf("Got Disabled %t, want %t", got, tt.disabled)
			}

			if got := c.DeclarationFile(); got != tt.decl {
				t.Errorf("Got DeclarationFile %t, want %t", got, tt.decl)
			}
		})
	}
}

func TestCurrentFileInvalid(t *testing.T) {
	t.Parallel()

	c := NewCurrentFile(nil, "rule")

	if c.Generated() || c.Disabled() || c.Suppressed(1, "rule") || c.DeclarationFile() {
		t.Error("Got flags on empty file")
	}
}
