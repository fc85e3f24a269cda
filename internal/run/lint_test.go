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
	"context"
	"errors"
	"go/token"
	"testing"

	"fillmore-labs.com/explicitreturn/internal/config"
	. "fillmore-labs.com/explicitreturn/internal/run"
	"fillmore-labs.com/explicitreturn/internal/tsparse"
)

func TestLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		src      string
		behavior config.Behavior
		want     int
		skipped  Skip
	}{
		{
			name: "plain",
			file: "a.ts",
			src:  "function f() {}\nfunction g(): void {}\n",
			want: 1,
		},
		{
			name: "next line",
			file: "a.ts",
			src:  "// eslint-disable-next-line explicit-function-return-type-with-regex\nfunction f() {}\nfunction g() {}\n",
			want: 1,
		},
		{
			name: "next line other rule",
			file: "a.ts",
			src:  "// eslint-disable-next-line no-console\nfunction f() {}\n",
			want: 1,
		},
		{
			name: "nolint",
			file: "a.ts",
			src:  "function f() {} // nolint:explicitreturn\n",
		},
		{
			name: "nolint other linter",
			file: "a.ts",
			src:  "function f() {} // nolint:other\n",
			want: 1,
		},
		{
			name:    "disabled",
			file:    "a.ts",
			src:     "/* eslint-disable explicit-function-return-type-with-regex */\nfunction f() {}\n",
			skipped: SkipDisabled,
		},
		{
			name:    "generated",
			file:    "a.ts",
			src:     "// Code generated by protoc-gen-ts. DO NOT EDIT.\nfunction f() {}\n",
			skipped: SkipGenerated,
		},
		{
			name:     "generated included",
			file:     "a.ts",
			src:      "// Code generated by protoc-gen-ts. DO NOT EDIT.\nfunction f() {}\n",
			behavior: config.IncludeGenerated,
			want:     1,
		},
		{
			name:    "declaration file",
			file:    "a.d.ts",
			src:     "declare function f();\n",
			skipped: SkipDeclarationFile,
		},
		{
			name: "tsx",
			file: "a.tsx",
			src:  "const C = () => <div onClick={() => {}} />\n",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := DefaultOptions()
			o.Behavior.Enable(tt.behavior)

			l, err := NewLinter(o)
			if err != nil {
				t.Fatalf("Can't create linter: %v", err)
			}

			p, err := tsparse.NewParser()
			if err != nil {
				t.Fatalf("Can't create parser: %v", err)
			}
			defer p.Close()

			res, err := l.Lint(context.Background(), p, token.NewFileSet(), tt.file, []byte(tt.src))
			if err != nil {
				t.Fatalf("Lint failed: %v", err)
			}

			if res.Skipped != tt.skipped {
				t.Errorf("Got skipped %q, want %q", res.Skipped, tt.skipped)
			}

			if got := len(res.Diagnostics); got != tt.want {
				t.Errorf("Got %d diagnostics, want %d", got, tt.want)
			}
		})
	}
}

func TestLintSyntaxError(t *testing.T) {
	t.Parallel()

	l, err := NewLinter(DefaultOptions())
	if err != nil {
		t.Fatalf("Can't create linter: %v", err)
	}

	p, err := tsparse.NewParser()
	if err != nil {
		t.Fatalf("Can't create parser: %v", err)
	}
	defer p.Close()

	if _, err := l.Lint(context.Background(), p, token.NewFileSet(), "a.ts", []byte("function f( {")); !errors.Is(err, tsparse.ErrSyntax) {
		t.Errorf("Got error %v, want %v", err, tsparse.ErrSyntax)
	}
}

func TestNewLinterInvalidPattern(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.Rule.AllowedNames = []string{"("}

	if _, err := NewLinter(o); err == nil {
		t.Error("Got no error for invalid pattern")
	}
}
