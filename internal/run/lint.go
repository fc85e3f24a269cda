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

package run

import (
	"context"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/astutil"
	"fillmore-labs.com/explicitreturn/internal/config"
	"fillmore-labs.com/explicitreturn/internal/tsparse"
	"fillmore-labs.com/explicitreturn/plugin"
	"fillmore-labs.com/explicitreturn/rule"
	"fillmore-labs.com/explicitreturn/syntax"
)

// Skip is the reason a file was not checked.
type Skip string

const (
	// NotSkipped means the file was checked.
	NotSkipped Skip = ""

	// SkipGenerated is reported for generated files.
	SkipGenerated Skip = "generated"

	// SkipDeclarationFile is reported for declaration files.
	SkipDeclarationFile Skip = "declaration file"

	// SkipDisabled is reported for files disabling the rule.
	SkipDisabled Skip = "disabled"
)

// Result is the outcome of checking a single file.
type Result struct {
	File        *syntax.File
	Diagnostics []analysis.Diagnostic
	Skipped     Skip
}

// Linter checks files with the configured rule.
//
// A Linter is safe for concurrent use; the [tsparse.Parser] passed to [Linter.Lint] is not.
type Linter struct {
	checker  plugin.Checker
	behavior config.Behaviors
}

// NewLinter creates a [Linter] from o.
func NewLinter(o *Options) (*Linter, error) {
	factory, err := plugin.Rule(rule.ID)
	if err != nil {
		return nil, err
	}

	checker, err := factory(o.Rule)
	if err != nil {
		return nil, err
	}

	return &Linter{checker: checker, behavior: o.Behavior}, nil
}

// Lint parses a source file and checks it.
func (l *Linter) Lint(ctx context.Context, p *tsparse.Parser, fset *token.FileSet, name string, src []byte) (Result, error) {
	defer trace.StartRegion(ctx, "Lint").End()

	trace.Log(ctx, "file", name)

	f, err := p.Parse(fset, name, src)
	if err != nil {
		return Result{}, err
	}

	return l.Check(ctx, f), nil
}

// Check runs the rule over a parsed file, dropping suppressed diagnostics.
func (l *Linter) Check(ctx context.Context, f *syntax.File) Result {
	defer trace.StartRegion(ctx, "Check").End()

	currentFile := astutil.NewCurrentFile(f, rule.ID)

	switch {
	case currentFile.Generated() && !l.behavior.Enabled(config.IncludeGenerated):
		return Result{File: f, Skipped: SkipGenerated}

	case currentFile.DeclarationFile() && !l.behavior.Enabled(config.IncludeDeclarationFiles):
		return Result{File: f, Skipped: SkipDeclarationFile}

	case currentFile.Disabled():
		return Result{File: f, Skipped: SkipDisabled}
	}

	var diagnostics []analysis.Diagnostic

	l.checker.Check(f, func(d analysis.Diagnostic) {
		if d.Category == rule.MessageID && currentFile.Suppressed(d.Pos, rule.ID) {
			return
		}

		diagnostics = append(diagnostics, d)
	})

	return Result{File: f, Diagnostics: diagnostics}
}
