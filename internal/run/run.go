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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/tsparse"
)

// Run lints the TypeScript sources in the directories of the package's Go files.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ExplicitReturn")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	dirs := packageDirs(p)
	if len(dirs) == 0 {
		return nil, nil
	}

	l, err := NewLinter(o)
	if err != nil {
		return nil, fmt.Errorf("explicitreturn: %w", err)
	}

	parser, err := tsparse.NewParser()
	if err != nil {
		return nil, fmt.Errorf("explicitreturn: %w", err)
	}
	defer parser.Close()

	for _, dir := range dirs {
		names, err := o.Collect(os.DirFS(dir))
		if err != nil {
			return nil, fmt.Errorf("explicitreturn: %s: %w", dir, err)
		}

		for _, name := range names {
			path := filepath.Join(dir, filepath.FromSlash(name))

			if err := lintFile(ctx, p, l, parser, path); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil
}

func lintFile(ctx context.Context, p *analysis.Pass, l *Linter, parser *tsparse.Parser, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("explicitreturn: %w", err)
	}

	res, err := l.Lint(ctx, parser, p.Fset, path, src)
	switch {
	case errors.Is(err, tsparse.ErrSyntax):
		trace.Log(ctx, "syntax", err.Error())

		return nil // not our job to report

	case err != nil:
		return fmt.Errorf("explicitreturn: %w", err)
	}

	for _, d := range res.Diagnostics {
		p.Report(d)
	}

	return nil
}

// packageDirs returns the distinct directories of the package's Go files.
func packageDirs(p *analysis.Pass) []string {
	var dirs []string

	for _, f := range p.Files {
		tf := p.Fset.File(f.Pos())
		if tf == nil {
			continue
		}

		dirs = append(dirs, filepath.Dir(tf.Name()))
	}

	slices.Sort(dirs)

	return slices.Compact(dirs)
}
