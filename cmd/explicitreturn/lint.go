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

package main

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/explicitreturn/internal/report"
	"fillmore-labs.com/explicitreturn/internal/run"
	"fillmore-labs.com/explicitreturn/internal/tsparse"
)

// result is the outcome of checking a single file.
type result struct {
	path string
	run.Result
	err error // syntax error
}

// collect resolves the command line arguments into a sorted list of files.
func collect(o *run.Options, args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			if _, ok := tsparse.DialectOf(arg); !ok {
				return nil, fmt.Errorf("%s: %w", arg, tsparse.ErrUnsupported)
			}

			files = append(files, arg)

			continue
		}

		names, err := o.Collect(os.DirFS(arg))
		if err != nil {
			return nil, err
		}

		for _, name := range names {
			files = append(files, filepath.Join(arg, filepath.FromSlash(name)))
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// lintFiles checks files on jobs workers, each with its own parser.
func lintFiles(ctx context.Context, l *run.Linter, files []string, jobs int) ([]result, error) {
	fset := token.NewFileSet()
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(ctx)

	indices := make(chan int)

	g.Go(func() error {
		defer close(indices)

		for i := range files {
			select {
			case indices <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for range min(jobs, len(files)) {
		g.Go(func() error {
			p, err := tsparse.NewParser()
			if err != nil {
				return err
			}
			defer p.Close()

			for i := range indices {
				// results are indexed, no two workers write the same element
				r, err := lintFile(ctx, l, p, fset, files[i])
				if err != nil {
					return err
				}

				results[i] = r
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func lintFile(ctx context.Context, l *run.Linter, p *tsparse.Parser, fset *token.FileSet, path string) (result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return result{}, err
	}

	res, err := l.Lint(ctx, p, fset, path, src)
	if errors.Is(err, tsparse.ErrSyntax) {
		return result{path: path, err: err}, nil
	}

	if err != nil {
		return result{}, fmt.Errorf("%s: %w", path, err)
	}

	return result{path: path, Result: res}, nil
}

// printResults writes the diagnostics of all files and returns the number of issues.
func printResults(w io.Writer, colored bool, logger *slog.Logger, results []result) (int, error) {
	printer := report.NewPrinter(w, colored)

	var n int

	for _, r := range results {
		switch {
		case r.err != nil:
			logger.Error("Can't parse file", slog.String("file", r.path), slog.Any("error", r.err))
			n++

			continue

		case r.Skipped != run.NotSkipped:
			logger.Debug("Skipped file", slog.String("file", r.path), slog.String("reason", string(r.Skipped)))

			continue
		}

		ds := report.Resolve(r.File, r.Diagnostics)
		if err := printer.PrintAll(ds); err != nil {
			return n, err
		}

		n += len(ds)
	}

	return n, nil
}
