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

// Package report turns analysis diagnostics into human-readable output.
package report

import (
	"bytes"
	"cmp"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/strlen"
	"fillmore-labs.com/explicitreturn/syntax"
)

// Diagnostic is an [analysis.Diagnostic] resolved against its source file.
type Diagnostic struct {
	Position token.Position // byte based column
	Column   int            // column in user-perceived characters, 1-based
	Category string
	Message  string
	Line     string // source line of Position, without line terminator
	Span     int    // byte length of the reported range on Line
}

// Resolve converts the diagnostics of f, sorted by position.
func Resolve(f *syntax.File, ds []analysis.Diagnostic) []Diagnostic {
	result := make([]Diagnostic, 0, len(ds))

	for _, d := range ds {
		result = append(result, resolve(f, d))
	}

	slices.SortStableFunc(result, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Position.Line, b.Position.Line),
			cmp.Compare(a.Position.Column, b.Position.Column),
		)
	})

	return result
}

func resolve(f *syntax.File, d analysis.Diagnostic) Diagnostic {
	pos := f.Position(d.Pos)

	start := f.Offset(d.Pos)
	lineStart := start - (pos.Column - 1)

	lineEnd := len(f.Src)
	if i := bytes.IndexByte(f.Src[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}

	line := bytes.TrimSuffix(f.Src[lineStart:lineEnd], []byte("\r"))

	span := 1
	if d.End.IsValid() && d.End > d.Pos {
		span = min(f.Offset(d.End), lineStart+len(line)) - start
	}

	return Diagnostic{
		Position: pos,
		Column:   strlen.Length(string(line[:pos.Column-1])) + 1,
		Category: d.Category,
		Message:  d.Message,
		Line:     string(line),
		Span:     max(span, 1),
	}
}
