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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/explicitreturn/syntax"
)

// CurrentFile holds per-file information for suppression and generated file checks.
type CurrentFile struct {
	file      *syntax.File
	generated bool
	disabled  bool
}

// NewCurrentFile creates a new [CurrentFile] for the given file, recognizing generated files
// and file-level disable comments for rule.
func NewCurrentFile(file *syntax.File, rule string) CurrentFile {
	if file == nil || file.Handle == nil {
		return CurrentFile{}
	}

	var generated, disabled bool

	firstCode := token.Pos(file.Handle.Base() + file.Handle.Size())
	if len(file.Tokens) > 0 {
		firstCode = file.Tokens[0].Start
	}

	for _, c := range file.Comments {
		if c.Start >= firstCode {
			break
		}

		generated = generated || generatedPattern.MatchString(c.Text)
		disabled = disabled || c.Block && disablesRule(fileDisablePattern, c.Text, rule)
	}

	return CurrentFile{file, generated, disabled}
}

// Generated reports whether the file is marked as generated.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Disabled reports whether the rule is disabled for the whole file.
func (c CurrentFile) Disabled() bool {
	return c.disabled
}

// DeclarationFile reports whether the file is a TypeScript declaration file.
func (c CurrentFile) DeclarationFile() bool {
	if c.file == nil {
		return false
	}

	for _, ext := range [...]string{".d.ts", ".d.mts", ".d.cts"} {
		if strings.HasSuffix(c.file.Name, ext) {
			return true
		}
	}

	return false
}

// Suppressed reports whether a diagnostic of rule starting at pos is suppressed by a
// comment on the same or the preceding line.
func (c CurrentFile) Suppressed(pos token.Pos, rule string) bool {
	if c.file == nil {
		return false
	}

	if c.disabled {
		return true
	}

	line := c.file.Line(pos)

	// find the first comment at or after the start of the preceding line
	start := c.file.Handle.LineStart(max(line-1, 1))

	i, _ := slices.BinarySearchFunc(c.file.Comments, start,
		func(cm syntax.Comment, p token.Pos) int { return int(cm.Start - p) })

	for _, comment := range c.file.Comments[i:] {
		switch cl := c.file.Line(comment.Start); {
		case cl == line-1:
			if disablesRule(nextLinePattern, comment.Text, rule) || CommentHasNoLint(comment.Text) {
				return true
			}

		case cl == line:
			if disablesRule(lineDisablePattern, comment.Text, rule) || CommentHasNoLint(comment.Text) {
				return true
			}

		default:
			return false
		}
	}

	return false
}

var (
	generatedPattern   = regexp.MustCompile(`(?m)(^\s*(//|/?\*)\s*Code generated .* DO NOT EDIT\.?\s*$)|@generated\b`)
	fileDisablePattern = regexp.MustCompile(`^/\*\s*eslint-disable(?:\s+([^*]*?))?\s*\*/$`)
	nextLinePattern    = regexp.MustCompile(`^(?://|/\*)\s*eslint-disable-next-line(?:\s+([^*]*?))?\s*(?:\*/)?$`)
	lineDisablePattern = regexp.MustCompile(`^(?://|/\*)\s*eslint-disable-line(?:\s+([^*]*?))?\s*(?:\*/)?$`)
	nolintPattern      = regexp.MustCompile(`^//\s*nolint(?::([a-zA-Z0-9,_-]+))?\b`)
)

// Linter is the name recognized in nolint comments.
const Linter = "explicitreturn"

// disablesRule reports whether comment matches pattern and its rule list is either empty or
// names rule, optionally with a plugin prefix.
func disablesRule(pattern *regexp.Regexp, comment, rule string) bool {
	matches := pattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	list, _, _ := strings.Cut(matches[1], "--") // strip description
	if strings.TrimSpace(list) == "" {
		return true
	}

	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		if name == rule || strings.HasSuffix(name, "/"+rule) {
			return true
		}
	}

	return false
}

// CommentHasNoLint reports whether a comment is a nolint directive covering this linter.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	if matches[1] == "" {
		return true
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == Linter || l == "all" {
			return true
		}
	}

	return false
}
