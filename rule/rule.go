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

package rule

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/config"
	"fillmore-labs.com/explicitreturn/syntax"
)

const (
	// ID is the identifier of the rule.
	ID = "explicit-function-return-type-with-regex"

	// MessageID categorizes reported diagnostics.
	MessageID = "missingReturnType"

	// Message is the text of reported diagnostics.
	Message = "Missing return type on function."
)

// ErrInvalidPattern is returned for allowed names that are not valid regular expressions.
var ErrInvalidPattern = errors.New("invalid allowed name pattern")

// Rule is a configured instance of the rule. A Rule is immutable and safe for concurrent use.
type Rule struct {
	allows       config.Allows
	allowedNames []*regexp.Regexp
}

// New creates a [Rule] with default settings overridden by opts.
func New(opts ...Option) (*Rule, error) {
	c := config.DefaultRule()
	Options(opts).apply(&c)

	return Compile(c)
}

// Compile creates a [Rule] from resolved settings.
func Compile(c config.Rule) (*Rule, error) {
	r := &Rule{allows: c.Allows}

	for _, name := range c.AllowedNames {
		re, err := regexp.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, name, err)
		}

		r.allowedNames = append(r.allowedNames, re)
	}

	return r, nil
}

// Check runs the rule over a parsed file and reports every violation.
func (r *Rule) Check(f *syntax.File, report func(analysis.Diagnostic)) {
	v := r.NewVisitor(f, report)

	syntax.Inspect(f.Program, func(n syntax.Node, push bool) bool {
		if push {
			v.Enter(n)
		} else {
			v.Exit(n)
		}

		return true
	})
}

// allowedName reports whether name matches one of the allowed name patterns.
func (r *Rule) allowedName(name string) bool {
	for _, re := range r.allowedNames {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}
