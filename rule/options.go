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
	"log/slog"

	"fillmore-labs.com/explicitreturn/internal/config"
)

// Option configures specific behavior of a [New] rule.
type Option interface {
	apply(c *config.Rule)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(c *config.Rule) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(c)
	}
}

// Configure applies the options to resolved rule settings.
func (o Options) Configure(c *config.Rule) {
	o.apply(c)
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithExpressions is an [Option] to exempt function expressions that are not bound to a
// variable, class member or default export.
func WithExpressions(allow bool) Option {
	return allowOption{flag: config.AllowExpressions, allow: allow}
}

// WithTypedFunctionExpressions is an [Option] to exempt function expressions whose type is
// fixed by the surrounding syntax.
func WithTypedFunctionExpressions(allow bool) Option {
	return allowOption{flag: config.AllowTypedFunctionExpressions, allow: allow}
}

// WithHigherOrderFunctions is an [Option] to exempt functions that immediately return
// another function.
func WithHigherOrderFunctions(allow bool) Option {
	return allowOption{flag: config.AllowHigherOrderFunctions, allow: allow}
}

// WithDirectConstAssertionInArrowFunctions is an [Option] to exempt arrow functions whose
// body is an "as const" assertion.
func WithDirectConstAssertionInArrowFunctions(allow bool) Option {
	return allowOption{flag: config.AllowDirectConstAssertionInArrowFunctions, allow: allow}
}

// WithConciseArrowFunctionExpressionsStartingWithVoid is an [Option] to exempt arrow functions
// of the form "() => void expr".
func WithConciseArrowFunctionExpressionsStartingWithVoid(allow bool) Option {
	return allowOption{flag: config.AllowConciseArrowFunctionExpressionsStartingWithVoid, allow: allow}
}

// WithFunctionsWithoutTypeParameters is an [Option] to exempt functions without type parameters.
func WithFunctionsWithoutTypeParameters(allow bool) Option {
	return allowOption{flag: config.AllowFunctionsWithoutTypeParameters, allow: allow}
}

// WithIIFEs is an [Option] to exempt immediately invoked function expressions.
func WithIIFEs(allow bool) Option {
	return allowOption{flag: config.AllowIIFEs, allow: allow}
}

type allowOption struct {
	flag  config.Allow
	allow bool
}

func (o allowOption) apply(c *config.Rule) {
	c.Allows.Set(o.flag, o.allow)
}

func (o allowOption) LogAttr() slog.Attr {
	return slog.Bool(o.flag.String(), o.allow)
}

// WithAllowedNames is an [Option] to exempt functions whose name matches one of the regular expressions.
func WithAllowedNames(patterns ...string) Option {
	return allowedNamesOption{patterns: patterns}
}

type allowedNamesOption struct{ patterns []string }

func (o allowedNamesOption) apply(c *config.Rule) {
	c.AllowedNames = append(c.AllowedNames, o.patterns...)
}

func (o allowedNamesOption) LogAttr() slog.Attr {
	return slog.Any("allowedNames", o.patterns)
}
