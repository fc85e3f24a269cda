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

// Settings is the configuration schema of the rule, as found in configuration files.
// Unset fields keep their defaults.
type Settings struct {
	// AllowExpressions exempts function expressions that are not bound to a name.
	AllowExpressions *bool `json:"allowExpressions,omitzero" toml:"allowExpressions,omitempty" yaml:"allowExpressions,omitempty"`
	// AllowTypedFunctionExpressions exempts function expressions typed by their context.
	AllowTypedFunctionExpressions *bool `json:"allowTypedFunctionExpressions,omitzero" toml:"allowTypedFunctionExpressions,omitempty" yaml:"allowTypedFunctionExpressions,omitempty"`
	// AllowHigherOrderFunctions exempts functions immediately returning a function.
	AllowHigherOrderFunctions *bool `json:"allowHigherOrderFunctions,omitzero" toml:"allowHigherOrderFunctions,omitempty" yaml:"allowHigherOrderFunctions,omitempty"`
	// AllowDirectConstAssertionInArrowFunctions exempts arrow functions returning "as const".
	AllowDirectConstAssertionInArrowFunctions *bool `json:"allowDirectConstAssertionInArrowFunctions,omitzero" toml:"allowDirectConstAssertionInArrowFunctions,omitempty" yaml:"allowDirectConstAssertionInArrowFunctions,omitempty"`
	// AllowConciseArrowFunctionExpressionsStartingWithVoid exempts "() => void expr".
	AllowConciseArrowFunctionExpressionsStartingWithVoid *bool `json:"allowConciseArrowFunctionExpressionsStartingWithVoid,omitzero" toml:"allowConciseArrowFunctionExpressionsStartingWithVoid,omitempty" yaml:"allowConciseArrowFunctionExpressionsStartingWithVoid,omitempty"`
	// AllowFunctionsWithoutTypeParameters exempts non-generic functions.
	AllowFunctionsWithoutTypeParameters *bool `json:"allowFunctionsWithoutTypeParameters,omitzero" toml:"allowFunctionsWithoutTypeParameters,omitempty" yaml:"allowFunctionsWithoutTypeParameters,omitempty"`
	// AllowIIFEs exempts immediately invoked function expressions.
	AllowIIFEs *bool `json:"allowIIFEs,omitzero" toml:"allowIIFEs,omitempty" yaml:"allowIIFEs,omitempty"`
	// AllowedNames are regular expressions matched against function names.
	AllowedNames []string `json:"allowedNames,omitzero" toml:"allowedNames,omitempty" yaml:"allowedNames,omitempty"`
}

// Options converts [Settings] into a list of [Option] values.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() Options {
	var opts Options

	opts = appendOption(opts, s.AllowExpressions, WithExpressions)
	opts = appendOption(opts, s.AllowTypedFunctionExpressions, WithTypedFunctionExpressions)
	opts = appendOption(opts, s.AllowHigherOrderFunctions, WithHigherOrderFunctions)
	opts = appendOption(opts, s.AllowDirectConstAssertionInArrowFunctions, WithDirectConstAssertionInArrowFunctions)
	opts = appendOption(opts, s.AllowConciseArrowFunctionExpressionsStartingWithVoid, WithConciseArrowFunctionExpressionsStartingWithVoid)
	opts = appendOption(opts, s.AllowFunctionsWithoutTypeParameters, WithFunctionsWithoutTypeParameters)
	opts = appendOption(opts, s.AllowIIFEs, WithIIFEs)

	if len(s.AllowedNames) > 0 {
		opts = append(opts, WithAllowedNames(s.AllowedNames...))
	}

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts Options, value *T, constructor func(T) Option) Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
