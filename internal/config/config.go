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

package config

import "strings"

// Allow represents the exemptions of the explicit return type rule.
type Allow uint16

const (
	// AllowExpressions exempts function expressions that are not bound to a name.
	AllowExpressions Allow = 1 << iota

	// AllowTypedFunctionExpressions exempts function expressions whose type is fixed by their context.
	AllowTypedFunctionExpressions

	// AllowHigherOrderFunctions exempts functions that immediately return a function expression.
	AllowHigherOrderFunctions

	// AllowDirectConstAssertionInArrowFunctions exempts arrow functions whose body is an "as const" assertion.
	AllowDirectConstAssertionInArrowFunctions

	// AllowConciseArrowFunctionExpressionsStartingWithVoid exempts arrow functions with a "void" body.
	AllowConciseArrowFunctionExpressionsStartingWithVoid

	// AllowFunctionsWithoutTypeParameters exempts functions that declare no type parameters.
	AllowFunctionsWithoutTypeParameters

	// AllowIIFEs exempts immediately invoked function expressions.
	AllowIIFEs
)

// Allows is the set of enabled exemptions.
type Allows = BitMask[Allow]

// DefaultAllows are the exemptions enabled when not configured otherwise.
func DefaultAllows() Allows {
	return NewBitMask(AllowTypedFunctionExpressions | AllowHigherOrderFunctions | AllowDirectConstAssertionInArrowFunctions)
}

var allowNames = [...]struct {
	flag Allow
	name string
}{
	{AllowExpressions, "allowExpressions"},
	{AllowTypedFunctionExpressions, "allowTypedFunctionExpressions"},
	{AllowHigherOrderFunctions, "allowHigherOrderFunctions"},
	{AllowDirectConstAssertionInArrowFunctions, "allowDirectConstAssertionInArrowFunctions"},
	{AllowConciseArrowFunctionExpressionsStartingWithVoid, "allowConciseArrowFunctionExpressionsStartingWithVoid"},
	{AllowFunctionsWithoutTypeParameters, "allowFunctionsWithoutTypeParameters"},
	{AllowIIFEs, "allowIIFEs"},
}

// String returns the option names of the bits set in a.
func (a Allow) String() string {
	var names []string

	for _, n := range allowNames {
		if a&n.flag != 0 {
			names = append(names, n.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}

// Behavior represents options of the lint run around the rule.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// IncludeDeclarationFiles specifies whether to include *.d.ts files.
	IncludeDeclarationFiles
)

// Behaviors is the set of enabled behavior options.
type Behaviors = BitMask[Behavior]
