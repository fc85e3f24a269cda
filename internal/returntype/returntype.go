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

package returntype

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/astutil"
	"fillmore-labs.com/explicitreturn/internal/config"
	"fillmore-labs.com/explicitreturn/syntax"
)

// FunctionInfo collects the return statements that lexically belong to a function.
type FunctionInfo struct {
	Node    syntax.FunctionNode
	Returns []*syntax.ReturnStatement
}

// HeadFunc locates the reported span of a function.
type HeadFunc func(fn syntax.FunctionNode) analysis.Range

// DoesImmediatelyReturnFunctionExpression reports whether the function consists of returning
// other functions:
//
//	() => () => ...
//	() => { return () => ... }
//	function fn() { return function() { ... } }
func DoesImmediatelyReturnFunctionExpression(info FunctionInfo) bool {
	if arrow, ok := info.Node.(*syntax.ArrowFunctionExpression); ok && astutil.IsFunction(arrow.Body) {
		return true
	}

	if len(info.Returns) == 0 {
		return false
	}

	for _, r := range info.Returns {
		if r.Argument == nil || !astutil.IsFunction(r.Argument) {
			return false
		}
	}

	return true
}

// IsTypedFunctionExpression reports whether the syntax surrounding the function expression
// fixes its type.
func IsTypedFunctionExpression(fn syntax.FunctionNode, allows config.Allows) bool {
	parent := astutil.MustParent(fn)

	if !allows.Enabled(config.AllowTypedFunctionExpressions) {
		return false
	}

	return isTypedParent(parent, fn) ||
		isPropertyOfObjectWithType(parent) ||
		parent.Kind() == syntax.KindNewExpression
}

// IsValidFunctionExpressionReturnType reports whether the function expression is typed or
// exempt under the given options.
func IsValidFunctionExpressionReturnType(fn syntax.FunctionNode, allows config.Allows) bool {
	if IsTypedFunctionExpression(fn, allows) {
		return true
	}

	parent := astutil.MustParent(fn)

	if allows.Enabled(config.AllowExpressions) {
		switch parent.Kind() {
		case syntax.KindVariableDeclarator,
			syntax.KindMethodDefinition,
			syntax.KindExportDefaultDeclaration,
			syntax.KindPropertyDefinition:

		default:
			return true
		}
	}

	arrow, ok := fn.(*syntax.ArrowFunctionExpression)
	if !ok || !allows.Enabled(config.AllowDirectConstAssertionInArrowFunctions) {
		return false
	}

	body := arrow.Body
	for {
		s, ok := body.(*syntax.TSSatisfiesExpression)
		if !ok {
			break
		}

		body = s.Expression
	}

	return isConstAssertion(body)
}

// CheckFunctionReturnType reports the head of a function without a valid return type.
func CheckFunctionReturnType(info FunctionInfo, allows config.Allows, head HeadFunc, report func(analysis.Range)) {
	if isValidFunctionReturnType(info, allows) {
		return
	}

	report(head(info.Node))
}

// CheckFunctionExpressionReturnType reports the head of a function expression that is
// neither typed by its context nor annotated.
func CheckFunctionExpressionReturnType(info FunctionInfo, allows config.Allows, head HeadFunc, report func(analysis.Range)) {
	if IsValidFunctionExpressionReturnType(info.Node, allows) {
		return
	}

	CheckFunctionReturnType(info, allows, head, report)
}

// AncestorHasReturnType reports whether a function is returned from an enclosing function
// or initializer whose type is annotated.
func AncestorHasReturnType(fn syntax.FunctionNode) bool {
	ancestor := astutil.MustParent(fn)

	if p, ok := ancestor.(*syntax.Property); ok {
		ancestor = p.Value
	}

	// a function that is not returned is not typed by its ancestors
	switch a := ancestor.(type) {
	case *syntax.ReturnStatement:

	case *syntax.ArrowFunctionExpression:
		if a.Body.Kind() == syntax.KindBlockStatement {
			return false
		}

	default:
		return false
	}

	for ; ancestor != nil; ancestor = ancestor.Parent() {
		switch a := ancestor.(type) {
		case syntax.FunctionNode:
			if a.Func().ReturnType != nil {
				return true
			}

		case *syntax.VariableDeclarator: // const x: Foo = () => {}
			return hasTypeAnnotation(a.ID)

		case *syntax.PropertyDefinition:
			return a.TypeAnnotation != nil

		case *syntax.ExpressionStatement:
			return false
		}
	}

	return false
}

func isValidFunctionReturnType(info FunctionInfo, allows config.Allows) bool {
	if allows.Enabled(config.AllowHigherOrderFunctions) && DoesImmediatelyReturnFunctionExpression(info) {
		return true
	}

	parent := info.Node.Parent()

	return info.Node.Func().ReturnType != nil || astutil.IsConstructor(parent) || astutil.IsSetter(parent)
}
