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

import "fillmore-labs.com/explicitreturn/syntax"

// IsConstructor reports whether n is a class constructor definition.
func IsConstructor(n syntax.Node) bool {
	m, ok := n.(*syntax.MethodDefinition)

	return ok && m.MethodKind == syntax.MethodConstructor
}

// IsSetter reports whether n is a setter of a class or an object literal.
func IsSetter(n syntax.Node) bool {
	switch n := n.(type) {
	case *syntax.MethodDefinition:
		return n.MethodKind == syntax.MethodSet

	case *syntax.Property:
		return n.PropertyKind == syntax.PropertySet

	default:
		return false
	}
}

// IsTypeAssertion reports whether n is "x as T" or "<T>x".
func IsTypeAssertion(n syntax.Node) bool {
	switch n.(type) {
	case *syntax.TSAsExpression, *syntax.TSTypeAssertion:
		return true

	default:
		return false
	}
}

// AssertedType returns the asserted type of a type assertion.
func AssertedType(n syntax.Node) (syntax.Node, bool) {
	switch n := n.(type) {
	case *syntax.TSAsExpression:
		return n.TypeAnnotation, true

	case *syntax.TSTypeAssertion:
		return n.TypeAnnotation, true

	default:
		return nil, false
	}
}

// IsFunction reports whether n is a function declaration, expression or arrow function.
func IsFunction(n syntax.Node) bool {
	return n != nil && n.Kind().IsFunction()
}

// IsIIFE reports whether the function expression n is immediately invoked.
func IsIIFE(n syntax.FunctionNode) bool {
	call, ok := n.Parent().(*syntax.CallExpression)

	return ok && call.Callee == n
}

// ThisExpression follows call callees, member objects and optional chains from n
// until it reaches a "this" expression.
func ThisExpression(n syntax.Node) (*syntax.ThisExpression, bool) {
	for {
		switch e := n.(type) {
		case *syntax.CallExpression:
			n = e.Callee

		case *syntax.ThisExpression:
			return e, true

		case *syntax.MemberExpression:
			n = e.Object

		case *syntax.ChainExpression:
			n = e.Expression

		default:
			return nil, false
		}
	}
}
