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
	"fillmore-labs.com/explicitreturn/internal/astutil"
	"fillmore-labs.com/explicitreturn/syntax"
)

// isTypedParent reports whether parent fixes the type of its child. callee is excluded as
// the callee of a call, so immediately invoked functions are not considered typed.
func isTypedParent(parent syntax.Node, callee syntax.Node) bool {
	switch p := parent.(type) {
	case *syntax.TSAsExpression, *syntax.TSTypeAssertion, *syntax.TSSatisfiesExpression:
		return true

	case *syntax.VariableDeclarator: // const x: Foo = ...
		return hasTypeAnnotation(p.ID)

	case *syntax.AssignmentPattern: // function f(x: Foo = ...)
		return hasTypeAnnotation(p.Left)

	case *syntax.PropertyDefinition: // public x: Foo = ...
		return p.TypeAnnotation != nil

	case *syntax.CallExpression: // foo(() => 1)
		return callee == nil || p.Callee != callee

	case *syntax.JSXExpressionContainer, *syntax.JSXSpreadAttribute: // <Foo x={() => {}} />
		return true

	default:
		return false
	}
}

// isPropertyOfObjectWithType reports whether n is a property, possibly nested, of a typed object:
//
//	const x: Foo = { prop: () => {} }
//	const x = { prop: () => {} } as Foo
//	const x: Foo = { bar: { prop: () => {} } }
func isPropertyOfObjectWithType(n syntax.Node) bool {
	for {
		if n == nil || n.Kind() != syntax.KindProperty {
			return false
		}

		obj := astutil.MustParent(n)
		if obj.Kind() != syntax.KindObjectExpression {
			return false
		}

		parent := astutil.MustParent(obj)
		if isTypedParent(parent, nil) {
			return true
		}

		n = parent
	}
}

// isConstAssertion reports whether n is "x as const" or "<const>x".
func isConstAssertion(n syntax.Node) bool {
	if !astutil.IsTypeAssertion(n) {
		return false
	}

	typ, _ := astutil.AssertedType(n)

	ref, ok := typ.(*syntax.TSTypeReference)
	if !ok {
		return false
	}

	id, ok := ref.TypeName.(*syntax.Identifier)

	return ok && id.Name == "const"
}

func hasTypeAnnotation(n syntax.Node) bool {
	switch n := n.(type) {
	case *syntax.Identifier:
		return n.TypeAnnotation != nil

	case *syntax.ObjectPattern:
		return n.TypeAnnotation != nil

	case *syntax.ArrayPattern:
		return n.TypeAnnotation != nil

	case *syntax.RestElement:
		return n.TypeAnnotation != nil

	default:
		return false
	}
}
