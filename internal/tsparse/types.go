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

package tsparse

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"fillmore-labs.com/explicitreturn/syntax"
)

// typeAnnotation converts ": Type" and the predicate forms of return types.
func (c *converter) typeAnnotation(n *tree_sitter.Node) *syntax.TSTypeAnnotation {
	ann := &syntax.TSTypeAnnotation{Range: c.rng(n)}

	switch n.Kind() {
	case "type_annotation":
		ann.TypeAnnotation = c.typ(first(n))

	default: // asserts_annotation, type_predicate_annotation
		ann.TypeAnnotation = &syntax.TSType{Range: c.rng(n), Type: "TSTypePredicate"}
	}

	return ann
}

// typ converts a type. Only the shapes relevant to return type analysis get dedicated nodes.
func (c *converter) typ(n *tree_sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}

	r := c.rng(n)

	switch kind := n.Kind(); kind {
	case "type_identifier", "identifier", "nested_type_identifier":
		return &syntax.TSTypeReference{Range: r, TypeName: c.identifier(n)}

	case "generic_type":
		return &syntax.TSTypeReference{
			Range:         r,
			TypeName:      c.identifier(n.ChildByFieldName("name")),
			TypeArguments: c.typeArguments(n.ChildByFieldName("type_arguments")),
		}

	case "readonly_type":
		return &syntax.TSTypeOperator{Range: r, Operator: "readonly", TypeAnnotation: c.typ(first(n))}

	case "index_type_query":
		return &syntax.TSTypeOperator{Range: r, Operator: "keyof", TypeAnnotation: c.typ(first(n))}

	case "parenthesized_type":
		return c.typ(first(n))

	default:
		return &syntax.TSType{Range: r, Type: kind}
	}
}

func (c *converter) typeParameters(n *tree_sitter.Node) *syntax.TSTypeParameterDeclaration {
	tp := &syntax.TSTypeParameterDeclaration{Range: c.rng(n)}

	for child := range named(n) {
		tp.Params = append(tp.Params, &syntax.TSType{Range: c.rng(child), Type: "TSTypeParameter"})
	}

	return tp
}

// typeArguments converts <T, U>. The result is nil for a missing list.
func (c *converter) typeArguments(n *tree_sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}

	ta := &syntax.TSType{Range: c.rng(n), Type: "TSTypeParameterInstantiation"}

	for child := range named(n) {
		if t := c.typ(child); t != nil {
			ta.Children = append(ta.Children, t)
		}
	}

	return ta
}

// asExpression converts "x as T", representing "x as const" as a reference to "const".
func (c *converter) asExpression(n *tree_sitter.Node) *syntax.TSAsExpression {
	e, t := c.typedExpression(n)

	if t == nil {
		if kw := anonToken(n, "const"); kw != nil {
			t = &syntax.TSTypeReference{Range: c.rng(kw), TypeName: c.identifier(kw)}
		}
	}

	return &syntax.TSAsExpression{Range: c.rng(n), Expression: e, TypeAnnotation: t}
}

// typedExpression splits "expression keyword Type".
func (c *converter) typedExpression(n *tree_sitter.Node) (syntax.Node, syntax.Node) {
	var expr, typ *tree_sitter.Node

	for child := range named(n) {
		if expr == nil {
			expr = child
		} else if typ == nil {
			typ = child
		}
	}

	return c.node(expr), c.typ(typ)
}

// typeAssertion converts "<T>x".
func (c *converter) typeAssertion(n *tree_sitter.Node) *syntax.TSTypeAssertion {
	ta := &syntax.TSTypeAssertion{Range: c.rng(n)}

	for child := range named(n) {
		if child.Kind() == "type_arguments" {
			if t := first(child); t != nil {
				ta.TypeAnnotation = c.typ(t)
			} else if kw := anonToken(child, "const"); kw != nil {
				ta.TypeAnnotation = &syntax.TSTypeReference{Range: c.rng(kw), TypeName: c.identifier(kw)}
			}

			continue
		}

		ta.Expression = c.node(child)
	}

	return ta
}
