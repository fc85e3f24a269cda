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
	"go/token"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"fillmore-labs.com/explicitreturn/syntax"
)

// function fills the parts shared by all function kinds. Methods take their name from the
// enclosing definition, so withID is false for them.
func (c *converter) function(n *tree_sitter.Node, fn *syntax.Function, withID bool) {
	if withID {
		fn.ID = c.identifier(n.ChildByFieldName("name"))
	}

	if tp := n.ChildByFieldName("type_parameters"); tp != nil {
		fn.TypeParameters = c.typeParameters(tp)
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Lparen, fn.Rparen = c.pos(params.StartByte()), c.pos(params.EndByte()-1)
		fn.Params = c.parameters(params)
	} else if param := n.ChildByFieldName("parameter"); param != nil {
		fn.Params = []syntax.Node{c.node(param)}
	}

	if rt := n.ChildByFieldName("return_type"); rt != nil {
		fn.ReturnType = c.typeAnnotation(rt)
	}

	fn.Body = c.node(n.ChildByFieldName("body"))

	fn.Async = anonToken(n, "async") != nil
	fn.Generator = anonToken(n, "*") != nil
}

func (c *converter) parameters(n *tree_sitter.Node) []syntax.Node {
	var l []syntax.Node

	for child := range named(n) {
		if child.Kind() == "decorator" {
			continue
		}

		if p := c.node(child); p != nil {
			l = append(l, p)
		}
	}

	return l
}

func (c *converter) functionExpression(n *tree_sitter.Node) *syntax.FunctionExpression {
	fn := &syntax.FunctionExpression{Range: c.rng(n)}
	c.function(n, &fn.Function, true)

	return fn
}

func (c *converter) arrowFunction(n *tree_sitter.Node) *syntax.ArrowFunctionExpression {
	fn := &syntax.ArrowFunctionExpression{Range: c.rng(n)}
	c.function(n, &fn.Function, false)

	if arrow := anonToken(n, "=>"); arrow != nil {
		fn.Arrow = c.pos(arrow.StartByte())
	}

	fn.Expression = fn.Body != nil && fn.Body.Kind() != syntax.KindBlockStatement

	return fn
}

// methodValue converts the function part of a method, starting at its type parameters or
// parameter list.
func (c *converter) methodValue(n *tree_sitter.Node) *syntax.FunctionExpression {
	fn := &syntax.FunctionExpression{Range: c.rng(n)}
	c.function(n, &fn.Function, false)

	switch {
	case fn.TypeParameters != nil:
		fn.Start = fn.TypeParameters.Pos()

	case fn.Lparen.IsValid():
		fn.Start = fn.Lparen
	}

	return fn
}

// accessor returns the "get" or "set" modifier of a method.
func accessor(n *tree_sitter.Node) string {
	switch {
	case anonToken(n, "get") != nil:
		return "get"

	case anonToken(n, "set") != nil:
		return "set"

	default:
		return ""
	}
}

func (c *converter) methodDefinition(n *tree_sitter.Node) *syntax.MethodDefinition {
	key, computed := c.key(n.ChildByFieldName("name"))

	m := &syntax.MethodDefinition{
		Range:      c.rng(n),
		Key:        key,
		Value:      c.methodValue(n),
		Computed:   computed,
		Static:     anonToken(n, "static") != nil,
		Decorators: c.decorators(n),
	}

	switch accessor(n) {
	case "get":
		m.MethodKind = syntax.MethodGet

	case "set":
		m.MethodKind = syntax.MethodSet

	default:
		if id, ok := key.(*syntax.Identifier); ok && !computed && !m.Static && id.Name == "constructor" {
			m.MethodKind = syntax.MethodConstructor
		}

		if lit, ok := key.(*syntax.Literal); ok && !m.Static && (lit.Raw == `"constructor"` || lit.Raw == `'constructor'`) {
			m.MethodKind = syntax.MethodConstructor
		}
	}

	return m
}

// methodProperty converts a method of an object literal.
func (c *converter) methodProperty(n *tree_sitter.Node) *syntax.Property {
	key, computed := c.key(n.ChildByFieldName("name"))

	p := &syntax.Property{
		Range:    c.rng(n),
		Key:      key,
		Value:    c.methodValue(n),
		Computed: computed,
	}

	switch accessor(n) {
	case "get":
		p.PropertyKind = syntax.PropertyGet

	case "set":
		p.PropertyKind = syntax.PropertySet

	default:
		p.Method = true
	}

	return p
}

func (c *converter) propertyDefinition(n *tree_sitter.Node) *syntax.PropertyDefinition {
	key, computed := c.key(n.ChildByFieldName("name"))

	p := &syntax.PropertyDefinition{
		Range:      c.rng(n),
		Key:        key,
		Value:      c.node(n.ChildByFieldName("value")),
		Computed:   computed,
		Static:     anonToken(n, "static") != nil,
		Decorators: c.decorators(n),
	}

	if typ := n.ChildByFieldName("type"); typ != nil {
		p.TypeAnnotation = c.typeAnnotation(typ)
	}

	return p
}

func (c *converter) class(n *tree_sitter.Node, cl *syntax.Class) {
	cl.ID = c.identifier(n.ChildByFieldName("name"))
	cl.Decorators = c.decorators(n)

	if body := n.ChildByFieldName("body"); body != nil {
		cl.Body = c.classBody(body)
	}
}

// classBody converts class members, attaching preceding decorators to the member they
// annotate.
func (c *converter) classBody(n *tree_sitter.Node) *syntax.ClassBody {
	body := &syntax.ClassBody{Range: c.rng(n)}

	var pending []*syntax.Decorator

	for child := range named(n) {
		var (
			member syntax.Node
			ds     *[]*syntax.Decorator
			start  *token.Pos
		)

		switch child.Kind() {
		case "decorator":
			pending = append(pending, c.decorator(child))

			continue

		case "method_definition":
			m := c.methodDefinition(child)
			member, ds, start = m, &m.Decorators, &m.Start

		case "public_field_definition", "field_definition":
			p := c.propertyDefinition(child)
			member, ds, start = p, &p.Decorators, &p.Start

		default:
			member = c.node(child)
		}

		if len(pending) > 0 {
			if ds != nil {
				*ds = append(pending, *ds...)
				*start = pending[0].Pos()
			} else {
				for _, d := range pending {
					body.Body = append(body.Body, d)
				}
			}

			pending = nil
		}

		if member != nil {
			body.Body = append(body.Body, member)
		}
	}

	for _, d := range pending {
		body.Body = append(body.Body, d)
	}

	return body
}
