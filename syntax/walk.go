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

package syntax

import "iter"

// Inspect traverses the tree rooted at root in depth-first order. It calls f(n, true) for each
// node n before it visits n's children. If f returns true, Inspect invokes f recursively for
// each of the non-nil children of the node, followed by a call of f(n, false).
func Inspect(root Node, f func(n Node, push bool) bool) {
	if root == nil || !f(root, true) {
		return
	}

	for _, c := range Children(root) {
		Inspect(c, f)
	}

	f(root, false)
}

// Preorder returns an iterator over all nodes of the tree rooted at root in depth-first order.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(root, func(n Node, push bool) bool {
			if push && ok {
				ok = yield(n)
			}

			return ok
		})
	}
}

// Link assigns the parent of every node in the tree rooted at root.
// The root itself keeps its parent.
func Link(root Node) {
	for _, c := range Children(root) {
		c.setParent(root)
		Link(c)
	}
}

// Children returns the non-nil children of n in source order.
func Children(n Node) []Node {
	var l []Node

	switch n := n.(type) {
	case *Program:
		l = append(l, n.Body...)

	case *BlockStatement:
		l = append(l, n.Body...)

	case *ExpressionStatement:
		l = add(l, n.Expression)

	case *ReturnStatement:
		l = add(l, n.Argument)

	case *VariableDeclaration:
		for _, d := range n.Declarations {
			l = addPtr(l, d)
		}

	case *VariableDeclarator:
		l = add(l, n.ID)
		l = add(l, n.Init)

	case *FunctionDeclaration:
		l = appendFunction(l, &n.Function)

	case *FunctionExpression:
		l = appendFunction(l, &n.Function)

	case *ArrowFunctionExpression:
		l = appendFunction(l, &n.Function)

	case *ClassDeclaration:
		l = appendClass(l, &n.Class)

	case *ClassExpression:
		l = appendClass(l, &n.Class)

	case *ClassBody:
		l = append(l, n.Body...)

	case *MethodDefinition:
		l = appendDecorators(l, n.Decorators)
		l = add(l, n.Key)
		l = addPtr(l, n.Value)

	case *PropertyDefinition:
		l = appendDecorators(l, n.Decorators)
		l = add(l, n.Key)
		l = addPtr(l, n.TypeAnnotation)
		l = add(l, n.Value)

	case *Decorator:
		l = add(l, n.Expression)

	case *ExportDefaultDeclaration:
		l = add(l, n.Declaration)

	case *ExportNamedDeclaration:
		l = add(l, n.Declaration)

	case *Identifier:
		l = addPtr(l, n.TypeAnnotation)

	case *TemplateLiteral:
		l = append(l, n.Expressions...)

	case *TaggedTemplateExpression:
		l = add(l, n.Tag)
		l = addPtr(l, n.Quasi)

	case *ArrayExpression:
		l = append(l, n.Elements...)

	case *ObjectExpression:
		l = append(l, n.Properties...)

	case *Property:
		if !n.Shorthand {
			l = add(l, n.Key)
		}

		l = add(l, n.Value)

	case *SpreadElement:
		l = add(l, n.Argument)

	case *RestElement:
		l = add(l, n.Argument)
		l = addPtr(l, n.TypeAnnotation)

	case *AssignmentPattern:
		l = add(l, n.Left)
		l = add(l, n.Right)

	case *ObjectPattern:
		l = append(l, n.Properties...)
		l = addPtr(l, n.TypeAnnotation)

	case *ArrayPattern:
		l = append(l, n.Elements...)
		l = addPtr(l, n.TypeAnnotation)

	case *CallExpression:
		l = add(l, n.Callee)
		l = add(l, n.TypeArguments)
		l = append(l, n.Arguments...)

	case *NewExpression:
		l = add(l, n.Callee)
		l = add(l, n.TypeArguments)
		l = append(l, n.Arguments...)

	case *MemberExpression:
		l = add(l, n.Object)
		l = add(l, n.Property)

	case *ChainExpression:
		l = add(l, n.Expression)

	case *UnaryExpression:
		l = add(l, n.Argument)

	case *UpdateExpression:
		l = add(l, n.Argument)

	case *BinaryExpression:
		l = add(l, n.Left)
		l = add(l, n.Right)

	case *LogicalExpression:
		l = add(l, n.Left)
		l = add(l, n.Right)

	case *AssignmentExpression:
		l = add(l, n.Left)
		l = add(l, n.Right)

	case *ConditionalExpression:
		l = add(l, n.Test)
		l = add(l, n.Consequent)
		l = add(l, n.Alternate)

	case *AwaitExpression:
		l = add(l, n.Argument)

	case *YieldExpression:
		l = add(l, n.Argument)

	case *SequenceExpression:
		l = append(l, n.Expressions...)

	case *JSXElement:
		l = append(l, n.Children...)

	case *JSXExpressionContainer:
		l = add(l, n.Expression)

	case *JSXSpreadAttribute:
		l = add(l, n.Argument)

	case *TSAsExpression:
		l = add(l, n.Expression)
		l = add(l, n.TypeAnnotation)

	case *TSSatisfiesExpression:
		l = add(l, n.Expression)
		l = add(l, n.TypeAnnotation)

	case *TSTypeAssertion:
		l = add(l, n.TypeAnnotation)
		l = add(l, n.Expression)

	case *TSNonNullExpression:
		l = add(l, n.Expression)

	case *TSInstantiationExpression:
		l = add(l, n.Expression)
		l = add(l, n.TypeArguments)

	case *TSTypeAnnotation:
		l = add(l, n.TypeAnnotation)

	case *TSTypeReference:
		l = add(l, n.TypeName)
		l = add(l, n.TypeArguments)

	case *TSTypeOperator:
		l = add(l, n.TypeAnnotation)

	case *TSTypeParameterDeclaration:
		l = append(l, n.Params...)

	case *TSType:
		l = append(l, n.Children...)

	case *Other:
		l = append(l, n.Children...)
	}

	return l
}

func appendFunction(l []Node, f *Function) []Node {
	l = addPtr(l, f.ID)
	l = addPtr(l, f.TypeParameters)
	l = append(l, f.Params...)
	l = addPtr(l, f.ReturnType)

	return add(l, f.Body)
}

func appendClass(l []Node, c *Class) []Node {
	l = appendDecorators(l, c.Decorators)
	l = addPtr(l, c.ID)

	return addPtr(l, c.Body)
}

func appendDecorators(l []Node, ds []*Decorator) []Node {
	for _, d := range ds {
		l = addPtr(l, d)
	}

	return l
}

func add(l []Node, n Node) []Node {
	if n == nil {
		return l
	}

	return append(l, n)
}

// addPtr avoids storing typed nil pointers in the [Node] interface.
func addPtr[E any, P interface {
	*E
	Node
}](l []Node, p P) []Node {
	if p == nil {
		return l
	}

	return append(l, p)
}
