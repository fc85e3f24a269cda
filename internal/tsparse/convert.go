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
	"iter"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"fillmore-labs.com/explicitreturn/syntax"
)

// converter translates a tree-sitter tree into [syntax] nodes.
type converter struct {
	src  []byte
	file *syntax.File
}

func (c *converter) rng(n *tree_sitter.Node) syntax.Range {
	return syntax.Range{Start: c.pos(n.StartByte()), Stop: c.pos(n.EndByte())}
}

func (c *converter) pos(offset uint) token.Pos {
	return c.file.Pos(int(offset))
}

func (c *converter) text(n *tree_sitter.Node) string {
	return n.Utf8Text(c.src)
}

// named iterates over the named children of n, skipping comments.
func named(n *tree_sitter.Node) iter.Seq[*tree_sitter.Node] {
	return func(yield func(*tree_sitter.Node) bool) {
		for i := range n.NamedChildCount() {
			child := n.NamedChild(i)
			if child.Kind() == "comment" {
				continue
			}

			if !yield(child) {
				return
			}
		}
	}
}

// first returns the first named child of n that is not a comment.
func first(n *tree_sitter.Node) *tree_sitter.Node {
	for child := range named(n) {
		return child
	}

	return nil
}

// anonToken returns the first anonymous child of n with the given text.
func anonToken(n *tree_sitter.Node, text string) *tree_sitter.Node {
	for i := range n.ChildCount() {
		if child := n.Child(i); !child.IsNamed() && child.Kind() == text {
			return child
		}
	}

	return nil
}

func (c *converter) program(n *tree_sitter.Node) *syntax.Program {
	return &syntax.Program{Range: c.rng(n), Body: c.list(n)}
}

// list converts the named children of n.
func (c *converter) list(n *tree_sitter.Node) []syntax.Node {
	var l []syntax.Node

	for child := range named(n) {
		if e := c.node(child); e != nil {
			l = append(l, e)
		}
	}

	return l
}

// node converts a statement or expression.
func (c *converter) node(n *tree_sitter.Node) syntax.Node {
	if n == nil || n.IsMissing() {
		return nil
	}

	r := c.rng(n)

	switch kind := n.Kind(); kind {
	case "comment":
		return nil

	case "statement_block":
		return &syntax.BlockStatement{Range: r, Body: c.list(n)}

	case "expression_statement":
		return &syntax.ExpressionStatement{Range: r, Expression: c.node(first(n))}

	case "return_statement":
		return &syntax.ReturnStatement{Range: r, Argument: c.node(first(n))}

	case "lexical_declaration", "variable_declaration":
		return c.variableDeclaration(n)

	case "variable_declarator":
		return c.variableDeclarator(n)

	case "function_declaration", "generator_function_declaration":
		fn := &syntax.FunctionDeclaration{Range: r}
		c.function(n, &fn.Function, true)

		return fn

	case "function_expression", "function", "generator_function":
		return c.functionExpression(n)

	case "arrow_function":
		return c.arrowFunction(n)

	case "class_declaration", "abstract_class_declaration":
		cl := &syntax.ClassDeclaration{Range: r}
		c.class(n, &cl.Class)

		return cl

	case "class":
		cl := &syntax.ClassExpression{Range: r}
		c.class(n, &cl.Class)

		return cl

	case "class_body":
		return c.classBody(n)

	case "method_definition":
		return c.methodDefinition(n)

	case "public_field_definition", "field_definition":
		return c.propertyDefinition(n)

	case "decorator":
		return c.decorator(n)

	case "export_statement":
		return c.export(n)

	case "identifier", "property_identifier", "shorthand_property_identifier",
		"shorthand_property_identifier_pattern", "statement_identifier", "undefined":
		return c.identifier(n)

	case "private_property_identifier":
		return &syntax.PrivateIdentifier{Range: r, Name: c.text(n)}

	case "this":
		return &syntax.ThisExpression{Range: r}

	case "number", "string", "regex", "true", "false", "null":
		return &syntax.Literal{Range: r, Raw: c.text(n)}

	case "template_string":
		return c.templateLiteral(n)

	case "array":
		return &syntax.ArrayExpression{Range: r, Elements: c.list(n)}

	case "object":
		return c.objectExpression(n)

	case "pair", "pair_pattern":
		key, computed := c.key(n.ChildByFieldName("key"))

		return &syntax.Property{Range: r, Key: key, Value: c.node(n.ChildByFieldName("value")), Computed: computed}

	case "spread_element":
		return &syntax.SpreadElement{Range: r, Argument: c.node(first(n))}

	case "rest_pattern":
		return &syntax.RestElement{Range: r, Argument: c.node(first(n))}

	case "assignment_pattern", "object_assignment_pattern":
		return &syntax.AssignmentPattern{
			Range: r,
			Left:  c.node(n.ChildByFieldName("left")),
			Right: c.node(n.ChildByFieldName("right")),
		}

	case "object_pattern":
		return &syntax.ObjectPattern{Range: r, Properties: c.patternProperties(n)}

	case "array_pattern":
		return &syntax.ArrayPattern{Range: r, Elements: c.list(n)}

	case "call_expression", "member_expression", "subscript_expression":
		e, optional := c.chainElement(n)
		if optional {
			return &syntax.ChainExpression{Range: r, Expression: e}
		}

		return e

	case "new_expression":
		return &syntax.NewExpression{
			Range:         r,
			Callee:        c.node(n.ChildByFieldName("constructor")),
			TypeArguments: c.typeArguments(n.ChildByFieldName("type_arguments")),
			Arguments:     c.arguments(n.ChildByFieldName("arguments")),
		}

	case "await_expression":
		return &syntax.AwaitExpression{Range: r, Argument: c.node(first(n))}

	case "yield_expression":
		return &syntax.YieldExpression{Range: r, Argument: c.node(first(n)), Delegate: anonToken(n, "*") != nil}

	case "unary_expression":
		return &syntax.UnaryExpression{
			Range:    r,
			Operator: c.text(n.ChildByFieldName("operator")),
			Argument: c.node(n.ChildByFieldName("argument")),
		}

	case "update_expression":
		op := n.ChildByFieldName("operator")

		return &syntax.UpdateExpression{
			Range:    r,
			Operator: c.text(op),
			Argument: c.node(n.ChildByFieldName("argument")),
			Prefix:   op.StartByte() == n.StartByte(),
		}

	case "binary_expression":
		return c.binaryExpression(n)

	case "assignment_expression", "augmented_assignment_expression":
		op := "="
		if o := n.ChildByFieldName("operator"); o != nil {
			op = c.text(o)
		}

		return &syntax.AssignmentExpression{
			Range:    r,
			Left:     c.node(n.ChildByFieldName("left")),
			Operator: op,
			Right:    c.node(n.ChildByFieldName("right")),
		}

	case "ternary_expression":
		return &syntax.ConditionalExpression{
			Range:      r,
			Test:       c.node(n.ChildByFieldName("condition")),
			Consequent: c.node(n.ChildByFieldName("consequence")),
			Alternate:  c.node(n.ChildByFieldName("alternative")),
		}

	case "sequence_expression":
		return &syntax.SequenceExpression{Range: r, Expressions: c.sequence(n, nil)}

	case "parenthesized_expression":
		return c.node(first(n))

	case "as_expression":
		return c.asExpression(n)

	case "satisfies_expression":
		e, t := c.typedExpression(n)

		return &syntax.TSSatisfiesExpression{Range: r, Expression: e, TypeAnnotation: t}

	case "type_assertion":
		return c.typeAssertion(n)

	case "non_null_expression":
		return &syntax.TSNonNullExpression{Range: r, Expression: c.node(first(n))}

	case "instantiation_expression":
		return &syntax.TSInstantiationExpression{
			Range:         r,
			Expression:    c.node(first(n)),
			TypeArguments: c.typeArguments(n.ChildByFieldName("type_arguments")),
		}

	case "jsx_element", "jsx_self_closing_element":
		return &syntax.JSXElement{Range: r, Children: c.list(n)}

	case "jsx_expression":
		return c.jsxExpression(n)

	case "type_annotation":
		return c.typeAnnotation(n)

	case "type_parameters":
		return c.typeParameters(n)

	case "type_arguments":
		return c.typeArguments(n)

	case "required_parameter", "optional_parameter":
		return c.parameter(n)

	default:
		return &syntax.Other{Range: r, Type: otherType(kind), Children: c.list(n)}
	}
}

func (c *converter) identifier(n *tree_sitter.Node) *syntax.Identifier {
	if n == nil {
		return nil
	}

	return &syntax.Identifier{Range: c.rng(n), Name: c.text(n)}
}

// key converts a property name, unwrapping computed names.
func (c *converter) key(n *tree_sitter.Node) (key syntax.Node, computed bool) {
	if n == nil {
		return nil, false
	}

	if n.Kind() == "computed_property_name" {
		return c.node(first(n)), true
	}

	return c.node(n), false
}

func (c *converter) variableDeclaration(n *tree_sitter.Node) *syntax.VariableDeclaration {
	decl := &syntax.VariableDeclaration{Range: c.rng(n)}

	if kind := n.ChildByFieldName("kind"); kind != nil {
		decl.DeclKind = c.text(kind)
	} else if kw := n.Child(0); kw != nil {
		decl.DeclKind = c.text(kw)
	}

	for child := range named(n) {
		if child.Kind() == "variable_declarator" {
			decl.Declarations = append(decl.Declarations, c.variableDeclarator(child))
		}
	}

	return decl
}

func (c *converter) variableDeclarator(n *tree_sitter.Node) *syntax.VariableDeclarator {
	return &syntax.VariableDeclarator{
		Range: c.rng(n),
		ID:    c.binding(n.ChildByFieldName("name"), n.ChildByFieldName("type")),
		Init:  c.node(n.ChildByFieldName("value")),
	}
}

// binding converts a binding pattern and attaches its type annotation.
func (c *converter) binding(pattern, typ *tree_sitter.Node) syntax.Node {
	b := c.node(pattern)
	if typ == nil {
		return b
	}

	ann := c.typeAnnotation(typ)

	switch b := b.(type) {
	case *syntax.Identifier:
		b.TypeAnnotation, b.Stop = ann, ann.End()

	case *syntax.ObjectPattern:
		b.TypeAnnotation, b.Stop = ann, ann.End()

	case *syntax.ArrayPattern:
		b.TypeAnnotation, b.Stop = ann, ann.End()

	case *syntax.RestElement:
		b.TypeAnnotation, b.Stop = ann, ann.End()
	}

	return b
}

// parameter converts a TypeScript parameter with optional type and default value.
func (c *converter) parameter(n *tree_sitter.Node) syntax.Node {
	pattern := n.ChildByFieldName("pattern")

	b := c.binding(pattern, n.ChildByFieldName("type"))

	if id, ok := b.(*syntax.Identifier); ok && n.Kind() == "optional_parameter" {
		id.Optional = true
	}

	value := n.ChildByFieldName("value")
	if value == nil {
		return b
	}

	r := c.rng(n)
	if b != nil {
		r.Start = b.Pos()
	}

	return &syntax.AssignmentPattern{Range: r, Left: b, Right: c.node(value)}
}

func (c *converter) patternProperties(n *tree_sitter.Node) []syntax.Node {
	var l []syntax.Node

	for child := range named(n) {
		switch child.Kind() {
		case "shorthand_property_identifier_pattern":
			id := c.identifier(child)
			l = append(l, &syntax.Property{Range: id.Range, Key: id, Value: id, Shorthand: true})

		case "object_assignment_pattern":
			ap := c.node(child).(*syntax.AssignmentPattern)

			key := ap.Left
			if id, ok := key.(*syntax.Identifier); ok {
				key = &syntax.Identifier{Range: id.Range, Name: id.Name}
			}

			l = append(l, &syntax.Property{Range: ap.Range, Key: key, Value: ap, Shorthand: true})

		default:
			if e := c.node(child); e != nil {
				l = append(l, e)
			}
		}
	}

	return l
}

func (c *converter) templateLiteral(n *tree_sitter.Node) *syntax.TemplateLiteral {
	tl := &syntax.TemplateLiteral{Range: c.rng(n)}

	for child := range named(n) {
		if child.Kind() == "template_substitution" {
			if e := c.node(first(child)); e != nil {
				tl.Expressions = append(tl.Expressions, e)
			}
		}
	}

	return tl
}

func (c *converter) objectExpression(n *tree_sitter.Node) *syntax.ObjectExpression {
	obj := &syntax.ObjectExpression{Range: c.rng(n)}

	for child := range named(n) {
		var p syntax.Node

		switch child.Kind() {
		case "shorthand_property_identifier":
			id := c.identifier(child)
			p = &syntax.Property{Range: id.Range, Key: id, Value: id, Shorthand: true}

		case "method_definition":
			p = c.methodProperty(child)

		default:
			p = c.node(child)
		}

		if p != nil {
			obj.Properties = append(obj.Properties, p)
		}
	}

	return obj
}

// chainElement converts a call or member access, reporting whether the chain it starts
// contains an optional link.
func (c *converter) chainElement(n *tree_sitter.Node) (syntax.Node, bool) {
	r := c.rng(n)
	optional := n.ChildByFieldName("optional_chain") != nil

	switch n.Kind() {
	case "member_expression":
		object, opt := c.chainObject(n.ChildByFieldName("object"))

		return &syntax.MemberExpression{
			Range:    r,
			Object:   object,
			Property: c.node(n.ChildByFieldName("property")),
			Optional: optional,
		}, opt || optional

	case "subscript_expression":
		object, opt := c.chainObject(n.ChildByFieldName("object"))

		return &syntax.MemberExpression{
			Range:    r,
			Object:   object,
			Property: c.node(n.ChildByFieldName("index")),
			Computed: true,
			Optional: optional,
		}, opt || optional

	case "call_expression":
		args := n.ChildByFieldName("arguments")
		if args != nil && args.Kind() == "template_string" {
			return &syntax.TaggedTemplateExpression{
				Range: r,
				Tag:   c.node(n.ChildByFieldName("function")),
				Quasi: c.templateLiteral(args),
			}, false
		}

		callee, opt := c.chainObject(n.ChildByFieldName("function"))

		return &syntax.CallExpression{
			Range:         r,
			Callee:        callee,
			TypeArguments: c.typeArguments(n.ChildByFieldName("type_arguments")),
			Arguments:     c.arguments(args),
			Optional:      optional,
		}, opt || optional

	default:
		return c.node(n), false
	}
}

func (c *converter) chainObject(n *tree_sitter.Node) (syntax.Node, bool) {
	if n == nil {
		return nil, false
	}

	switch n.Kind() {
	case "call_expression", "member_expression", "subscript_expression":
		return c.chainElement(n)

	default:
		return c.node(n), false
	}
}

func (c *converter) arguments(n *tree_sitter.Node) []syntax.Node {
	if n == nil {
		return nil
	}

	return c.list(n)
}

func (c *converter) binaryExpression(n *tree_sitter.Node) syntax.Node {
	r := c.rng(n)
	left, right := c.node(n.ChildByFieldName("left")), c.node(n.ChildByFieldName("right"))

	op := c.text(n.ChildByFieldName("operator"))
	switch op {
	case "&&", "||", "??":
		return &syntax.LogicalExpression{Range: r, Left: left, Operator: op, Right: right}

	default:
		return &syntax.BinaryExpression{Range: r, Left: left, Operator: op, Right: right}
	}
}

// sequence flattens nested comma expressions.
func (c *converter) sequence(n *tree_sitter.Node, l []syntax.Node) []syntax.Node {
	for child := range named(n) {
		if child.Kind() == "sequence_expression" {
			l = c.sequence(child, l)

			continue
		}

		if e := c.node(child); e != nil {
			l = append(l, e)
		}
	}

	return l
}

func (c *converter) jsxExpression(n *tree_sitter.Node) syntax.Node {
	r := c.rng(n)
	inner := first(n)

	if inner != nil && inner.Kind() == "spread_element" {
		if p := n.Parent(); p != nil && (p.Kind() == "jsx_opening_element" || p.Kind() == "jsx_self_closing_element") {
			return &syntax.JSXSpreadAttribute{Range: r, Argument: c.node(first(inner))}
		}
	}

	return &syntax.JSXExpressionContainer{Range: r, Expression: c.node(inner)}
}

func (c *converter) decorator(n *tree_sitter.Node) *syntax.Decorator {
	return &syntax.Decorator{Range: c.rng(n), Expression: c.node(first(n))}
}

func (c *converter) decorators(n *tree_sitter.Node) []*syntax.Decorator {
	var ds []*syntax.Decorator

	for child := range named(n) {
		if child.Kind() == "decorator" {
			ds = append(ds, c.decorator(child))
		}
	}

	return ds
}

func (c *converter) export(n *tree_sitter.Node) syntax.Node {
	r := c.rng(n)

	decl := n.ChildByFieldName("declaration")
	if decl == nil {
		decl = n.ChildByFieldName("value")
	}

	var d syntax.Node

	if decl != nil {
		switch decl.Kind() {
		case "function_expression", "function", "generator_function":
			// export default function () {}
			fn := &syntax.FunctionDeclaration{Range: c.rng(decl)}
			c.function(decl, &fn.Function, true)
			d = fn

		case "class":
			cl := &syntax.ClassDeclaration{Range: c.rng(decl)}
			c.class(decl, &cl.Class)
			d = cl

		default:
			d = c.node(decl)
		}
	}

	if cl, ok := d.(*syntax.ClassDeclaration); ok {
		// @decorator export class C {}
		cl.Decorators = append(c.decorators(n), cl.Decorators...)
	}

	switch {
	case anonToken(n, "default") != nil:
		return &syntax.ExportDefaultDeclaration{Range: r, Declaration: d}

	case d != nil:
		return &syntax.ExportNamedDeclaration{Range: r, Declaration: d}

	default:
		return &syntax.Other{Range: r, Type: "ExportNamedDeclaration", Children: c.list(n)}
	}
}

// otherType names constructs without a dedicated node.
func otherType(kind string) string {
	if t, ok := otherTypes[kind]; ok {
		return t
	}

	return kind
}

var otherTypes = map[string]string{
	"if_statement":              "IfStatement",
	"while_statement":           "WhileStatement",
	"do_statement":              "DoWhileStatement",
	"for_statement":             "ForStatement",
	"for_in_statement":          "ForInStatement",
	"switch_statement":          "SwitchStatement",
	"switch_case":               "SwitchCase",
	"switch_default":            "SwitchCase",
	"with_statement":            "WithStatement",
	"try_statement":             "TryStatement",
	"catch_clause":              "CatchClause",
	"throw_statement":           "ThrowStatement",
	"labeled_statement":         "LabeledStatement",
	"break_statement":           "BreakStatement",
	"continue_statement":        "ContinueStatement",
	"empty_statement":           "EmptyStatement",
	"debugger_statement":        "DebuggerStatement",
	"import_statement":          "ImportDeclaration",
	"class_static_block":        "StaticBlock",
	"super":                     "Super",
	"meta_property":             "MetaProperty",
	"interface_declaration":     "TSInterfaceDeclaration",
	"type_alias_declaration":    "TSTypeAliasDeclaration",
	"enum_declaration":          "TSEnumDeclaration",
	"internal_module":           "TSModuleDeclaration",
	"module":                    "TSModuleDeclaration",
	"function_signature":        "TSDeclareFunction",
	"method_signature":          "TSAbstractMethodDefinition",
	"abstract_method_signature": "TSAbstractMethodDefinition",
	"index_signature":           "TSIndexSignature",
	"jsx_opening_element":       "JSXOpeningElement",
	"jsx_closing_element":       "JSXClosingElement",
	"jsx_attribute":             "JSXAttribute",
}
