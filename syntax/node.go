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

import "go/token"

// Node is an element of a TypeScript syntax tree.
//
// All node types are pointers to structs declared in this package. A node's parent is
// assigned once by [Link] and never changes afterwards; the tree owns its nodes, a node only
// refers back to its parent.
type Node interface {
	Kind() Kind
	Parent() Node
	Pos() token.Pos
	End() token.Pos

	setParent(parent Node)
}

// Range is the source extent of a node, End is exclusive.
type Range struct {
	Start, Stop token.Pos
}

// Pos returns the position of the first character of the node.
func (r Range) Pos() token.Pos { return r.Start }

// End returns the position immediately after the node.
func (r Range) End() token.Pos { return r.Stop }

type link struct{ parent Node }

// Parent returns the enclosing node, or nil for the root.
func (l *link) Parent() Node { return l.parent }

func (l *link) setParent(parent Node) { l.parent = parent }

// Program is the root of a source file.
type Program struct {
	Range
	link
	Body []Node
}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Range
	link
	Body []Node
}

// ExpressionStatement is an expression used as a statement.
type ExpressionStatement struct {
	Range
	link
	Expression Node
}

// ReturnStatement is a return statement, Argument is nil for a bare return.
type ReturnStatement struct {
	Range
	link
	Argument Node
}

// VariableDeclaration is a var, let or const declaration.
type VariableDeclaration struct {
	Range
	link
	DeclKind     string // "var", "let" or "const"
	Declarations []*VariableDeclarator
}

// VariableDeclarator is a single binding of a [VariableDeclaration].
type VariableDeclarator struct {
	Range
	link
	ID   Node
	Init Node
}

// Function holds the parts shared by all function kinds.
type Function struct {
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	Params         []Node
	ReturnType     *TSTypeAnnotation
	Body           Node // *BlockStatement, or an expression for concise arrow functions

	// Lparen and Rparen enclose the parameter list. Both are [token.NoPos] for an arrow
	// function with a single unparenthesized parameter.
	Lparen, Rparen token.Pos

	Async, Generator bool
}

// Func returns the shared function parts.
func (f *Function) Func() *Function { return f }

// FunctionNode is implemented by [FunctionDeclaration], [FunctionExpression] and
// [ArrowFunctionExpression].
type FunctionNode interface {
	Node
	Func() *Function
}

// FunctionDeclaration is a function statement.
type FunctionDeclaration struct {
	Range
	link
	Function
}

// FunctionExpression is a function literal, including method bodies.
type FunctionExpression struct {
	Range
	link
	Function
}

// ArrowFunctionExpression is an arrow function.
type ArrowFunctionExpression struct {
	Range
	link
	Function
	Arrow      token.Pos // position of "=>"
	Expression bool      // concise body
}

// Class holds the parts shared by class declarations and expressions.
type Class struct {
	ID         *Identifier
	Body       *ClassBody
	Decorators []*Decorator
}

// ClassDeclaration is a class statement.
type ClassDeclaration struct {
	Range
	link
	Class
}

// ClassExpression is a class literal.
type ClassExpression struct {
	Range
	link
	Class
}

// ClassBody holds the members of a class.
type ClassBody struct {
	Range
	link
	Body []Node
}

// MethodKind distinguishes the roles of a [MethodDefinition].
type MethodKind uint8

const (
	// MethodNormal is a plain method.
	MethodNormal MethodKind = iota
	// MethodConstructor is a class constructor.
	MethodConstructor
	// MethodGet is a getter.
	MethodGet
	// MethodSet is a setter.
	MethodSet
)

// MethodDefinition is a class method, accessor or constructor.
type MethodDefinition struct {
	Range
	link
	Key        Node
	Value      *FunctionExpression
	MethodKind MethodKind
	Computed   bool
	Static     bool
	Decorators []*Decorator
}

// PropertyDefinition is a class field.
type PropertyDefinition struct {
	Range
	link
	Key            Node
	TypeAnnotation *TSTypeAnnotation
	Value          Node
	Computed       bool
	Static         bool
	Decorators     []*Decorator
}

// Decorator is an @-expression attached to a class or class member.
type Decorator struct {
	Range
	link
	Expression Node
}

// ExportDefaultDeclaration is "export default ...".
type ExportDefaultDeclaration struct {
	Range
	link
	Declaration Node
}

// ExportNamedDeclaration is "export <declaration>".
type ExportNamedDeclaration struct {
	Range
	link
	Declaration Node
}

// Identifier is a name, optionally carrying a type annotation when used as a binding.
type Identifier struct {
	Range
	link
	Name           string
	TypeAnnotation *TSTypeAnnotation
	Optional       bool
}

// PrivateIdentifier is a #name.
type PrivateIdentifier struct {
	Range
	link
	Name string
}

// ThisExpression is "this".
type ThisExpression struct {
	Range
	link
}

// Literal is a string, numeric, boolean, null or regular expression literal.
type Literal struct {
	Range
	link
	Raw string
}

// TemplateLiteral is a template string.
type TemplateLiteral struct {
	Range
	link
	Expressions []Node
}

// TaggedTemplateExpression is tag`...`.
type TaggedTemplateExpression struct {
	Range
	link
	Tag   Node
	Quasi *TemplateLiteral
}

// ArrayExpression is an array literal.
type ArrayExpression struct {
	Range
	link
	Elements []Node
}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	Range
	link
	Properties []Node
}

// PropertyKind distinguishes the roles of a [Property].
type PropertyKind uint8

const (
	// PropertyInit is a key-value pair, shorthand or method.
	PropertyInit PropertyKind = iota
	// PropertyGet is a getter.
	PropertyGet
	// PropertySet is a setter.
	PropertySet
)

// Property is a member of an [ObjectExpression] or [ObjectPattern].
type Property struct {
	Range
	link
	Key          Node
	Value        Node
	PropertyKind PropertyKind
	Computed     bool
	Method       bool
	Shorthand    bool
}

// SpreadElement is ...argument in an array, object or argument list.
type SpreadElement struct {
	Range
	link
	Argument Node
}

// RestElement is ...argument in a binding pattern.
type RestElement struct {
	Range
	link
	Argument       Node
	TypeAnnotation *TSTypeAnnotation
}

// AssignmentPattern is a binding with a default value.
type AssignmentPattern struct {
	Range
	link
	Left  Node
	Right Node
}

// ObjectPattern is a destructuring object binding.
type ObjectPattern struct {
	Range
	link
	Properties     []Node
	TypeAnnotation *TSTypeAnnotation
}

// ArrayPattern is a destructuring array binding.
type ArrayPattern struct {
	Range
	link
	Elements       []Node
	TypeAnnotation *TSTypeAnnotation
}

// CallExpression is a function call.
type CallExpression struct {
	Range
	link
	Callee        Node
	TypeArguments Node
	Arguments     []Node
	Optional      bool
}

// NewExpression is a constructor call.
type NewExpression struct {
	Range
	link
	Callee        Node
	TypeArguments Node
	Arguments     []Node
}

// MemberExpression is a property access, computed for a[b].
type MemberExpression struct {
	Range
	link
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

// ChainExpression wraps an optional chain.
type ChainExpression struct {
	Range
	link
	Expression Node
}

// UnaryExpression is a prefix operator application, including typeof, void and delete.
type UnaryExpression struct {
	Range
	link
	Operator string
	Argument Node
}

// UpdateExpression is ++ or --.
type UpdateExpression struct {
	Range
	link
	Operator string
	Argument Node
	Prefix   bool
}

// BinaryExpression is a binary operator application.
type BinaryExpression struct {
	Range
	link
	Left     Node
	Operator string
	Right    Node
}

// LogicalExpression is &&, || or ??.
type LogicalExpression struct {
	Range
	link
	Left     Node
	Operator string
	Right    Node
}

// AssignmentExpression is an assignment, including compound assignments.
type AssignmentExpression struct {
	Range
	link
	Left     Node
	Operator string
	Right    Node
}

// ConditionalExpression is test ? consequent : alternate.
type ConditionalExpression struct {
	Range
	link
	Test       Node
	Consequent Node
	Alternate  Node
}

// AwaitExpression is await argument.
type AwaitExpression struct {
	Range
	link
	Argument Node
}

// YieldExpression is yield argument.
type YieldExpression struct {
	Range
	link
	Argument Node
	Delegate bool
}

// SequenceExpression is a comma expression.
type SequenceExpression struct {
	Range
	link
	Expressions []Node
}

// JSXElement is a JSX element. Attributes and children are kept in source order.
type JSXElement struct {
	Range
	link
	Children []Node
}

// JSXExpressionContainer is {expression} inside JSX.
type JSXExpressionContainer struct {
	Range
	link
	Expression Node
}

// JSXSpreadAttribute is {...argument} in a JSX attribute list.
type JSXSpreadAttribute struct {
	Range
	link
	Argument Node
}

// TSAsExpression is expression as Type.
type TSAsExpression struct {
	Range
	link
	Expression     Node
	TypeAnnotation Node
}

// TSSatisfiesExpression is expression satisfies Type.
type TSSatisfiesExpression struct {
	Range
	link
	Expression     Node
	TypeAnnotation Node
}

// TSTypeAssertion is <Type>expression.
type TSTypeAssertion struct {
	Range
	link
	TypeAnnotation Node
	Expression     Node
}

// TSNonNullExpression is expression!.
type TSNonNullExpression struct {
	Range
	link
	Expression Node
}

// TSInstantiationExpression is expression<TypeArguments>.
type TSInstantiationExpression struct {
	Range
	link
	Expression    Node
	TypeArguments Node
}

// TSTypeAnnotation is ": Type" on a binding, property or function.
type TSTypeAnnotation struct {
	Range
	link
	TypeAnnotation Node
}

// TSTypeReference is a named type. "as const" is represented as a reference to "const".
type TSTypeReference struct {
	Range
	link
	TypeName      Node
	TypeArguments Node
}

// TSTypeOperator is keyof, unique or readonly applied to a type.
type TSTypeOperator struct {
	Range
	link
	Operator       string
	TypeAnnotation Node
}

// TSTypeParameterDeclaration is the <T, U> list of a generic function or class.
type TSTypeParameterDeclaration struct {
	Range
	link
	Params []Node
}

// TSType is any type construct without a dedicated node.
type TSType struct {
	Range
	link
	Type     string
	Children []Node
}

// Other is any statement or expression without a dedicated node.
//
// Type is the construct's name, ESTree-style where one exists (e.g. "IfStatement").
type Other struct {
	Range
	link
	Type     string
	Children []Node
}

func (*Program) Kind() Kind                    { return KindProgram }
func (*BlockStatement) Kind() Kind             { return KindBlockStatement }
func (*ExpressionStatement) Kind() Kind        { return KindExpressionStatement }
func (*ReturnStatement) Kind() Kind            { return KindReturnStatement }
func (*VariableDeclaration) Kind() Kind        { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind         { return KindVariableDeclarator }
func (*FunctionDeclaration) Kind() Kind        { return KindFunctionDeclaration }
func (*FunctionExpression) Kind() Kind         { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind    { return KindArrowFunctionExpression }
func (*ClassDeclaration) Kind() Kind           { return KindClassDeclaration }
func (*ClassExpression) Kind() Kind            { return KindClassExpression }
func (*ClassBody) Kind() Kind                  { return KindClassBody }
func (*MethodDefinition) Kind() Kind           { return KindMethodDefinition }
func (*PropertyDefinition) Kind() Kind         { return KindPropertyDefinition }
func (*Decorator) Kind() Kind                  { return KindDecorator }
func (*ExportDefaultDeclaration) Kind() Kind   { return KindExportDefaultDeclaration }
func (*ExportNamedDeclaration) Kind() Kind     { return KindExportNamedDeclaration }
func (*Identifier) Kind() Kind                 { return KindIdentifier }
func (*PrivateIdentifier) Kind() Kind          { return KindPrivateIdentifier }
func (*ThisExpression) Kind() Kind             { return KindThisExpression }
func (*Literal) Kind() Kind                    { return KindLiteral }
func (*TemplateLiteral) Kind() Kind            { return KindTemplateLiteral }
func (*TaggedTemplateExpression) Kind() Kind   { return KindTaggedTemplateExpression }
func (*ArrayExpression) Kind() Kind            { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind           { return KindObjectExpression }
func (*Property) Kind() Kind                   { return KindProperty }
func (*SpreadElement) Kind() Kind              { return KindSpreadElement }
func (*RestElement) Kind() Kind                { return KindRestElement }
func (*AssignmentPattern) Kind() Kind          { return KindAssignmentPattern }
func (*ObjectPattern) Kind() Kind              { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind               { return KindArrayPattern }
func (*CallExpression) Kind() Kind             { return KindCallExpression }
func (*NewExpression) Kind() Kind              { return KindNewExpression }
func (*MemberExpression) Kind() Kind           { return KindMemberExpression }
func (*ChainExpression) Kind() Kind            { return KindChainExpression }
func (*UnaryExpression) Kind() Kind            { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind           { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind           { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind          { return KindLogicalExpression }
func (*AssignmentExpression) Kind() Kind       { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind      { return KindConditionalExpression }
func (*AwaitExpression) Kind() Kind            { return KindAwaitExpression }
func (*YieldExpression) Kind() Kind            { return KindYieldExpression }
func (*SequenceExpression) Kind() Kind         { return KindSequenceExpression }
func (*JSXElement) Kind() Kind                 { return KindJSXElement }
func (*JSXExpressionContainer) Kind() Kind     { return KindJSXExpressionContainer }
func (*JSXSpreadAttribute) Kind() Kind         { return KindJSXSpreadAttribute }
func (*TSAsExpression) Kind() Kind             { return KindTSAsExpression }
func (*TSSatisfiesExpression) Kind() Kind      { return KindTSSatisfiesExpression }
func (*TSTypeAssertion) Kind() Kind            { return KindTSTypeAssertion }
func (*TSNonNullExpression) Kind() Kind        { return KindTSNonNullExpression }
func (*TSInstantiationExpression) Kind() Kind  { return KindTSInstantiationExpression }
func (*TSTypeAnnotation) Kind() Kind           { return KindTSTypeAnnotation }
func (*TSTypeReference) Kind() Kind            { return KindTSTypeReference }
func (*TSTypeOperator) Kind() Kind             { return KindTSTypeOperator }
func (*TSTypeParameterDeclaration) Kind() Kind { return KindTSTypeParameterDeclaration }
func (*TSType) Kind() Kind                     { return KindTSType }
func (*Other) Kind() Kind                      { return KindOther }
