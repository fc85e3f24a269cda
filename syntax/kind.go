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

// Kind identifies the syntactic category of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind

// Node kinds, named after their ESTree counterparts.
const (
	KindInvalid Kind = iota
	KindProgram
	KindBlockStatement
	KindExpressionStatement
	KindReturnStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassDeclaration
	KindClassExpression
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindDecorator
	KindExportDefaultDeclaration
	KindExportNamedDeclaration
	KindIdentifier
	KindPrivateIdentifier
	KindThisExpression
	KindLiteral
	KindTemplateLiteral
	KindTaggedTemplateExpression
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindSpreadElement
	KindRestElement
	KindAssignmentPattern
	KindObjectPattern
	KindArrayPattern
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindChainExpression
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindAwaitExpression
	KindYieldExpression
	KindSequenceExpression
	KindJSXElement
	KindJSXExpressionContainer
	KindJSXSpreadAttribute
	KindTSAsExpression
	KindTSSatisfiesExpression
	KindTSTypeAssertion
	KindTSNonNullExpression
	KindTSInstantiationExpression
	KindTSTypeAnnotation
	KindTSTypeReference
	KindTSTypeOperator
	KindTSTypeParameterDeclaration
	KindTSType
	KindOther
)

// IsFunction reports whether k is one of the function kinds.
func (k Kind) IsFunction() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression:
		return true

	default:
		return false
	}
}
