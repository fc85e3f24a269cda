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

// Package wrap builds replacement code for syntax nodes, adding parentheses and semicolons
// where the surrounding grammar requires them.
package wrap

import (
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/astutil"
	"fillmore-labs.com/explicitreturn/syntax"
)

// Source gives access to the original text of a file.
type Source interface {
	Text(n syntax.Node) string
	LastToken(n syntax.Node) (syntax.Token, bool)
	IsParenthesized(n syntax.Node) bool
}

// Fixer turns replacement text into a fix description.
type Fixer interface {
	ReplaceText(n syntax.Node, text string) analysis.TextEdit
}

// TextEdits is a [Fixer] producing [analysis.TextEdit] values.
type TextEdits struct{}

// ReplaceText replaces the text of n.
func (TextEdits) ReplaceText(n syntax.Node, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: n.Pos(), End: n.End(), NewText: []byte(text)}
}

// Params configures [Fix].
type Params struct {
	// Node is the node to replace.
	Node syntax.Node

	// Inner are descendants of Node whose code is preserved. Defaults to Node itself.
	Inner []syntax.Node

	// Source is the file Node belongs to.
	Source Source

	// Wrap receives the code of the inner nodes and returns the replacement code.
	// Without Wrap, the inner code replaces Node verbatim.
	Wrap func(code ...string) string
}

// Fix returns a fix producing the wrapped code, with parentheses added as necessary.
func Fix(p Params) func(Fixer) analysis.TextEdit {
	node, src := p.Node, p.Source

	inner := p.Inner
	if len(inner) == 0 {
		inner = []syntax.Node{node}
	}

	return func(fixer Fixer) analysis.TextEdit {
		codes := make([]string, 0, len(inner))

		for _, in := range inner {
			code := src.Text(in)

			// Prevent weaker precedence than the code around it, and object literals mistaken
			// for block statements.
			if !IsStrongPrecedenceNode(in) || isObjectExpressionInOneLineReturn(node, in) {
				code = "(" + code + ")"
			}

			codes = append(codes, code)
		}

		if p.Wrap == nil {
			return fixer.ReplaceText(node, strings.Join(codes, ""))
		}

		code := p.Wrap(codes...)

		// The new expression very likely has a different precedence than the original node.
		if isWeakPrecedenceParent(node) && !src.IsParenthesized(node) {
			code = "(" + code + ")"
		}

		if startsWithDelimiter(code) && isMissingSemicolonBefore(node, src) {
			code = ";" + code
		}

		return fixer.ReplaceText(node, code)
	}
}

// MovedNodeCode returns the code of nodeToMove, parenthesized when it is placed at
// destination and the result might parse differently.
func MovedNodeCode(src Source, nodeToMove, destination syntax.Node) string {
	code := src.Text(nodeToMove)

	if IsStrongPrecedenceNode(nodeToMove) {
		// Moved node never needs parens
		return code
	}

	if !isWeakPrecedenceParent(destination) {
		// Destination never needs parens, regardless what node moves there
		return code
	}

	return "(" + code + ")"
}

// IsStrongPrecedenceNode reports whether n keeps its precedence regardless of its parent.
func IsStrongPrecedenceNode(n syntax.Node) bool {
	switch n.Kind() {
	case syntax.KindLiteral,
		syntax.KindIdentifier,
		syntax.KindTSTypeReference,
		syntax.KindTSTypeOperator,
		syntax.KindArrayExpression,
		syntax.KindObjectExpression,
		syntax.KindMemberExpression,
		syntax.KindCallExpression,
		syntax.KindNewExpression,
		syntax.KindTaggedTemplateExpression,
		syntax.KindTSInstantiationExpression:
		return true

	default:
		return false
	}
}

// isWeakPrecedenceParent reports whether n's parent could bind differently if n changes.
func isWeakPrecedenceParent(n syntax.Node) bool {
	switch p := n.Parent().(type) {
	case *syntax.UpdateExpression,
		*syntax.UnaryExpression,
		*syntax.BinaryExpression,
		*syntax.LogicalExpression,
		*syntax.ConditionalExpression,
		*syntax.AwaitExpression:
		return true

	case *syntax.MemberExpression:
		return p.Object == n

	case *syntax.CallExpression:
		return p.Callee == n

	case *syntax.NewExpression:
		return p.Callee == n

	case *syntax.TaggedTemplateExpression:
		return p.Tag == n

	default:
		return false
	}
}

func startsWithDelimiter(code string) bool {
	return code != "" && strings.ContainsRune("`([", rune(code[0]))
}

// isMissingSemicolonBefore reports whether n begins an expression statement and the
// statement above doesn't end with a semicolon.
func isMissingSemicolonBefore(n syntax.Node, src Source) bool {
	for {
		parent := astutil.MustParent(n)

		if stmt, ok := parent.(*syntax.ExpressionStatement); ok {
			var body []syntax.Node

			switch block := stmt.Parent().(type) {
			case *syntax.Program:
				body = block.Body

			case *syntax.BlockStatement:
				body = block.Body
			}

			if i := slices.Index(body, syntax.Node(stmt)); i > 0 {
				last, ok := src.LastToken(body[i-1])
				if !ok {
					panic("Mismatched semicolon and block")
				}

				if last.Value != ";" {
					return true
				}
			}
		}

		if !isLeftHandSide(n) {
			return false
		}

		n = parent
	}
}

// isLeftHandSide reports whether n is the leftmost operand of its parent.
func isLeftHandSide(n syntax.Node) bool {
	switch p := astutil.MustParent(n).(type) {
	case *syntax.UpdateExpression: // a++
		return true

	case *syntax.BinaryExpression: // a + b
		return p.Left == n

	case *syntax.LogicalExpression:
		return p.Left == n

	case *syntax.AssignmentExpression:
		return p.Left == n

	case *syntax.ConditionalExpression: // a ? b : c
		return p.Test == n

	case *syntax.CallExpression: // a(b)
		return p.Callee == n

	case *syntax.TaggedTemplateExpression: // a`b`
		return p.Tag == n

	default:
		return false
	}
}

// isObjectExpressionInOneLineReturn reports whether n is the concise body of an arrow
// function and inner is an object literal.
func isObjectExpressionInOneLineReturn(n, inner syntax.Node) bool {
	arrow, ok := n.Parent().(*syntax.ArrowFunctionExpression)

	return ok && arrow.Body == n && inner.Kind() == syntax.KindObjectExpression
}
