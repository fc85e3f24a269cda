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

// tokens collects the tokens and comments of the tree in source order.
func (c *converter) tokens(root *tree_sitter.Node) ([]syntax.Token, []syntax.Comment) {
	tokens := make([]syntax.Token, 0, root.DescendantCount()/2)

	var comments []syntax.Comment

	var visit func(n *tree_sitter.Node)
	visit = func(n *tree_sitter.Node) {
		if n.IsMissing() || n.StartByte() == n.EndByte() {
			return
		}

		switch kind := n.Kind(); {
		case kind == "comment":
			text := n.Utf8Text(c.src)
			comments = append(comments, syntax.Comment{Range: c.rng(n), Text: text, Block: len(text) > 1 && text[1] == '*'})

			return

		case kind == "hash_bang_line":
			return

		case n.ChildCount() == 0 || atomic(kind):
			tokens = append(tokens, syntax.Token{Range: c.rng(n), Value: n.Utf8Text(c.src)})

			return
		}

		for i := range n.ChildCount() {
			visit(n.Child(i))
		}
	}

	visit(root)

	return tokens, comments
}

// atomic reports whether nodes of kind form a single token.
func atomic(kind string) bool {
	switch kind {
	case "string", "number", "regex", "jsx_text":
		return true

	default:
		return false
	}
}
