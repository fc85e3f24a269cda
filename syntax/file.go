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

import (
	"go/token"
	"slices"
)

// Token is a lexical token of a source file.
type Token struct {
	Range
	Value string
}

// Comment is a line or block comment.
type Comment struct {
	Range
	Text  string // including the comment markers
	Block bool
}

// File is a parsed source file together with its text accessors.
type File struct {
	Name     string
	Src      []byte
	Handle   *token.File
	Program  *Program
	Tokens   []Token   // sorted by position
	Comments []Comment // sorted by position
}

// NewFile registers a file of the given name and content in fset.
// The parser is expected to fill in [File.Program], [File.Tokens] and [File.Comments].
func NewFile(fset *token.FileSet, name string, src []byte) *File {
	handle := fset.AddFile(name, -1, len(src))
	handle.SetLinesForContent(src)

	return &File{Name: name, Src: src, Handle: handle}
}

// Pos converts a byte offset into a [token.Pos].
func (f *File) Pos(offset int) token.Pos { return f.Handle.Pos(offset) }

// Offset converts a [token.Pos] into a byte offset.
func (f *File) Offset(pos token.Pos) int { return f.Handle.Offset(pos) }

// Position returns the line and column of pos.
func (f *File) Position(pos token.Pos) token.Position { return f.Handle.Position(pos) }

// Line returns the 1-based line number of pos.
func (f *File) Line(pos token.Pos) int { return f.Handle.Line(pos) }

// Slice returns the source text between pos and end.
func (f *File) Slice(pos, end token.Pos) string {
	return string(f.Src[f.Offset(pos):f.Offset(end)])
}

// Text returns the exact source text of n.
func (f *File) Text(n Node) string { return f.Slice(n.Pos(), n.End()) }

// LastToken returns the last token of n.
func (f *File) LastToken(n Node) (Token, bool) {
	t, ok := f.TokenBefore(n.End())
	if !ok || t.Start < n.Pos() {
		return Token{}, false
	}

	return t, true
}

// TokenBefore returns the last token ending at or before pos.
func (f *File) TokenBefore(pos token.Pos) (Token, bool) {
	i, _ := slices.BinarySearchFunc(f.Tokens, pos, func(t Token, p token.Pos) int { return int(t.Stop - p) })
	// i is the first token ending after pos, or one ending exactly at pos
	for i < len(f.Tokens) && f.Tokens[i].Stop <= pos {
		i++
	}

	if i == 0 {
		return Token{}, false
	}

	return f.Tokens[i-1], true
}

// TokenAfter returns the first token starting at or after pos.
func (f *File) TokenAfter(pos token.Pos) (Token, bool) {
	i, _ := slices.BinarySearchFunc(f.Tokens, pos, func(t Token, p token.Pos) int { return int(t.Start - p) })
	if i >= len(f.Tokens) {
		return Token{}, false
	}

	return f.Tokens[i], true
}

// IsParenthesized reports whether n is enclosed in parentheses that are not part of the
// surrounding syntax, such as the parentheses of a call with n as its only argument.
func (f *File) IsParenthesized(n Node) bool {
	if n.Parent() == nil {
		return false
	}

	before, ok := f.TokenBefore(n.Pos())
	if !ok || before.Value != "(" {
		return false
	}

	after, ok := f.TokenAfter(n.End())
	if !ok || after.Value != ")" {
		return false
	}

	if paren, ok := f.syntaxParen(n); ok && paren == before.Start {
		return false
	}

	return true
}

// syntaxParen returns the position of the opening parenthesis the parent's syntax places
// directly around n.
func (f *File) syntaxParen(n Node) (token.Pos, bool) {
	var callee, typeArgs Node

	var args []Node

	switch p := n.Parent().(type) {
	case *CallExpression:
		callee, typeArgs, args = p.Callee, p.TypeArguments, p.Arguments

	case *NewExpression:
		callee, typeArgs, args = p.Callee, p.TypeArguments, p.Arguments

	case *Other:
		switch p.Type {
		case "IfStatement", "WhileStatement", "SwitchStatement", "WithStatement":
			// keyword, then the parenthesized test
			if kw, ok := f.TokenAfter(p.Pos()); ok {
				if t, ok := f.TokenAfter(kw.Stop); ok {
					return t.Start, true
				}
			}

		case "DoWhileStatement":
			if t, ok := f.TokenBefore(n.Pos()); ok {
				return t.Start, true
			}
		}

		return token.NoPos, false

	default:
		return token.NoPos, false
	}

	if len(args) != 1 || args[0] != n {
		return token.NoPos, false
	}

	after := callee.End()
	if typeArgs != nil {
		after = typeArgs.End()
	}

	t, ok := f.TokenAfter(after)
	if ok && t.Value == "?." { // f?.(x)
		t, ok = f.TokenAfter(t.Stop)
	}

	if !ok {
		return token.NoPos, false
	}

	return t.Start, true
}
