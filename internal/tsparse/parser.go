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

// Package tsparse builds [syntax.File] trees from TypeScript sources using tree-sitter.
package tsparse

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"fillmore-labs.com/explicitreturn/syntax"
)

// Dialect selects the grammar for a source file.
type Dialect uint8

const (
	// TypeScript is plain TypeScript.
	TypeScript Dialect = iota
	// TSX is TypeScript with JSX.
	TSX
)

var (
	// ErrUnsupported is returned for files that are not TypeScript sources.
	ErrUnsupported = errors.New("unsupported file type")

	// ErrSyntax is returned for files that can not be parsed.
	ErrSyntax = errors.New("syntax error")
)

// DialectOf returns the dialect for a file name.
func DialectOf(name string) (Dialect, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ts", ".mts", ".cts":
		return TypeScript, true

	case ".tsx":
		return TSX, true

	default:
		return 0, false
	}
}

// Parser parses TypeScript sources. A Parser is not safe for concurrent use.
type Parser struct {
	parsers [2]*tree_sitter.Parser
}

// NewParser creates a parser for all dialects. Call [Parser.Close] when done.
func NewParser() (*Parser, error) {
	languages := [...]*tree_sitter.Language{
		TypeScript: tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
		TSX:        tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
	}

	p := &Parser{}

	for d, language := range languages {
		parser := tree_sitter.NewParser()
		if err := parser.SetLanguage(language); err != nil {
			parser.Close()
			p.Close()

			return nil, fmt.Errorf("tsparse: can't set language: %w", err)
		}

		p.parsers[d] = parser
	}

	return p, nil
}

// Close releases the parser resources.
func (p *Parser) Close() {
	for i, parser := range p.parsers {
		if parser != nil {
			parser.Close()
			p.parsers[i] = nil
		}
	}
}

// Parse parses src and registers it under name in fset.
func (p *Parser) Parse(fset *token.FileSet, name string, src []byte) (*syntax.File, error) {
	dialect, ok := DialectOf(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
	}

	return p.ParseDialect(fset, name, src, dialect)
}

// ParseDialect parses src with the grammar of dialect, regardless of the file name.
func (p *Parser) ParseDialect(fset *token.FileSet, name string, src []byte, dialect Dialect) (*syntax.File, error) {
	tree := p.parsers[dialect].Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%s: parser returned no tree: %w", name, ErrSyntax)
	}
	defer tree.Close()

	f := syntax.NewFile(fset, name, src)

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%s: %w", f.Position(f.Pos(firstError(root))), ErrSyntax)
	}

	c := converter{src: src, file: f}

	f.Tokens, f.Comments = c.tokens(root)
	f.Program = c.program(root)
	syntax.Link(f.Program)

	return f, nil
}

// firstError returns the offset of the first erroneous or missing node.
func firstError(n *tree_sitter.Node) int {
	if n.IsError() || n.IsMissing() {
		return int(n.StartByte())
	}

	for i := range n.ChildCount() {
		if c := n.Child(i); c.HasError() || c.IsMissing() {
			return firstError(c)
		}
	}

	return int(n.StartByte())
}
