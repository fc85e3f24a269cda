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

package astutil

import (
	"go/token"

	"fillmore-labs.com/explicitreturn/syntax"
)

// FunctionHead returns the span covering the head of a function:
//
//   - an arrow function assigned to a class property: from the start of the member through "=>"
//   - any other arrow function: the "=>" token
//   - methods, accessors and object property functions: from the start of the member, after
//     its decorators, through the closing parenthesis of the parameter list
//   - other functions: from the start of the function through the closing parenthesis
func FunctionHead(fn syntax.FunctionNode, f *syntax.File) syntax.Range {
	arrow, isArrow := fn.(*syntax.ArrowFunctionExpression)

	start := fn.Pos()

	switch p := fn.Parent().(type) {
	case *syntax.MethodDefinition:
		start = memberStart(p, p.Decorators, f)

	case *syntax.PropertyDefinition:
		start = memberStart(p, p.Decorators, f)

	case *syntax.Property:
		if !isArrow {
			start = p.Pos()
		}
	}

	if isArrow {
		if _, ok := fn.Parent().(*syntax.PropertyDefinition); !ok {
			start = arrowPos(arrow, f)
		}

		return syntax.Range{Start: start, Stop: arrowPos(arrow, f) + token.Pos(len("=>"))}
	}

	return syntax.Range{Start: start, Stop: paramsEnd(fn.Func(), fn)}
}

func memberStart(member syntax.Node, decorators []*syntax.Decorator, f *syntax.File) token.Pos {
	if len(decorators) == 0 {
		return member.Pos()
	}

	last := decorators[len(decorators)-1]
	if t, ok := f.TokenAfter(last.End()); ok {
		return t.Start
	}

	return member.Pos()
}

func arrowPos(fn *syntax.ArrowFunctionExpression, f *syntax.File) token.Pos {
	if fn.Arrow.IsValid() {
		return fn.Arrow
	}

	pos := fn.Pos()
	if fn.Rparen.IsValid() {
		pos = fn.Rparen
	} else if len(fn.Params) > 0 {
		pos = fn.Params[len(fn.Params)-1].End()
	}

	for t, ok := f.TokenAfter(pos); ok && t.Start < fn.End(); t, ok = f.TokenAfter(t.Stop) {
		if t.Value == "=>" {
			return t.Start
		}
	}

	return fn.Pos()
}

func paramsEnd(fn *syntax.Function, n syntax.Node) token.Pos {
	switch {
	case fn.Rparen.IsValid():
		return fn.Rparen + 1

	case len(fn.Params) > 0:
		return fn.Params[len(fn.Params)-1].End()

	case fn.ID != nil:
		return fn.ID.End()

	default:
		return n.Pos()
	}
}
