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

package rule

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/astutil"
	"fillmore-labs.com/explicitreturn/internal/config"
	"fillmore-labs.com/explicitreturn/internal/returntype"
	"fillmore-labs.com/explicitreturn/syntax"
)

// Visitor receives the traversal events of a single file. Hosts with their own tree walk call
// the callbacks directly; [Rule.Check] drives a Visitor with [syntax.Inspect].
//
// A Visitor is not safe for concurrent use.
type Visitor struct {
	rule   *Rule
	file   *syntax.File
	report func(analysis.Diagnostic)
	stack  []returntype.FunctionInfo
}

// NewVisitor creates a [Visitor] reporting violations in f.
func (r *Rule) NewVisitor(f *syntax.File, report func(analysis.Diagnostic)) *Visitor {
	return &Visitor{rule: r, file: f, report: report}
}

// Enter dispatches the pre-order event of n.
func (v *Visitor) Enter(n syntax.Node) {
	switch n := n.(type) {
	case syntax.FunctionNode:
		v.EnterFunction(n)

	case *syntax.ReturnStatement:
		v.ReturnStatement(n)
	}
}

// Exit dispatches the post-order event of n.
func (v *Visitor) Exit(n syntax.Node) {
	if fn, ok := n.(syntax.FunctionNode); ok {
		v.ExitFunction(fn)
	}
}

// EnterFunction starts collecting the return statements of fn.
func (v *Visitor) EnterFunction(fn syntax.FunctionNode) {
	v.stack = append(v.stack, returntype.FunctionInfo{Node: fn})
}

// ReturnStatement records a return statement of the innermost function.
func (v *Visitor) ReturnStatement(ret *syntax.ReturnStatement) {
	if len(v.stack) == 0 {
		return // top level return in a script
	}

	top := &v.stack[len(v.stack)-1]
	top.Returns = append(top.Returns, ret)
}

// ExitFunction checks fn once all of its return statements are known.
func (v *Visitor) ExitFunction(fn syntax.FunctionNode) {
	info, ok := v.pop(fn)
	if !ok {
		return
	}

	allows := v.rule.allows

	if v.isAllowedFunction(fn) {
		return
	}

	switch fn := fn.(type) {
	case *syntax.FunctionDeclaration:
		if allows.Enabled(config.AllowTypedFunctionExpressions) && fn.ReturnType != nil {
			return
		}

		returntype.CheckFunctionReturnType(info, allows, v.head, v.reportMissing)

	default:
		if allows.Enabled(config.AllowTypedFunctionExpressions) &&
			(returntype.IsValidFunctionExpressionReturnType(fn, allows) || returntype.AncestorHasReturnType(fn)) {
			return
		}

		returntype.CheckFunctionExpressionReturnType(info, allows, v.head, v.reportMissing)
	}
}

func (v *Visitor) pop(fn syntax.FunctionNode) (returntype.FunctionInfo, bool) {
	if len(v.stack) == 0 {
		astutil.InternalError(v.report, fn, "Exit of %s without matching enter", fn.Kind())

		return returntype.FunctionInfo{}, false
	}

	info := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]

	if info.Node != fn {
		astutil.InternalError(v.report, fn, "Exit of %s does not match enter of %s", fn.Kind(), info.Node.Kind())

		return returntype.FunctionInfo{}, false
	}

	return info, true
}

// isAllowedFunction checks the exemptions that apply before the return type analysis.
func (v *Visitor) isAllowedFunction(fn syntax.FunctionNode) bool {
	allows := v.rule.allows

	if allows.Enabled(config.AllowConciseArrowFunctionExpressionsStartingWithVoid) {
		if arrow, ok := fn.(*syntax.ArrowFunctionExpression); ok && arrow.Expression {
			if u, ok := arrow.Body.(*syntax.UnaryExpression); ok && u.Operator == "void" {
				return true
			}
		}
	}

	if allows.Enabled(config.AllowFunctionsWithoutTypeParameters) && fn.Func().TypeParameters == nil {
		return true
	}

	if allows.Enabled(config.AllowIIFEs) && fn.Kind() != syntax.KindFunctionDeclaration && astutil.IsIIFE(fn) {
		return true
	}

	if len(v.rule.allowedNames) == 0 {
		return false
	}

	name, ok := astutil.FunctionName(fn)

	return ok && v.rule.allowedName(name)
}

func (v *Visitor) head(fn syntax.FunctionNode) analysis.Range {
	return astutil.FunctionHead(fn, v.file)
}

func (v *Visitor) reportMissing(r analysis.Range) {
	v.report(analysis.Diagnostic{
		Pos:      r.Pos(),
		End:      r.End(),
		Category: MessageID,
		Message:  Message,
	})
}
