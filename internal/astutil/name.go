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

import "fillmore-labs.com/explicitreturn/syntax"

// FunctionName returns the name a function can be referred to by: its own name, the variable
// it initializes, or the non-computed key of the method or property it defines.
func FunctionName(fn syntax.FunctionNode) (string, bool) {
	if id := fn.Func().ID; id != nil && id.Name != "" {
		return id.Name, true
	}

	if _, ok := fn.(*syntax.FunctionDeclaration); ok {
		return "", false
	}

	var (
		key      syntax.Node
		computed bool
	)

	switch p := fn.Parent().(type) {
	case *syntax.VariableDeclarator:
		key = p.ID

	case *syntax.MethodDefinition:
		key, computed = p.Key, p.Computed

	case *syntax.PropertyDefinition:
		key, computed = p.Key, p.Computed

	case *syntax.Property:
		key, computed = p.Key, p.Computed
	}

	if id, ok := key.(*syntax.Identifier); ok && !computed {
		return id.Name, true
	}

	return "", false
}
