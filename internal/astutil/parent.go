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
	"fmt"

	"fillmore-labs.com/explicitreturn/syntax"
)

// MissingParent is the panic message for nodes without an expected parent.
const MissingParent = "Expected node to have a parent."

// MustParent returns the parent of n and panics when the tree is not linked.
func MustParent(n syntax.Node) syntax.Node {
	p := n.Parent()
	if p == nil {
		panic(fmt.Sprintf("%s (%s at %d)", MissingParent, n.Kind(), n.Pos()))
	}

	return p
}
