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

// Package syntax defines an ESTree-shaped syntax tree for TypeScript sources.
//
// The tree is produced by a host (see the tsparse adapter) and is read-only for the rule:
// nodes refer to their parents, but the rule only walks downward through fields already
// present on a node. Source positions are [go/token] positions, so diagnostics can be
// reported through [golang.org/x/tools/go/analysis].
package syntax
