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

// Package analyzer implements the explicitreturn static analysis pass.
//
// # Overview
//
// explicitreturn reports TypeScript functions and methods whose return type is not
// explicitly annotated, unless the function's type is fixed by its context or its name
// matches one of the configured allowed name patterns.
//
// The analyzer works on the TypeScript sources that live next to Go packages, like
// frontends embedded with go:embed. Each package directory is checked on its own;
// subdirectories belong to their own packages.
//
// # Example
//
// Reported:
//
//	export function load(url: string) {
//	    return fetch(url)
//	}
//
// Accepted:
//
//	export function load(url: string): Promise<Response> {
//	    return fetch(url)
//	}
//
//	const onClick: Handler = (e) => { console.log(e) }
//	const make = () => (x: number): number => x * 2
//
// # Suppressing Diagnostics
//
// A diagnostic is suppressed by an "// eslint-disable-next-line" comment on the
// preceding line, an "// eslint-disable-line" or "// nolint:explicitreturn" comment on
// the same line, or a file level "/* eslint-disable */" comment before the first
// statement.
package analyzer
