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

// Package rule implements the explicit-function-return-type-with-regex lint rule.
//
// The rule requires explicit return types on functions and class methods. Functions whose
// name matches one of a list of regular expressions are exempt, as are functions whose
// return type is fixed by the surrounding syntax, depending on the configured [Option]s.
//
// # Example
//
// Reported:
//
//	function load(id: string) {
//	    return cache.get(id)
//	}
//
// Compliant:
//
//	function load(id: string): Entry | undefined {
//	    return cache.get(id)
//	}
//
//	// with WithAllowedNames("^handle")
//	function handleClick() {}
//
// # Usage
//
//	r, err := rule.New(rule.WithAllowedNames("^use[A-Z]"))
//	if err != nil {
//	    return err
//	}
//	r.Check(file, func(d analysis.Diagnostic) { ... })
package rule
