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

// Package returntype decides whether a function needs an explicit return type annotation.
//
// # Decision procedure
//
// A function is compliant when any of the following holds, checked in order:
//
//  1. It carries a return type, or it is a constructor or setter.
//  2. Higher-order functions are allowed and it immediately returns a function.
//  3. Typed function expressions are allowed and its surrounding syntax fixes its type.
//  4. Expressions are allowed and it is not a variable initializer, class member or default export.
//  5. Direct const assertions are allowed and it is an arrow function whose body is "as const".
//
// Otherwise, the function head is reported.
package returntype
