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

package run

import "fillmore-labs.com/explicitreturn/internal/config"

// Options represent the configuration of a lint run.
type Options struct {
	// Rule holds the settings of the return type rule.
	Rule config.Rule

	// Behavior holds behavioral options.
	Behavior config.Behaviors

	// Include are patterns of files to lint, relative to the linted directory.
	Include []string

	// Exclude are patterns of files to skip, relative to the linted directory.
	Exclude []string
}

var (
	// DirectoryInclude selects TypeScript sources in the linted directory only.
	DirectoryInclude = []string{"*.{ts,tsx,mts,cts}"}

	// TreeInclude selects TypeScript sources in the linted directory and all subdirectories.
	TreeInclude = []string{"**/*.{ts,tsx,mts,cts}"}

	// DefaultExclude skips installed packages.
	DefaultExclude = []string{"**/node_modules/**"}
)

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rule:    config.DefaultRule(),
		Include: DirectoryInclude,
		Exclude: DefaultExclude,
	}
}
