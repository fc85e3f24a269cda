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

package gclplugin

import (
	"fillmore-labs.com/explicitreturn/analyzer"
	"fillmore-labs.com/explicitreturn/rule"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	rule.Settings

	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// DeclarationFiles enables checks of declaration files.
	DeclarationFiles *bool `json:"declaration-files,omitzero"`
	// Include are patterns of checked files, relative to the package directory.
	Include []string `json:"include,omitzero"`
	// Exclude are patterns of skipped files, relative to the package directory.
	Exclude []string `json:"exclude,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the explicitreturn analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	for _, o := range s.Settings.Options() {
		opts = append(opts, analyzer.WithRule(o))
	}

	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.DeclarationFiles, analyzer.WithDeclarationFiles)

	if s.Include != nil {
		opts = append(opts, analyzer.WithInclude(s.Include...))
	}

	if s.Exclude != nil {
		opts = append(opts, analyzer.WithExclude(s.Exclude...))
	}

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
