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

import (
	"flag"

	"fillmore-labs.com/explicitreturn/internal/config"
)

var allowFlags = [...]struct {
	flag  config.Allow
	name  string
	usage string
}{
	{config.AllowExpressions, "allow-expressions", "ignore function expressions not bound to a name"},
	{config.AllowTypedFunctionExpressions, "allow-typed-function-expressions", "ignore function expressions typed by their context"},
	{config.AllowHigherOrderFunctions, "allow-higher-order-functions", "ignore functions immediately returning a function"},
	{config.AllowDirectConstAssertionInArrowFunctions, "allow-direct-const-assertion-in-arrow-functions", "ignore arrow functions returning an 'as const' assertion"},
	{config.AllowConciseArrowFunctionExpressionsStartingWithVoid, "allow-concise-arrow-function-expressions-starting-with-void", "ignore arrow functions of the form '() => void expr'"},
	{config.AllowFunctionsWithoutTypeParameters, "allow-functions-without-type-parameters", "ignore functions without type parameters"},
	{config.AllowIIFEs, "allow-iifes", "ignore immediately invoked function expressions"},
}

// RegisterFlags binds the [Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func (o *Options) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, f := range allowFlags {
		flags.Var(boolValue[config.Allow, *config.Allows]{&o.Rule.Allows, f.flag}, f.name, f.usage)
	}

	flags.Var(&listValue{list: &o.Rule.AllowedNames}, "allowed-names", "comma-separated regular expressions of function names to ignore")

	flags.Var(boolValue[config.Behavior, *config.Behaviors]{&o.Behavior, config.IncludeGenerated}, "generated", "check generated files")
	flags.Var(boolValue[config.Behavior, *config.Behaviors]{&o.Behavior, config.IncludeDeclarationFiles}, "declaration-files", "check declaration files")

	flags.Var(&listValue{list: &o.Include}, "include", "comma-separated patterns of files to check")
	flags.Var(&listValue{list: &o.Exclude}, "exclude", "comma-separated patterns of files to skip")
}

// Merge copies the values of the flags registered by [Options.RegisterFlags] on src for
// which changed returns true, so that command line flags can override a configuration file.
func (o *Options) Merge(src *Options, changed func(name string) bool) {
	for _, f := range allowFlags {
		if changed(f.name) {
			o.Rule.Allows.Set(f.flag, src.Rule.Allows.Enabled(f.flag))
		}
	}

	if changed("allowed-names") {
		o.Rule.AllowedNames = src.Rule.AllowedNames
	}

	if changed("generated") {
		o.Behavior.Set(config.IncludeGenerated, src.Behavior.Enabled(config.IncludeGenerated))
	}

	if changed("declaration-files") {
		o.Behavior.Set(config.IncludeDeclarationFiles, src.Behavior.Enabled(config.IncludeDeclarationFiles))
	}

	if changed("include") {
		o.Include = src.Include
	}

	if changed("exclude") {
		o.Exclude = src.Exclude
	}
}
