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

// Package plugin describes the rules of explicitreturn under a plugin name and version,
// the way lint hosts address them.
package plugin

import (
	"errors"
	"fmt"
	"maps"
	"runtime/debug"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/explicitreturn/internal/config"
	"fillmore-labs.com/explicitreturn/rule"
	"fillmore-labs.com/explicitreturn/syntax"
)

// Name is the plugin name rules are registered under.
const Name = "explicitreturn"

// modulePath is used to find the module version in the build info.
const modulePath = "fillmore-labs.com/explicitreturn"

// fallbackVersion is reported when the binary carries no module version.
const fallbackVersion = "v0.0.0-devel"

// ErrRuleNotFound is returned when a rule lookup names an unknown rule.
var ErrRuleNotFound = errors.New("rule not found")

// Meta identifies the plugin.
type Meta struct {
	Name    string
	Version string
}

// Checker is a configured rule checking parsed files.
type Checker interface {
	Check(f *syntax.File, report func(analysis.Diagnostic))
}

// Factory creates a [Checker] from resolved settings.
type Factory func(c config.Rule) (Checker, error)

var rules = map[string]Factory{
	rule.ID: newRule,
}

func newRule(c config.Rule) (Checker, error) {
	r, err := rule.Compile(c)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Info returns the plugin name and the version of the module this plugin is built from.
func Info() Meta {
	return Meta{Name: Name, Version: version()}
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fallbackVersion
	}

	if bi.Main.Path == modulePath && isVersion(bi.Main.Version) {
		return bi.Main.Version
	}

	for _, dep := range bi.Deps {
		if dep.Path == modulePath && isVersion(dep.Version) {
			return dep.Version
		}
	}

	return fallbackVersion
}

func isVersion(v string) bool { return v != "" && v != "(devel)" }

// Rules returns the identifiers of all registered rules, sorted.
func Rules() []string {
	return slices.Sorted(maps.Keys(rules))
}

// Rule returns the factory of the named rule or an error wrapping [ErrRuleNotFound].
func Rule(id string) (Factory, error) {
	f, ok := rules[id]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", Name, id, ErrRuleNotFound)
	}

	return f, nil
}

// MaybeRule returns the factory of the named rule, or nil when there is none.
func MaybeRule(id string) Factory {
	f, err := Rule(id)
	if err != nil {
		return nil
	}

	return f
}
