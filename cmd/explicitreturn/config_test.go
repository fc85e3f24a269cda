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

package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"fillmore-labs.com/explicitreturn/internal/config"
)

const (
	yamlConfig = `allowExpressions: true
allowHigherOrderFunctions: false
allowedNames:
  - ^handle
  - ^use[A-Z]
generated: true
exclude: ["dist/**"]
`

	tomlConfig = `allowExpressions = true
allowHigherOrderFunctions = false
allowedNames = ["^handle", "^use[A-Z]"]
generated = true
exclude = ["dist/**"]
`
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.yaml": yamlConfig,
		"b.yml":  yamlConfig,
		"c.toml": tomlConfig,
	})

	for _, name := range [...]string{"a.yaml", "b.yml", "c.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := loadConfig(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("Can't load config: %v", err)
			}

			o := defaultOptions()
			c.apply(o)

			if !o.Rule.Allows.Enabled(config.AllowExpressions) || o.Rule.Allows.Enabled(config.AllowHigherOrderFunctions) {
				t.Errorf("Got allows %s", o.Rule.Allows.Value())
			}

			if !o.Rule.Allows.Enabled(config.AllowTypedFunctionExpressions) {
				t.Error("Got typed function expressions disabled, want default")
			}

			if got, want := o.Rule.AllowedNames, []string{"^handle", "^use[A-Z]"}; !slices.Equal(got, want) {
				t.Errorf("Got allowed names %q, want %q", got, want)
			}

			if !o.Behavior.Enabled(config.IncludeGenerated) {
				t.Error("Got generated disabled")
			}

			if got, want := o.Exclude, []string{"dist/**"}; !slices.Equal(got, want) {
				t.Errorf("Got exclude %q, want %q", got, want)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.json": "{}",
		"b.yaml": "allowExpressions: [",
		"c.toml": "allowExpressions = ",
	})

	if _, err := loadConfig(filepath.Join(dir, "a.json")); !errors.Is(err, ErrConfigFormat) {
		t.Errorf("Got error %v, want %v", err, ErrConfigFormat)
	}

	for _, name := range [...]string{"b.yaml", "c.toml", "missing.yaml"} {
		if _, err := loadConfig(filepath.Join(dir, name)); err == nil {
			t.Errorf("Got no error for %s", name)
		}
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"explicitreturn.yaml": yamlConfig})

	c := newCommand(&bytes.Buffer{}, &bytes.Buffer{})
	args := []string{"--config", filepath.Join(dir, "explicitreturn.yaml"), "--allow-higher-order-functions", "--allowed-names=^on"}

	if err := c.cmd.ParseFlags(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	o, err := c.resolveOptions(c.cmd.Flags().Changed)
	if err != nil {
		t.Fatalf("Can't resolve options: %v", err)
	}

	if !o.Rule.Allows.Enabled(config.AllowExpressions) {
		t.Error("Got expressions disabled, want enabled from config")
	}

	if !o.Rule.Allows.Enabled(config.AllowHigherOrderFunctions) {
		t.Error("Got higher order functions disabled, want enabled from flag")
	}

	if got, want := o.Rule.AllowedNames, []string{"^on"}; !slices.Equal(got, want) {
		t.Errorf("Got allowed names %q, want %q", got, want)
	}
}
