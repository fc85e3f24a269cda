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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/explicitreturn/internal/config"
	"fillmore-labs.com/explicitreturn/internal/run"
	"fillmore-labs.com/explicitreturn/rule"
)

// ErrConfigFormat is returned for configuration files with an unknown extension.
var ErrConfigFormat = errors.New("unknown configuration file format")

// defaultConfigFiles are searched in the current directory when no configuration file is given.
var defaultConfigFiles = [...]string{".explicitreturn.yaml", ".explicitreturn.yml", ".explicitreturn.toml"}

// Config is the content of a configuration file.
type Config struct {
	rule.Settings `yaml:",inline"`

	// Generated enables checks of generated files.
	Generated *bool `toml:"generated,omitempty" yaml:"generated,omitempty"`
	// DeclarationFiles enables checks of declaration files.
	DeclarationFiles *bool `toml:"declaration-files,omitempty" yaml:"declaration-files,omitempty"`
	// Include are patterns of checked files.
	Include []string `toml:"include,omitempty" yaml:"include,omitempty"`
	// Exclude are patterns of skipped files.
	Exclude []string `toml:"exclude,omitempty" yaml:"exclude,omitempty"`
}

func configFile(name string) (string, error) {
	if name != "" {
		return name, nil
	}

	for _, name := range defaultConfigFiles {
		switch _, err := os.Stat(name); {
		case err == nil:
			return name, nil

		case !errors.Is(err, fs.ErrNotExist):
			return "", err
		}
	}

	return "", nil
}

func loadConfig(name string) (Config, error) {
	var c Config

	data, err := os.ReadFile(name)
	if err != nil {
		return c, err
	}

	switch ext := filepath.Ext(name); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)

	case ".toml":
		err = toml.Unmarshal(data, &c)

	default:
		return c, fmt.Errorf("%s: %w %q", name, ErrConfigFormat, ext)
	}

	if err != nil {
		return c, fmt.Errorf("%s: %w", name, err)
	}

	return c, nil
}

func (c Config) apply(o *run.Options) {
	c.Settings.Options().Configure(&o.Rule)

	if c.Generated != nil {
		o.Behavior.Set(config.IncludeGenerated, *c.Generated)
	}

	if c.DeclarationFiles != nil {
		o.Behavior.Set(config.IncludeDeclarationFiles, *c.DeclarationFiles)
	}

	if c.Include != nil {
		o.Include = c.Include
	}

	if c.Exclude != nil {
		o.Exclude = c.Exclude
	}
}
