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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/explicitreturn/internal/run"
	"fillmore-labs.com/explicitreturn/plugin"
)

// ErrIssuesFound is returned when files have diagnostics or could not be parsed.
var ErrIssuesFound = errors.New("issues found")

// errColorMode is returned for an invalid --color value.
var errColorMode = errors.New("invalid color mode")

type command struct {
	// options are bound to the command line flags
	options *run.Options

	config  string
	jobs    int
	verbose bool
	color   string

	stdout, stderr io.Writer

	cmd *cobra.Command
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newCommand(stdout, stderr).cmd
}

func newCommand(stdout, stderr io.Writer) *command {
	c := &command{
		options: defaultOptions(),
		stdout:  stdout,
		stderr:  stderr,
	}

	cmd := &cobra.Command{
		Use:   "explicitreturn [flags] [path ...]",
		Short: "Report TypeScript functions without an explicit return type",
		Long: `explicitreturn reports TypeScript functions and methods whose return type is not
explicitly annotated, unless their type is fixed by the context or their name
matches one of the allowed name patterns.`,
		Version:       plugin.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	c.options.RegisterFlags(fs)

	flags := cmd.Flags()
	flags.AddGoFlagSet(fs)
	flags.StringVarP(&c.config, "config", "c", "", "configuration file (YAML or TOML)")
	flags.IntVarP(&c.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files checked in parallel")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log skipped files and settings")
	flags.StringVar(&c.color, "color", "auto", "colorize output (auto, always, never)")

	c.cmd = cmd

	return c
}

// defaultOptions are the [run.Options] defaults with directories searched recursively.
func defaultOptions() *run.Options {
	o := run.DefaultOptions()
	o.Include = run.TreeInclude

	return o
}

func (c *command) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	colored, err := c.colored()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	o, err := c.resolveOptions(cmd.Flags().Changed)
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "settings",
		slog.Any("allows", o.Rule.Allows.Value()),
		slog.Any("allowedNames", o.Rule.AllowedNames),
		slog.Any("include", o.Include),
		slog.Any("exclude", o.Exclude),
	)

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collect(o, args)
	if err != nil {
		return err
	}

	l, err := run.NewLinter(o)
	if err != nil {
		return err
	}

	results, err := lintFiles(ctx, l, files, max(c.jobs, 1))
	if err != nil {
		return err
	}

	n, err := printResults(c.stdout, colored, logger, results)
	if err != nil {
		return err
	}

	if n > 0 {
		return fmt.Errorf("%d %w", n, ErrIssuesFound)
	}

	return nil
}

func (c *command) colored() (bool, error) {
	switch c.color {
	case "auto":
		return !color.NoColor, nil

	case "always":
		return true, nil

	case "never":
		return false, nil

	default:
		return false, fmt.Errorf("%w %q", errColorMode, c.color)
	}
}

func (c *command) resolveOptions(changed func(name string) bool) (*run.Options, error) {
	o := defaultOptions()

	name, err := configFile(c.config)
	if err != nil {
		return nil, err
	}

	if name != "" {
		cfg, err := loadConfig(name)
		if err != nil {
			return nil, err
		}

		cfg.apply(o)
	}

	o.Merge(c.options, changed)

	return o, nil
}
