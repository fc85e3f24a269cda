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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/explicitreturn/internal/config"
	"fillmore-labs.com/explicitreturn/internal/run"
	"fillmore-labs.com/explicitreturn/rule"
)

// Option configures specific behavior of a [New] explicitreturn analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRule is an [Option] to configure the return type rule.
func WithRule(opts ...rule.Option) Option { return ruleOption{opts: opts} }

type ruleOption struct{ opts rule.Options }

func (o ruleOption) apply(r *run.Options) {
	o.opts.Configure(&r.Rule)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Any("rule", o.opts)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDeclarationFiles is an [Option] to configure diagnostics in declaration files (*.d.ts).
func WithDeclarationFiles(declarationFiles bool) Option {
	return declarationFilesOption{declarationFiles: declarationFiles}
}

type declarationFilesOption struct{ declarationFiles bool }

func (o declarationFilesOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeDeclarationFiles, o.declarationFiles)
}

func (o declarationFilesOption) LogAttr() slog.Attr {
	return slog.Bool("declaration-files", o.declarationFiles)
}

// WithInclude is an [Option] to select the checked files by patterns relative to the package directory.
func WithInclude(patterns ...string) Option { return includeOption{patterns: patterns} }

type includeOption struct{ patterns []string }

func (o includeOption) apply(r *run.Options) {
	r.Include = o.patterns
}

func (o includeOption) LogAttr() slog.Attr {
	return slog.Any("include", o.patterns)
}

// WithExclude is an [Option] to skip files matching patterns relative to the package directory.
func WithExclude(patterns ...string) Option { return excludeOption{patterns: patterns} }

type excludeOption struct{ patterns []string }

func (o excludeOption) apply(r *run.Options) {
	r.Exclude = o.patterns
}

func (o excludeOption) LogAttr() slog.Attr {
	return slog.Any("exclude", o.patterns)
}
