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

package run_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/explicitreturn/internal/run"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a.ts":                       {},
		"b.tsx":                      {},
		"c.js":                       {},
		"types.d.ts":                 {},
		"src/d.mts":                  {},
		"src/e.cts":                  {},
		"node_modules/lib/index.ts":  {},
		"src/node_modules/x/deep.ts": {},
	}

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name:    "directory",
			include: DirectoryInclude,
			exclude: DefaultExclude,
			want:    []string{"a.ts", "b.tsx", "types.d.ts"},
		},
		{
			name:    "tree",
			include: TreeInclude,
			exclude: DefaultExclude,
			want:    []string{"a.ts", "b.tsx", "src/d.mts", "src/e.cts", "types.d.ts"},
		},
		{
			name:    "overlapping",
			include: []string{"*.ts", "a.*"},
			want:    []string{"a.ts", "types.d.ts"},
		},
		{
			name:    "exclude",
			include: TreeInclude,
			exclude: []string{"**/*.d.ts", "src/**", "**/node_modules/**"},
			want:    []string{"a.ts", "b.tsx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := &Options{Include: tt.include, Exclude: tt.exclude}

			got, err := o.Collect(fsys)
			if err != nil {
				t.Fatalf("Collect failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectBadPattern(t *testing.T) {
	t.Parallel()

	o := &Options{Include: TreeInclude, Exclude: []string{"[a"}}

	if _, err := o.Collect(fstest.MapFS{}); !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("Got error %v, want %v", err, doublestar.ErrBadPattern)
	}
}
