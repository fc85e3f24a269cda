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
	"fmt"
	"io/fs"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Collect returns the names of the files in fsys matching an include pattern and no exclude
// pattern, sorted and without duplicates.
func (o *Options) Collect(fsys fs.FS) ([]string, error) {
	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("exclude %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var names []string

	for _, pattern := range o.Include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("include %q: %w", pattern, err)
		}

		for _, name := range matches {
			if !o.excluded(name) {
				names = append(names, name)
			}
		}
	}

	slices.Sort(names)

	return slices.Compact(names), nil
}

func (o *Options) excluded(name string) bool {
	for _, pattern := range o.Exclude {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
