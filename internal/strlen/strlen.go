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

// Package strlen counts user-perceived characters.
package strlen

import "github.com/rivo/uniseg"

// Length returns the number of grapheme clusters in text.
//
// Printable ASCII text is counted byte by byte, everything else is segmented by uniseg.
func Length(text string) int {
	if isASCII(text) {
		return len(text)
	}

	return uniseg.GraphemeClusterCount(text)
}

func isASCII(text string) bool {
	for i := range len(text) {
		if c := text[i]; c < 0x20 || c > 0x7f {
			return false
		}
	}

	return true
}
