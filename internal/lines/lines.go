// Copyright 2026 The Brieftools Authors
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

// Package lines splits raw text into the line sequences the diff engine operates on.
package lines

import (
	"strings"
	"unicode"
)

// Split splits text into lines. Windows line breaks are folded to \n before splitting, so a line
// never contains a stray \r from a \r\n pair.
//
// Following the strings.Split convention, an empty input yields a single empty line and a
// trailing \n yields a trailing empty line element. The trailing element is deliberately kept:
// the unified rendering shows every line of both inputs, and dropping it would break
// reconstructing the inputs from the rendered diff.
func Split(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// TrimTrailing returns a copy of ls with trailing Unicode whitespace removed from every line.
// The input slice is not modified.
func TrimTrailing(ls []string) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	return out
}
