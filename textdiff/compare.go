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

package textdiff

import (
	"brieftools.io/diff"
	"brieftools.io/diff/internal/config"
	"brieftools.io/diff/internal/lines"
)

// Version is a named candidate text to compare against a base text. The comparison only reads
// Text; ID and Label are carried through to the [Result] untouched, the ID as an opaque
// correlation key for the caller and the Label as the display name in the unified output.
type Version struct {
	ID    string
	Label string
	Text  string
}

// Result is the outcome of comparing one candidate version against the base text.
//
// A Result is a pure function of the base text, the version and the options; it holds no state
// and is recomputed from scratch on every comparison.
type Result struct {
	ID     string
	Label  string
	Script []diff.Edit[string]
	Stats  diff.Stats

	// Unified is the full-context unified rendering of Script with Label in the "+++" header.
	Unified string
}

// Compare compares the lines of base against a single candidate version.
//
// The following options are supported: [IgnoreTrailingWhitespace], [Colors]
func Compare(base string, v Version, opts ...diff.Option) Result {
	cfg := config.FromOptions(opts, config.IgnoreTrailingWhitespace|config.Colors)
	return compare(normalize(lines.Split(base), cfg), v, cfg)
}

// CompareAll compares the lines of base against every candidate version and returns one result
// per version, in input order.
//
// The base text is split and normalized once and shared across comparisons. Each comparison is
// otherwise fully independent: no search state is shared between candidates, and changing one
// version's text never affects another version's result.
//
// The following options are supported: [IgnoreTrailingWhitespace], [Colors]
func CompareAll(base string, versions []Version, opts ...diff.Option) []Result {
	cfg := config.FromOptions(opts, config.IgnoreTrailingWhitespace|config.Colors)
	x := normalize(lines.Split(base), cfg)

	out := make([]Result, 0, len(versions))
	for _, v := range versions {
		out = append(out, compare(x, v, cfg))
	}
	return out
}

func compare(x []string, v Version, cfg config.Config) Result {
	y := normalize(lines.Split(v.Text), cfg)
	script := diff.Script(x, y)
	return Result{
		ID:      v.ID,
		Label:   v.Label,
		Script:  script,
		Stats:   diff.Count(script),
		Unified: format(script, v.Label, cfg.Color),
	}
}
