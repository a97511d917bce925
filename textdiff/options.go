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
	"brieftools.io/diff/textdiff/color"
)

// IgnoreTrailingWhitespace strips trailing whitespace from every line before comparison, so two
// lines that differ only in trailing spaces or tabs compare equal.
//
// The stripped text is what flows downstream: edit scripts and rendered diffs show the stripped
// lines, not the original ones.
func IgnoreTrailingWhitespace() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreTrailingWhitespace = true
		return config.IgnoreTrailingWhitespace
	}
}

// Name sets the candidate name used in the "+++" header of unified output. The default is
// "candidate".
func Name(name string) diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Name = name
		return config.Name
	}
}

// Colors enables ANSI-colored unified output for terminals. The line classes to color are
// configured with the options of the [brieftools.io/diff/textdiff/color] package; classes left
// unconfigured render uncolored.
//
// [brieftools.io/diff/textdiff/color]: https://pkg.go.dev/brieftools.io/diff/textdiff/color
func Colors(opts ...color.Option) diff.Option {
	return func(cfg *config.Config) config.Flag {
		for _, opt := range opts {
			opt(&cfg.Color)
		}
		return config.Colors
	}
}
