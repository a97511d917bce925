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

// Package textdiff compares a base text against candidate texts line by line.
//
// The comparison is exact and minimal (see [brieftools.io/diff]); the rendering is a simplified
// unified diff that shows every line of both inputs with no hunk headers and no context
// windowing. The format is intended for small to medium structured documents where reviewers want
// the whole text, and downstream consumers rely on the full-context rendering; it is not meant to
// be fed to the unix patch tool.
//
// [brieftools.io/diff]: https://pkg.go.dev/brieftools.io/diff
package textdiff

import (
	"strings"

	"brieftools.io/diff"
	"brieftools.io/diff/internal/config"
	"brieftools.io/diff/internal/lines"
)

const (
	prefixEqual  = " "
	prefixDelete = "-"
	prefixInsert = "+"

	baseHeader      = "--- "
	candidateHeader = "+++ "
	baseName        = "base"

	colorReset = "\033[0m"
)

// Script compares the lines of base and candidate and returns a minimal edit script that converts
// from one to the other, in document order.
//
// Both inputs are split on line breaks (\r\n is folded to \n first); an empty input is a single
// empty line and a trailing line break produces a trailing empty line. With
// [IgnoreTrailingWhitespace], trailing whitespace is stripped from every line before comparison
// and the returned script contains the stripped lines.
//
// The following option is supported: [IgnoreTrailingWhitespace]
func Script(base, candidate string, opts ...diff.Option) []diff.Edit[string] {
	cfg := config.FromOptions(opts, config.IgnoreTrailingWhitespace)
	x := normalize(lines.Split(base), cfg)
	y := normalize(lines.Split(candidate), cfg)
	return diff.Script(x, y)
}

// Unified compares the lines of base and candidate and returns the changes necessary to convert
// from one to the other as unified-diff text.
//
// The output starts with a "--- base" and a "+++ <name>" header (the name defaults to
// "candidate" and can be set with [Name]) followed by one line per edit: a space prefix for equal
// lines, "-" for deletions and "+" for insertions. Every line of both inputs is shown. Lines are
// joined with \n and there is no trailing line break.
//
// The following options are supported: [IgnoreTrailingWhitespace], [Name], [Colors]
func Unified(base, candidate string, opts ...diff.Option) string {
	cfg := config.FromOptions(opts, config.IgnoreTrailingWhitespace|config.Name|config.Colors)
	x := normalize(lines.Split(base), cfg)
	y := normalize(lines.Split(candidate), cfg)
	return format(diff.Script(x, y), cfg.Name, cfg.Color)
}

// Format renders an edit script produced by [Script] as unified-diff text, using name in the
// "+++" header. See [Unified] for the output format.
//
// The following option is supported: [Colors]
func Format(script []diff.Edit[string], name string, opts ...diff.Option) string {
	cfg := config.FromOptions(opts, config.Colors)
	return format(script, name, cfg.Color)
}

func normalize(ls []string, cfg config.Config) []string {
	if !cfg.IgnoreTrailingWhitespace {
		return ls
	}
	return lines.TrimTrailing(ls)
}

func format(script []diff.Edit[string], name string, colors config.ColorConfig) string {
	var sb strings.Builder
	writeLine := func(color, prefix, text string) {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		if color != "" {
			sb.WriteString(color)
		}
		sb.WriteString(prefix)
		sb.WriteString(text)
		if color != "" {
			sb.WriteString(colorReset)
		}
	}

	writeLine(colors.Header, baseHeader, baseName)
	writeLine(colors.Header, candidateHeader, name)
	for _, e := range script {
		switch e.Op {
		case diff.Equal:
			writeLine(colors.Equal, prefixEqual, e.X)
		case diff.Delete:
			writeLine(colors.Delete, prefixDelete, e.X)
		case diff.Insert:
			writeLine(colors.Insert, prefixInsert, e.Y)
		default:
			panic("never reached")
		}
	}
	return sb.String()
}
