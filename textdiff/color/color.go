// Package color provides configuration for coloring unified diffs using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below
// presents deleted lines in bold red:
//
//	Deletes(1, 31)
//
// This is equivalent to the following raw ANSI sequence: \033[1;31m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"brieftools.io/diff/internal/config"
)

// An Option makes it possible to configure custom colors in textdiff.Colors.
type Option func(*config.ColorConfig)

// Headers colors the "---" and "+++" header lines.
func Headers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Header = code
	}
}

// Equals colors equal lines.
func Equals(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Equal = code
	}
}

// Deletes colors deleted lines.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted lines.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
