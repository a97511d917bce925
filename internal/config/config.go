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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, trailing whitespace is stripped from every line before comparison. Only the
	// stripped text flows downstream, the rendered diff reflects the stripped content.
	IgnoreTrailingWhitespace bool

	// Name used in the "+++" header of unified output.
	Name string

	// ANSI SGR codes for colored unified output. The zero value renders plain text.
	Color ColorConfig
}

// ColorConfig holds one ANSI SGR escape sequence per line class of the unified output. Empty
// strings leave the class uncolored.
type ColorConfig struct {
	Header string
	Equal  string
	Delete string
	Insert string
}

// Default is the default configuration.
var Default = Config{
	IgnoreTrailingWhitespace: false,
	Name:                     "candidate",
}

// Flag describes a single config entry. This is used to detect options being passed to functions
// that don't support them.
type Flag int

const (
	IgnoreTrailingWhitespace Flag = 1 << iota
	Name
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case IgnoreTrailingWhitespace:
		return "textdiff.IgnoreTrailingWhitespace"
	case Name:
		return "textdiff.Name"
	case Colors:
		return "textdiff.Colors"
	default:
		panic("never reached")
	}
}
