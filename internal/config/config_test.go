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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"brieftools.io/diff/internal/config"
	"brieftools.io/diff/textdiff"
	"brieftools.io/diff/textdiff/color"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "ignore-trailing-whitespace",
			opts: []config.Option{
				textdiff.IgnoreTrailingWhitespace(),
			},
			want: config.Config{
				IgnoreTrailingWhitespace: true,
				Name:                     config.Default.Name,
			},
		},
		{
			name: "name",
			opts: []config.Option{
				textdiff.Name("v2"),
			},
			want: config.Config{
				IgnoreTrailingWhitespace: config.Default.IgnoreTrailingWhitespace,
				Name:                     "v2",
			},
		},
		{
			name: "name-override",
			opts: []config.Option{
				textdiff.Name("v2"),
				textdiff.IgnoreTrailingWhitespace(),
				textdiff.Name("v3"),
			},
			want: config.Config{
				IgnoreTrailingWhitespace: true,
				Name:                     "v3",
			},
		},
		{
			name: "colors",
			opts: []config.Option{
				textdiff.Colors(color.Deletes(31), color.Inserts(32)),
			},
			want: config.Config{
				IgnoreTrailingWhitespace: config.Default.IgnoreTrailingWhitespace,
				Name:                     config.Default.Name,
				Color: config.ColorConfig{
					Delete: "\033[31m",
					Insert: "\033[32m",
				},
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				textdiff.IgnoreTrailingWhitespace(),
				textdiff.Name("v2"),
				textdiff.Colors(color.Headers(1, 33)),
			},
			want: config.Config{
				IgnoreTrailingWhitespace: true,
				Name:                     "v2",
				Color: config.ColorConfig{
					Header: "\033[1;33m",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.IgnoreTrailingWhitespace|config.Name|config.Colors)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsRejectsDisallowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromOptions accepted an option that is not allowed")
		}
	}()
	config.FromOptions([]config.Option{textdiff.Name("v2")}, config.IgnoreTrailingWhitespace)
}
