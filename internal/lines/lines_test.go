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

package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: []string{""},
		},
		{
			name: "single-line-no-newline",
			in:   "a",
			want: []string{"a"},
		},
		{
			name: "single-line",
			in:   "a\n",
			want: []string{"a", ""},
		},
		{
			name: "two-lines",
			in:   "a\nb",
			want: []string{"a", "b"},
		},
		{
			name: "trailing-newline",
			in:   "a\nb\n",
			want: []string{"a", "b", ""},
		},
		{
			name: "crlf",
			in:   "a\r\nb\r\n",
			want: []string{"a", "b", ""},
		},
		{
			name: "mixed-endings",
			in:   "a\r\nb\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "bare-cr-is-kept",
			in:   "a\rb\n",
			want: []string{"a\rb", ""},
		},
		{
			name: "blank-lines",
			in:   "\n\n",
			want: []string{"", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Split(tt.in)); diff != "" {
				t.Errorf("Split(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestTrimTrailing(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "spaces-and-tabs",
			in:   []string{"a ", "b\t", "c \t "},
			want: []string{"a", "b", "c"},
		},
		{
			name: "leading-whitespace-kept",
			in:   []string{"  a", "\tb"},
			want: []string{"  a", "\tb"},
		},
		{
			name: "interior-whitespace-kept",
			in:   []string{"a b ", "a\tb"},
			want: []string{"a b", "a\tb"},
		},
		{
			name: "unicode-whitespace",
			in:   []string{"a ", "b　"},
			want: []string{"a", "b"},
		},
		{
			name: "empty-lines",
			in:   []string{"", " ", "\t"},
			want: []string{"", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]string, len(tt.in))
			copy(in, tt.in)

			if diff := cmp.Diff(tt.want, TrimTrailing(in)); diff != "" {
				t.Errorf("TrimTrailing(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
			if diff := cmp.Diff(tt.in, in); diff != "" {
				t.Errorf("TrimTrailing modified its input [-want,+got]:\n%s", diff)
			}
		})
	}
}
