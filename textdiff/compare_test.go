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
	"testing"

	"github.com/google/go-cmp/cmp"

	"brieftools.io/diff"
	"brieftools.io/diff/textdiff/color"
)

func TestCompareAll(t *testing.T) {
	base := "clause A\nclause B\n"
	versions := []Version{
		{ID: "rev-17", Label: "draft-2", Text: "clause A modified\nclause B\n"},
		{ID: "rev-23", Label: "final", Text: "clause B\n"},
	}

	got := CompareAll(base, versions)
	want := []Result{
		{
			ID:    "rev-17",
			Label: "draft-2",
			Script: []diff.Edit[string]{
				{Op: diff.Delete, X: "clause A"},
				{Op: diff.Insert, Y: "clause A modified"},
				{Op: diff.Equal, X: "clause B", Y: "clause B"},
				{Op: diff.Equal, X: "", Y: ""},
			},
			Stats:   diff.Stats{Insert: 1, Delete: 1, Equal: 2},
			Unified: "--- base\n+++ draft-2\n-clause A\n+clause A modified\n clause B\n ",
		},
		{
			ID:    "rev-23",
			Label: "final",
			Script: []diff.Edit[string]{
				{Op: diff.Delete, X: "clause A"},
				{Op: diff.Equal, X: "clause B", Y: "clause B"},
				{Op: diff.Equal, X: "", Y: ""},
			},
			Stats:   diff.Stats{Delete: 1, Equal: 2},
			Unified: "--- base\n+++ final\n-clause A\n clause B\n ",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CompareAll(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestCompareAllIndependent(t *testing.T) {
	base := "a\nb\nc\n"
	versions := []Version{
		{ID: "1", Label: "v1", Text: "a\nB\nc\n"},
		{ID: "2", Label: "v2", Text: "a\nb\n"},
	}

	before := CompareAll(base, versions)

	// Changing one candidate must not change the other candidate's result.
	versions[1].Text = "completely\ndifferent\n"
	after := CompareAll(base, versions)

	if diff := cmp.Diff(before[0], after[0]); diff != "" {
		t.Errorf("result for v1 changed when v2's text changed [-before,+after]:\n%s", diff)
	}
	if diff := cmp.Diff(before[1], after[1]); diff == "" {
		t.Errorf("result for v2 did not change when its text changed")
	}
}

func TestCompareMatchesCompareAll(t *testing.T) {
	base := "a\nb\n"
	v := Version{ID: "1", Label: "v1", Text: "a\nc\n"}

	single := Compare(base, v, IgnoreTrailingWhitespace())
	all := CompareAll(base, []Version{v}, IgnoreTrailingWhitespace())
	if len(all) != 1 {
		t.Fatalf("CompareAll returned %d results, want 1", len(all))
	}
	if diff := cmp.Diff(all[0], single); diff != "" {
		t.Errorf("Compare and CompareAll disagree [-all,+single]:\n%s", diff)
	}
}

func TestCompareAllEmpty(t *testing.T) {
	if got := CompareAll("a\n", nil); len(got) != 0 {
		t.Errorf("CompareAll with no versions returned %d results, want 0", len(got))
	}
}

func TestCompareColors(t *testing.T) {
	v := Version{Label: "v1", Text: "b\n"}
	got := Compare("a\n", v, Colors(color.Inserts(32))).Unified
	want := "--- base\n+++ v1\n-a\n\033[32m+b\033[0m\n "
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("colored Unified differs [-want,+got]:\n%s", diff)
	}
}
