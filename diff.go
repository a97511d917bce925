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

package diff

import "brieftools.io/diff/internal/myers"

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // Two slice elements are equal
	Delete           // A deletion of an element from the left slice
	Insert           // An insertion of an element from the right slice
)

// Edit describes a single edit of a diff.
//
//   - For Equal, both X and Y contain the equal element.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
//
// For scripts produced by [ScriptFunc] with an equality that admits unequal values, the X and Y of
// an Equal edit may differ; both are populated from their respective input.
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Script compares the contents of x and y and returns a minimal edit script that converts from
// one to the other.
//
// Script returns one edit for every element in the input slices, in document order: equal and
// deleted elements appear in the order of x, interleaved with insertions at their position in y.
// At every point where deletions and insertions meet, deletions come first. If x and y are
// identical, the output consists of an equal edit for every input element.
//
// The script is minimal and deterministic: it contains exactly D non-equal edits, where D is the
// edit distance between x and y, and repeated calls with identical inputs produce identical
// output.
func Script[T comparable](x, y []T) []Edit[T] {
	rx, ry := myers.Diff(x, y)
	return script(x, y, rx, ry)
}

// ScriptFunc compares the contents of x and y using the provided equality comparison and returns
// a minimal edit script that converts from one to the other.
//
// See [Script] for the properties of the returned script.
func ScriptFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	rx, ry := myers.DiffFunc(x, y, eq)
	return script(x, y, rx, ry)
}

func script[T any](x, y []T, rx, ry []bool) []Edit[T] {
	// Compute the number of edits first, this is relatively cheap and allows us to preallocate the
	// return value.
	n, m := len(rx)-1, len(ry)-1
	var nedits int
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			nedits++
			s++
		}
		for t < m && ry[t] {
			nedits++
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			nedits++
			s++
			t++
		}
	}
	if nedits == 0 {
		return nil
	}

	out := make([]Edit[T], 0, nedits)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Edit[T]{
				Op: Delete,
				X:  x[s],
			})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Edit[T]{
				Op: Insert,
				Y:  y[t],
			})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			out = append(out, Edit[T]{
				Op: Equal,
				X:  x[s],
				Y:  y[t],
			})
			s++
			t++
		}
	}
	return out
}

// Stats summarizes an edit script as per-operation counts.
type Stats struct {
	Insert int
	Delete int
	Equal  int
}

// Count tallies the edits of a script. The counts always sum to len(script).
func Count[T any](script []Edit[T]) Stats {
	var st Stats
	for _, e := range script {
		switch e.Op {
		case Equal:
			st.Equal++
		case Delete:
			st.Delete++
		case Insert:
			st.Insert++
		default:
			panic("never reached")
		}
	}
	return st
}
