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

package myers

import "slices"

// forceFallback makes Diff skip the search and take the defensive all-delete-then-all-insert
// branch. This knob is not exposed via an option API, its only use is testing the fallback.
var forceFallback = false

// Diff compares the contents of x and y and returns result vectors marking the changes necessary
// to convert from one to the other: rx[s] is set if x[s] is deleted, ry[t] is set if y[t] is
// inserted. Elements marked in neither vector are equal in both inputs.
//
// Both vectors carry one extra trailing false element so that callers can walk both with a shared
// loop without bounds checks.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns
// result vectors as described in [Diff].
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	var m myers[T]
	m.init(x, y)
	if !forceFallback && m.shortestEdit(eq) {
		m.backtrack(eq)
		return m.rx, m.ry
	}

	// The search is bounded by d = len(x)+len(y) and the true edit distance never exceeds that
	// bound, so this branch is unreachable unless the loop bounds above are broken. It exists as a
	// safety net: delete all of x, then insert all of y. Reaching it is a logic bug, tests flag
	// termination separately.
	for s := range len(x) {
		m.rx[s] = true
	}
	for t := range len(y) {
		m.ry[t] = true
	}
	return m.rx, m.ry
}

type myers[T any] struct {
	// Inputs to compare.
	x, y []T

	// v stores the s-coordinate of the furthest reaching endpoint of a d-path in diagonal k in
	// v[v0+k], where v0 is the offset that translates k in [-max, max] to v0+k in [0, 2*max].
	// The endpoints only store the s-coordinate since t = s - k.
	v  []int
	v0 int

	// trace[d] is the snapshot of v taken before the d-round, i.e. the endpoints of all furthest
	// reaching (d-1)-paths. Snapshots are immutable once taken; the working array is copied, never
	// aliased, so a later round cannot mutate an earlier snapshot in place.
	trace [][]int

	// Result vectors.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T) {
	max := len(x) + len(y)

	m.x, m.y = x, y
	m.v = make([]int, 2*max+3) // +1 for the middle point and +2 for the borders
	m.v0 = max + 1
	m.trace = m.trace[:0]

	// For the result we add a simple border of one element that makes it easier to iterate over
	// the results.
	r := make([]bool, len(x)+len(y)+2)
	m.rx = r[: len(x)+1 : len(x)+1]
	m.ry = r[len(x)+1:]
}

// shortestEdit runs the forward search, filling m.trace with one v-array snapshot per edit
// distance. It reports whether the search reached (len(x), len(y)); given the d-loop bound this
// is always true for finite inputs.
func (m *myers[T]) shortestEdit(eq func(a, b T) bool) bool {
	n, mm := len(m.x), len(m.y)
	max := n + mm
	for d := 0; d <= max; d++ {
		m.trace = append(m.trace, slices.Clone(m.v))
		for k := -d; k <= d; k += 2 {
			// Lemma 2: extend the better of the two furthest reaching (d-1)-paths on the
			// neighboring diagonals. k == -d and k == d have only one neighbor inside the band.
			// On v[k-1] == v[k+1] the horizontal edge wins, prioritizing deletions over
			// insertions.
			var s int
			if k == -d || (k != d && m.v[m.v0+k-1] < m.v[m.v0+k+1]) {
				s = m.v[m.v0+k+1]
			} else {
				s = m.v[m.v0+k-1] + 1
			}
			t := s - k

			// Follow the diagonals as long as possible.
			for s < n && t < mm && eq(m.x[s], m.y[t]) {
				s++
				t++
			}

			m.v[m.v0+k] = s

			if s >= n && t >= mm {
				return true
			}
		}
	}
	return false
}

// backtrack walks the trace backwards from (len(x), len(y)) to (0, 0) and marks deletions and
// insertions in the result vectors. The predecessor diagonal is recovered by recomputing the
// exact tie-break of the forward search against the snapshot for d-1.
func (m *myers[T]) backtrack(eq func(a, b T) bool) {
	s, t := len(m.x), len(m.y)
	for d := len(m.trace) - 1; d >= 0; d-- {
		v := m.trace[d]
		k := s - t

		var pk int
		if k == -d || (k != d && v[m.v0+k-1] < v[m.v0+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := v[m.v0+pk]
		pt := ps - pk

		// Walk back through the run of diagonals that followed the edit. Equal elements are
		// marked in neither result vector.
		for s > ps && t > pt {
			s--
			t--
		}

		// Then undo the single non-diagonal edge that started this d-path.
		if d > 0 {
			if s == ps {
				m.ry[pt] = true
			} else {
				m.rx[ps] = true
			}
			s, t = ps, pt
		}
	}

	// The walk above always ends in the origin. If it doesn't, the trace is inconsistent; keep
	// the remaining prefix as equal elements and mark any single-sided leftover.
	for s > 0 && t > 0 {
		s--
		t--
	}
	for ; s > 0; s-- {
		m.rx[s-1] = true
	}
	for ; t > 0; t-- {
		m.ry[t-1] = true
	}
}
