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

// Package myers contains an implementation of Myers' algorithm.
//
// This is the classic full-trace variant from section 2 of the paper: the greedy forward search
// records a snapshot of its state for every edit distance d, and the edit script is recovered
// afterwards by walking the snapshots backwards. No heuristics and no linear-space refinement are
// applied, so the result is always a minimal script and, for identical inputs, always the
// identical script.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to
// y. Every vertex (s, t) corresponds to a state: s elements of x and t elements of y have been
// consumed. A horizontal edge represents the deletion of x[s], a vertical edge the insertion of
// y[t], and wherever x[s] equals y[t] a diagonal edge represents keeping the element. Finding a
// shortest edit script means finding a path from (0, 0) to (len(x), len(y)) with the fewest
// non-diagonal edges.
//
// Some nomenclature: we use s and t for the horizontal and vertical coordinates and k = s - t for
// diagonals. A d-path is a path with exactly d non-diagonal edges.
//
// Lemma 1: A d-path must end on diagonal k in {-d, -d+2, ..., d-2, d}. In particular, d and k
// always have the same parity, which is why the k-loop below steps by 2.
//
// Lemma 2: A furthest reaching d-path on diagonal k can be decomposed into a furthest reaching
// (d-1)-path on diagonal k-1 followed by a horizontal edge, or a furthest reaching (d-1)-path on
// diagonal k+1 followed by a vertical edge, in both cases followed by the longest possible run of
// diagonal edges.
//
// This gives a greedy algorithm: keep an array v where v[v0+k] is the s-coordinate of the
// furthest reaching d-path on diagonal k (t is implied by t = s - k, and v0 translates k in
// [-max, max] to a non-negative index). For each d, derive the furthest reaching d-paths from the
// (d-1)-paths, preferring the vertical edge exactly when v[v0+k-1] < v[v0+k+1]. The first d at
// which a path reaches (len(x), len(y)) is the edit distance.
//
// The tie-break is the convention from the paper. It decides which of several minimal scripts is
// produced (deletions before insertions) and the backtrace has to recompute the exact same
// decision to recover the path.
//
// To reconstruct the path, the v-array is snapshotted before every iteration of the d-loop. The
// snapshots make the memory requirement O((N+M)·D), quadratic in the worst case of two inputs
// with nothing in common. The linear-space refinement from section 4b of the paper would avoid
// this at the cost of a recursive structure whose output is much harder to pin down exactly;
// keeping the trace keeps the backtrace trivially exact.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
