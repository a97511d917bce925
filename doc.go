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

// Package diff compares two slices and produces a minimal edit script converting one into the
// other.
//
// The main function is [Script], which returns one edit per input element in document order.
// [ScriptFunc] is the variant for element types that are not comparable or that need a custom
// equality.
//
// The implementation is Myers' greedy O(ND) shortest edit script algorithm with a full trace of
// the search, so the returned script is always minimal: it contains exactly D non-equal edits
// where D is the edit distance between the inputs. The output is deterministic, repeated calls
// with the same inputs produce identical scripts.
//
// Performance: time and additional space are O((N+M)·D) where N and M are the input lengths and D
// is the edit distance. For inputs that have almost nothing in common, D approaches N+M and the
// cost becomes quadratic. This is inherent to keeping the full search trace for an exact, stable
// backtrace and is acceptable for the small to medium documents this module is built for.
//
// Note: For a line-by-line diff of text, please see [brieftools.io/diff/textdiff].
//
// [brieftools.io/diff/textdiff]: https://pkg.go.dev/brieftools.io/diff/textdiff
package diff
