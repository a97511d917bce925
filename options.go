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

import "brieftools.io/diff/internal/config"

// Option configures the behavior of comparison functions.
//
// The comparison functions in this package take no options; the line-oriented functions in
// [brieftools.io/diff/textdiff] declare which options they support. Passing an option to a
// function that doesn't support it panics.
//
// [brieftools.io/diff/textdiff]: https://pkg.go.dev/brieftools.io/diff/textdiff
type Option = config.Option
