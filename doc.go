// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package listdiff computes the shortest edit script that transforms one ordered list into another.
//
// An edit script consists of deletions of elements from the original list and insertions of
// elements from the edited list. Elements are compared with a three-way comparison function, two
// elements are considered equal if the comparison function returns 0.
//
// The main functions are [Diff] for types with a natural order, [DiffFunc] for custom comparison
// functions, and [Run] which accepts a [Request] and derives a natural order at runtime if
// necessary.
//
// Performance: By default, Myers' algorithm is used with O(ND) time and O(N) space, where N =
// len(x) + len(y) and D is the number of edits. Use [Limit] to abandon the search for very
// different inputs. For inputs that are already sorted consistently with the comparison function,
// [Presorted] selects a single pass merge with O(N) time.
//
// Note: For a line-by-line diff of text, please see [znkr.io/listdiff/textdiff].
//
// [znkr.io/listdiff/textdiff]: https://pkg.go.dev/znkr.io/listdiff/textdiff
package listdiff
