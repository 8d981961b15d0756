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

// Package merge compares two inputs that are already sorted the same way in a single pass.
package merge

import "znkr.io/listdiff/internal/edits"

// Diff compares x and y side by side in O(len(x) + len(y)) time.
//
// Both x and y must be sorted consistently with compare. This is not verified, unsorted inputs
// result in an incorrect edit script.
//
// While both inputs have elements left, positions are 1-based. Trailing elements of either input
// are reported at their 0-based index.
func Diff[T any](x, y []T, compare func(a, b T) int) edits.Script {
	var es edits.Script
	s, t := 0, 0
	for s < len(x) && t < len(y) {
		switch c := compare(x[s], y[t]); {
		case c < 0:
			// x[s] is missing in y.
			es.Delete(s, s+1)
			s++
		case c > 0:
			// y[t] is missing in x.
			es.Insert(t, t+1)
			t++
		default:
			s++
			t++
		}
	}
	for ; s < len(x); s++ {
		es.Delete(s, s)
	}
	for ; t < len(y); t++ {
		es.Insert(t, t)
	}
	return es
}
