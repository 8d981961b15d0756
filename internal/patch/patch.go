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

// Package patch replays an edit script onto its original input.
//
// This package is used to validate edit scripts in tests and tools.
package patch

import (
	"errors"
	"fmt"

	"znkr.io/listdiff/internal/edits"
)

// ErrTruncated is returned when applying a truncated edit script.
var ErrTruncated = errors.New("edit script is truncated")

// Apply removes the deleted elements from x and inserts the inserted elements of y.
//
// Positions are 1-based: A deletion at position p removes x[p-1] and an insertion at position p
// places the inserted element at index p-1 of the result. The inserted element is y[op.Index].
//
// The elements of the result that weren't inserted are taken from x. The result is therefore only
// equal to y if the edit script is correct.
func Apply[T any](x, y []T, es edits.Script) ([]T, error) {
	if es.Truncated {
		return nil, ErrTruncated
	}

	deleted := make([]bool, len(x))
	inserted := make([]int, len(y)) // index into y + 1, 0 if nothing was inserted
	for i, op := range es.Ops {
		p := op.Pos - 1
		switch op.Flag {
		case edits.Delete:
			if p < 0 || p >= len(x) {
				return nil, fmt.Errorf("edit %d: deletion at position %d out of range [1, %d]", i, op.Pos, len(x))
			}
			if deleted[p] {
				return nil, fmt.Errorf("edit %d: duplicate deletion at position %d", i, op.Pos)
			}
			deleted[p] = true
		case edits.Insert:
			if p < 0 || p >= len(y) {
				return nil, fmt.Errorf("edit %d: insertion at position %d out of range [1, %d]", i, op.Pos, len(y))
			}
			if op.Index < 0 || op.Index >= len(y) {
				return nil, fmt.Errorf("edit %d: inserted element %d out of range [0, %d)", i, op.Index, len(y))
			}
			if inserted[p] != 0 {
				return nil, fmt.Errorf("edit %d: duplicate insertion at position %d", i, op.Pos)
			}
			inserted[p] = op.Index + 1
		default:
			return nil, fmt.Errorf("edit %d: invalid flag %v", i, op.Flag)
		}
	}

	out := make([]T, 0, len(y))
	s := 0
	for _, idx := range inserted {
		if idx > 0 {
			out = append(out, y[idx-1])
			continue
		}
		for s < len(x) && deleted[s] {
			s++
		}
		if s == len(x) {
			return nil, fmt.Errorf("not enough elements left in x to fill position %d", len(out)+1)
		}
		out = append(out, x[s])
		s++
	}
	for ; s < len(x); s++ {
		if !deleted[s] {
			return nil, fmt.Errorf("element %d of x is neither deleted nor retained", s)
		}
	}
	return out, nil
}
