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

// Package edits contains the internal edit script representation that's produced by the diff
// algorithms and is then translated to a user facing API.
//
// The internal representation only refers to elements by index. That way, the algorithms don't
// need to know anything about the element type and the translation can allocate the exported
// representation in one go.
package edits

import "fmt"

// Flag describes the kind of an edit.
type Flag uint8

const (
	None   Flag = 0
	Delete Flag = 1 << iota
	Insert
)

func (e Flag) String() string {
	switch e {
	case None:
		return "none"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprint(uint8(e))
	}
}

// Op is a single deletion or insertion.
type Op struct {
	Flag  Flag
	Index int // Index of the element in x (Delete) or y (Insert).
	Pos   int // Reported position of the edit, the numbering depends on the algorithm.
}

// Script is an ordered log of edits in the order they were discovered.
type Script struct {
	Ops       []Op
	Truncated bool // The search was abandoned before the script was complete.
}

// Delete records the deletion of x[index].
func (s *Script) Delete(index, pos int) {
	s.Ops = append(s.Ops, Op{Delete, index, pos})
}

// Insert records the insertion of y[index].
func (s *Script) Insert(index, pos int) {
	s.Ops = append(s.Ops, Op{Insert, index, pos})
}

// Counts returns the number of deletions and insertions in the script.
func (s *Script) Counts() (deletes, inserts int) {
	for _, op := range s.Ops {
		switch op.Flag {
		case Delete:
			deletes++
		case Insert:
			inserts++
		default:
			panic(fmt.Sprintf("invalid edit flag: %v", op.Flag))
		}
	}
	return deletes, inserts
}
