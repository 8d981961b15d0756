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

package listdiff

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/edits"
	"znkr.io/listdiff/internal/merge"
	"znkr.io/listdiff/internal/myers"
)

// NoLimit can be used with [Request.Limit] to disable truncation.
const NoLimit = config.NoLimit

// ErrNoOrder is returned by [Run] if no comparison function is provided and the element type has
// no natural order.
var ErrNoOrder = errors.New("type has no natural order")

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Delete Op = iota // A deletion of an element from the original list
	Insert           // An insertion of an element from the edited list
)

// Edit describes a single edit of an edit script.
type Edit[T any] struct {
	Op Op

	// Position of the edit. For the default algorithm, this is the index of the element in its
	// list plus one. See [Presorted] for the positions reported by the merge algorithm.
	Pos int

	// The deleted or inserted element.
	Item T
}

// String formats the edit as "L pos item" for deletions and "R pos item" for insertions.
func (e Edit[T]) String() string {
	var kind string
	switch e.Op {
	case Delete:
		kind = "L"
	case Insert:
		kind = "R"
	default:
		panic("never reached")
	}
	return fmt.Sprintf("%s %d %v", kind, e.Pos, e.Item)
}

// Script is an edit script that transforms one list into another.
//
// All slices are in the order the edits were discovered in. The invariant len(Edits) ==
// len(Insertions)+len(Deletions) always holds.
type Script[T any] struct {
	Insertions []T       // Elements of the edited list that are missing in the original list.
	Deletions  []T       // Elements of the original list that are missing in the edited list.
	Edits      []Edit[T] // All edits.

	// Truncated is set if the search was abandoned because the number of edits exceeded the
	// limit. The script then only contains the edits found until then.
	Truncated bool
}

// Len returns the total number of edits.
func (s *Script[T]) Len() int { return len(s.Edits) }

// String renders the script with one edit per line in discovery order.
func (s *Script[T]) String() string {
	return render(s.Edits)
}

// SortedString renders the script like [Script.String], but the edits are sorted by their
// elements using compare. Edits with equal elements are ordered by position.
func (s *Script[T]) SortedString(compare func(a, b T) int) string {
	sorted := slices.Clone(s.Edits)
	slices.SortStableFunc(sorted, func(a, b Edit[T]) int {
		return cmp.Or(compare(a.Item, b.Item), cmp.Compare(a.Pos, b.Pos))
	})
	return render(sorted)
}

func render[T any](es []Edit[T]) string {
	var sb strings.Builder
	for _, e := range es {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Request describes a comparison.
type Request[T any] struct {
	Original, Edited []T

	// Compare returns a negative number if a < b, a positive number if a > b, and zero if both are
	// equal. If nil, the natural order of T is used.
	Compare func(a, b T) int

	// Maximum number of edits, negative for no limit. Note that 0 is a valid limit that only
	// allows identical inputs, use [NewRequest] to start without a limit. See [Limit].
	Limit int

	// Both lists are sorted consistently with Compare. See [Presorted].
	Presorted bool
}

// NewRequest returns a request to compare original and edited without a limit.
func NewRequest[T any](original, edited []T) Request[T] {
	return Request[T]{
		Original: original,
		Edited:   edited,
		Limit:    NoLimit,
	}
}

// Run compares Original and Edited from req and returns the edit script to transform one into the
// other.
//
// If req.Compare is nil, the natural order of T is used. A natural order exists for all types with
// an underlying integer, float or string type and for all types with a method Compare(T) int (e.g.
// [time.Time]). For all other types, an error wrapping [ErrNoOrder] is returned.
func Run[T any](req Request[T]) (*Script[T], error) {
	compare := req.Compare
	if compare == nil {
		var ok bool
		compare, ok = naturalOrder[T]()
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoOrder, reflect.TypeFor[T]())
		}
	}
	cfg := config.Default
	cfg.Limit = max(NoLimit, req.Limit)
	cfg.Presorted = req.Presorted
	return diff(req.Original, req.Edited, compare, cfg), nil
}

// Diff compares the contents of x and y and returns the edit script to transform one into the
// other.
//
// If x and y are identical, the script has no edits.
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted]
func Diff[T cmp.Ordered](x, y []T, opts ...Option) *Script[T] {
	cfg := config.FromOptions(opts, config.Limit|config.Presorted)
	return diff(x, y, cmp.Compare[T], cfg)
}

// DiffFunc compares the contents of x and y using the provided comparison function and returns the
// edit script to transform one into the other.
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted]
func DiffFunc[T any](x, y []T, compare func(a, b T) int, opts ...Option) *Script[T] {
	cfg := config.FromOptions(opts, config.Limit|config.Presorted)
	return diff(x, y, compare, cfg)
}

func diff[T any](x, y []T, compare func(a, b T) int, cfg config.Config) *Script[T] {
	var es edits.Script
	if cfg.Presorted {
		es = merge.Diff(x, y, compare)
	} else {
		es = myers.Diff(x, y, compare, cfg.Limit)
	}
	return script(x, y, es)
}

func script[T any](x, y []T, es edits.Script) *Script[T] {
	out := &Script[T]{Truncated: es.Truncated}
	if len(es.Ops) == 0 {
		return out
	}

	deletes, inserts := es.Counts()
	out.Edits = make([]Edit[T], 0, len(es.Ops))
	if deletes > 0 {
		out.Deletions = make([]T, 0, deletes)
	}
	if inserts > 0 {
		out.Insertions = make([]T, 0, inserts)
	}
	for _, op := range es.Ops {
		switch op.Flag {
		case edits.Delete:
			out.Deletions = append(out.Deletions, x[op.Index])
			out.Edits = append(out.Edits, Edit[T]{Delete, op.Pos, x[op.Index]})
		case edits.Insert:
			out.Insertions = append(out.Insertions, y[op.Index])
			out.Edits = append(out.Edits, Edit[T]{Insert, op.Pos, y[op.Index]})
		default:
			panic("never reached")
		}
	}
	return out
}
