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
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/edits"
	"znkr.io/listdiff/internal/patch"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		opts []Option
		want *Script[string]
	}{
		{
			name: "empty",
			want: &Script[string]{},
		},
		{
			name: "x-empty",
			y:    []string{"x", "y"},
			want: &Script[string]{
				Insertions: []string{"x", "y"},
				Edits: []Edit[string]{
					{Insert, 1, "x"},
					{Insert, 2, "y"},
				},
			},
		},
		{
			name: "y-empty",
			x:    []string{"a", "b", "c"},
			want: &Script[string]{
				Deletions: []string{"a", "b", "c"},
				Edits: []Edit[string]{
					{Delete, 1, "a"},
					{Delete, 2, "b"},
					{Delete, 3, "c"},
				},
			},
		},
		{
			name: "identical",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "b", "c"},
			want: &Script[string]{},
		},
		{
			name: "replace",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "x", "c"},
			want: &Script[string]{
				Insertions: []string{"x"},
				Deletions:  []string{"b"},
				Edits: []Edit[string]{
					{Insert, 2, "x"},
					{Delete, 2, "b"},
				},
			},
		},
		{
			name: "limit",
			x:    []string{"1", "2", "3", "4", "5"},
			y:    []string{"1", "5"},
			opts: []Option{Limit(1)},
			want: &Script[string]{
				Deletions: []string{"2"},
				Edits: []Edit[string]{
					{Delete, 2, "2"},
				},
				Truncated: true,
			},
		},
		{
			name: "limit-not-reached",
			x:    []string{"1", "2", "3", "4", "5"},
			y:    []string{"1", "5"},
			opts: []Option{Limit(3)},
			want: &Script[string]{
				Deletions: []string{"2", "3", "4"},
				Edits: []Edit[string]{
					{Delete, 2, "2"},
					{Delete, 3, "3"},
					{Delete, 4, "4"},
				},
			},
		},
		{
			name: "presorted",
			x:    []string{"1", "3", "5"},
			y:    []string{"1", "2", "3", "5", "6"},
			opts: []Option{Presorted()},
			want: &Script[string]{
				Insertions: []string{"2", "6"},
				Edits: []Edit[string]{
					{Insert, 2, "2"},
					{Insert, 4, "6"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.x, tt.y, tt.opts...)
			if diff := gocmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
			if got.Len() != len(got.Insertions)+len(got.Deletions) {
				t.Errorf("Diff(...) has %d edits, but %d insertions and %d deletions", got.Len(), len(got.Insertions), len(got.Deletions))
			}

			got = DiffFunc(tt.x, tt.y, strings.Compare, tt.opts...)
			if diff := gocmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestDiff_notAllowed(t *testing.T) {
	sorted := func(cfg *config.Config) config.Flag {
		cfg.Sorted = true
		return config.Sorted
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Diff(...) with option for text diffs didn't panic")
		}
	}()
	Diff([]int{1}, []int{2}, sorted)
}

type level int

type version struct {
	major, minor int
}

func (v version) Compare(w version) int {
	return cmp.Or(cmp.Compare(v.major, w.major), cmp.Compare(v.minor, w.minor))
}

func TestRun(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		got, err := Run(NewRequest([]int{1, 2, 3}, []int{1, 3, 4}))
		if err != nil {
			t.Fatalf("Run(...) failed: %v", err)
		}
		if diff := gocmp.Diff(Diff([]int{1, 2, 3}, []int{1, 3, 4}), got); diff != "" {
			t.Errorf("Run(...) differs from Diff(...) [-want,+got]:\n%s", diff)
		}
	})

	t.Run("named-type", func(t *testing.T) {
		got, err := Run(NewRequest([]level{3, 2, 1}, []level{3, 1}))
		if err != nil {
			t.Fatalf("Run(...) failed: %v", err)
		}
		if diff := gocmp.Diff([]level{2}, got.Deletions); diff != "" {
			t.Errorf("Run(...).Deletions differs [-want,+got]:\n%s", diff)
		}
	})

	t.Run("compare-method", func(t *testing.T) {
		x := []version{{1, 0}, {1, 1}, {2, 0}}
		y := []version{{1, 0}, {1, 2}, {2, 0}}
		got, err := Run(NewRequest(x, y))
		if err != nil {
			t.Fatalf("Run(...) failed: %v", err)
		}
		want := "R 2 {1 2}\nL 2 {1 1}\n"
		if diff := gocmp.Diff(want, got.String()); diff != "" {
			t.Errorf("Run(...).String() differs [-want,+got]:\n%s", diff)
		}
	})

	t.Run("time", func(t *testing.T) {
		t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		x := []time.Time{t0, t0.Add(time.Hour)}
		y := []time.Time{t0, t0.Add(time.Hour).In(time.FixedZone("CET", 3600))}
		got, err := Run(NewRequest(x, y))
		if err != nil {
			t.Fatalf("Run(...) failed: %v", err)
		}
		if got.Len() != 0 {
			t.Errorf("Run(...) found edits for equal instants:\n%s", got)
		}
	})

	t.Run("no-order", func(t *testing.T) {
		type point struct{ x, y int }
		_, err := Run(NewRequest([]point{{1, 2}}, []point{{2, 1}}))
		if !errors.Is(err, ErrNoOrder) {
			t.Errorf("Run(...) = %v, want %v", err, ErrNoOrder)
		}
	})

	t.Run("explicit-compare", func(t *testing.T) {
		type point struct{ x, y int }
		req := NewRequest([]point{{1, 2}, {3, 4}}, []point{{3, 4}})
		req.Compare = func(a, b point) int {
			return cmp.Or(cmp.Compare(a.x, b.x), cmp.Compare(a.y, b.y))
		}
		got, err := Run(req)
		if err != nil {
			t.Fatalf("Run(...) failed: %v", err)
		}
		want := &Script[point]{
			Deletions: []point{{1, 2}},
			Edits:     []Edit[point]{{Delete, 1, point{1, 2}}},
		}
		if diff := gocmp.Diff(want, got, gocmp.AllowUnexported(point{})); diff != "" {
			t.Errorf("Run(...) differs [-want,+got]:\n%s", diff)
		}
	})

	t.Run("zero-limit", func(t *testing.T) {
		got, err := Run(Request[int]{Original: []int{1}, Edited: []int{2}})
		if err != nil {
			t.Fatalf("Run(...) failed: %v", err)
		}
		if !got.Truncated || got.Len() != 0 {
			t.Errorf("Run(...) = %+v, want empty truncated script", got)
		}
	})

	t.Run("presorted", func(t *testing.T) {
		req := NewRequest([]int{1, 3, 5}, []int{1, 2, 3, 5, 6})
		req.Presorted = true
		got, err := Run(req)
		if err != nil {
			t.Fatalf("Run(...) failed: %v", err)
		}
		if diff := gocmp.Diff("R 2 2\nR 4 6\n", got.String()); diff != "" {
			t.Errorf("Run(...).String() differs [-want,+got]:\n%s", diff)
		}
	})
}

func TestScriptString(t *testing.T) {
	s := &Script[string]{
		Edits: []Edit[string]{
			{Insert, 3, "b"},
			{Delete, 1, "c"},
			{Delete, 2, "b"},
			{Insert, 1, "a"},
		},
	}
	if diff := gocmp.Diff("R 3 b\nL 1 c\nL 2 b\nR 1 a\n", s.String()); diff != "" {
		t.Errorf("String() differs [-want,+got]:\n%s", diff)
	}
	if diff := gocmp.Diff("R 1 a\nL 2 b\nR 3 b\nL 1 c\n", s.SortedString(strings.Compare)); diff != "" {
		t.Errorf("SortedString(...) differs [-want,+got]:\n%s", diff)
	}
	// SortedString must not reorder the script itself.
	if s.Edits[0].Pos != 3 {
		t.Errorf("SortedString(...) modified the script: %v", s.Edits)
	}

	var empty Script[int]
	if got := empty.String(); got != "" {
		t.Errorf("String() of empty script = %q, want empty string", got)
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{Delete: "Delete", Insert: "Insert", Op(7): "Op(7)"} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", int(op), got, want)
		}
	}
}

func TestProperties(t *testing.T) {
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := randomInts(rng, 80, 1+rng.IntN(8))
			y := randomInts(rng, 80, 1+rng.IntN(8))

			got := Diff(x, y)
			if diff := gocmp.Diff(got, Diff(x, y)); diff != "" {
				t.Errorf("Diff(...) is not deterministic [-first,+second]:\n%s", diff)
			}
			if self := Diff(x, x); self.Len() != 0 || self.Truncated {
				t.Errorf("Diff(x, x) = %v, want no edits", self)
			}
			if want := distance(x, y); got.Len() != want {
				t.Errorf("Diff(...) has %d edits, want %d", got.Len(), want)
			}

			applied, err := patch.Apply(x, y, toEdits(got))
			if err != nil {
				t.Fatalf("failed to apply edit script: %v", err)
			}
			if diff := gocmp.Diff(y, applied, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("applying edit script produced different result [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestProperties_sorted(t *testing.T) {
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := randomSet(rng, 60)
			y := randomSet(rng, 60)

			general := Diff(x, y)
			merged := Diff(x, y, Presorted())
			sorted := cmpopts.SortSlices(cmp.Less[int])
			if diff := gocmp.Diff(general.Insertions, merged.Insertions, sorted, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("insertions differ [-general,+presorted]:\n%s", diff)
			}
			if diff := gocmp.Diff(general.Deletions, merged.Deletions, sorted, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("deletions differ [-general,+presorted]:\n%s", diff)
			}

			// The longest common subsequence of two sets is unique, so reversing the direction of
			// the comparison flips every edit.
			reversed := Diff(y, x)
			if diff := gocmp.Diff(general.Insertions, reversed.Deletions, sorted, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("insertions differ from reversed deletions [-x->y,+y->x]:\n%s", diff)
			}
			if diff := gocmp.Diff(general.Deletions, reversed.Insertions, sorted, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("deletions differ from reversed insertions [-x->y,+y->x]:\n%s", diff)
			}
		})
	}
}

func TestProperties_limit(t *testing.T) {
	rng := rand.New(rand.NewChaCha8([32]byte{}))
	x := randomInts(rng, 100, 5)
	y := randomInts(rng, 100, 5)
	full := Diff(x, y)
	prev := full.Len()
	for limit := full.Len() + 1; limit >= 0; limit-- {
		got := Diff(x, y, Limit(limit))
		if got.Len() > prev {
			t.Errorf("Limit(%d): %d edits, more than %d with a higher limit", limit, got.Len(), prev)
		}
		if got.Truncated != (limit < full.Len()) {
			t.Errorf("Limit(%d): Truncated = %v with %d edits in total", limit, got.Truncated, full.Len())
		}
		if !slices.Equal(got.Edits, full.Edits[:got.Len()]) {
			t.Errorf("Limit(%d): edits are not a prefix of the full script", limit)
		}
		prev = got.Len()
	}
}

// toEdits converts a script from the default algorithm back to its internal representation.
func toEdits[T any](s *Script[T]) edits.Script {
	es := edits.Script{Truncated: s.Truncated}
	for _, e := range s.Edits {
		switch e.Op {
		case Delete:
			es.Delete(e.Pos-1, e.Pos)
		case Insert:
			es.Insert(e.Pos-1, e.Pos)
		}
	}
	return es
}

func distance[T comparable](x, y []T) int {
	lcs := make([][]int, len(x)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(y)+1)
	}
	for i := range x {
		for j := range y {
			if x[i] == y[j] {
				lcs[i+1][j+1] = lcs[i][j] + 1
			} else {
				lcs[i+1][j+1] = max(lcs[i][j+1], lcs[i+1][j])
			}
		}
	}
	return len(x) + len(y) - 2*lcs[len(x)][len(y)]
}

func randomInts(rng *rand.Rand, n, alphabet int) []int {
	out := make([]int, rng.IntN(n+1))
	for i := range out {
		out[i] = rng.IntN(alphabet)
	}
	return out
}

// randomSet returns a sorted slice of distinct integers.
func randomSet(rng *rand.Rand, n int) []int {
	var out []int
	for i := range n {
		if rng.IntN(2) == 0 {
			out = append(out, i)
		}
	}
	return out
}

func BenchmarkDiff(b *testing.B) {
	rng := rand.New(rand.NewChaCha8([32]byte{}))
	x := make([]int, 10_000)
	for i := range x {
		x[i] = rng.IntN(100)
	}
	y := slices.Clone(x)
	for range 100 {
		y[rng.IntN(len(y))] = rng.IntN(100)
	}

	b.Run("myers", func(b *testing.B) {
		for b.Loop() {
			Diff(x, y)
		}
	})

	sx, sy := slices.Sorted(slices.Values(x)), slices.Sorted(slices.Values(y))
	b.Run("presorted", func(b *testing.B) {
		for b.Loop() {
			Diff(sx, sy, Presorted())
		}
	})
}
