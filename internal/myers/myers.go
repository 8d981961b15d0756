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

package myers

import (
	"fmt"

	"znkr.io/listdiff/internal/edits"
)

// Diff compares the contents of x and y and returns a shortest edit script to convert from one to
// the other.
//
// If limit >= 0, the search is abandoned as soon as the number of edits exceeds limit. The
// returned script then contains the edits discovered so far and is marked as truncated.
//
// Deletions are reported at position s+1 for x[s] and insertions at position t+1 for y[t].
func Diff[T any](x, y []T, compare func(a, b T) int, limit int) edits.Script {
	// The middle snake search reads diagonals in [-dmax-1-|delta|, dmax+1+|delta|], where dmax is
	// ⌈(N+M)/2⌉ and |delta| <= N+M. Sub problems are always smaller, so we can size the v-arrays
	// for the full problem once.
	n := len(x) + len(y)
	v0 := n + (n+1)/2 + 1
	vlen := 2*v0 + 1
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m := myers[T]{
		x:       x,
		y:       y,
		compare: compare,
		limit:   limit,
		vf:      buf[:vlen],
		vb:      buf[vlen:],
		v0:      v0,
	}
	complete := m.compute(0, len(x), 0, len(y))
	return m.translate(!complete)
}

type myers[T any] struct {
	// Inputs to compare.
	x, y    []T
	compare func(a, b T) int

	// Maximum number of edits, negative if there's no limit.
	limit int

	// v-arrays for forwards and backwards search respectively. A v-array stores the s-coordinate
	// of the furthest reaching endpoint on diagonal k in v[v0+k].
	vf, vb []int
	v0     int

	// Snakes of the path found so far, in absolute coordinates.
	snakes []snake
}

// direction describes which search found a snake.
type direction uint8

const (
	forward direction = iota
	reverse
)

func (d direction) String() string {
	switch d {
	case forward:
		return "forward"
	case reverse:
		return "reverse"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

type point struct {
	x, y int
}

func (p point) add(o point) point { return point{p.x + o.x, p.y + o.y} }

// snake is a segment of a path through the edit graph, see package documentation.
type snake struct {
	start, mid, end point
	dir             direction
	edits           int // Cumulative number of edits up to and including this snake.
}

func (s snake) offset(o point) snake {
	s.start = s.start.add(o)
	s.mid = s.mid.add(o)
	s.end = s.end.add(o)
	return s
}

// emit appends s to the path. It returns false if s exceeds the edit limit, in which case s is
// dropped and the search must stop.
func (m *myers[T]) emit(s snake) bool {
	if m.limit >= 0 && s.edits > m.limit {
		return false
	}
	m.snakes = append(m.snakes, s)
	return true
}

// edits returns the number of edits of the path found so far.
func (m *myers[T]) edits() int {
	if len(m.snakes) == 0 {
		return 0
	}
	return m.snakes[len(m.snakes)-1].edits
}

// compute appends the snakes of an optimal path from (smin, tmin) to (smax, tmax). The path found
// so far must end in (smin, tmin).
//
// It returns false if the path was truncated.
func (m *myers[T]) compute(smin, smax, tmin, tmax int) bool {
	origin := point{smin, tmin}
	base := m.edits()

	switch {
	case smin == smax && tmin == tmax:
		return true

	case smin == smax:
		// s is empty, therefore everything in tmin to tmax is an insertion.
		for i := range tmax - tmin {
			p := point{smin, tmin + i}
			q := point{smin, tmin + i + 1}
			if !m.emit(snake{p, q, q, forward, base + i + 1}) {
				return false
			}
		}
		return true

	case tmin == tmax:
		// t is empty, therefore everything in smin to smax is a deletion.
		for i := range smax - smin {
			p := point{smin + i, tmin}
			q := point{smin + i + 1, tmin}
			if !m.emit(snake{p, q, q, forward, base + i + 1}) {
				return false
			}
		}
		return true
	}

	ms := m.middleSnake(smin, smax, tmin, tmax)
	switch {
	case ms.edits > 1:
		// Recurse into the rect before and after the middle snake.
		if !m.compute(smin, smin+ms.start.x, tmin, tmin+ms.start.y) {
			return false
		}
		ms = ms.offset(origin)
		ms.edits = m.edits() + 1
		if !m.emit(ms) {
			return false
		}
		return m.compute(ms.end.x, smax, ms.end.y, tmax)

	case ms.edits == 1:
		// A forward snake with exactly one edit: The path is a diagonal to the start of the
		// middle snake followed by the middle snake itself, which runs to (smax, tmax).
		ms = ms.offset(origin)
		if !m.emit(snake{origin, origin, ms.start, ms.dir, base}) {
			return false
		}
		ms.edits = base + 1
		return m.emit(ms)

	case ms.edits == 0:
		// Both ranges are identical.
		ms = ms.offset(origin)
		ms.edits = base
		return m.emit(ms)

	default:
		panic(fmt.Sprintf("encountered middle snake with negative edits: %d", ms.edits))
	}
}

// middleSnake finds a snake in the middle of an optimal path from (smin, tmin) to (smax, tmax). The
// snake is returned relative to (smin, tmin), its edits are the number of edits of the optimal
// path.
//
// Important: x[smin:smax] and y[tmin:tmax] must not be empty.
func (m *myers[T]) middleSnake(smin, smax, tmin, tmax int) snake {
	x, y := m.x[smin:smax], m.y[tmin:tmax]
	N, M := len(x), len(y)
	compare := m.compare
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// There's a path with at most N+M edits, the two searches meet after at most half of them.
	dmax := (N + M + 1) / 2

	// By Corollary 1 of the paper, the optimal number of edits is odd if and only if delta is odd.
	// Depending on that, the overlap can only be detected in the forward or in the backward
	// search.
	delta := N - M
	odd := delta%2 != 0

	// Virtual endpoints of the (-1)-paths, they allow us to handle d=0 without special casing.
	vf[v0+1] = 0
	vb[v0+delta-1] = N

	for d := 0; d <= dmax; d++ {
		// Forwards search.
		for k := -d; k <= d; k += 2 {
			k0 := v0 + k

			// Find the endpoint p of the furthest reaching (d-1)-path we're extending and the
			// point mid after the horizontal or vertical edge.
			var p, mid point
			if k == -d || k != d && vf[k0-1] < vf[k0+1] {
				// Vertical edge from diagonal k+1.
				p = point{vf[k0+1], vf[k0+1] - k - 1}
				mid = point{p.x, p.y + 1}
			} else {
				// Horizontal edge from diagonal k-1.
				p = point{vf[k0-1], vf[k0-1] - k + 1}
				mid = point{p.x + 1, p.y}
			}

			// Follow the diagonal as long as possible.
			q := mid
			for q.x < N && q.y < M && compare(x[q.x], y[q.y]) == 0 {
				q.x++
				q.y++
			}
			vf[k0] = q.x

			// Check for an overlap with a backwards (d-1)-path.
			if odd && delta-(d-1) <= k && k <= delta+(d-1) && vf[k0] >= vb[k0] {
				return snake{p, mid, q, forward, 2*d - 1}
			}
		}

		// Backwards search.
		//
		// This is mostly analogous to the forward search.
		for k := delta - d; k <= delta+d; k += 2 {
			k0 := v0 + k

			var p, mid point
			if k == delta+d || k != delta-d && vb[k0-1] < vb[k0+1] {
				// Vertical edge from diagonal k-1.
				p = point{vb[k0-1], vb[k0-1] - k + 1}
				mid = point{p.x, p.y - 1}
			} else {
				// Horizontal edge from diagonal k+1.
				p = point{vb[k0+1], vb[k0+1] - k - 1}
				mid = point{p.x - 1, p.y}
			}

			q := mid
			for q.x > 0 && q.y > 0 && compare(x[q.x-1], y[q.y-1]) == 0 {
				q.x--
				q.y--
			}
			vb[k0] = q.x

			// Check for an overlap with a forwards d-path.
			if !odd && -d <= k && k <= d && vb[k0] <= vf[k0] {
				if d == 0 {
					// There's no edge in a 0-path, p is the virtual endpoint just outside of
					// the grid.
					p.y--
				}
				return snake{q, mid, p, reverse, 2 * d}
			}
		}
	}
	panic("no middle snake found")
}

// translate converts the snakes into an edit script.
func (m *myers[T]) translate(truncated bool) edits.Script {
	es := edits.Script{Truncated: truncated}
	var s, t int // current position in x and y
	for _, sn := range m.snakes {
		// Find the point after the horizontal or vertical edge. For reverse snakes, the edge is
		// at the end and the diagonals before the edge are skipped.
		var e point
		switch sn.dir {
		case forward:
			e = sn.mid
		case reverse:
			s, t = sn.mid.x, sn.mid.y
			e = sn.end
		default:
			panic("never reached")
		}
		if e.x > s {
			es.Delete(s, e.x)
		} else if e.y > t {
			es.Insert(t, e.y)
		}
		s, t = sn.end.x, sn.end.y
	}
	return es
}
