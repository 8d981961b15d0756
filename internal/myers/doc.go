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

// Package myers contains an implementation of Myers' algorithm.
//
// The implementation uses the linear space refinement from section 4b of the paper: Instead of
// remembering every furthest reaching path, it searches forwards from the start and backwards from
// the end at the same time until both searches meet in a "middle snake". The middle snake is part
// of an optimal path, so the problem can be split in two smaller problems before and after it.
//
// The runtime is O(ND) where N is the sum of the length of both inputs and D is the number of
// differences. Optionally, the search can be truncated when the number of edits exceeds a limit.
//
// # Edit graph
//
// For x = "abc" and y = "axc", all possible edits from x to y form a grid. Moving right (along x)
// deletes an element of x, moving down (along y) inserts an element of y. Where x[s] == y[t],
// there's an additional diagonal edge from (s, t) to (s+1, t+1) that represents a match:
//
//	(0,0)   a   b   c
//	    ┌───┬───┬───┐ 0
//	 a  │ ╲ │   │   │
//	    ├───┼───┼───┤ 1
//	 x  │   │   │   │
//	    ├───┼───┼───┤ 2
//	 c  │   │   │ ╲ │
//	    └───┴───┴───┘ 3
//	    0   1   2   3   (3,3)
//
// An optimal edit script is a path from (0,0) to (3,3) with the fewest horizontal and vertical
// edges. Here: match a, insert x, delete b, match c.
//
// Diagonal k contains all points (s, t) with s-t == k. A path with d horizontal or vertical edges
// (a d-path) ends on one of the diagonals -d, -d+2, ..., d. The search remembers, for every
// diagonal, the s coordinate of the furthest point that a d-path reaches on it, the t coordinate
// follows from t = s-k. The backwards search does the same for paths from the end of the grid
// and is centered around diagonal delta = len(x)-len(y).
//
// # Snakes
//
// A snake is one horizontal or vertical edge followed by a, possibly empty, run of diagonal edges.
// A snake found by the forward search starts with the edge (start to mid) and ends with the
// diagonals (mid to end). A snake found by the backward search is stored in forward orientation:
// the diagonals (start to mid) are followed by the edge (mid to end).
//
// The forward and backward searches can only meet on a common diagonal when the total number of
// edits has the right parity: for odd delta the forward search detects the overlap, for even delta
// the backward search does.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
