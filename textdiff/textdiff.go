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

// Package textdiff provides functions to compare text line by line.
package textdiff

import (
	"strings"

	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/byteview"
	"znkr.io/listdiff/internal/config"
)

const allowed = config.Limit | config.Presorted | config.IgnoreWhitespace | config.Sorted

// Lines compares the lines in x and y and returns the edit script to transform one into the
// other. The lines in the script don't contain the trailing newline character and a missing
// newline at the end of the input is ignored.
//
// For []byte inputs, the lines in the script share memory with x and y. The inputs must not be
// modified while the script is in use.
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted],
// [textdiff.IgnoreWhitespace]
func Lines[T string | []byte](x, y T, opts ...listdiff.Option) *listdiff.Script[string] {
	cfg := config.FromOptions(opts, allowed&^config.Sorted)
	return lines(x, y, cfg)
}

func lines[T string | []byte](x, y T, cfg config.Config) *listdiff.Script[string] {
	xlines := byteview.SplitLines(byteview.From(x))
	ylines := byteview.SplitLines(byteview.From(y))

	// The options are validated already, only the ones that the listdiff package understands are
	// passed on.
	var lopts []listdiff.Option
	if cfg.Limit != config.NoLimit {
		lopts = append(lopts, listdiff.Limit(cfg.Limit))
	}
	if cfg.Presorted {
		lopts = append(lopts, listdiff.Presorted())
	}
	return listdiff.DiffFunc(xlines, ylines, compareFunc(cfg), lopts...)
}

func compareFunc(cfg config.Config) func(a, b string) int {
	if cfg.IgnoreWhitespace {
		return func(a, b string) int {
			return strings.Compare(strings.TrimSpace(a), strings.TrimSpace(b))
		}
	}
	return strings.Compare
}

// Report compares the lines in x and y and returns the edit script as text, with one edit per
// line: "L pos line" for deleted lines and "R pos line" for inserted lines.
//
// If the search was truncated, the report only contains the edits found until then. Use [Lines]
// to find out if a diff was truncated.
//
// The following options are supported: [listdiff.Limit], [listdiff.Presorted],
// [textdiff.IgnoreWhitespace], [textdiff.Sorted]
func Report[T string | []byte](x, y T, opts ...listdiff.Option) T {
	cfg := config.FromOptions(opts, allowed)
	s := lines(x, y, cfg)

	if cfg.Sorted {
		return T(s.SortedString(compareFunc(cfg)))
	}
	return T(s.String())
}
