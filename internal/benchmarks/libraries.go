// Package benchmarks compares listdiff with other diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/listdiff"
	"znkr.io/listdiff/textdiff"
)

// Impl is a diff implementation. Diff returns the number of deleted and inserted lines.
type Impl struct {
	Name string
	Diff func(x, y []byte) int
}

var Impls = []Impl{
	{
		Name: "listdiff",
		Diff: func(x, y []byte) int {
			return textdiff.Lines(x, y).Len()
		},
	},
	{
		Name: "listdiff-func",
		Diff: func(x, y []byte) int {
			xl := strings.SplitAfter(string(x), "\n")
			yl := strings.SplitAfter(string(y), "\n")
			return listdiff.DiffFunc(xl, yl, strings.Compare).Len()
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) int {
			return countUnified(gointernal.Diff("x", x, "y", y))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) int {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			n := 0
			for _, diff := range diffs {
				if diff.Type == diffmatchpatch.DiffEqual {
					continue
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line != "" {
						n++
					}
				}
			}
			return n
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) int {
			n := 0
			for _, line := range strings.Split(godebug.Diff(string(x), string(y)), "\n") {
				if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
					n++
				}
			}
			return n
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) int {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			n := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				n += ch.Del + ch.Ins
			}
			return n
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) int {
			return countUnified([]byte(udiff.Unified("x", "y", string(x), string(y))))
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

// countUnified counts the deleted and inserted lines of a unified diff.
func countUnified(diff []byte) int {
	n := 0
	for _, line := range bytes.Split(diff, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("--- ")) || bytes.HasPrefix(line, []byte("+++ ")) {
			continue
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}
