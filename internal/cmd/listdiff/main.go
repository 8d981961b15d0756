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

// listdiff compares two text files line by line and prints the edit script.
//
// Usage:
//
//	listdiff [flags] <x> <y>
//	listdiff [flags] -txtar <file>
//
// Every edit is printed on its own line, "L pos line" for lines deleted from x and "R pos line"
// for lines inserted from y. The exit code is 1 if the files differ and 2 on errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
	"znkr.io/listdiff"
	"znkr.io/listdiff/textdiff"
)

type config struct {
	limit       int
	presorted   bool
	sorted      bool
	ignoreSpace bool
	txtar       string
	x, y        string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.limit, "limit", listdiff.NoLimit, "maximum number of edits, negative for no limit")
	flag.BoolVar(&cfg.presorted, "presorted", false, "inputs are sorted, compare them in a single pass")
	flag.BoolVar(&cfg.sorted, "sorted", false, "print edits ordered by line content")
	flag.BoolVar(&cfg.ignoreSpace, "ignore-space", false, "ignore leading and trailing whitespace")
	flag.StringVar(&cfg.txtar, "txtar", "", "read x and y from a txtar archive instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: listdiff [flags] -txtar <file>\n")
			os.Exit(2)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: listdiff [flags] <x> <y>\n")
			os.Exit(2)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	differ, err := run(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if differ {
		os.Exit(1)
	}
}

// run writes the report to w and returns whether the inputs differ.
func run(cfg config, w io.Writer) (bool, error) {
	x, y, err := readInputs(cfg)
	if err != nil {
		return false, err
	}

	opts := []listdiff.Option{listdiff.Limit(cfg.limit)}
	if cfg.presorted {
		opts = append(opts, listdiff.Presorted())
	}
	if cfg.ignoreSpace {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}
	script := textdiff.Lines(x, y, opts...)

	report := script.String()
	if cfg.sorted {
		compare := strings.Compare
		if cfg.ignoreSpace {
			compare = func(a, b string) int {
				return strings.Compare(strings.TrimSpace(a), strings.TrimSpace(b))
			}
		}
		report = script.SortedString(compare)
	}
	if _, err := io.WriteString(w, report); err != nil {
		return false, err
	}
	if script.Truncated {
		if _, err := fmt.Fprintf(w, "truncated after %d edits\n", script.Len()); err != nil {
			return false, err
		}
	}
	return script.Len() > 0 || script.Truncated, nil
}

func readInputs(cfg config) (x, y []byte, err error) {
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return nil, nil, err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = f.Data
			case "y":
				y = f.Data
			}
		}
		return x, y, nil
	}

	x, err = os.ReadFile(cfg.x)
	if err != nil {
		return nil, nil, err
	}
	y, err = os.ReadFile(cfg.y)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
