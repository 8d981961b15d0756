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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// It prints the edit script between the old and the new version of every changed file, for
// example:
//
//	GIT_EXTERNAL_DIFF=${HOME}/go/bin/gitdiff git diff HEAD~1
//
// The number of edits per file can be limited by setting LISTDIFF_LIMIT. Files whose diff was
// truncated are marked in the header.
package main

import (
	"fmt"
	"os"
	"strconv"

	"znkr.io/listdiff"
	"znkr.io/listdiff/textdiff"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	limit := listdiff.NoLimit
	if v := os.Getenv("LISTDIFF_LIMIT"); v != "" {
		var err error
		limit, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing LISTDIFF_LIMIT: %v", err)
		}
	}

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	script := textdiff.Lines(old, new, listdiff.Limit(limit))

	fmt.Printf("diff --git a/%s b/%s\n", path, path)
	fmt.Printf("index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	fmt.Printf("edits %d (%d deletions, %d insertions)", script.Len(), len(script.Deletions), len(script.Insertions))
	if script.Truncated {
		fmt.Printf(", truncated at %d", limit)
	}
	fmt.Println()
	fmt.Print(script)
	return nil
}

func readFile(name string) ([]byte, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(name)
}

func short(hex string) string {
	return hex[:min(10, len(hex))]
}
