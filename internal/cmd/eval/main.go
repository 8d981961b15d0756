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

// eval validates the diffing algorithms against the history of a git repository.
//
// For every file changed by a commit, the old and new version are split into lines and compared.
// The resulting edit scripts are applied to the old version to check that they reproduce the new
// version. Scripts computed with a limit must be a prefix of the unlimited script. The sorted lines
// are used to check that the merge algorithm finds as many edits as the Myers algorithm.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"znkr.io/listdiff/internal/byteview"
	"znkr.io/listdiff/internal/cmd/eval/internal/git"
	"znkr.io/listdiff/internal/edits"
	"znkr.io/listdiff/internal/merge"
	"znkr.io/listdiff/internal/myers"
	"znkr.io/listdiff/internal/patch"
)

type config struct {
	repo     string
	sample   int
	parallel int
	limit    int
	stats    string
	validate bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.IntVar(&cfg.limit, "limit", 10, "edit limit used to check truncated scripts")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.BoolVar(&cfg.validate, "validate", true, "if validation should be performed")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

type change struct {
	commitID string
	filename string
	old, new string
}

func (c change) String() string { return c.commitID + ":" + c.filename }

type result struct {
	change
	variant   string
	N, M      int
	D         int
	truncated bool
	duration  time.Duration
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var commitsDone atomic.Int64
	var processed atomic.Int64

	var stats *os.File
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
	}

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}

	commitIDs, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("reading rev-list: %v", err)
	}

	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		perm := rand.Perm(len(commitIDs))[:cfg.sample]
		sample := make([]string, 0, cfg.sample)
		for _, i := range perm {
			sample = append(sample, commitIDs[i])
		}
		commitIDs = sample
	}

	// Read changes.
	changes := make(chan change)
	var readers errgroup.Group
	chunkSize := max(1, len(commitIDs)/(4*runtime.GOMAXPROCS(0)))
	for chunk := range slices.Chunk(commitIDs, chunkSize) {
		readers.Go(func() error {
			for _, commitID := range chunk {
				files, err := repo.Changes(commitID)
				if err != nil {
					return fmt.Errorf("reading commit %s: %v", commitID, err)
				}
				for _, file := range files {
					if strings.HasSuffix(file.Name, ".zip") || strings.HasSuffix(file.Name, ".syso") {
						continue
					}
					c := change{commitID: commitID, filename: file.Name}
					if c.old, err = repo.Contents(file.OldID); err != nil {
						return fmt.Errorf("reading %v: %v", c, err)
					}
					if c.new, err = repo.Contents(file.NewID); err != nil {
						return fmt.Errorf("reading %v: %v", c, err)
					}
					changes <- c
				}
				commitsDone.Add(1)
			}
			return nil
		})
	}

	// Evaluate changes.
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	var evaluators errgroup.Group
	for range cfg.parallel {
		evaluators.Go(func() error {
			for c := range changes {
				for _, msg := range evaluate(c, cfg, results) {
					notes <- note{c.String(), msg}
				}
				processed.Add(1)
			}
			return nil
		})
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(max(1, len(commitIDs)))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var commitsPerSec, procPerSec int
		if commits > 0 {
			commitsPerSec = int((time.Duration(commits) * time.Second) / time.Since(start))
		}
		if processed > 0 {
			procPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d evals/s) ", width, bar, 100*progress, commitsPerSec, procPerSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsWG sync.WaitGroup
	if results != nil {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("commit_id,file,variant,N,M,D,truncated,duration_ns\n")
			for r := range results {
				_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%d,%d,%t,%d\n", r.commitID, r.filename, r.variant, r.N, r.M, r.D, r.truncated, r.duration.Nanoseconds())
				if err != nil {
					notes <- note{r.change.String(), fmt.Sprintf("failed to write stats: %v", err)}
				}
			}
			if err := w.Flush(); err != nil {
				notes <- note{"", fmt.Sprintf("failed to flush stats: %v", err)}
			}
		}()
	}

	// Shutdown
	readErr := readers.Wait()
	close(changes)
	evaluators.Wait()
	if results != nil {
		close(results)
		statsWG.Wait()
	}
	close(done)
	ioWG.Wait()

	if err := repo.Close(); err != nil && readErr == nil {
		return fmt.Errorf("closing git repository: %v", err)
	}
	return readErr
}

// evaluate compares the old and new version of a file with all variants and returns a message for
// every problem found.
func evaluate(c change, cfg *config, results chan<- result) []string {
	x := byteview.SplitLines(byteview.From(c.old))
	y := byteview.SplitLines(byteview.From(c.new))
	sx, sy := slices.Sorted(slices.Values(x)), slices.Sorted(slices.Values(y))

	variants := []struct {
		name string
		x, y []string
		diff func(x, y []string) edits.Script
	}{
		{"myers", x, y, func(x, y []string) edits.Script {
			return myers.Diff(x, y, strings.Compare, -1)
		}},
		{"limit", x, y, func(x, y []string) edits.Script {
			return myers.Diff(x, y, strings.Compare, cfg.limit)
		}},
		{"sorted-myers", sx, sy, func(x, y []string) edits.Script {
			return myers.Diff(x, y, strings.Compare, -1)
		}},
		{"sorted-merge", sx, sy, func(x, y []string) edits.Script {
			return merge.Diff(x, y, strings.Compare)
		}},
	}

	var msgs []string
	scripts := make(map[string]edits.Script, len(variants))
	for _, v := range variants {
		start := time.Now()
		es := v.diff(v.x, v.y)
		duration := time.Since(start)
		scripts[v.name] = es
		if results != nil {
			results <- result{
				change:    c,
				variant:   v.name,
				N:         len(v.x),
				M:         len(v.y),
				D:         len(es.Ops),
				truncated: es.Truncated,
				duration:  duration,
			}
		}
		if !cfg.validate || es.Truncated || v.name == "sorted-merge" {
			continue
		}
		got, err := patch.Apply(v.x, v.y, es)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("%s: failed to apply script: %v", v.name, err))
			continue
		}
		if !slices.Equal(got, v.y) {
			msgs = append(msgs, fmt.Sprintf("%s: result is different after applying script", v.name))
		}
	}
	if !cfg.validate {
		return msgs
	}

	full, limited := scripts["myers"], scripts["limit"]
	if limited.Truncated != (len(full.Ops) > cfg.limit) {
		msgs = append(msgs, fmt.Sprintf("limit: truncated = %t with %d edits and limit %d", limited.Truncated, len(full.Ops), cfg.limit))
	}
	if len(limited.Ops) > len(full.Ops) || !slices.Equal(limited.Ops, full.Ops[:len(limited.Ops)]) {
		msgs = append(msgs, "limit: script is not a prefix of the unlimited script")
	}
	if m, s := len(scripts["sorted-merge"].Ops), len(scripts["sorted-myers"].Ops); m != s {
		msgs = append(msgs, fmt.Sprintf("sorted: merge found %d edits, myers found %d", m, s))
	}
	return msgs
}
