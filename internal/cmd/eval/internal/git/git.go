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

// Package git reads commits and file contents from a repository by shelling out to git.
package git

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// zeroID is used by git for the missing side of an added or deleted file.
const zeroID = "0000000000000000000000000000000000000000"

// Repo is an open repository. It's safe for concurrent use.
type Repo struct {
	dir string

	mu  sync.Mutex // guards cat
	cat *catFile
}

// Open opens the repository in dir.
func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cat, err := startCatFile(dir)
	if err != nil {
		return nil, err
	}
	return &Repo{dir: dir, cat: cat}, nil
}

// Close stops the background git process.
func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cat.close()
}

// RevList returns the IDs of all non-merge commits reachable from HEAD.
func (r *Repo) RevList() ([]string, error) {
	out, err := git("-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// Change is a file modified by a commit.
type Change struct {
	Name  string
	OldID string // zeroID if the file was added
	NewID string // zeroID if the file was deleted
}

// Changes returns the files modified by commit relative to its first parent.
func (r *Repo) Changes(commit string) ([]Change, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	var changes []Change
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		// :<old mode> <new mode> <old id> <new id> <status>\t<name>
		meta, name, ok := strings.Cut(line, "\t")
		if !ok || !strings.HasPrefix(meta, ":") {
			return nil, fmt.Errorf("unexpected diff-tree line: %q", line)
		}
		fields := strings.Fields(meta[1:])
		if len(fields) != 5 {
			return nil, fmt.Errorf("unexpected diff-tree line: %q", line)
		}
		changes = append(changes, Change{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return changes, nil
}

// Contents returns the contents of the blob with the given ID. The zero ID has empty contents.
func (r *Repo) Contents(id string) (string, error) {
	if id == zeroID {
		return "", nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cat.contents(id)
}

func git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %v\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}

// catFile is a long running "git cat-file --batch" process.
type catFile struct {
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

func startCatFile(dir string) (*catFile, error) {
	cmd := exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %v", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %v", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %v", err)
	}
	return &catFile{cmd: cmd, in: in, out: bufio.NewReader(out)}, nil
}

func (c *catFile) contents(id string) (string, error) {
	if _, err := fmt.Fprintf(c.in, "%s\n", id); err != nil {
		return "", fmt.Errorf("requesting %s: %v", id, err)
	}
	header, err := c.out.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading header for %s: %v", id, err)
	}
	// <id> <type> <size>
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return "", fmt.Errorf("unexpected header for %s: %q", id, header)
	}
	if fields[0] != id {
		return "", fmt.Errorf("ids don't match %s vs %s", fields[0], id)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", fmt.Errorf("invalid size for %s: %v", id, err)
	}
	// Contents are followed by a newline.
	buf := make([]byte, n+1)
	if _, err := io.ReadFull(c.out, buf); err != nil {
		return "", fmt.Errorf("reading contents of %s: %v", id, err)
	}
	return string(buf[:n]), nil
}

func (c *catFile) close() error {
	c.in.Close()
	return c.cmd.Wait()
}
