// Package source provides ordered string sequences for the merge engine to
// consume: sorted line files and sorted SQLite query results.
//
// Sources follow the bufio.Scanner error discipline: iteration simply stops
// on failure, and the caller checks Err() after the range completes. The
// merge engine never sees or wraps a source error.
//
// Each call to Seq() starts a fresh pass over the underlying data, so a
// source may back any number of merge or join invocations.
package source

import (
	"bufio"
	"fmt"
	"iter"
	"os"
)

// Lines yields the lines of a file in file order. The file is expected to be
// pre-sorted; that is the caller's contract with the merge engine, not
// something Lines checks.
type Lines struct {
	path string
	err  error
}

// NewLines creates a line source for the file at path. The file is opened
// lazily on each pass, not at construction.
func NewLines(path string) *Lines {
	return &Lines{path: path}
}

// Seq returns a fresh single-pass sequence over the file's lines. The file
// handle is released when the sequence ends or the consumer stops early.
func (l *Lines) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		l.err = nil

		f, err := os.Open(l.path)
		if err != nil {
			l.err = fmt.Errorf("open %s: %w", l.path, err)
			return
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			l.err = fmt.Errorf("read %s: %w", l.path, err)
		}
	}
}

// Err reports the first failure of the most recent pass, or nil. Check it
// after the range completes; a pass cut short by the consumer reports nil.
func (l *Lines) Err() error {
	return l.err
}
