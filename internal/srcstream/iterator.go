// Package srcstream provides the SourceIterator the core is written
// against (§4, §6) and the checkpoint-capable PeekStream built on top of
// it (§4.3). Per spec.md §1 file discovery, encoding detection, and BOM
// handling are external collaborators; this package's iterator only
// knows how to walk lines already decoded into strings.
package srcstream

import (
	"bufio"
	"io"
	"strings"
)

// SourceIterator is the contract the core requires of anything that
// yields lines to it (§6). tell()/streamLength() are exposed as line
// indices here — a beautifier only ever needs relative progress, not a
// byte offset, and a line index is what PeekStream needs to checkpoint.
type SourceIterator interface {
	HasMoreLines() bool
	// NextLine returns the next line and advances. emptyLineWasDeleted
	// tells the iterator that the *previous* line it returned was an
	// empty line the caller chose to drop (delete_empty_lines); some
	// iterators use this to avoid inserting a synthetic blank marker on
	// the following peek. The in-memory iterator here ignores it — it
	// has nothing to compensate for — but the parameter is part of the
	// contract so alternate iterators (e.g. one reading incrementally
	// from a pipe) can act on it.
	NextLine(emptyLineWasDeleted bool) (string, bool)
	PeekNextLine() (string, bool)
	Tell() int
	StreamLength() int
	// SeekTo restores the read cursor to a line index previously
	// returned by Tell. It is not part of the historical four-method
	// contract in §6, but PeekStream needs it to implement the
	// checkpoint/restore semantics of §4.3, and every iterator in this
	// module is in-memory so the seek is O(1).
	SeekTo(pos int)
}

// LineIterator is the reference SourceIterator: every line is read into
// memory up front (line discovery/encoding is the driver's job, not
// ours) and walked by index.
type LineIterator struct {
	lines []string
	pos   int
}

// NewLineIterator builds an iterator over pre-split lines.
func NewLineIterator(lines []string) *LineIterator {
	return &LineIterator{lines: lines}
}

// NewLineIteratorFromReader splits r into lines the same way bufio.Scanner
// does (it recognizes "\n" and "\r\n"), discarding the terminator — per
// §6's "without a line terminator" contract the core never writes one;
// pipeline.Result.Text joins the output lines with "\n".
func NewLineIteratorFromReader(r io.Reader) (*LineIterator, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewLineIterator(lines), nil
}

func (it *LineIterator) HasMoreLines() bool {
	return it.pos < len(it.lines)
}

func (it *LineIterator) NextLine(_ bool) (string, bool) {
	if !it.HasMoreLines() {
		return "", false
	}
	line := it.lines[it.pos]
	it.pos++
	return line, true
}

func (it *LineIterator) PeekNextLine() (string, bool) {
	if !it.HasMoreLines() {
		return "", false
	}
	return it.lines[it.pos], true
}

func (it *LineIterator) Tell() int {
	return it.pos
}

func (it *LineIterator) StreamLength() int {
	return len(it.lines)
}

func (it *LineIterator) SeekTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(it.lines) {
		pos = len(it.lines)
	}
	it.pos = pos
}
