// Package pipeline wires the SourceIterator, Formatter (which drives the
// Beautifier directly), and Enhancer together into the single-file
// Compile operation the CLI and tests call (§2, §6). Splitting this
// orchestration out of cmd/astyle keeps the driver logic testable
// without a process boundary, the same separation the teacher's own
// compiler/pipeline split follows.
package pipeline

import (
	"io"
	"strings"

	"github.com/redorca/astyle-github/internal/diagnostics"
	"github.com/redorca/astyle-github/internal/enhance"
	"github.com/redorca/astyle-github/internal/format"
	"github.com/redorca/astyle-github/internal/srcstream"
	"github.com/redorca/astyle-github/internal/style"
)

// Options configures one run of the pipeline over a single file's
// content.
type Options struct {
	Source io.Reader
	Config style.Config
}

// Result is everything a caller needs after formatting one file: the
// finished lines, the round-trip checksums of §8, and any non-fatal
// diagnostics collected along the way.
type Result struct {
	Lines       []string
	ChecksumIn  uint64
	ChecksumOut uint64
	Balanced    bool
	Diagnostics *diagnostics.Bag
}

// Text joins Lines with the terminator implied by cfg.LineEnd, always
// leaving a trailing terminator absent — the host decides whether to
// append a final newline (§6, "the core never writes a line terminator
// of its own").
func (r Result) Text(cfg style.Config) string {
	term := lineTerminator(cfg.LineEnd)
	return strings.Join(r.Lines, term)
}

func lineTerminator(le style.LineEnd) string {
	switch le {
	case style.LineEndWindows:
		return "\r\n"
	case style.LineEndMacOld:
		return "\r"
	default:
		return "\n"
	}
}

// Compile runs the full pipeline over opts.Source and returns the
// formatted result.
func Compile(opts Options) (Result, error) {
	it, err := srcstream.NewLineIteratorFromReader(opts.Source)
	if err != nil {
		return Result{}, err
	}

	diag := diagnostics.NewBag()
	f := format.New(it, opts.Config, diag)

	var lines []string
	for f.HasMoreLines() {
		line, ok := f.NextLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}

	if !f.StacksBalanced() {
		diag.Warn("", 0, "unbalanced braces or parens at end of file")
	}

	e := enhance.New()
	lines = e.EnhanceAll(lines)

	return Result{
		Lines:       lines,
		ChecksumIn:  f.ChecksumIn(),
		ChecksumOut: f.ChecksumOut(),
		Balanced:    f.StacksBalanced(),
		Diagnostics: diag,
	}, nil
}
