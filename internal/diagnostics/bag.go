// Package diagnostics collects the warnings the core surfaces about
// malformed input (braces or parens left unbalanced at end of file, and,
// with Config.Debug, a stack that ran empty on a stray closing brace).
// Per the error handling design the core never stops
// on these; it clamps state and keeps going. The bag exists so a caller can
// still see what happened without the hot path paying for it.
package diagnostics

import (
	"fmt"
	"io"
	"sync"

	"github.com/redorca/astyle-github/colors"
)

// Severity classifies a diagnostic. The core only ever emits Warning; Error
// is reserved for callers building on top of it (an option resolver, say)
// that do want to fail hard.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one recorded observation, anchored to the line it was
// noticed on. File is optional; a caller processing a single in-memory
// buffer can leave it blank.
type Diagnostic struct {
	Severity Severity
	File     string
	Line     int
	Message  string
}

// Bag accumulates diagnostics across a beautify session. It is safe for
// concurrent use because nothing about the contract in §5 forbids a caller
// from formatting several independent files on separate goroutines, each
// with its own Bag.
type Bag struct {
	mu    sync.Mutex
	items []Diagnostic
	warn  int
	errs  int
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Warn records a non-fatal observation at the given line.
func (b *Bag) Warn(file string, line int, format string, args ...any) {
	b.add(Diagnostic{Severity: Warning, File: file, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Error records a fatal observation. The core itself never calls this; it
// is here for embedding callers (e.g. an option resolver) that want the
// same reporting shape for harder failures.
func (b *Bag) Error(file string, line int, format string, args ...any) {
	b.add(Diagnostic{Severity: Error, File: file, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (b *Bag) add(d Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, d)
	if d.Severity == Error {
		b.errs++
	} else {
		b.warn++
	}
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errs > 0
}

// Items returns a snapshot of the recorded diagnostics in insertion order.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// EmitTo writes every diagnostic to w, colorized by severity, one per line.
func (b *Bag) EmitTo(w io.Writer) {
	for _, d := range b.Items() {
		c := colors.ORANGE
		if d.Severity == Error {
			c = colors.RED
		}
		loc := d.File
		if d.Line > 0 {
			if loc != "" {
				loc = fmt.Sprintf("%s:%d", loc, d.Line)
			} else {
				loc = fmt.Sprintf("line %d", d.Line)
			}
		}
		if loc != "" {
			c.Fprintf(w, "%s: %s: %s\n", d.Severity, loc, d.Message)
		} else {
			c.Fprintf(w, "%s: %s\n", d.Severity, d.Message)
		}
	}
}
