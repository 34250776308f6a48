// Package format implements the character/token-level formatting stage
// (§2, §4.1): quote/comment/preprocessor recognition, brace
// classification and placement, pointer/reference alignment, operator
// padding, and embedded directive handling. It owns the Formatter's
// private classification stacks (§3) and drives the Beautifier
// directly, line by line, the way spec.md §2 describes the two stages
// being wired together by the pipeline rather than run independently.
package format

import (
	"strings"

	"github.com/redorca/astyle-github/internal/beautify"
	"github.com/redorca/astyle-github/internal/diagnostics"
	"github.com/redorca/astyle-github/internal/langtable"
	"github.com/redorca/astyle-github/internal/lineinfo"
	"github.com/redorca/astyle-github/internal/srcstream"
	"github.com/redorca/astyle-github/internal/style"
)

// Formatter is the character/token-level stage. One Formatter is bound
// to one input stream and one resolved Config for the lifetime of a
// single file (§2).
type Formatter struct {
	src  srcstream.SourceIterator
	peek *srcstream.PeekStream
	tab  *langtable.Tables
	cfg  style.Config
	beau *beautify.Beautifier
	diag *diagnostics.Bag

	pending []string

	// Cross-line scanner state (§4.1's "primary state").
	inBlockComment bool
	indentOff      bool

	// Formatter's own classification stacks (§3); distinct from the
	// Beautifier's indentation stacks.
	braceTypeStack []lineinfo.BraceType

	// bracketKindStack tracks, for each currently-open `[`, whether it
	// was classified as an Objective-C message send (lineinfo.Paren) or
	// an ordinary array subscript (lineinfo.Bracket), so the matching
	// `]` reports the same kind it was opened with.
	bracketKindStack []lineinfo.ParenKind

	// Per-statement scan state. stmtHeader and sawAssign reset at `{`,
	// `}`, and a `;` outside parens; parenDepth tracks paren nesting and
	// is not reset at those tokens.
	stmtHeader *langtable.Header
	sawAssign  bool
	parenDepth int

	fileLine int // 1-based physical line counter, for diagnostics

	checksumIn  uint64
	checksumOut uint64
}

// New builds a Formatter reading from src and immediately constructs the
// Beautifier it drives (§2). diag receives non-fatal warnings from both
// stages (§7).
func New(src srcstream.SourceIterator, cfg style.Config, diag *diagnostics.Bag) *Formatter {
	tab := langtable.For(cfg.FileType)
	return &Formatter{
		src:  src,
		peek: srcstream.New(src),
		tab:  tab,
		cfg:  cfg,
		beau: beautify.New(cfg, tab, diag),
		diag: diag,
	}
}

// assertf records a non-fatal diagnostic when Config.Debug is on and the
// core is about to silently clamp state it can't make sense of (a stray
// closing brace/bracket with nothing on its matching stack). Debug is
// off by default, so a caller pays nothing for this unless they asked
// for it (§7's "assertions in debug mode").
func (f *Formatter) assertf(format string, args ...any) {
	if !f.cfg.Debug {
		return
	}
	f.diag.Warn("", f.fileLine, format, args...)
}

// ChecksumIn and ChecksumOut back the round-trip invariant of §8.
func (f *Formatter) ChecksumIn() uint64  { return f.checksumIn }
func (f *Formatter) ChecksumOut() uint64 { return f.checksumOut }

// HasMoreLines reports whether NextLine has anything left to return.
func (f *Formatter) HasMoreLines() bool {
	return len(f.pending) > 0 || f.src.HasMoreLines()
}

// NextLine returns the next fully formatted-and-beautified line, or
// ok=false once the stream and pending queue are both exhausted. A
// single raw physical line can expand into more than one formatted line
// (e.g. splitting `if (x) {` under BREAK) so the queue absorbs that
// fan-out between calls.
func (f *Formatter) NextLine() (string, bool) {
	for len(f.pending) == 0 {
		raw, ok := f.nextRawLine()
		if !ok {
			return "", false
		}
		for _, fl := range f.scanLine(raw) {
			bl := f.beau.Beautify(fl)
			f.checksumOut += NonWhitespaceSum(bl)
			f.pending = append(f.pending, bl)
		}
	}
	line := f.pending[0]
	f.pending = f.pending[1:]
	return line, true
}

func (f *Formatter) nextRawLine() (string, bool) {
	raw, ok := f.src.NextLine(false)
	if !ok {
		return "", false
	}
	f.fileLine++
	if f.cfg.ConvertTabs {
		raw = convertTabsToSpaces(raw, f.cfg.TabLength)
	}
	f.checksumIn += NonWhitespaceSum(raw)

	for {
		merged, ok := f.tryMergeForward(raw)
		if !ok {
			break
		}
		raw = merged
	}
	return raw, true
}

// tryMergeForward is closing-header look-ahead (§4.1.3): it joins raw with
// the next physical line, using f.peek so the join can be undone, when the
// next line is either a lone opening brace waiting to attach to raw's
// still-open statement header (the ordinary Allman/GNU shape), or a
// cuddled else/catch/finally/while waiting to attach to raw's trailing
// `}`. It never decides placement itself — layoutTokens' existing
// per-brace-type placement and mode-gated cuddle checks, already correct
// for input written on one physical line, make that call once the merged
// text reaches them. A join that "shouldn't" attach is simply flushed
// back apart there under every BraceFormatMode except BraceNone, which
// resolves to attach and so keeps a joined `{` on its header's line.
func (f *Formatter) tryMergeForward(raw string) (string, bool) {
	if f.inBlockComment || f.indentOff {
		return "", false
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	toks, stillOpen := newLineScanner(raw, f.tab).scanTokens(false)
	if stillOpen || len(toks) == 0 {
		return "", false
	}
	last := toks[len(toks)-1]

	wantsOpenBrace := !endsStatement(last)
	wantsCuddle := last.Kind == TPunct && last.Text == "}"
	if !wantsOpenBrace && !wantsCuddle {
		return "", false
	}
	if !f.src.HasMoreLines() {
		return "", false
	}

	cp := f.peek.Mark()
	next, ok := f.peek.Next()
	if !ok {
		return "", false
	}
	if f.cfg.ConvertTabs {
		next = convertTabsToSpaces(next, f.cfg.TabLength)
	}

	merge := (wantsOpenBrace && opensBraceOnly(f.tab, next)) ||
		(wantsCuddle && cuddlesWithNext(f.tab, next))
	if !merge {
		f.peek.Restore(cp)
		return "", false
	}

	f.fileLine++
	f.checksumIn += NonWhitespaceSum(next)
	return raw + " " + strings.TrimSpace(next), true
}

// endsStatement reports whether tok closes out what precedes it well
// enough that nothing on the following physical line could still belong
// to the same statement or block header.
func endsStatement(tok Token) bool {
	switch tok.Kind {
	case TComment, TLineComment:
		return true
	case TPunct:
		switch tok.Text {
		case ";", "{", "}":
			return true
		}
	}
	return false
}

// opensBraceOnly reports whether next holds nothing but a single opening
// brace, the shape a dangling statement header pulls onto its own line.
func opensBraceOnly(tab *langtable.Tables, next string) bool {
	toks, stillOpen := newLineScanner(next, tab).scanTokens(false)
	if stillOpen || len(toks) != 1 {
		return false
	}
	return toks[0].Kind == TPunct && toks[0].Text == "{"
}

// cuddlesWithNext reports whether next opens with an else/catch/finally/
// while header, the shape a preceding `}` cuddles against.
func cuddlesWithNext(tab *langtable.Tables, next string) bool {
	toks, stillOpen := newLineScanner(next, tab).scanTokens(false)
	if stillOpen || len(toks) == 0 {
		return false
	}
	return isCuddleHeader(toks[0].Header)
}

// StacksBalanced reports whether every brace opened in the stream was
// closed by EOF (§7's "unbalanced input" case, surfaced non-fatally
// rather than causing a panic).
func (f *Formatter) StacksBalanced() bool {
	return len(f.braceTypeStack) == 0 && len(f.bracketKindStack) == 0 && f.beau.StacksBalanced()
}
