// Package beautify implements the line-level indentation stage (§4.2):
// it takes the classified FormattedLines the Formatter produces and
// decides how many indent units each one gets, tracking the header,
// paren, and brace-block stacks that decision depends on. It has no
// dependency on internal/format — the two packages share only the
// neutral internal/lineinfo types — even though the Formatter is the
// one driving a Beautifier directly, line by line (§2).
package beautify

import (
	"strings"

	"github.com/redorca/astyle-github/internal/diagnostics"
	"github.com/redorca/astyle-github/internal/langtable"
	"github.com/redorca/astyle-github/internal/lineinfo"
	"github.com/redorca/astyle-github/internal/style"
)

// blockFrame is one entry of the brace-block stack: what kind of brace
// opened it and the indent level a statement immediately inside it gets.
type blockFrame struct {
	braceType lineinfo.BraceType
	indent    int
	header    *langtable.Header // header this brace attaches to, or nil for a bare `{`
}

// headerFrame is one entry of the header stack (§3, §4.2.1): a header
// awaiting its block, e.g. an `if` that hasn't yet seen its `{` (or its
// single dangling statement).
type headerFrame struct {
	header *langtable.Header
	indent int
	// blockDepth is len(Beautifier.blocks) at the moment this header was
	// pushed. A braceless header's single-statement body always
	// completes back at this same block depth — never while still
	// nested inside some intervening block the body itself opened — so
	// popMatchingHeaders uses it to tell "this pending header's body
	// just finished" apart from "we're still partway through it".
	blockDepth int
}

// Beautifier is the line-level indentation stage. Cloned instances
// (§3, "Cloned beautifier") deep-copy every stack below but share tab
// and diag by reference.
type Beautifier struct {
	tab  *langtable.Tables
	cfg  style.Config
	diag *diagnostics.Bag

	line int // 1-based count of Beautify calls so far, for diagnostics only

	blocks  []blockFrame
	headers []headerFrame

	// parenIndentStack holds the column each currently-open paren
	// implies for continuation lines (§4.2.2).
	parenIndentStack []int

	// continuation state for statements that wrap past their first
	// physical line without an intervening brace (§4.2.2).
	continuationActive bool
	continuationExtra  int

	// preprocIndentStack tracks nested #if/#ifdef/#ifndef so #else/#elif/
	// #endif re-align with their opening #if (§4.2, "Preproc indent
	// stack"), when PreprocConditionalIndent is enabled.
	preprocIndentStack []int

	// cloneStack realizes the "cloned beautifier" for #if/#else/#elif
	// branches (§3, §5): each #if pushes an independent snapshot of every
	// stack above, #else/#elif restore from it, and #endif discards it.
	// A multi-line #define body keeps its own snapshot in defineSnapshot.
	cloneStack []*Beautifier

	pendingDefine  bool        // currently inside a multi-line #define body
	defineSnapshot *Beautifier // stacks as they were before the #define began
}

// New builds a Beautifier for one file. tab and cfg are shared with the
// driving Formatter; diag receives non-fatal warnings (§7).
func New(cfg style.Config, tab *langtable.Tables, diag *diagnostics.Bag) *Beautifier {
	return &Beautifier{tab: tab, cfg: cfg, diag: diag}
}

// StacksBalanced reports whether every stack unwound cleanly, i.e. the
// input's braces were balanced (§7).
func (b *Beautifier) StacksBalanced() bool {
	return len(b.blocks) == 0 && len(b.headers) == 0 && len(b.parenIndentStack) == 0 && len(b.cloneStack) == 0
}

// clone deep-copies every mutable stack; tab, cfg, and diag are shared
// by reference (§3: "resource tables are shared, scope stacks are not").
func (b *Beautifier) clone() *Beautifier {
	nb := &Beautifier{tab: b.tab, cfg: b.cfg, diag: b.diag}
	nb.blocks = append([]blockFrame(nil), b.blocks...)
	nb.headers = append([]headerFrame(nil), b.headers...)
	nb.parenIndentStack = append([]int(nil), b.parenIndentStack...)
	nb.continuationActive = b.continuationActive
	nb.continuationExtra = b.continuationExtra
	nb.preprocIndentStack = append([]int(nil), b.preprocIndentStack...)
	nb.pendingDefine = b.pendingDefine
	return nb
}

func (b *Beautifier) currentIndent() int {
	if n := len(b.blocks); n > 0 {
		return b.blocks[n-1].indent
	}
	return 0
}

func (b *Beautifier) unit() string {
	return b.cfg.IndentString.Unit()
}

// assertf records a non-fatal diagnostic when Config.Debug is on and the
// core is about to silently clamp state it can't make sense of (a stray
// closing brace with nothing on the block stack). Mirrors
// format.Formatter.assertf; the two packages don't share a base type, so
// each carries its own tiny copy rather than introducing a dependency
// just for this (§7's "assertions in debug mode").
func (b *Beautifier) assertf(format string, args ...any) {
	if !b.cfg.Debug {
		return
	}
	b.diag.Warn("", b.line, format, args...)
}

// Beautify computes the indentation for one FormattedLine and returns
// the finished line of text (§4.2). It mutates the block/header/paren
// stacks according to the line's brace/paren/header events, and handles
// the preprocessor-conditional and multi-line-#define cloning rules of
// §3 and §5.
func (b *Beautifier) Beautify(fl lineinfo.FormattedLine) string {
	b.line++
	if fl.IsEmpty {
		if b.cfg.EmptyLineFill {
			return ""
		}
		return ""
	}

	if fl.StartsInComment {
		return fl.Text // continuation of a block comment: never reindent
	}

	if fl.Preproc != lineinfo.PreprocNone {
		return b.beautifyPreproc(fl)
	}

	if b.pendingDefine {
		out := fl.Text
		if b.cfg.PreprocDefineIndent {
			out = b.unit() + fl.Text
		}
		if !fl.PreprocContinue {
			b.pendingDefine = false
			if b.defineSnapshot != nil {
				b.restoreFrom(b.defineSnapshot)
				b.defineSnapshot = nil
			}
		}
		return out
	}

	indent := b.currentIndent()

	switch {
	case fl.BeginsWithCloseBrace:
		// A closing brace dedents to the level of the frame it closes,
		// except under brace_indent/brace_indent_vtk (Whitesmith/VTK's "the
		// brace is itself one indent level, level with its own body"),
		// where it stays level with the body it closes instead.
		if n := len(b.blocks); n > 0 {
			indent = b.blocks[n-1].indent - 1
			if b.cfg.BraceIndent || b.cfg.BraceIndentVtk {
				indent = b.blocks[n-1].indent
			}
		} else {
			b.assertf("stray closing brace with no matching block on the stack")
			indent = 0
		}
	case fl.BeginsWithOpenBrace && (b.cfg.BraceIndent || b.cfg.BraceIndentVtk || b.cfg.BlockIndent):
		// Whitesmith/VTK/GNU all indent a standalone opening brace one
		// level deeper than its header, rather than level with it.
		indent = b.currentIndent() + 1
	case fl.IsCase, fl.IsDefault:
		if b.cfg.CaseIndent {
			indent = b.currentIndent()
		} else {
			indent = b.currentIndent() - 1
		}
	case fl.Colon == lineinfo.ColonAccessModifier:
		indent = b.currentIndent() - 1
	case b.continuationActive:
		indent = b.currentIndent() + b.continuationLevel()
	}
	if indent < 0 {
		indent = 0
	}

	text := b.unit()
	prefix := strings.Repeat(text, indent)
	out := prefix + fl.Text

	b.applyEvents(fl)
	return out
}

// continuationLevel returns how many indent units a wrapped statement
// continuation line gets, honoring MaxContinuationIndent (§6, §4.2.2). A
// continuation of a wrapped `if`/`while`/`for` condition gets its own
// scaled amount per continuationIndentForConditional instead.
func (b *Beautifier) continuationLevel() int {
	n := b.cfg.ContinuationIndent
	if n < 1 {
		n = 1
	}
	if hdr, ok := b.topHeaderIsConditional(); ok {
		n = continuationIndentForConditional(b.cfg, hdr)
	}
	if b.cfg.MaxContinuationIndent > 0 && n > b.cfg.MaxContinuationIndent {
		n = b.cfg.MaxContinuationIndent
	}
	return n
}

// topHeaderIsConditional reports whether the header stack's top entry is
// a PreCommandHeaders member (`if`, `while`, `for`, ...) still awaiting
// its block — the case a wrapped, unclosed `(...)` condition continues.
func (b *Beautifier) topHeaderIsConditional() (*langtable.Header, bool) {
	n := len(b.headers)
	if n == 0 {
		return nil, false
	}
	hdr := b.headers[n-1].header
	if !b.tab.PreCommandHeaders[hdr] {
		return nil, false
	}
	return hdr, true
}

// continuationIndentForConditional scales the extra indent given to a
// wrapped `if (...)`-style condition relative to cfg.ContinuationIndent
// (§6, §9's MinConditionalIndent). hdr is accepted but unused beyond the
// caller having already confirmed it names a conditional header; every
// PreCommandHeaders member is scaled identically.
func continuationIndentForConditional(cfg style.Config, hdr *langtable.Header) int {
	base := cfg.ContinuationIndent
	if base < 1 {
		base = 1
	}
	switch cfg.MinConditionalIndent {
	case style.MinCondZero:
		return 0
	case style.MinCondOne:
		return base
	case style.MinCondTwo:
		return base * 2
	default: // style.MinCondOneHalf
		return base + base/2
	}
}

// applyEvents updates the block/header/paren stacks from one line's
// brace/paren/header events, in the order they occurred on the line.
func (b *Beautifier) applyEvents(fl lineinfo.FormattedLine) {
	for _, h := range fl.Headers {
		if b.tab.PreCommandHeaders[h.Header] || b.tab.PreBlockStatements[h.Header] {
			b.headers = append(b.headers, headerFrame{header: h.Header, indent: b.currentIndent(), blockDepth: len(b.blocks)})
		}
	}

	for _, be := range fl.Braces {
		if be.Open {
			var hdr *langtable.Header
			if n := len(b.headers); n > 0 {
				hdr = b.headers[n-1].header
				b.headers = b.headers[:n-1]
			}
			newIndent := b.currentIndent() + 1
			switch {
			case isNonInStatementArrayBrace(be.Type):
				newIndent = b.currentIndent() + b.continuationLevel()
			case !b.braceItselfIndents(be.Type):
				newIndent = b.currentIndent()
			case b.cfg.BlockIndent:
				// GNU style: the brace itself sits one level in from its
				// header, and the block's body sits one level in from the
				// brace, rather than sharing that single level the way
				// every other brace mode's body does.
				newIndent = b.currentIndent() + 2
			}
			b.blocks = append(b.blocks, blockFrame{braceType: be.Type, indent: newIndent, header: hdr})
		} else {
			if n := len(b.blocks); n > 0 {
				b.blocks = b.blocks[:n-1]
			} else {
				b.assertf("closing brace event with no open block to pop")
			}
			b.popMatchingHeaders()
		}
	}

	for i := 0; i < fl.HeaderCloses; i++ {
		b.popMatchingHeaders()
	}

	b.continuationActive = false
	for _, pe := range fl.Parens {
		if pe.Kind != lineinfo.Paren {
			continue
		}
		if pe.Open {
			b.parenIndentStack = append(b.parenIndentStack, b.currentIndent())
		} else if n := len(b.parenIndentStack); n > 0 {
			b.parenIndentStack = b.parenIndentStack[:n-1]
		}
	}
	if len(b.parenIndentStack) > 0 {
		b.continuationActive = true
	}
}

// popMatchingHeaders discards every pending header whose body just
// finished at the current block depth (§3, §4.2.1's braceless-body
// case). A header pushed at blockDepth N only ever completes its single
// statement back at depth N — never while a body statement of its own
// has pushed the stack deeper — so this cascades through consecutive
// entries at the same depth (`if (a) if (b) foo();` resolves both off
// one trailing `;`) and stops the moment the top entry belongs to a
// still-open enclosing block.
func (b *Beautifier) popMatchingHeaders() {
	for {
		n := len(b.headers)
		if n == 0 || b.headers[n-1].blockDepth != len(b.blocks) {
			return
		}
		b.headers = b.headers[:n-1]
	}
}

// isNonInStatementArrayBrace reports whether bt is a top-level array
// initializer's opening brace — one assigned straight to a declaration,
// as opposed to a brace nested inside another array/init's braces (the
// case ARRAY_NIS marks). A top-level initializer's contents get one
// continuation indent rather than a full nested block level:
//
//	int a[] = {
//	    1, 2, 3
//	};
func isNonInStatementArrayBrace(bt lineinfo.BraceType) bool {
	return bt.HasAny(lineinfo.Array) && !bt.Has(lineinfo.ArrayNIS)
}

// braceItselfIndents reports whether opening this brace type adds one
// indent level to its contents. Every structural brace does except a
// namespace when NamespaceIndent is disabled (§6's common "flatten
// namespace bodies" convention) and a class/struct when ClassIndent is
// disabled.
func (b *Beautifier) braceItselfIndents(bt lineinfo.BraceType) bool {
	switch {
	case bt.HasAny(lineinfo.Namespace):
		return b.cfg.NamespaceIndent
	case bt.HasAny(lineinfo.Class | lineinfo.Struct | lineinfo.Interface):
		return b.cfg.ClassIndent
	default:
		return true
	}
}
