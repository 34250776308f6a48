package beautify

import (
	"strings"

	"github.com/redorca/astyle-github/internal/lineinfo"
)

// beautifyPreproc handles a directive line and the cloned-beautifier
// bookkeeping around #if/#else/#elif/#endif and multi-line #define
// (§3 "Cloned beautifier", §5).
//
// Every #if pushes a snapshot of the current stacks before the branch
// runs; #else/#elif restore that snapshot so each branch is indented as
// if it were the only one taken, rather than accumulating whatever the
// previous branch pushed; #endif discards the snapshot, keeping
// whichever branch actually ran last as the continuing state. This is
// an approximation of a full multi-branch merge (which would need to
// reconcile diverging stack depths across branches) but matches the
// common case of parallel #if/#else bodies that open and close the same
// braces.
func (b *Beautifier) beautifyPreproc(fl lineinfo.FormattedLine) string {
	indent := 0
	if b.cfg.PreprocConditionalIndent {
		indent = len(b.preprocIndentStack)
		switch fl.Preproc {
		case lineinfo.PreprocElif, lineinfo.PreprocElse, lineinfo.PreprocEndif:
			// a branch or closing directive lines up with its own #if
			if indent > 0 {
				indent--
			}
		}
	}

	out := fl.Text
	if b.cfg.PreprocConditionalIndent && indent > 0 {
		out = strings.Repeat(b.unit(), indent) + fl.Text
	}

	switch fl.Preproc {
	case lineinfo.PreprocIf:
		snap := b.clone()
		b.cloneStack = append(b.cloneStack, snap)
		b.preprocIndentStack = append(b.preprocIndentStack, b.currentIndent())

	case lineinfo.PreprocElif, lineinfo.PreprocElse:
		if n := len(b.cloneStack); n > 0 {
			b.restoreFrom(b.cloneStack[n-1])
		}

	case lineinfo.PreprocEndif:
		if n := len(b.cloneStack); n > 0 {
			b.cloneStack = b.cloneStack[:n-1]
		}
		if n := len(b.preprocIndentStack); n > 0 {
			b.preprocIndentStack = b.preprocIndentStack[:n-1]
		}

	case lineinfo.PreprocDefine:
		if fl.PreprocContinue {
			b.pendingDefine = true
			b.defineSnapshot = b.clone()
		}
	}

	return out
}

// restoreFrom copies snap's mutable stacks into b, leaving tab/cfg/diag
// untouched (they are never part of a snapshot).
func (b *Beautifier) restoreFrom(snap *Beautifier) {
	b.blocks = append([]blockFrame(nil), snap.blocks...)
	b.headers = append([]headerFrame(nil), snap.headers...)
	b.parenIndentStack = append([]int(nil), snap.parenIndentStack...)
	b.continuationActive = snap.continuationActive
	b.continuationExtra = snap.continuationExtra
}
