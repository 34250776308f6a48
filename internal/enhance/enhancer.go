// Package enhance implements the Enhancer, the small subsequent pass
// that runs after the Formatter/Beautifier stage rather than inside it
// (§2, §5). Per SPEC_FULL.md's scoping of §5, it is deliberately limited
// to two cosmetic alignment passes: tab-aligning consecutive case labels
// in a switch, and aligning the trailing backslashes of a multi-line
// macro body. It never changes indentation or brace placement, both of
// which are already final by the time a line reaches here.
package enhance

import "strings"

// Enhancer runs the alignment passes over an already-beautified line
// stream. Unlike the Formatter/Beautifier it is stateless across lines
// except for the small run-tracking below, so a single instance is
// reused for a whole file without any clone machinery.
type Enhancer struct {
	caseRun     []int  // buffered output indices of a run of consecutive `case`/`default` lines
	caseIndent  string // leading whitespace shared by the run
	macroActive bool
}

// New builds an Enhancer.
func New() *Enhancer {
	return &Enhancer{}
}

// EnhanceAll applies both passes to a complete, already-beautified file.
// It operates on the whole slice rather than line-by-line because
// alignment needs to see an entire run of case labels (or an entire
// macro body) before it can compute a common column.
func (e *Enhancer) EnhanceAll(lines []string) []string {
	out := alignCaseLabels(lines)
	out = alignMacroContinuations(out)
	return out
}

// alignCaseLabels pads every `case`/`default` label in a contiguous run
// so their trailing `:` lines up in the same column, matching the
// classic astyle "align switch labels" enhancement.
func alignCaseLabels(lines []string) []string {
	out := append([]string(nil), lines...)
	i := 0
	for i < len(out) {
		if !isCaseOrDefaultLine(out[i]) {
			i++
			continue
		}
		start := i
		maxLen := 0
		for i < len(out) && isCaseOrDefaultLine(out[i]) {
			if l := len(strings.TrimRight(out[i], " \t")); l > maxLen {
				maxLen = l
			}
			i++
		}
		if i-start < 2 {
			continue
		}
		for j := start; j < i; j++ {
			trimmed := strings.TrimRight(out[j], " \t")
			if len(trimmed) < maxLen {
				out[j] = strings.TrimSuffix(trimmed, ":") + strings.Repeat(" ", maxLen-len(trimmed)) + ":"
			}
		}
	}
	return out
}

func isCaseOrDefaultLine(s string) bool {
	t := strings.TrimSpace(s)
	if !strings.HasSuffix(t, ":") {
		return false
	}
	return strings.HasPrefix(t, "case ") || t == "default:" || strings.HasPrefix(t, "default ")
}

// alignMacroContinuations right-aligns the trailing `\` of a run of
// macro-continuation lines to the widest line in the run, the other
// classic astyle enhancement for multi-line #define bodies.
func alignMacroContinuations(lines []string) []string {
	out := append([]string(nil), lines...)
	i := 0
	for i < len(out) {
		if !strings.HasSuffix(strings.TrimRight(out[i], " \t"), "\\") {
			i++
			continue
		}
		start := i
		maxLen := 0
		for i < len(out) && strings.HasSuffix(strings.TrimRight(out[i], " \t"), "\\") {
			body := strings.TrimSuffix(strings.TrimRight(out[i], " \t"), "\\")
			body = strings.TrimRight(body, " \t")
			if l := len(body); l > maxLen {
				maxLen = l
			}
			i++
		}
		end := i
		if i < len(out) {
			i++ // include the line that finally ends the macro without a backslash
		}
		for j := start; j < end; j++ {
			body := strings.TrimSuffix(strings.TrimRight(out[j], " \t"), "\\")
			body = strings.TrimRight(body, " \t")
			out[j] = body + strings.Repeat(" ", maxLen-len(body)) + " \\"
		}
	}
	return out
}
