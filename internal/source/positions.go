// Package source holds the small position types shared between the
// Formatter and Beautifier. Both walk pre-split lines rather than a raw
// byte stream, so a position here is a (line, column) pair rather than a
// running byte index.
package source

// Mark identifies a character within a specific source line, such as a
// return-type break point or a max-code-length split point (§4.1.5,
// §4.1.6). No other package imports this one; the Formatter does not use
// Mark or Position.
type Mark struct {
	Line int // 1-based line number as counted by the SourceIterator.
	Char int // 0-based byte offset within the formatted line.
}

// Valid reports whether the mark was ever set.
func (m Mark) Valid() bool {
	return m.Line > 0
}

// Position tracks a running (line, column) cursor in the *original*
// source, independent of how many spaces the canonicalized output line
// ends up carrying.
type Position struct {
	Line   int
	Column int
}

// Advance moves the cursor across s, treating '\n' as a line break and
// every other rune (including '\t', counted as one column here since tab
// expansion is handled separately by the Formatter) as one column.
func (p *Position) Advance(s string) {
	for _, r := range s {
		if r == '\n' {
			p.Line++
			p.Column = 1
			continue
		}
		p.Column++
	}
}
