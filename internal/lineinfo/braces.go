// Package lineinfo holds the types the Formatter attaches to each
// canonicalized line and hands to the Beautifier (§3, "Line-classification
// flags" and "Brace classification"). It has no dependency on either
// internal/format or internal/beautify, which lets both of those import
// it without creating a cycle even though the Formatter drives the
// Beautifier directly.
package lineinfo

// BraceType is the bitset classifying each `{` (§3). Composition rules
// (e.g. DEFINITION|CLASS|SINGLE_LINE) must be preserved bit-for-bit
// wherever this type is combined.
type BraceType uint32

const (
	Null BraceType = 0
	// Structural roles, mutually exclusive against each other but
	// combinable with the modifier bits below.
	Command   BraceType = 1 << iota
	Array
	Namespace
	Class
	Struct
	Interface
	Definition
	Enum
	Extern
	// Modifier bits, combinable with any structural role.
	SingleLine
	BreakBlock
	EmptyBlock
	ArrayNIS
	Init
)

// Has reports whether every bit in mask is set.
func (b BraceType) Has(mask BraceType) bool {
	return b&mask == mask
}

// HasAny reports whether any bit in mask is set.
func (b BraceType) HasAny(mask BraceType) bool {
	return b&mask != 0
}

func (b BraceType) String() string {
	if b == Null {
		return "NULL"
	}
	names := []struct {
		bit  BraceType
		name string
	}{
		{Command, "COMMAND"}, {Array, "ARRAY"}, {Namespace, "NAMESPACE"},
		{Class, "CLASS"}, {Struct, "STRUCT"}, {Interface, "INTERFACE"},
		{Definition, "DEFINITION"}, {Enum, "ENUM"}, {Extern, "EXTERN"},
		{SingleLine, "SINGLE_LINE"}, {BreakBlock, "BREAK_BLOCK"},
		{EmptyBlock, "EMPTY_BLOCK"}, {ArrayNIS, "ARRAY_NIS"}, {Init, "INIT"},
	}
	out := ""
	for _, n := range names {
		if b.HasAny(n.bit) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	if out == "" {
		return "NULL"
	}
	return out
}

// BraceEvent records one `{`/`}` occurrence within a formatted line, in
// left-to-right order. Type is only meaningful when Open is true; a
// closing brace's type is whatever the matching open brace on the
// Formatter's brace-type stack recorded.
type BraceEvent struct {
	Pos  int // byte offset into the FormattedLine's Text
	Open bool
	Type BraceType // set by the Formatter for an opening brace
}
