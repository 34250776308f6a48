// Package langtable holds the per-language resource tables the Formatter
// and Beautifier consult: header keyword lists, operator tables, and the
// character classification predicates that sit underneath both. Every
// table is built once and is immutable afterward, so cloned beautifiers
// (§3, "Cloned beautifier") can share a reference to it instead of
// deep-copying it.
package langtable

// FileType selects which language's resource tables a Config binds to.
// It mirrors the three-way split in spec.md §6 exactly: C covers C, C++
// and Objective-C (they share the same brace/pointer/preprocessor rules
// and differ only in a handful of extra headers), Java and Sharp (C#)
// get their own tables for the constructs that don't exist in C.
type FileType int

const (
	C FileType = iota
	Java
	Sharp
)

func (f FileType) String() string {
	switch f {
	case C:
		return "C"
	case Java:
		return "JAVA"
	case Sharp:
		return "SHARP"
	default:
		return "UNKNOWN"
	}
}

// Tables is the immutable bundle of resource tables for one FileType.
// Formatter and Beautifier instances hold a *Tables by reference; Clone
// (§3, §5) never copies it.
type Tables struct {
	FileType FileType

	Headers            []*Header // every recognized header, in match-priority order
	NonParenHeaders     map[*Header]bool
	PreBlockStatements  map[*Header]bool // headers that always precede a `{` (class, struct, namespace, ...)
	PreCommandHeaders   map[*Header]bool // headers that make the next `{` a COMMAND brace (if, for, while, ...)
	PreDefinitionHeaders map[*Header]bool
	ClosingHeaders      map[*Header]*Header // else -> if, catch -> try, while(do) -> do, finally -> try
	ProbationHeaders    map[*Header]bool    // static, synchronized

	AssignmentOps    []string // longest first
	NonAssignmentOps []string // longest first
	CastOps          []string

	IndentableMacros map[string]bool
}

var tablesByType = map[FileType]*Tables{}

func init() {
	tablesByType[C] = buildCTables()
	tablesByType[Java] = buildJavaTables()
	tablesByType[Sharp] = buildSharpTables()
}

// For returns the immutable table bundle for ft. The result must never be
// mutated; it is shared across every Formatter/Beautifier of that
// language type and every one of their clones.
func For(ft FileType) *Tables {
	return tablesByType[ft]
}

// HasHeader reports whether h is one of this table's recognized headers.
// Lookup finds the interned identity for a word; HasHeader confirms that
// identity is actually meaningful for this FileType (e.g. "synchronized"
// is interned globally but only Java's table recognizes it).
func (t *Tables) HasHeader(h *Header) bool {
	for _, cand := range t.Headers {
		if cand.Is(h) {
			return true
		}
	}
	return false
}
