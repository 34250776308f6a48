package lineinfo

import "github.com/redorca/astyle-github/internal/langtable"

// ParenKind distinguishes three bracket families. The Beautifier's
// continuation indent (§4.2.2) tracks only Paren events (which include
// Objective-C message-send brackets); Bracket events are skipped there,
// and no pass emits Angle.
type ParenKind int

const (
	Paren   ParenKind = iota // ( )
	Bracket                  // [ ]
	Angle                    // < > when in-template
)

// ParenEvent records one paren/bracket/template-angle occurrence.
type ParenEvent struct {
	Pos  int
	Kind ParenKind
	Open bool
	// LastOnLine is true when this open paren is the last non-whitespace
	// character on the line (§4.2.2 step 2). The Beautifier does not read
	// it; continuation indent is the same either way.
	LastOnLine bool
}

// HeaderEvent records a recognized header keyword at a position in the
// line (§4.1.2). Multiple can appear on one physical line, e.g.
// "} else if (x) {".
type HeaderEvent struct {
	Pos    int
	Header *langtable.Header
}

// ColonKind classifies what a trailing/embedded `:` means, resolved by
// the Formatter's disambiguation in §4.1 step 11 / §4.2.4.
type ColonKind int

const (
	ColonNone ColonKind = iota
	ColonLabel
	ColonClassInitializer
	ColonClassHeaderBase // `class A : public B`
	ColonEnumBaseType
	ColonCaseOrDefault
	ColonAccessModifier // public:/private:/protected:
	ColonTernary
	ColonObjC
)

// PreprocKind identifies which preprocessor directive (if any) begins
// the line.
type PreprocKind int

const (
	PreprocNone PreprocKind = iota
	PreprocIf
	PreprocElse
	PreprocElif
	PreprocEndif
	PreprocDefine
	PreprocOther // #include, #pragma, #region, #line, ...
)

// FormattedLine is the unit of work the Formatter hands the Beautifier
// (§2, "the Formatter feeds the beautifier line-by-line and passes
// forward flags describing the line").
type FormattedLine struct {
	Text string

	// Line-classification flags (§3).
	BeginsWithOpenBrace  bool
	BeginsWithCloseBrace bool
	BeginsWithComma      bool
	IsCommentOnly        bool
	IsLineCommentOnly    bool
	OpensWithComment     bool
	OpensWithLineComment bool
	StartsInComment      bool
	IsEmpty              bool

	Braces  []BraceEvent
	Parens  []ParenEvent
	Headers []HeaderEvent

	Colon     ColonKind
	ColonPos  int
	IsCase    bool
	IsDefault bool

	Preproc         PreprocKind
	PreprocContinue bool // line ends with a backslash continuation

	IndentOff bool // *INDENT-OFF* seen on this line
	IndentOn  bool // *INDENT-ON* seen on this line
	NoPad     bool // *NOPAD* trailing comment on this line

	// ClosingHeader names an else/catch/finally (or an equivalent in
	// another language) beginning the line (§3, "Temp-header stacks").
	// The Formatter never sets it and the Beautifier never reads it, so
	// headers are not re-stacked at a closing header.
	ClosingHeader *langtable.Header

	// IsRunInStatement names a statement pulled onto the same line as
	// its opening brace under RUN_IN brace formatting (§4.1.3). The
	// Formatter never sets it: no pass pulls a statement onto the brace
	// line, and nothing reads the flag.
	IsRunInStatement bool

	// HeaderCloses counts top-level (paren-depth-zero) statement-ending
	// semicolons on this line — each one completes whatever single
	// statement a braceless header (`if (x) foo();`, no block) was
	// waiting on, and the Beautifier's header stack pops accordingly
	// (§3, §4.2.1).
	HeaderCloses int
}
