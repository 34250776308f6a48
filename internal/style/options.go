// Package style resolves a chosen coding style (spec.md §1's fifteen
// named presets plus "1TBS") and a set of orthogonal toggles into the
// single Config record the core (internal/format, internal/beautify)
// consumes. It is deliberately not the full option-conflict resolution
// table spec.md §1 calls out of scope: it does not detect or reject
// contradictory flag combinations, it just resolves defaults and lets an
// explicit flag win over a preset's default.
package style

import "github.com/redorca/astyle-github/internal/langtable"

// BraceFormatMode is the placement rule applied to an opening brace
// (§4.1.3).
type BraceFormatMode int

const (
	BraceNone BraceFormatMode = iota
	BraceAttach
	BraceBreak
	BraceLinux
	BraceRunIn
)

// MinConditionalIndentOption scales the extra indent given to a wrapped
// `if (...)` condition, relative to ContinuationIndent (§6, §9).
type MinConditionalIndentOption int

const (
	MinCondZero MinConditionalIndentOption = iota
	MinCondOne
	MinCondOneHalf
	MinCondTwo
)

// PointerAlignment controls where `*`/`&` sits relative to the type and
// the name in a pointer/reference declaration (§4.1.4).
type PointerAlignment int

const (
	AlignNone PointerAlignment = iota
	AlignType
	AlignMiddle
	AlignName
	AlignSameAsPointer // reference-only: mirror whatever PointerAlignment resolved to
)

// PadMethodColon controls padding around a C#/Java method's trailing
// `:` (base-constructor calls, interface implementation lists).
type PadMethodColon int

const (
	PadColonNoChange PadMethodColon = iota
	PadColonAll
	PadColonNone
	PadColonAfter
	PadColonBefore
)

// LineEnd selects the line terminator style. The core itself never
// writes the terminator (per §6, "the host appends the terminator"); this
// only exists so a driver has somewhere to carry the chosen value through
// to the point where it does.
type LineEnd int

const (
	LineEndDefault LineEnd = iota
	LineEndWindows
	LineEndLinux
	LineEndMacOld
)

// IndentKind distinguishes the three indent_string forms named in §6.
type IndentKind int

const (
	IndentSpaces IndentKind = iota
	IndentTab
	IndentForceTab
)

// IndentString is the resolved indent_string option: spaces(n), tab(n),
// or force_tab(n).
type IndentString struct {
	Kind   IndentKind
	Length int
}

// Unit returns the literal text of one indent level under this setting.
func (i IndentString) Unit() string {
	switch i.Kind {
	case IndentTab, IndentForceTab:
		n := i.Length
		if n <= 0 {
			n = 1
		}
		s := make([]byte, n)
		for j := range s {
			s[j] = '\t'
		}
		return string(s)
	default:
		n := i.Length
		if n <= 0 {
			n = 4
		}
		s := make([]byte, n)
		for j := range s {
			s[j] = ' '
		}
		return string(s)
	}
}

// Config is the resolved, style-independent record passed to the core
// (§6). Every field here corresponds to an option named in spec.md §6.
type Config struct {
	FileType langtable.FileType

	IndentString           IndentString
	TabLength              int
	ContinuationIndent     int
	MaxContinuationIndent  int
	MinConditionalIndent   MinConditionalIndentOption

	BraceFormatMode BraceFormatMode

	// Indentation toggles (§4.2.3, §6).
	BraceIndent              bool
	BraceIndentVtk           bool
	BlockIndent              bool
	ClassIndent              bool
	ModifierIndent           bool
	SwitchIndent             bool
	CaseIndent               bool
	NamespaceIndent          bool
	IndentAfterParen         bool
	LabelIndent              bool
	PreprocDefineIndent      bool
	PreprocConditionalIndent bool
	IndentCol1Comments       bool
	IndentPreprocBlock       bool

	// Padding / spacing toggles (§4.1, §6).
	EmptyLineFill        bool
	AlignMethodColon     bool
	PadComma             bool
	PadOperators         bool
	PadParensOutside     bool
	PadParensInside      bool
	PadFirstParen        bool
	PadHeader            bool
	ShouldUnpadParens    bool
	StripCommentPrefix   bool
	PadMethodPrefix      bool
	UnpadMethodPrefix    bool
	PadReturnType        bool
	UnpadReturnType      bool
	PadParamType         bool
	UnpadParamType       bool
	PadMethodColonMode   PadMethodColon

	// Brace handling toggles (§4.1.3, §6).
	AttachClosingBrace       bool
	AttachExternC            bool
	AttachNamespace          bool
	AttachClass              bool
	AttachInline             bool
	AttachClosingWhile       bool
	BreakOneLineBlocks       bool
	BreakOneLineHeaders      bool
	BreakOneLineStatements   bool
	BreakBlocks              bool
	BreakClosingHeaderBlocks bool
	BreakClosingHeaderBraces bool
	BreakElseIfs             bool
	BreakLineAfterLogical    bool
	CloseTemplates           bool
	AddBraces                bool
	AddOneLineBraces         bool
	RemoveBraces             bool

	// Return-type break/attach (§4.1.5).
	BreakReturnType     bool
	BreakReturnTypeDecl bool
	AttachReturnType    bool
	AttachReturnTypeDecl bool

	// Misc (§6).
	ConvertTabs       bool
	DeleteEmptyLines  bool
	PointerAlignment  PointerAlignment
	ReferenceAlignment PointerAlignment
	LineEnd           LineEnd
	MaxCodeLength     int // §4.1.6 limit; no pass reads it, lines are never split

	// Debug turns the §7 "assertions in debug mode" into non-fatal
	// diagnostics.Bag.Warn calls instead of silent clamping.
	Debug bool

	// NoBreakClassBrace is Stroustrup's one departure from base LINUX
	// mode: a class body's opening brace stays attached even though
	// LINUX otherwise breaks every structural brace (§4.1.3).
	NoBreakClassBrace bool
}

// Default returns a Config with conservative, style-neutral defaults —
// equivalent to "no style chosen yet". Callers normally start from a
// preset (see presets.go) rather than this.
func Default(ft langtable.FileType) Config {
	return Config{
		FileType:              ft,
		IndentString:          IndentString{Kind: IndentSpaces, Length: 4},
		TabLength:             4,
		ContinuationIndent:    1,
		MaxContinuationIndent: 40,
		MinConditionalIndent:  MinCondOneHalf,
		BraceFormatMode:       BraceNone,
		ClassIndent:           true,
		SwitchIndent:          false,
		NamespaceIndent:       false,
		PadOperators:          false,
		PadComma:              true,
		BreakOneLineBlocks:    true,
		BreakOneLineStatements: true,
		PointerAlignment:      AlignNone,
		ReferenceAlignment:    AlignSameAsPointer,
		LineEnd:               LineEndDefault,
	}
}
