package style

import "github.com/redorca/astyle-github/internal/langtable"

// Name identifies one of the sixteen named coding styles spec.md §1
// lists (fifteen plus the "1TBS" alias for one-true-brace-style).
type Name string

const (
	KR          Name = "kr"
	Allman      Name = "allman"
	Java        Name = "java"
	Whitesmith  Name = "whitesmith"
	GNU         Name = "gnu"
	Horstmann   Name = "horstmann"
	OneTBS      Name = "1tbs"
	Google      Name = "google"
	Mozilla     Name = "mozilla"
	WebKit      Name = "webkit"
	Pico        Name = "pico"
	Lisp        Name = "lisp"
	Linux       Name = "linux"
	VTK         Name = "vtk"
	Ratliff     Name = "ratliff"
	Stroustrup  Name = "stroustrup"
)

// Names lists every recognized style name, in the order spec.md §1
// enumerates them, so a CLI can print them for --help.
var Names = []Name{KR, Allman, Java, Whitesmith, GNU, Horstmann, OneTBS, Google, Mozilla, WebKit, Pico, Lisp, Linux, VTK, Ratliff, Stroustrup}

// Resolve builds the Config for a named style. Where spec.md leaves a
// style's exact toggle bundle unstated beyond its brace_format_mode
// (§4.1.3's per-style refinements), the choice made here is recorded as
// an Open Question decision in DESIGN.md rather than guessed silently.
func Resolve(name Name, ft langtable.FileType) (Config, bool) {
	cfg := Default(ft)
	cfg.BreakOneLineBlocks = true
	cfg.BreakOneLineStatements = true
	cfg.PadComma = true

	switch name {
	case KR:
		cfg.BraceFormatMode = BraceAttach
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}
		cfg.BreakElseIfs = false
		cfg.AttachClosingBrace = false

	case Allman:
		cfg.BraceFormatMode = BraceBreak
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}

	case Java:
		cfg.BraceFormatMode = BraceAttach
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}
		cfg.NamespaceIndent = true

	case Whitesmith:
		cfg.BraceFormatMode = BraceBreak
		cfg.BraceIndent = true
		cfg.ClassIndent = true
		cfg.SwitchIndent = true
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}

	case GNU:
		cfg.BraceFormatMode = BraceBreak
		cfg.BlockIndent = true
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 2}

	case Horstmann:
		cfg.BraceFormatMode = BraceRunIn
		cfg.BraceIndent = true
		cfg.SwitchIndent = true
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}

	case OneTBS:
		cfg.BraceFormatMode = BraceAttach
		cfg.AttachClosingBrace = true
		cfg.AddBraces = true
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}

	case Google:
		cfg.BraceFormatMode = BraceAttach
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 2}
		cfg.PointerAlignment = AlignName
		cfg.ReferenceAlignment = AlignName

	case Mozilla:
		cfg.BraceFormatMode = BraceLinux
		cfg.BreakBlocks = true // Mozilla refinement: also break struct/enum (§4.1.3)
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 2}
		cfg.PointerAlignment = AlignName

	case WebKit:
		cfg.BraceFormatMode = BraceLinux
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}
		cfg.AttachClass = true // §4.1.3 refinement: struct bodies stay attached, unlike base LINUX

	case Pico:
		cfg.BraceFormatMode = BraceRunIn
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}
		cfg.AttachClosingBrace = true

	case Lisp:
		cfg.BraceFormatMode = BraceAttach
		cfg.AttachClosingBrace = true // Lisp refinement: attach the closing brace too (§4.1.3)
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 3}

	case Linux:
		cfg.BraceFormatMode = BraceLinux
		cfg.IndentString = IndentString{Kind: IndentTab, Length: 1}
		cfg.TabLength = 8

	case VTK:
		cfg.BraceFormatMode = BraceBreak
		cfg.BraceIndentVtk = true
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 2}

	case Ratliff:
		cfg.BraceFormatMode = BraceAttach
		cfg.BraceIndent = true
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}

	case Stroustrup:
		cfg.BraceFormatMode = BraceLinux
		cfg.IndentString = IndentString{Kind: IndentSpaces, Length: 4}
		cfg.NoBreakClassBrace = true // §4.1.3 refinement: class bodies stay attached

	default:
		return Config{}, false
	}
	return cfg, true
}
