package format

import (
	"github.com/redorca/astyle-github/internal/langtable"
	"github.com/redorca/astyle-github/internal/lineinfo"
	"github.com/redorca/astyle-github/internal/style"
)

// braceContext is everything classifyBrace needs to decide a BraceType
// for one `{` (§3, "Brace classification"). It is assembled by the
// layout pass from the Formatter's per-statement scan state, not from
// the Beautifier's indentation stacks — the two stacks are deliberately
// separate (§3).
type braceContext struct {
	header        *langtable.Header // nearest preceding recognized header on this statement, or nil
	sawAssign     bool              // an unparenthesized `=` preceded the brace (aggregate initializer)
	parenDepth    int               // paren nesting depth at the brace, 0 at statement level
	enclosingType lineinfo.BraceType // type of the innermost still-open enclosing brace, Null at file scope
	isEmpty       bool              // brace closes on the same token, `{}`
	singleLine    bool              // matching close brace appears later on the same physical line
}

// classifyBrace implements the get_brace_type decision tree (§3): a
// preceding PRE_BLOCK header (class/struct/namespace/interface/enum)
// always wins; failing that, a PRE_COMMAND header (if/for/while/...)
// marks a COMMAND brace; failing that, an assignment on the statement
// marks an initializer/array brace; any other brace with no header and
// outside parens is a DEFINITION (a bare function body).
func classifyBrace(tab *langtable.Tables, ctx braceContext) lineinfo.BraceType {
	var bt lineinfo.BraceType

	switch {
	case ctx.header != nil && tab.PreBlockStatements[ctx.header]:
		switch {
		case ctx.header.Name == "namespace" || ctx.header.Name == "module":
			bt |= lineinfo.Namespace
		case ctx.header.Name == "class":
			bt |= lineinfo.Class
		case ctx.header.Name == "struct":
			bt |= lineinfo.Struct
		case ctx.header.Name == "interface":
			bt |= lineinfo.Interface
		case ctx.header.Name == "enum":
			bt |= lineinfo.Enum
		case ctx.header.Name == "extern":
			bt |= lineinfo.Extern
		default:
			bt |= lineinfo.Definition
		}
	case ctx.header != nil && tab.PreCommandHeaders[ctx.header]:
		bt |= lineinfo.Command
	case ctx.sawAssign:
		bt |= lineinfo.Array
		if ctx.enclosingType.HasAny(lineinfo.Array | lineinfo.Init) {
			bt |= lineinfo.ArrayNIS
		}
	case ctx.parenDepth == 0 && ctx.header == nil:
		bt |= lineinfo.Definition
	default:
		bt |= lineinfo.Command
	}

	if ctx.sawAssign {
		bt |= lineinfo.Init
	}
	if ctx.isEmpty {
		bt |= lineinfo.EmptyBlock
	}
	if ctx.singleLine {
		bt |= lineinfo.SingleLine
	}
	return bt
}

// bracePlacement is the effective attach/break decision after resolving
// LINUX and RUN_IN into one of three outcomes: attach, break, or run-in
// (§4.1.3).
type bracePlacement int

const (
	placeAttach bracePlacement = iota
	placeBreak
	placeRunIn
)

// resolvePlacement turns the configured BraceFormatMode plus a brace's
// classification into a concrete placement decision.
func resolvePlacement(cfg style.Config, bt lineinfo.BraceType) bracePlacement {
	switch cfg.BraceFormatMode {
	case style.BraceBreak:
		return placeBreak
	case style.BraceAttach:
		if bt.HasAny(lineinfo.Namespace) && cfg.AttachNamespace {
			return placeAttach
		}
		if bt.HasAny(lineinfo.Class | lineinfo.Struct | lineinfo.Interface) && cfg.AttachClass {
			return placeAttach
		}
		if bt.HasAny(lineinfo.Extern) && cfg.AttachExternC {
			return placeAttach
		}
		return placeAttach
	case style.BraceLinux:
		if bt.HasAny(lineinfo.Class) && cfg.NoBreakClassBrace {
			return placeAttach
		}
		if bt.HasAny(lineinfo.Struct) && cfg.AttachClass {
			// WebKit sets AttachClass without asking for BraceAttach
			// overall; it wants LINUX behavior everywhere except struct
			// bodies (§4.1.3 WebKit refinement).
			return placeAttach
		}
		if bt.HasAny(lineinfo.Struct|lineinfo.Enum) && cfg.BreakBlocks {
			return placeBreak
		}
		if bt.HasAny(lineinfo.Namespace | lineinfo.Class | lineinfo.Struct | lineinfo.Interface | lineinfo.Definition) {
			return placeBreak
		}
		return placeAttach
	case style.BraceRunIn:
		if bt.HasAny(lineinfo.Namespace | lineinfo.Class | lineinfo.Struct | lineinfo.Interface | lineinfo.Definition) {
			return placeBreak
		}
		return placeRunIn
	default: // BraceNone: resolves to attach, so a brace already on its
		// header's line stays there; a lone `{` line that tryMergeForward
		// joined onto its header is attached as well, so a brace the
		// source broke onto its own line is not kept there.
		return placeAttach
	}
}
