package beautify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redorca/astyle-github/internal/diagnostics"
	"github.com/redorca/astyle-github/internal/langtable"
	"github.com/redorca/astyle-github/internal/lineinfo"
	"github.com/redorca/astyle-github/internal/style"
)

func mustResolve(t *testing.T, name style.Name) style.Config {
	t.Helper()
	cfg, ok := style.Resolve(name, langtable.C)
	require.Truef(t, ok, "Resolve(%q) must succeed", name)
	return cfg
}

func TestIsNonInStatementArrayBrace(t *testing.T) {
	assert.True(t, isNonInStatementArrayBrace(lineinfo.Array))
	assert.False(t, isNonInStatementArrayBrace(lineinfo.Array|lineinfo.ArrayNIS))
	assert.False(t, isNonInStatementArrayBrace(lineinfo.Command))
}

func TestStrayClosingBraceRecordsDebugDiagnostic(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	cfg.Debug = true
	tab := langtable.For(langtable.C)
	diag := diagnostics.NewBag()
	b := New(cfg, tab, diag)

	fl := lineinfo.FormattedLine{
		Text:                 "}",
		BeginsWithCloseBrace: true,
		Braces:               []lineinfo.BraceEvent{{Open: false}},
	}
	b.Beautify(fl)

	assert.NotEmpty(t, diag.Items(), "expected a debug-mode diagnostic for the stray closing brace")
}

func TestStrayClosingBraceIsSilentWhenDebugOff(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	tab := langtable.For(langtable.C)
	diag := diagnostics.NewBag()
	b := New(cfg, tab, diag)

	fl := lineinfo.FormattedLine{
		Text:                 "}",
		BeginsWithCloseBrace: true,
		Braces:               []lineinfo.BraceEvent{{Open: false}},
	}
	b.Beautify(fl)

	assert.Empty(t, diag.Items())
}

func TestContinuationIndentForConditionalScalesByOption(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	cfg.ContinuationIndent = 2

	cfg.MinConditionalIndent = style.MinCondZero
	assert.Equal(t, 0, continuationIndentForConditional(cfg, nil))

	cfg.MinConditionalIndent = style.MinCondOne
	assert.Equal(t, 2, continuationIndentForConditional(cfg, nil))

	cfg.MinConditionalIndent = style.MinCondOneHalf
	assert.Equal(t, 3, continuationIndentForConditional(cfg, nil))

	cfg.MinConditionalIndent = style.MinCondTwo
	assert.Equal(t, 4, continuationIndentForConditional(cfg, nil))
}

func TestArrayInitializerBraceGetsContinuationIndent(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	tab := langtable.For(langtable.C)
	b := New(cfg, tab, diagnostics.NewBag())

	// int a[] = {
	open := lineinfo.FormattedLine{
		Text:                "int a[] = {",
		BeginsWithOpenBrace: false,
		Braces:              []lineinfo.BraceEvent{{Pos: 10, Open: true, Type: lineinfo.Array}},
	}
	out := b.Beautify(open)
	assert.Equal(t, "int a[] = {", out)
	require.Len(t, b.blocks, 1)
	assert.Equal(t, b.continuationLevel(), b.blocks[0].indent, "top-level array init body gets one continuation indent, not a full block level")

	// 1, 2, 3
	body := lineinfo.FormattedLine{Text: "1, 2, 3,"}
	out = b.Beautify(body)
	assert.Equal(t, cfg.IndentString.Unit()+"1, 2, 3,", out)

	// };
	closeLine := lineinfo.FormattedLine{
		Text:                 "};",
		BeginsWithCloseBrace: true,
		Braces:               []lineinfo.BraceEvent{{Pos: 0, Open: false}},
	}
	out = b.Beautify(closeLine)
	assert.Equal(t, "};", out)
	assert.True(t, b.StacksBalanced())
}

func TestWrappedIfConditionUsesConditionalContinuationIndent(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	cfg.ContinuationIndent = 1
	cfg.MinConditionalIndent = style.MinCondTwo
	tab := langtable.For(langtable.C)
	b := New(cfg, tab, diagnostics.NewBag())

	ifHeader, ok := langtable.Lookup("if")
	require.True(t, ok)
	require.True(t, tab.PreCommandHeaders[ifHeader], "if must be a PreCommandHeaders member")

	// if (a &&
	first := lineinfo.FormattedLine{
		Text:    "if (a &&",
		Headers: []lineinfo.HeaderEvent{{Pos: 0, Header: ifHeader}},
		Parens:  []lineinfo.ParenEvent{{Pos: 3, Kind: lineinfo.Paren, Open: true}},
	}
	out := b.Beautify(first)
	assert.Equal(t, "if (a &&", out)
	require.True(t, b.continuationActive)

	// b)
	second := lineinfo.FormattedLine{
		Text:   "b)",
		Parens: []lineinfo.ParenEvent{{Pos: 1, Kind: lineinfo.Paren, Open: false}},
	}
	out = b.Beautify(second)
	// MinCondTwo doubles ContinuationIndent(1) to 2 indent units.
	want := cfg.IndentString.Unit() + cfg.IndentString.Unit() + "b)"
	assert.Equal(t, want, out)
}

func TestNestedPreprocIfUsesConfiguredIndentUnit(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	cfg.PreprocConditionalIndent = true
	require.Equal(t, 4, cfg.IndentString.Length, "default indent width must be 4 spaces for this to distinguish from a hardcoded 2-space unit")
	tab := langtable.For(langtable.C)
	b := New(cfg, tab, diagnostics.NewBag())

	outerIf := lineinfo.FormattedLine{Text: "#if A", Preproc: lineinfo.PreprocIf}
	assert.Equal(t, "#if A", b.Beautify(outerIf))

	innerIf := lineinfo.FormattedLine{Text: "#if B", Preproc: lineinfo.PreprocIf}
	assert.Equal(t, cfg.IndentString.Unit()+"#if B", b.Beautify(innerIf))
}

func TestDefineContinuationUsesOneIndentUnitWhenEnabled(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	cfg.PreprocDefineIndent = true
	tab := langtable.For(langtable.C)
	b := New(cfg, tab, diagnostics.NewBag())

	head := lineinfo.FormattedLine{Text: "#define F(x) \\", Preproc: lineinfo.PreprocDefine, PreprocContinue: true}
	assert.Equal(t, "#define F(x) \\", b.Beautify(head))

	body := lineinfo.FormattedLine{Text: "do { x; } while(0)", Preproc: lineinfo.PreprocNone}
	assert.Equal(t, cfg.IndentString.Unit()+"do { x; } while(0)", b.Beautify(body))
}

func TestDefineContinuationLeavesTextUnchangedWhenDisabled(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	cfg.PreprocDefineIndent = false
	tab := langtable.For(langtable.C)
	b := New(cfg, tab, diagnostics.NewBag())

	head := lineinfo.FormattedLine{Text: "#define F(x) \\", Preproc: lineinfo.PreprocDefine, PreprocContinue: true}
	assert.Equal(t, "#define F(x) \\", b.Beautify(head))

	body := lineinfo.FormattedLine{Text: "do { x; } while(0)", Preproc: lineinfo.PreprocNone}
	assert.Equal(t, "do { x; } while(0)", b.Beautify(body))
}

func TestNamespaceIndentToggleFlattensBody(t *testing.T) {
	cfg := mustResolve(t, style.KR)
	cfg.NamespaceIndent = false
	tab := langtable.For(langtable.C)
	b := New(cfg, tab, diagnostics.NewBag())

	open := lineinfo.FormattedLine{
		Text:   "namespace app {",
		Braces: []lineinfo.BraceEvent{{Pos: 15, Open: true, Type: lineinfo.Namespace}},
	}
	out := b.Beautify(open)
	assert.Equal(t, "namespace app {", out)

	inner := lineinfo.FormattedLine{Text: "void run();"}
	out = b.Beautify(inner)
	assert.Equal(t, "void run();", out, "namespace body must not be indented when NamespaceIndent is off")
}
