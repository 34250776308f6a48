package format

import (
	"testing"

	"github.com/redorca/astyle-github/internal/diagnostics"
	"github.com/redorca/astyle-github/internal/langtable"
	"github.com/redorca/astyle-github/internal/srcstream"
	"github.com/redorca/astyle-github/internal/style"
)

func newTestFormatter(t *testing.T, lines []string, mode style.BraceFormatMode) *Formatter {
	t.Helper()
	cfg := style.Default(langtable.C)
	cfg.BraceFormatMode = mode
	it := srcstream.NewLineIterator(lines)
	return New(it, cfg, diagnostics.NewBag())
}

func TestEndsStatement(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"if (x)", false},
		{"x = 1;", true},
		{"{", true},
		{"}", true},
		{"// trailing comment", true},
	}
	for _, c := range cases {
		toks := scanAll(t, c.src)
		got := endsStatement(toks[len(toks)-1])
		if got != c.want {
			t.Errorf("endsStatement(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestOpensBraceOnly(t *testing.T) {
	tab := langtable.For(langtable.C)
	if !opensBraceOnly(tab, "{") {
		t.Error(`opensBraceOnly("{") = false, want true`)
	}
	if opensBraceOnly(tab, "{ x();") {
		t.Error(`opensBraceOnly("{ x();") = true, want false`)
	}
	if opensBraceOnly(tab, "x();") {
		t.Error(`opensBraceOnly("x();") = true, want false`)
	}
}

func TestCuddlesWithNext(t *testing.T) {
	tab := langtable.For(langtable.C)
	for _, src := range []string{"else", "else if (x)", "catch (e)", "finally", "while (x);"} {
		if !cuddlesWithNext(tab, src) {
			t.Errorf("cuddlesWithNext(%q) = false, want true", src)
		}
	}
	for _, src := range []string{"x = 1;", "for (;;)"} {
		if cuddlesWithNext(tab, src) {
			t.Errorf("cuddlesWithNext(%q) = true, want false", src)
		}
	}
}

func TestNextRawLineMergesLoneBraceOntoHeader(t *testing.T) {
	f := newTestFormatter(t, []string{"if (x)", "{", "y();", "}"}, style.BraceAttach)

	raw, ok := f.nextRawLine()
	if !ok {
		t.Fatal("expected a first raw line")
	}
	if raw != "if (x) {" {
		t.Fatalf("nextRawLine() = %q, want %q", raw, "if (x) {")
	}

	raw, ok = f.nextRawLine()
	if !ok || raw != "y();" {
		t.Fatalf("nextRawLine() = %q, %v, want %q, true", raw, ok, "y();")
	}

	raw, ok = f.nextRawLine()
	if !ok || raw != "}" {
		t.Fatalf("nextRawLine() = %q, %v, want %q, true", raw, ok, "}")
	}
}

func TestNextRawLineMergeIsUnconditionalOnBraceStyle(t *testing.T) {
	// The raw-line merge itself doesn't consult BraceFormatMode — even a
	// break-family style still gets the merged raw text; layoutTokens'
	// own placement logic is what flushes it back apart for BREAK, the
	// same way it already does for a one-physical-line "if (x)\n{" input.
	f := newTestFormatter(t, []string{"if (x)", "{"}, style.BraceBreak)

	raw, ok := f.nextRawLine()
	if !ok {
		t.Fatal("expected a raw line")
	}
	if raw != "if (x) {" {
		t.Fatalf("nextRawLine() = %q, want %q", raw, "if (x) {")
	}
}

func TestNextRawLineMergesCuddledElse(t *testing.T) {
	f := newTestFormatter(t, []string{"}", "else", "{"}, style.BraceAttach)

	raw, ok := f.nextRawLine()
	if !ok {
		t.Fatal("expected a raw line")
	}
	if raw != "} else {" {
		t.Fatalf("nextRawLine() = %q, want %q", raw, "} else {")
	}
}

func TestNextRawLineConvertsTabsToSpaces(t *testing.T) {
	cfg := style.Default(langtable.C)
	cfg.BraceFormatMode = style.BraceAttach
	cfg.ConvertTabs = true
	cfg.TabLength = 4
	it := srcstream.NewLineIterator([]string{"\tint x;"})
	f := New(it, cfg, diagnostics.NewBag())

	raw, ok := f.nextRawLine()
	if !ok {
		t.Fatal("expected a raw line")
	}
	if raw != "    int x;" {
		t.Fatalf("nextRawLine() = %q, want %q", raw, "    int x;")
	}
}

func TestNextRawLineLeavesTabsAloneWhenConversionDisabled(t *testing.T) {
	f := newTestFormatter(t, []string{"\tint x;"}, style.BraceAttach)

	raw, ok := f.nextRawLine()
	if !ok || raw != "\tint x;" {
		t.Fatalf("nextRawLine() = %q, %v, want %q, true", raw, ok, "\tint x;")
	}
}

func TestStrayClosingBraceRecordsDebugDiagnostic(t *testing.T) {
	cfg := style.Default(langtable.C)
	cfg.BraceFormatMode = style.BraceAttach
	cfg.Debug = true
	diag := diagnostics.NewBag()
	it := srcstream.NewLineIterator([]string{"}"})
	f := New(it, cfg, diag)

	for f.HasMoreLines() {
		f.NextLine()
	}
	if len(diag.Items()) == 0 {
		t.Fatal("expected a debug-mode diagnostic for the stray closing brace")
	}
}

func TestStrayClosingBraceIsSilentWhenDebugOff(t *testing.T) {
	cfg := style.Default(langtable.C)
	cfg.BraceFormatMode = style.BraceAttach
	diag := diagnostics.NewBag()
	it := srcstream.NewLineIterator([]string{"}"})
	f := New(it, cfg, diag)

	for f.HasMoreLines() {
		f.NextLine()
	}
	if len(diag.Items()) != 0 {
		t.Fatalf("expected no diagnostics with Debug off, got %v", diag.Items())
	}
}

func TestNextRawLineLeavesUnrelatedLinesAlone(t *testing.T) {
	f := newTestFormatter(t, []string{"int x = 1;", "int y = 2;"}, style.BraceAttach)

	raw, ok := f.nextRawLine()
	if !ok || raw != "int x = 1;" {
		t.Fatalf("nextRawLine() = %q, %v, want %q, true", raw, ok, "int x = 1;")
	}
	raw, ok = f.nextRawLine()
	if !ok || raw != "int y = 2;" {
		t.Fatalf("nextRawLine() = %q, %v, want %q, true", raw, ok, "int y = 2;")
	}
}
