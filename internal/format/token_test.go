package format

import (
	"testing"

	"github.com/redorca/astyle-github/internal/langtable"
)

func scanAll(t *testing.T, s string) []Token {
	t.Helper()
	ls := newLineScanner(s, langtable.For(langtable.C))
	toks, stillOpen := ls.scanTokens(false)
	if stillOpen {
		t.Fatalf("scanTokens(%q) unexpectedly left a block comment open", s)
	}
	return toks
}

func TestTokenizeSimpleStatement(t *testing.T) {
	toks := scanAll(t, `if(x){y();}`)
	var kinds []TokenKind
	var texts []string
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
		texts = append(texts, tok.Text)
	}
	wantTexts := []string{"if", "(", "x", ")", "{", "y", "(", ")", ";", "}"}
	if len(texts) != len(wantTexts) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(texts), texts, len(wantTexts), wantTexts)
	}
	for i, want := range wantTexts {
		if texts[i] != want {
			t.Errorf("token %d = %q, want %q", i, texts[i], want)
		}
	}
	if toks[0].Header == nil || toks[0].Header.Name != "if" {
		t.Fatal("the \"if\" token should resolve to the interned if header")
	}
	if toks[5].Header != nil {
		t.Fatal("the \"y\" token is a plain identifier, not a header")
	}
}

func TestTokenizeStringWithEscapedQuote(t *testing.T) {
	toks := scanAll(t, `x = "a\"b"; `)
	var found bool
	for _, tok := range toks {
		if tok.Kind == TString {
			found = true
			if tok.Text != `"a\"b"` {
				t.Errorf("string token = %q, want %q", tok.Text, `"a\"b"`)
			}
		}
	}
	if !found {
		t.Fatal("expected a TString token")
	}
}

func TestTokenizeLineComment(t *testing.T) {
	toks := scanAll(t, `x++; // trailing note`)
	last := toks[len(toks)-1]
	if last.Kind != TLineComment {
		t.Fatalf("last token kind = %v, want TLineComment", last.Kind)
	}
	if last.Text != "// trailing note" {
		t.Errorf("comment text = %q", last.Text)
	}
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	ls := newLineScanner("/* start of a comment", langtable.For(langtable.C))
	toks, stillOpen := ls.scanTokens(false)
	if !stillOpen {
		t.Fatal("expected the block comment to still be open at EOL")
	}
	if len(toks) != 1 || toks[0].Kind != TComment {
		t.Fatalf("got %v, want a single TComment token", toks)
	}
}

func TestTokenizePreprocessorLineIsAtomic(t *testing.T) {
	toks := scanAll(t, `#define MAX(a,b) ((a)>(b)?(a):(b))`)
	if len(toks) != 1 || toks[0].Kind != TPreprocessor {
		t.Fatalf("got %d tokens, want exactly one TPreprocessor token", len(toks))
	}
}

func TestMultiCharOperatorLongestMatch(t *testing.T) {
	toks := scanAll(t, `a >>= b`)
	var op string
	for _, tok := range toks {
		if tok.Kind == TOp {
			op = tok.Text
		}
	}
	if op != ">>=" {
		t.Fatalf("operator token = %q, want \">>=\"", op)
	}
}

func TestTokenizeRawStringKeepsEmbeddedQuoteIntact(t *testing.T) {
	toks := scanAll(t, `x = R"(a "b" c)";`)
	var got *Token
	for i := range toks {
		if toks[i].Kind == TString {
			got = &toks[i]
		}
	}
	if got == nil {
		t.Fatal("expected a TString token")
	}
	want := `R"(a "b" c)"`
	if got.Text != want {
		t.Errorf("raw string token = %q, want %q", got.Text, want)
	}
}

func TestTokenizeRawStringWithDelimiter(t *testing.T) {
	toks := scanAll(t, `x = R"lit(a)b)lit";`)
	var got *Token
	for i := range toks {
		if toks[i].Kind == TString {
			got = &toks[i]
		}
	}
	if got == nil {
		t.Fatal("expected a TString token")
	}
	want := `R"lit(a)b)lit"`
	if got.Text != want {
		t.Errorf("raw string token = %q, want %q", got.Text, want)
	}
}

func TestTokenizeEncodedRawStringPrefix(t *testing.T) {
	toks := scanAll(t, `x = u8R"(hi)";`)
	var got *Token
	for i := range toks {
		if toks[i].Kind == TString {
			got = &toks[i]
		}
	}
	if got == nil {
		t.Fatal("expected a TString token")
	}
	want := `u8R"(hi)"`
	if got.Text != want {
		t.Errorf("raw string token = %q, want %q", got.Text, want)
	}
}

func TestTokenizeVerbatimStringWithDoubledQuote(t *testing.T) {
	toks := scanAll(t, `x = @"a ""b"" c";`)
	var got *Token
	for i := range toks {
		if toks[i].Kind == TString {
			got = &toks[i]
		}
	}
	if got == nil {
		t.Fatal("expected a TString token")
	}
	want := `@"a ""b"" c"`
	if got.Text != want {
		t.Errorf("verbatim string token = %q, want %q", got.Text, want)
	}
}

func TestTokenizeVerbatimStringIgnoresBackslash(t *testing.T) {
	toks := scanAll(t, `x = @"C:\path\file";`)
	var got *Token
	for i := range toks {
		if toks[i].Kind == TString {
			got = &toks[i]
		}
	}
	if got == nil {
		t.Fatal("expected a TString token")
	}
	want := `@"C:\path\file"`
	if got.Text != want {
		t.Errorf("verbatim string token = %q, want %q", got.Text, want)
	}
}
