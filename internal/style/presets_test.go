package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redorca/astyle-github/internal/langtable"
)

func TestResolveKnownStyles(t *testing.T) {
	for _, name := range Names {
		cfg, ok := Resolve(name, langtable.C)
		if !assert.Truef(t, ok, "Resolve(%q) reported ok=false, want true", name) {
			continue
		}
		assert.NotEmptyf(t, cfg.IndentString.Unit(), "Resolve(%q): empty indent unit", name)
	}
}

func TestResolveUnknownStyle(t *testing.T) {
	_, ok := Resolve(Name("not-a-style"), langtable.C)
	require.False(t, ok, "Resolve of an unknown style must report ok=false")
}

func TestIndentStringUnit(t *testing.T) {
	cases := []struct {
		in   IndentString
		want string
	}{
		{IndentString{Kind: IndentSpaces, Length: 4}, "    "},
		{IndentString{Kind: IndentSpaces, Length: 0}, "    "}, // 0 falls back to 4
		{IndentString{Kind: IndentTab, Length: 1}, "\t"},
		{IndentString{Kind: IndentForceTab, Length: 2}, "\t\t"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.Unit())
	}
}

func TestStroustrupKeepsClassBraceAttached(t *testing.T) {
	cfg, ok := Resolve(Stroustrup, langtable.C)
	require.True(t, ok)
	assert.Equal(t, BraceLinux, cfg.BraceFormatMode, "Stroustrup should use LINUX brace mode")
	assert.True(t, cfg.NoBreakClassBrace, "Stroustrup should set NoBreakClassBrace")
}
