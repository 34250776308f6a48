package langtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderIdentityNotStringEquality(t *testing.T) {
	a, ok := Lookup("if")
	require.True(t, ok, `expected "if" to be a recognized header`)

	b := &Header{Name: "if"}
	assert.False(t, a.Is(b), "a freshly constructed Header with the same Name must not be Is() the interned one")

	c, _ := Lookup("if")
	assert.True(t, a.Is(c), "two lookups of the same name must return the identical interned pointer")
}

func TestForReturnsDistinctTablesPerFileType(t *testing.T) {
	c := For(C)
	java := For(Java)
	assert.NotSame(t, c, java, "C and Java must not share a Tables value")
	assert.Equal(t, C, c.FileType)
	assert.Equal(t, Java, java.FileType)
}

func TestHasHeaderIsPerLanguage(t *testing.T) {
	forEach, _ := Lookup("foreach")
	assert.True(t, For(Sharp).HasHeader(forEach), "Sharp must recognize foreach")

	synchronized, _ := Lookup("synchronized")
	assert.False(t, For(C).HasHeader(synchronized), "C must not recognize synchronized")
	assert.True(t, For(Java).HasHeader(synchronized), "Java must recognize synchronized")
}

func TestLongestOperatorMatch(t *testing.T) {
	ops := sortedByLengthDesc(baseAssignmentOps)

	got, ok := LongestOperatorMatch(">>=rest", ops)
	require.True(t, ok)
	assert.Equal(t, ">>=", got)

	got, ok = LongestOperatorMatch("=rest", ops)
	require.True(t, ok)
	assert.Equal(t, "=", got)

	_, ok = LongestOperatorMatch("xyz", ops)
	assert.False(t, ok, `expected no match against "xyz"`)
}

func TestIsLegalNameChar(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '_', '$', '0'} {
		assert.Truef(t, IsLegalNameChar(r), "IsLegalNameChar(%q) = false, want true", r)
	}
	for _, r := range []rune{' ', '(', '+', '"'} {
		assert.Falsef(t, IsLegalNameChar(r), "IsLegalNameChar(%q) = true, want false", r)
	}
}
