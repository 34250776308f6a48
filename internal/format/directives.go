package format

import "strings"

// isIndentOffComment/isIndentOnComment/hasNoPadMarker recognize the three
// embedded-comment directives of §7 ("*INDENT-OFF*", "*INDENT-ON*",
// "*NOPAD*"). The two INDENT markers must be the only non-whitespace,
// non-comment-delimiter content on the line; "*NOPAD*" is recognized
// when the line ends with it, so it can trail code on the same line.

func stripCommentDelims(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "//")
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	return strings.TrimSpace(s)
}

func isIndentOffComment(raw string) bool {
	return stripCommentDelims(raw) == "*INDENT-OFF*"
}

func isIndentOnComment(raw string) bool {
	return stripCommentDelims(raw) == "*INDENT-ON*"
}

func hasNoPadMarker(raw string) bool {
	return strings.HasSuffix(strings.TrimSpace(raw), "*NOPAD*")
}
