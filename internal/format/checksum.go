package format

import "strings"

// convertTabsToSpaces expands every tab in s to the number of spaces
// needed to reach the next tabLength-wide stop, tracking column position
// across the whole line so a tab after other tabs or wide runs still
// lands on the right stop (§4.1, §6's convert_tabs toggle). tabLength
// falls back to 4 if unset or non-positive.
func convertTabsToSpaces(s string, tabLength int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	if tabLength <= 0 {
		tabLength = 4
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabLength - col%tabLength
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// NonWhitespaceSum implements the round-trip invariant of §8: the sum of
// every non-whitespace byte's value must be identical between the raw
// input stream and the formatted output stream (formatting only ever
// moves and pads whitespace, it never adds or removes a visible
// character). Both Formatter.ChecksumIn and Formatter.ChecksumOut are
// accumulated with this function so a caller can compare them once the
// stream is exhausted.
func NonWhitespaceSum(s string) uint64 {
	var sum uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			continue
		}
		sum += uint64(c)
	}
	return sum
}
