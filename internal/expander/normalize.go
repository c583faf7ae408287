package expander

import (
	"regexp"
	"strings"
)

// whitespaceRun matches a maximal run of whitespace, including the Unicode
// separator categories and the BOM, so that after normalization the scanner
// only ever sees plain spaces.
var whitespaceRun = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)

// Normalize canonicalizes whitespace ahead of the scan: every whitespace
// run becomes a single plain space, group delimiters lose their inner
// padding, and the whole string is trimmed. No other character is altered.
func Normalize(content string) string {
	s := whitespaceRun.ReplaceAllString(content, " ")
	s = strings.ReplaceAll(s, "( ", "(")
	s = strings.ReplaceAll(s, " )", ")")
	return strings.TrimSpace(s)
}
