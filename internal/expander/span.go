package expander

import "strings"

// Span is a single replacement produced by the scan: the normalized text in
// the inclusive byte range [Start, End] is to be substituted with Content.
// The scan emits spans in strictly increasing, non-overlapping order.
type Span struct {
	Start   int
	End     int
	Content string
}

// splice reassembles the output string from the normalized text and the
// ordered spans the scan emitted, copying untouched ranges verbatim.
func splice(text string, spans []Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	pos := 0
	for _, s := range spans {
		b.WriteString(text[pos:s.Start])
		b.WriteString(s.Content)
		pos = s.End + 1
	}
	b.WriteString(text[pos:])
	return b.String()
}

// joinPrefixed renders tokens as a space-separated list with variant
// prepended to each one.
func joinPrefixed(variant string, tokens []string) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(variant)
		b.WriteString(t)
	}
	return b.String()
}
