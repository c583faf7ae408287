// Package expander turns grouped variant shorthand like "hover:(a b)" into
// its flat form "hover:a hover:b". A single left-to-right scan over the
// normalized input drives a small state machine that recognizes groups,
// expands them, and records each replacement as a span; the spans are then
// spliced back into the text. Malformed syntax is never an error: the scan
// leaves it in place as literal text, keeping any nested groups that had
// already closed cleanly.
package expander

// Expand normalizes content, scans it once, and splices the recorded
// replacements back into the text. It never fails.
func Expand(content string) string {
	text := Normalize(content)
	m := &machine{text: text}
	return splice(text, m.run())
}

// Scan runs the state machine over already-normalized text and returns the
// replacement spans it produces, in increasing order. Hosts that need edits
// rather than a rewritten string can consume these directly; everyone else
// should use Expand.
func Scan(text string) []Span {
	m := &machine{text: text}
	return m.run()
}
