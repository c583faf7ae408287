package expander

// groupFrame is an open variant group under construction. entries preserves
// the textual order of plain tokens and already-closed child groups, which
// fixes the order of the expansion the frame eventually produces.
//
// A frame's entries never include anything belonging to a still-open
// descendant; a descendant folds itself into its parent only when it
// closes.
type groupFrame struct {
	variant  string // prefix text through the introducing ':', e.g. "hover:"
	startIdx int    // byte offset of the prefix's first rune
	entries  []frameEntry
}

// frameEntry is either a plain token collected directly inside a frame or a
// nested group that has already closed. Exactly one field is set.
type frameEntry struct {
	token string
	child *closedGroup
}

// closedGroup is a frozen snapshot of a frame that closed while its parent
// was still open. Its tokens have already been folded one level: each
// carries the prefixes of every group below this one, but not this group's
// own variant. Keeping the offsets around lets an abort salvage the group
// even though the parent never closes.
type closedGroup struct {
	variant  string
	startIdx int
	endIdx   int
	tokens   []string
}

// fold flattens a frame one level: plain tokens pass through, closed
// children contribute their tokens prefixed with the child's own variant.
// Ancestor prefixes are applied by the ancestors' own folds, so prefixes
// accumulate outward one level at a time.
func (f *groupFrame) fold() []string {
	tokens := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		if e.child == nil {
			tokens = append(tokens, e.token)
			continue
		}
		for _, t := range e.child.tokens {
			tokens = append(tokens, e.child.variant+t)
		}
	}
	return tokens
}
