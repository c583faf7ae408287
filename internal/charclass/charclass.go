// Package charclass defines the fixed character classes the expansion
// machine consults on every rune of its input. The sets are process-wide
// constants; there is no configuration surface.
package charclass

import "bennypowers.dev/vge/internal/collections"

const (
	// Separator is the only whitespace the machine treats as a token
	// delimiter. The normalizer guarantees it is the only whitespace the
	// machine ever sees.
	Separator = ' '

	// VariantMarker separates a variant prefix from what follows.
	VariantMarker = ':'

	// GroupOpen and GroupClose delimit a variant group.
	GroupOpen  = '('
	GroupClose = ')'
)

// forbidden are the runes that may never appear inside grouped-variant
// syntax: quotes, escapes and brackets would make the shorthand ambiguous,
// and raw line breaks or Unicode space-likes mark text that was never a
// class list. The space-likes are listed even though the normalizer
// collapses them away, so classification does not depend on pre-normalized
// input.
var forbidden = collections.NewSet(
	'"', '\'', '`', '\\', '[',
	'\n', '\r', '\t', '\v', '\f',
	'\u00a0', // no-break space
	'\u1680', // ogham space mark
	'\u2000', '\u2001', '\u2002', '\u2003', '\u2004', // quads, en/em spaces
	'\u2005', '\u2006', '\u2007', '\u2008', '\u2009', // four-per-em through thin space
	'\u200a', // hair space
	'\u2028', // line separator
	'\u2029', // paragraph separator
	'\u202f', // narrow no-break space
	'\u205f', // medium mathematical space
	'\u3000', // ideographic space
	'\ufeff', // zero width no-break space
)

// Forbidden reports whether r aborts the token or group being scanned.
func Forbidden(r rune) bool {
	return forbidden.Has(r)
}
