// Package vge expands grouped variant shorthand in utility-class strings.
//
// A group applies one variant prefix to several classes at once:
//
//	hover:(bg-red text-white)
//
// expands to
//
//	hover:bg-red hover:text-white
//
// Groups nest, and prefixes compose one level at a time, so "a:(b:(c) d)"
// expands to "a:b:c a:d". Malformed groups are left in place as literal
// text; Transform never fails.
package vge

import "bennypowers.dev/vge/internal/expander"

// Transform expands every grouped variant in content and returns the
// rewritten string. Whitespace is normalized (see Normalize) whether or not
// any group is present. Transform is pure and safe for concurrent use.
func Transform(content string) string {
	return expander.Expand(content)
}

// Normalize canonicalizes whitespace exactly as Transform does before
// scanning: every whitespace run becomes a single space, group delimiters
// lose their inner padding, and the ends are trimmed. Useful for callers
// that diff their input against Transform output.
func Normalize(content string) string {
	return expander.Normalize(content)
}
