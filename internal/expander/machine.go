package expander

import (
	"bennypowers.dev/vge/internal/charclass"
	"bennypowers.dev/vge/internal/log"
)

// state enumerates the scanner's seven states. The zero value is idle.
type state int

const (
	idle state = iota
	parsingText
	handlingVariant
	openingStack
	parsingStackText
	handlingStackVariant
	closingStack
)

// machine carries one whole scan: the normalized input, the two cursors,
// the stack of open frames and the spans emitted so far. A machine serves a
// single Expand call and nothing outlives it.
type machine struct {
	text       string
	state      state
	tokenStart int // byte offset where the current token began
	variantEnd int // byte offset of the most recently seen ':'
	stack      []groupFrame
	spans      []Span
}

// run performs the single left-to-right pass and returns the emitted spans.
// Input that ends inside an open group gets the same salvage treatment as
// any other malformed ending.
func (m *machine) run() []Span {
	for idx, r := range m.text {
		m.step(idx, r)
	}
	if len(m.stack) > 0 {
		m.abort()
	}
	return m.spans
}

func (m *machine) step(idx int, r rune) {
	switch m.state {
	case idle:
		m.stepIdle(idx, r)
	case parsingText:
		m.stepParsingText(idx, r)
	case handlingVariant:
		m.stepHandlingVariant(idx, r)
	case openingStack:
		m.stepOpeningStack(idx, r)
	case parsingStackText:
		m.stepParsingStackText(idx, r)
	case handlingStackVariant:
		m.stepHandlingStackVariant(idx, r)
	case closingStack:
		m.stepClosingStack(idx, r)
	}
}

func (m *machine) stepIdle(idx int, r rune) {
	switch {
	case charclass.Forbidden(r),
		r == charclass.Separator,
		r == charclass.VariantMarker,
		r == charclass.GroupOpen,
		r == charclass.GroupClose:
		// stay idle
	default:
		m.tokenStart = idx
		m.state = parsingText
	}
}

func (m *machine) stepParsingText(idx int, r rune) {
	switch {
	case charclass.Forbidden(r):
		m.state = idle
	case r == charclass.VariantMarker:
		m.variantEnd = idx
		m.state = handlingVariant
	case r == charclass.Separator:
		// Plain tokens are never recorded as spans; they pass through the
		// splice untouched. Just move on to the next token.
		m.tokenStart = idx + 1
	}
	// '(' and ')' are ordinary token text outside a group; only ':'
	// followed by '(' opens one.
}

func (m *machine) stepHandlingVariant(idx int, r rune) {
	switch {
	case charclass.Forbidden(r):
		m.state = idle
	case r == charclass.GroupOpen:
		m.open()
		m.state = openingStack
	case r == charclass.VariantMarker,
		r == charclass.Separator,
		r == charclass.GroupClose:
		// no-op
	default:
		// A ':' not followed by '(' is ordinary token text. tokenStart is
		// left alone so a later '(' captures the whole multi-segment
		// prefix, e.g. "sm:hover:".
		m.state = parsingText
	}
}

func (m *machine) stepOpeningStack(idx int, r rune) {
	switch {
	case charclass.Forbidden(r):
		m.abort()
	case r == charclass.GroupClose:
		// an empty group is malformed
		m.abort()
	case r == charclass.VariantMarker,
		r == charclass.GroupOpen,
		r == charclass.Separator:
		// no-op
	default:
		m.tokenStart = idx
		m.state = parsingStackText
	}
}

func (m *machine) stepParsingStackText(idx int, r rune) {
	switch {
	case r == charclass.VariantMarker:
		m.variantEnd = idx
		m.state = handlingStackVariant
	case r == charclass.GroupClose:
		m.close(idx, true)
	case r == charclass.Separator:
		top := &m.stack[len(m.stack)-1]
		top.entries = append(top.entries, frameEntry{token: m.text[m.tokenStart:idx]})
		m.state = openingStack
	}
	// Forbidden runes and '(' are not special inside stack text; they stay
	// part of the token being accumulated.
}

func (m *machine) stepHandlingStackVariant(idx int, r rune) {
	switch {
	case charclass.Forbidden(r):
		m.abort()
	case r == charclass.GroupOpen:
		m.open()
		m.state = openingStack
	case r == charclass.VariantMarker,
		r == charclass.Separator,
		r == charclass.GroupClose:
		// no-op
	default:
		m.state = parsingStackText
	}
}

func (m *machine) stepClosingStack(idx int, r rune) {
	switch {
	case charclass.Forbidden(r):
		m.abort()
	case r == charclass.GroupClose:
		m.close(idx, false)
	case r == charclass.Separator:
		m.state = openingStack
	case r == charclass.VariantMarker,
		r == charclass.GroupOpen:
		// no-op
	default:
		// only a space or ')' may follow a closed nested group
		m.abort()
	}
}

// open pushes a frame for the group whose variant prefix runs from
// tokenStart through the ':' at variantEnd.
func (m *machine) open() {
	frame := groupFrame{
		variant:  m.text[m.tokenStart : m.variantEnd+1],
		startIdx: m.tokenStart,
	}
	m.stack = append(m.stack, frame)
	log.Debug("open %q at %d (depth %d)", frame.variant, frame.startIdx, len(m.stack))
}

// close pops the top frame at the ')' at byte offset idx. includePending
// first appends the word scanned since tokenStart. The folded frame either
// attaches to the enclosing frame as a closed child, or, when it was the
// outermost group, becomes a span.
func (m *machine) close(idx int, includePending bool) {
	frame := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if includePending {
		frame.entries = append(frame.entries, frameEntry{token: m.text[m.tokenStart:idx]})
	}
	tokens := frame.fold()
	if len(m.stack) > 0 {
		top := &m.stack[len(m.stack)-1]
		top.entries = append(top.entries, frameEntry{child: &closedGroup{
			variant:  frame.variant,
			startIdx: frame.startIdx,
			endIdx:   idx,
			tokens:   tokens,
		}})
		m.state = closingStack
		return
	}
	m.emit(Span{Start: frame.startIdx, End: idx, Content: joinPrefixed(frame.variant, tokens)})
	m.state = idle
}

// abort clears the stack on malformed group syntax. Groups that already
// closed under a frame still on the stack were themselves well formed, so
// their expansions are kept; the aborted frames' own variants are
// discarded along with their pending text. Walking the stack outer to
// inner keeps the salvaged spans in increasing start order.
func (m *machine) abort() {
	log.Debug("abort with %d open frame(s)", len(m.stack))
	for _, frame := range m.stack {
		for _, e := range frame.entries {
			if e.child == nil {
				continue
			}
			m.emit(Span{
				Start:   e.child.startIdx,
				End:     e.child.endIdx,
				Content: joinPrefixed(e.child.variant, e.child.tokens),
			})
		}
	}
	m.stack = m.stack[:0]
	m.state = idle
}

func (m *machine) emit(s Span) {
	log.Debug("emit [%d,%d] %q", s.Start, s.End, s.Content)
	m.spans = append(m.spans, s)
}
