// Package token defines the demangler's sole output: an append-only ordered
// sequence of coloured text spans. Parsing never touches this package; only
// the AST's rendering side writes to it.
package token

import "strings"

// Color is a decorative tag attached to a span. Colour values form a small
// closed enumeration; consumers that don't care about colour may discard it
// and concatenate spans for the plain-text declaration.
type Color int

const (
	// WHITE is the default, uncoloured text: punctuation with no special role.
	WHITE Color = iota
	// RED marks pointer and reference sigils (*, &, &&).
	RED
	// BLUE marks identifiers: names of symbols, classes, namespaces.
	BLUE
	// MAGENTA marks keyword-like primitive and intrinsic type names.
	MAGENTA
	// PURPLE marks typedef and template-parameter names.
	PURPLE
	// GRAY20 marks light punctuation: commas, parens.
	GRAY20
	// GRAY40 marks heavier punctuation: scope-resolution colons, braces.
	GRAY40
	// GREEN marks calling conventions and storage-class keywords.
	GREEN
)

// String names the colour; mostly useful in test failure messages.
func (c Color) String() string {
	switch c {
	case WHITE:
		return "WHITE"
	case RED:
		return "RED"
	case BLUE:
		return "BLUE"
	case MAGENTA:
		return "MAGENTA"
	case PURPLE:
		return "PURPLE"
	case GRAY20:
		return "GRAY20"
	case GRAY40:
		return "GRAY40"
	case GREEN:
		return "GREEN"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether c is one of the enumerated colours.
func (c Color) Valid() bool {
	return c >= WHITE && c <= GREEN
}

// Span is one (text, colour) pair in the output stream.
type Span struct {
	Text  string
	Color Color
}

// Stream is the append-only sequence of spans produced by rendering an AST.
// It carries no parsing state of its own; it is purely a write target for
// the formatter.
type Stream struct {
	spans []Span
}

// NewStream returns an empty output stream.
func NewStream() *Stream {
	return &Stream{}
}

// Push appends a span with the given colour.
func (s *Stream) Push(text string, color Color) {
	s.spans = append(s.spans, Span{Text: text, Color: color})
}

// PushCow appends a span whose text may be owned or borrowed from the input.
// In Go both cases are plain strings, so PushCow is Push's synonym, kept for
// symmetry with the two-name push API the grammar describes.
func (s *Stream) PushCow(text string, color Color) {
	s.Push(text, color)
}

// Spans returns the accumulated span sequence in emission order.
func (s *Stream) Spans() []Span {
	return s.spans
}

// Len reports how many spans have been pushed.
func (s *Stream) Len() int {
	return len(s.spans)
}

// String concatenates every span's text, discarding colour, yielding the
// plain-text demangled declaration.
func (s *Stream) String() string {
	var b strings.Builder
	for _, sp := range s.spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
