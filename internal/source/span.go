package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, Start+Length).
type Span struct {
	Start  int
	Length int
}

// FromBounds builds a span from start and end offsets.
func FromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}

func (s Span) End() int { return s.Start + s.Length }

func (s Span) Empty() bool { return s.Length == 0 }

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End())
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End() <= s.End()
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	start := min(s.Start, other.Start)
	end := max(s.End(), other.End())
	return FromBounds(start, end)
}

// Location ties a span to the text it points into.
type Location struct {
	Text *Text
	Span Span
}

// FileName returns the display name of the underlying text.
func (l Location) FileName() string {
	if l.Text == nil {
		return ""
	}
	return l.Text.Name()
}

// StartLine is the 0-based line of the span start.
func (l Location) StartLine() int {
	if l.Text == nil {
		return 0
	}
	return l.Text.LineIndex(l.Span.Start)
}

// StartCharacter is the 0-based column of the span start, in bytes.
func (l Location) StartCharacter() int {
	if l.Text == nil {
		return l.Span.Start
	}
	return l.Span.Start - l.Text.Line(l.StartLine()).Start
}

// EndLine is the 0-based line of the span end.
func (l Location) EndLine() int {
	if l.Text == nil {
		return 0
	}
	return l.Text.LineIndex(l.Span.End())
}

// EndCharacter is the 0-based column of the span end, in bytes.
func (l Location) EndCharacter() int {
	if l.Text == nil {
		return l.Span.End()
	}
	return l.Span.End() - l.Text.Line(l.EndLine()).Start
}

func (l Location) String() string {
	return fmt.Sprintf("%s(%d,%d,%d,%d)", l.FileName(), l.StartLine(), l.StartCharacter(), l.EndLine(), l.EndCharacter())
}
