package source

import (
	"sort"
)

// Line describes one line of a Text.
// Length excludes the line break; LengthIncludingBreak covers it.
type Line struct {
	Start                int
	Length               int
	LengthIncludingBreak int
}

// End returns the offset right after the last character of the line (before its break).
func (l Line) End() int { return l.Start + l.Length }

// Span returns the span of the line without its line break.
func (l Line) Span() Span { return Span{Start: l.Start, Length: l.Length} }

// SpanIncludingBreak returns the span of the line together with its line break.
func (l Line) SpanIncludingBreak() Span {
	return Span{Start: l.Start, Length: l.LengthIncludingBreak}
}

// Text is an immutable source buffer with a precomputed line index.
type Text struct {
	name    string
	content string
	lines   []Line
}

// From builds a Text from a string. name is only used for display.
func From(content, name string) *Text {
	return &Text{
		name:    name,
		content: content,
		lines:   buildLines(content),
	}
}

// Name returns the display name of the text (usually a path).
func (t *Text) Name() string { return t.name }

// Len returns the length of the text in bytes.
func (t *Text) Len() int { return len(t.content) }

// At returns the byte at offset i, or 0 past the end.
func (t *Text) At(i int) byte {
	if i < 0 || i >= len(t.content) {
		return 0
	}
	return t.content[i]
}

// String returns the whole content.
func (t *Text) String() string { return t.content }

// Slice returns the content covered by span.
func (t *Text) Slice(sp Span) string {
	start := min(max(sp.Start, 0), len(t.content))
	end := min(max(sp.End(), start), len(t.content))
	return t.content[start:end]
}

// Lines returns the line table. Do not modify the returned slice.
func (t *Text) Lines() []Line { return t.lines }

// Line returns the line with the given 0-based index.
func (t *Text) Line(index int) Line { return t.lines[index] }

// LineIndex returns the index of the last line whose start is <= offset.
func (t *Text) LineIndex(offset int) int {
	// бинпоиск: первая строка, которая начинается правее offset
	i := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].Start > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// LineText returns the text of the line with the given index, without its break.
func (t *Text) LineText(index int) string {
	if index < 0 || index >= len(t.lines) {
		return ""
	}
	return t.Slice(t.lines[index].Span())
}
