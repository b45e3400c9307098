package syntax

import (
	"strings"

	"dbml/internal/source"
)

// Token is a leaf node: one lexeme plus the trivia attached to it.
type Token struct {
	nodeBase
	kind Kind

	Start    int
	Text     string
	Value    any // decimal.Decimal, string, bool or nil
	Leading  []Trivia
	Trailing []Trivia
	// Missing is set on tokens synthesized by the parser; they have empty text.
	Missing bool
}

// NewToken creates a token. The tree is attached when the owning Tree is built.
func NewToken(kind Kind, start int, text string, value any, leading, trailing []Trivia) *Token {
	return &Token{
		kind:     kind,
		Start:    start,
		Text:     text,
		Value:    value,
		Leading:  leading,
		Trailing: trailing,
	}
}

// NewMissingToken creates a zero-width placeholder for an expected token.
func NewMissingToken(kind Kind, start int) *Token {
	return &Token{kind: kind, Start: start, Missing: true}
}

func (t *Token) Kind() Kind { return t.kind }

func (t *Token) Span() source.Span {
	return source.Span{Start: t.Start, Length: len(t.Text)}
}

// FullSpan covers the token together with its leading and trailing trivia.
func (t *Token) FullSpan() source.Span {
	start, end := t.Start, t.Start+len(t.Text)
	if len(t.Leading) > 0 {
		start = t.Leading[0].Start
	}
	if n := len(t.Trailing); n > 0 {
		end = t.Trailing[n-1].Span().End()
	}
	return source.FromBounds(start, end)
}

func (t *Token) Children() []Node { return nil }

// WithLeading returns a copy of t whose leading trivia is prefix followed by t's own.
func (t *Token) WithLeading(prefix []Trivia) *Token {
	if len(prefix) == 0 {
		return t
	}
	cp := *t
	cp.Leading = make([]Trivia, 0, len(prefix)+len(t.Leading))
	cp.Leading = append(cp.Leading, prefix...)
	cp.Leading = append(cp.Leading, t.Leading...)
	return &cp
}

// ValueText returns the name a token denotes: the unquoted value for
// double-quoted strings, the raw text otherwise.
func (t *Token) ValueText() string {
	if t == nil {
		return ""
	}
	if t.kind.IsString() {
		if s, ok := t.Value.(string); ok {
			return s
		}
	}
	return t.Text
}

// FullText returns leading trivia, text and trailing trivia concatenated.
func (t *Token) FullText() string {
	var b strings.Builder
	writeToken(&b, t)
	return b.String()
}

func writeToken(b *strings.Builder, t *Token) {
	for _, tr := range t.Leading {
		b.WriteString(tr.Text)
	}
	b.WriteString(t.Text)
	for _, tr := range t.Trailing {
		b.WriteString(tr.Text)
	}
}

func (t *Token) String() string {
	if t.Missing {
		return t.kind.String() + "<missing>"
	}
	return t.kind.String() + " " + t.Span().String() + " " + quoteText(t.Text)
}

func quoteText(s string) string {
	r := strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
