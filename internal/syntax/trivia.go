package syntax

import "dbml/internal/source"

// Trivia is source text that carries no grammatical meaning.
type Trivia struct {
	Kind  Kind
	Start int
	Text  string
}

func (t Trivia) Span() source.Span {
	return source.Span{Start: t.Start, Length: len(t.Text)}
}

// IsComment reports whether the trivia is a single- or multi-line comment.
func (t Trivia) IsComment() bool {
	return t.Kind == SingleLineCommentTrivia || t.Kind == MultiLineCommentTrivia
}

// SkippedTrivia flattens tok (its trivia and text) into a trivia run.
// The token text becomes a single SkippedTokensTrivia.
func SkippedTrivia(tok *Token) []Trivia {
	out := make([]Trivia, 0, len(tok.Leading)+1+len(tok.Trailing))
	out = append(out, tok.Leading...)
	if tok.Text != "" {
		out = append(out, Trivia{Kind: SkippedTokensTrivia, Start: tok.Start, Text: tok.Text})
	}
	out = append(out, tok.Trailing...)
	return out
}
