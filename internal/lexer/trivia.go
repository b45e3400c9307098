package lexer

import (
	"slices"

	"dbml/internal/diag"
	"dbml/internal/source"
	"dbml/internal/syntax"
)

// readTrivia собирает подряд идущие trivia.
//   - пробелы и табы коалесцируются в один WhitespaceTrivia
//   - каждый перевод строки (\r\n, \r, \n): отдельный LineBreakTrivia
//   - //... до конца строки -> SingleLineCommentTrivia
//   - /* ... */ -> MultiLineCommentTrivia (без вложенности; если не закрыт: репорт и до EOF)
//
// Trailing trivia (leading=false) заканчивается сразу после первого перевода строки.
func (lx *Lexer) readTrivia(leading bool) []syntax.Trivia {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == '\r' || b == '\n':
			if lx.cursor.Starts("\r\n") {
				lx.cursor.BumpN(2)
			} else {
				lx.cursor.Bump()
			}
			lx.push(syntax.LineBreakTrivia, start)
			if !leading {
				return lx.flush()
			}

		case isSpace(b):
			for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.push(syntax.WhitespaceTrivia, start)

		case lx.cursor.Starts("//"):
			for !lx.cursor.EOF() && !isLineBreak(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.push(syntax.SingleLineCommentTrivia, start)

		case lx.cursor.Starts("/*"):
			lx.cursor.BumpN(2)
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.Starts("*/") {
					lx.cursor.BumpN(2)
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			if !closed {
				lx.errLex(diag.LexUnterminatedComment, source.Span{Start: int(start), Length: 2},
					"Unterminated multi-line comment.")
			}
			lx.push(syntax.MultiLineCommentTrivia, start)

		default:
			// нет больше trivia
			return lx.flush()
		}
	}
	return lx.flush()
}

func (lx *Lexer) push(kind syntax.Kind, start Mark) {
	lx.hold = append(lx.hold, syntax.Trivia{
		Kind:  kind,
		Start: int(start),
		Text:  lx.cursor.TextFrom(start),
	})
}

// flush копирует буфер: токены не должны разделять его память.
func (lx *Lexer) flush() []syntax.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	return slices.Clone(lx.hold)
}
