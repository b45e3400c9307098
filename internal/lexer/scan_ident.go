package lexer

import "dbml/internal/syntax"

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Текст токена: ровно исходный срез.
// true/false получают значение bool.
func (lx *Lexer) scanIdentOrKeyword() (syntax.Kind, any) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if r, _ := lx.peekRune(); !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	k, ok := syntax.LookupKeyword(lx.cursor.TextFrom(start))
	switch {
	case !ok:
		return syntax.IdentifierToken, nil
	case k == syntax.TrueKeyword:
		return k, true
	case k == syntax.FalseKeyword:
		return k, false
	}
	return k, nil
}
