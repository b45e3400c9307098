package lexer

import (
	"dbml/internal/diag"
	"dbml/internal/syntax"
)

var punct = [utf8RuneSelf]syntax.Kind{
	'.': syntax.DotToken,
	'-': syntax.MinusToken,
	'+': syntax.PlusToken,
	'/': syntax.SlashToken,
	'*': syntax.StarToken,
	',': syntax.CommaToken,
	':': syntax.ColonToken,
	'(': syntax.OpenParenthesisToken,
	')': syntax.CloseParenthesisToken,
	'{': syntax.OpenBraceToken,
	'}': syntax.CloseBraceToken,
	'[': syntax.OpenBracketToken,
	']': syntax.CloseBracketToken,
	'`': syntax.BacktickToken,
	'>': syntax.GreaterToken,
}

// scanPunct: односимвольные токены прямой диспетчеризацией,
// '<' смотрит на один символ вперёд ради '<>'. Всё остальное считается плохим символом.
func (lx *Lexer) scanPunct() syntax.Kind {
	ch := lx.cursor.Peek()
	if ch == '<' {
		lx.cursor.Bump()
		if lx.cursor.Eat('>') {
			return syntax.LessGreaterToken
		}
		return syntax.LessToken
	}
	// BadToken == 0, поэтому незаполненные ячейки таблицы означают плохие символы
	if ch < utf8RuneSelf && punct[ch] != syntax.BadToken {
		k := punct[ch]
		lx.cursor.Bump()
		return k
	}
	return lx.scanBadCharacter()
}

// scanBadCharacter пропускает одну руну и репортит её.
func (lx *Lexer) scanBadCharacter() syntax.Kind {
	start := lx.cursor.Mark()
	lx.bumpRune()
	lx.errLex(diag.LexBadCharacter, lx.cursor.SpanFrom(start),
		"Bad character input: '"+lx.cursor.TextFrom(start)+"'.")
	return syntax.BadToken
}
