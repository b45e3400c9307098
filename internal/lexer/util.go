package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = 0x80

// ===== Работа с рунами поверх Cursor =====

// peekRune декодирует руну в текущей позиции
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(lx.text.String()[lx.cursor.Off:])
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	lx.cursor.BumpN(sz)
}

// ===== Классификаторы =====

// ASCII fast-path для идентификаторов; Unicode: через isIdentStartRune/Continue.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isLineBreak(b byte) bool { return b == '\r' || b == '\n' }

// isSpace: пробельные символы кроме переводов строки.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}
