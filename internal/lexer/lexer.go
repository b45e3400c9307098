package lexer

import (
	"dbml/internal/diag"
	"dbml/internal/source"
	"dbml/internal/syntax"
)

// Options configure a Lexer.
type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
}

type Lexer struct {
	text   *source.Text
	cursor Cursor
	opts   Options
	hold   []syntax.Trivia // буфер trivia, переиспользуется между вызовами
}

func New(text *source.Text, opts Options) *Lexer {
	return &Lexer{
		text:   text,
		cursor: NewCursor(text),
		opts:   opts,
	}
}

// Lex возвращает следующий токен вместе с leading и trailing trivia.
// После EOF всегда возвращает EOF. Плохие символы возвращаются как BadToken.
func (lx *Lexer) Lex() *syntax.Token {
	leading := lx.readTrivia(true)

	start := lx.cursor.Mark()
	kind, value := lx.readToken()
	text := lx.cursor.TextFrom(start)

	var trailing []syntax.Trivia
	if kind != syntax.EndOfFileToken {
		trailing = lx.readTrivia(false)
	}
	return syntax.NewToken(kind, int(start), text, value, leading, trailing)
}

// readToken dispatches on the current byte and advances past one token.
func (lx *Lexer) readToken() (syntax.Kind, any) {
	if lx.cursor.EOF() {
		return syntax.EndOfFileToken, nil
	}

	ch := lx.cursor.Peek()
	switch {
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanQuotedString('"', syntax.QuotationMarksStringToken)
	case ch == '\'' && lx.cursor.Starts("'''"):
		return lx.scanMultiLineString()
	case ch == '\'':
		return lx.scanQuotedString('\'', syntax.SingleQuotationMarksStringToken)
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор
		if r, _ := lx.peekRune(); isIdentStartRune(r) {
			return lx.scanIdentOrKeyword()
		}
		return lx.scanBadCharacter(), nil
	default:
		return lx.scanPunct(), nil
	}
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, source.Location{Text: lx.text, Span: sp}, msg)
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.report(code, diag.SevError, sp, msg)
}
