package parser

import (
	"dbml/internal/diag"
	"dbml/internal/source"
	"dbml/internal/syntax"
)

// current возвращает текущий (ещё не съеденный) токен, после конца это EOF.
func (p *Parser) current() *syntax.Token {
	return p.peek(0)
}

// peek смотрит на n токенов вперёд, не потребляя их.
func (p *Parser) peek(n int) *syntax.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) at(k syntax.Kind) bool {
	return p.current().Kind() == k
}

// atValue проверяет ключевое слово-настройку со значением, kw ':'.
func (p *Parser) atValue(k syntax.Kind) bool {
	return p.at(k) && p.peek(1).Kind() == syntax.ColonToken
}

// advance: съедает текущий токен. EOF никогда не съедается дважды.
func (p *Parser) advance() *syntax.Token {
	tok := p.current()
	if tok.Kind() != syntax.EndOfFileToken {
		p.pos++
	}
	return tok
}

// matchToken это единственный примитив восстановления. Если текущий токен
// не того вида, репортим ошибку и синтезируем пропущенный токен, ничего не съедая.
func (p *Parser) matchToken(k syntax.Kind) *syntax.Token {
	cur := p.current()
	if cur.Kind() == k {
		if k == syntax.EndOfFileToken {
			p.pos = len(p.tokens)
			return cur
		}
		return p.advance()
	}
	p.err(diag.SynUnexpectedToken, cur.Span(),
		"Unexpected token <"+cur.Kind().String()+">, expected <"+k.String()+">.")
	return syntax.NewMissingToken(k, cur.Start)
}

// matchName разбирает имя: идентификатор, любое ключевое слово или "строка в кавычках".
func (p *Parser) matchName() *syntax.Token {
	if p.current().Kind().IsName() {
		return p.advance()
	}
	return p.matchToken(syntax.IdentifierToken)
}

// skip переносит текущий токен (вместе с его trivia) в leading trivia
// следующего как SkippedTokensTrivia. Гарантирует прогресс циклов.
func (p *Parser) skip() {
	if p.at(syntax.EndOfFileToken) {
		return
	}
	cur := p.tokens[p.pos]
	p.tokens[p.pos+1] = p.tokens[p.pos+1].WithLeading(syntax.SkippedTrivia(cur))
	p.pos++
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) warn(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevWarning, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, source.Location{Text: p.text, Span: sp}, msg)
	}
}
