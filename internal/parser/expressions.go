package parser

import "dbml/internal/syntax"

// parseExpression: только первичные выражения, операторов нет.
//
//	'(' Expression ')' | '`' Expression '`' | 'null' | bool | number | string
//	| Name | Name '(' Expr,* ')'
func (p *Parser) parseExpression() syntax.Expression {
	cur := p.current()
	switch k := cur.Kind(); {
	case k == syntax.OpenParenthesisToken:
		open := p.advance()
		inner := p.parseExpression()
		return syntax.NewParenExpr(open, inner, p.matchToken(syntax.CloseParenthesisToken))
	case k == syntax.BacktickToken:
		return p.parseBacktick()
	case k == syntax.NullKeyword:
		return syntax.NewNullExpr(p.advance())
	case k == syntax.TrueKeyword, k == syntax.FalseKeyword, k == syntax.NumberToken,
		k == syntax.SingleQuotationMarksStringToken, k == syntax.MultiLineStringToken:
		return syntax.NewLiteralExpr(p.advance())
	case k.IsName():
		return p.parseNameOrCall()
	default:
		return syntax.NewNameExpr(p.matchToken(syntax.IdentifierToken))
	}
}

// parseNameOrCall: Name | Name '(' Expr,* ')'. "..." без скобок: строковый литерал.
func (p *Parser) parseNameOrCall() syntax.Expression {
	name := p.advance()
	if !p.at(syntax.OpenParenthesisToken) {
		if name.Kind() == syntax.QuotationMarksStringToken {
			return syntax.NewLiteralExpr(name)
		}
		return syntax.NewNameExpr(name)
	}
	open := p.advance()
	args := parseSeparatedList(p, syntax.CloseParenthesisToken, syntax.CommaToken, p.parseExpression)
	closeTok := p.matchToken(syntax.CloseParenthesisToken)
	return syntax.NewCallExpr(name, open, args, closeTok)
}

// parseBacktick: '`' Expression '`'
func (p *Parser) parseBacktick() *syntax.BacktickExpr {
	open := p.matchToken(syntax.BacktickToken)
	inner := p.parseExpression()
	return syntax.NewBacktickExpr(open, inner, p.matchToken(syntax.BacktickToken))
}

// parseStringLiteral: строка любой из трёх форм.
func (p *Parser) parseStringLiteral() *syntax.LiteralExpr {
	if p.current().Kind().IsString() {
		return syntax.NewLiteralExpr(p.advance())
	}
	return syntax.NewLiteralExpr(p.matchToken(syntax.SingleQuotationMarksStringToken))
}

func (p *Parser) parseStringValue() syntax.Expression { return p.parseStringLiteral() }
