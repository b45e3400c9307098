package parser

import "dbml/internal/syntax"

// parseBlock: '{' Statement* '}'. Операторы разбираются в контексте ctx;
// дубликаты колонок и элементов enum проверяются в пределах одного блока.
func (p *Parser) parseBlock(ctx parseContext) *syntax.BlockStmt {
	open := p.matchToken(syntax.OpenBraceToken)

	var stmts []syntax.Statement
	for !p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) {
		start := p.pos
		s := p.parseStatement(ctx)
		if p.pos == start {
			p.skip()
			continue
		}
		stmts = append(stmts, s)
	}
	p.checkDuplicateMembers(ctx, stmts)

	closeTok := p.matchToken(syntax.CloseBraceToken)
	return syntax.NewBlockStmt(open, stmts, closeTok)
}

// parseStatement: Block | IndexesDecl | NoteDecl | ColumnDecl | EnumEntryDecl | ExpressionStatement
func (p *Parser) parseStatement(ctx parseContext) syntax.Statement {
	cur := p.current()
	next := p.peek(1).Kind()
	switch {
	case cur.Kind() == syntax.OpenBraceToken:
		return p.parseBlock(ctx)
	case cur.Kind() == syntax.IndexesKeyword && next == syntax.OpenBraceToken:
		return p.parseIndexes()
	case cur.Kind() == syntax.NoteKeyword && (next == syntax.ColonToken || next == syntax.OpenBraceToken):
		return p.parseNote()
	case ctx == ctxTable && cur.Kind().IsName():
		return p.parseColumn()
	case ctx == ctxEnum && cur.Kind().IsName():
		return p.parseEnumEntry()
	default:
		return syntax.NewExprStmt(p.parseExpression())
	}
}

// parseColumn: Name ColumnType SettingList?
func (p *Parser) parseColumn() *syntax.ColumnDecl {
	name := p.advance()
	typ := p.parseColumnType()

	var settings *syntax.SettingList
	if p.at(syntax.OpenBracketToken) {
		settings = p.parseSettingList(ctxColumn)
	}
	return syntax.NewColumnDecl(name, typ, settings)
}

// parseColumnType: Name ('.' Name)? ( '(' (Number|Name) (',' (Number|Name))* ')' )?
func (p *Parser) parseColumnType() *syntax.ColumnType {
	first := p.matchName()
	var schema, dot *syntax.Token
	name := first
	if p.at(syntax.DotToken) {
		schema = first
		dot = p.advance()
		name = p.matchName()
	}

	var args *syntax.TypeArgs
	if p.at(syntax.OpenParenthesisToken) {
		open := p.advance()
		list := parseSeparatedList(p, syntax.CloseParenthesisToken, syntax.CommaToken, p.parseTypeArgument)
		closeTok := p.matchToken(syntax.CloseParenthesisToken)
		args = syntax.NewTypeArgs(open, list, closeTok)
	}
	return syntax.NewColumnType(schema, dot, name, args)
}

func (p *Parser) parseTypeArgument() syntax.Expression {
	if p.at(syntax.NumberToken) {
		return syntax.NewLiteralExpr(p.advance())
	}
	return syntax.NewNameExpr(p.matchName())
}

// parseEnumEntry: Name SettingList?
func (p *Parser) parseEnumEntry() *syntax.EnumEntryDecl {
	name := p.advance()
	var settings *syntax.SettingList
	if p.at(syntax.OpenBracketToken) {
		settings = p.parseSettingList(ctxEnumEntry)
	}
	return syntax.NewEnumEntryDecl(name, settings)
}

// parseIndexes: 'indexes' '{' IndexDecl* '}', список без разделителей.
func (p *Parser) parseIndexes() *syntax.IndexesDecl {
	kw := p.advance()
	open := p.matchToken(syntax.OpenBraceToken)
	indexes := parseSeparatedList(p, syntax.CloseBraceToken, syntax.BadToken, p.parseIndex)
	closeTok := p.matchToken(syntax.CloseBraceToken)
	return syntax.NewIndexesDecl(kw, open, indexes, closeTok)
}

// parseIndex: '(' Expr (',' Expr)* ')' SettingList? | (Name | BacktickExpr) SettingList?
func (p *Parser) parseIndex() syntax.IndexDeclaration {
	if p.at(syntax.OpenParenthesisToken) {
		open := p.advance()
		fields := parseSeparatedList(p, syntax.CloseParenthesisToken, syntax.CommaToken, p.parseExpression)
		closeTok := p.matchToken(syntax.CloseParenthesisToken)
		return syntax.NewCompositeIndexDecl(open, fields, closeTok, p.parseIndexSettings())
	}
	field := p.parseIndexField()
	return syntax.NewSingleFieldIndexDecl(field, p.parseIndexSettings())
}

// parseIndexField: поле одиночного индекса, только имя или `выражение`.
func (p *Parser) parseIndexField() syntax.Expression {
	if p.at(syntax.BacktickToken) {
		return p.parseBacktick()
	}
	return syntax.NewNameExpr(p.matchName())
}

func (p *Parser) parseIndexSettings() *syntax.SettingList {
	if p.at(syntax.OpenBracketToken) {
		return p.parseSettingList(ctxIndex)
	}
	return nil
}

// parseNote: Note ( ':' String | '{' String '}' )
func (p *Parser) parseNote() *syntax.NoteDecl {
	kw := p.advance()
	if p.at(syntax.OpenBraceToken) {
		open := p.advance()
		note := p.parseStringLiteral()
		closeTok := p.matchToken(syntax.CloseBraceToken)
		return syntax.NewNoteDecl(kw, nil, open, note, closeTok)
	}
	colon := p.matchToken(syntax.ColonToken)
	return syntax.NewNoteDecl(kw, colon, nil, p.parseStringLiteral(), nil)
}
