package parser

import (
	"dbml/internal/diag"
	"dbml/internal/syntax"
)

// parseProject: 'Project' Name '{' ProjectSetting* '}'
func (p *Parser) parseProject() *syntax.ProjectDecl {
	kw := p.advance()
	name := p.matchName()
	open := p.matchToken(syntax.OpenBraceToken)

	var settings []syntax.Setting
	for !p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) {
		start := p.pos
		s := p.parseProjectSetting()
		if p.pos == start {
			p.skip()
			continue
		}
		settings = append(settings, s)
	}
	p.checkDuplicateSettings(settings)

	closeTok := p.matchToken(syntax.CloseBraceToken)
	return syntax.NewProjectDecl(kw, name, open, settings, closeTok)
}

// parseTable: 'Table' TableId Alias? SettingList? Block
func (p *Parser) parseTable() *syntax.TableDecl {
	kw := p.advance()
	id := p.parseQualifiedName(syntax.TableIdentifierClause)
	if !id.Name.Missing {
		p.declare(p.tables, id, diag.SemDuplicateTable, "Duplicate table name '%s'.")
	}

	var alias *syntax.AliasClause
	if p.at(syntax.AsKeyword) {
		as := p.advance()
		alias = syntax.NewAliasClause(as, p.matchName())
	}

	var settings *syntax.SettingList
	if p.at(syntax.OpenBracketToken) {
		settings = p.parseSettingList(ctxTable)
	}

	body := p.parseBlock(ctxTable)
	return syntax.NewTableDecl(kw, id, alias, settings, body)
}

// parseEnum: 'enum' EnumId Block
func (p *Parser) parseEnum() *syntax.EnumDecl {
	kw := p.advance()
	id := p.parseQualifiedName(syntax.EnumIdentifierClause)
	if !id.Name.Missing {
		p.declare(p.enums, id, diag.SemDuplicateEnum, "Duplicate enum name '%s'.")
	}
	body := p.parseBlock(ctxEnum)
	return syntax.NewEnumDecl(kw, id, body)
}

// parseRef: 'ref' Name? ( ':' Constraint | '{' Constraint* '}' )
func (p *Parser) parseRef() syntax.Member {
	ref := p.advance()

	var name *syntax.Token
	if p.current().Kind().IsName() {
		switch p.peek(1).Kind() {
		case syntax.ColonToken, syntax.OpenBraceToken:
			name = p.advance()
		}
	}

	if !p.at(syntax.OpenBraceToken) {
		colon := p.matchToken(syntax.ColonToken)
		return syntax.NewShortRefDecl(ref, name, colon, p.parseRefConstraint())
	}

	open := p.advance()
	var rels []*syntax.RefConstraint
	for !p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) {
		start := p.pos
		rel := p.parseRefConstraint()
		if p.pos == start {
			p.skip()
			continue
		}
		rels = append(rels, rel)
	}
	closeTok := p.matchToken(syntax.CloseBraceToken)
	return syntax.NewLongRefDecl(ref, name, open, rels, closeTok)
}

// parseRefConstraint: ColumnId RelOp ColumnId SettingList?
func (p *Parser) parseRefConstraint() *syntax.RefConstraint {
	from := p.parseColumnRef()
	op := p.parseRelOp()
	to := p.parseColumnRef()

	var settings *syntax.SettingList
	if p.at(syntax.OpenBracketToken) {
		settings = p.parseSettingList(ctxRelationship)
	}
	return syntax.NewRefConstraint(from, op, to, settings)
}

// parseRelOp: '<' | '>' | '-' | '<>'
func (p *Parser) parseRelOp() *syntax.Token {
	switch p.current().Kind() {
	case syntax.LessToken, syntax.GreaterToken, syntax.MinusToken, syntax.LessGreaterToken:
		return p.advance()
	}
	return p.matchToken(syntax.GreaterToken)
}

// parseQualifiedName: Name ('.' Name)?
func (p *Parser) parseQualifiedName(kind syntax.Kind) *syntax.QualifiedName {
	first := p.matchName()
	var schema, dot *syntax.Token
	name := first
	if p.at(syntax.DotToken) {
		schema = first
		dot = p.advance()
		name = p.matchName()
	}
	if kind == syntax.EnumIdentifierClause {
		return syntax.NewEnumIdentifierClause(schema, dot, name)
	}
	return syntax.NewTableIdentifierClause(schema, dot, name)
}

// parseColumnRef: Name ('.' Name){0,2}
func (p *Parser) parseColumnRef() *syntax.ColumnRef {
	names := []*syntax.Token{p.matchName()}
	var dots []*syntax.Token
	for len(names) < 3 && p.at(syntax.DotToken) {
		dots = append(dots, p.advance())
		names = append(names, p.matchName())
	}
	return syntax.NewColumnRef(syntax.NewSeparatedList(names, dots))
}
