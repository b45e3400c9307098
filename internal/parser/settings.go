package parser

import (
	"dbml/internal/diag"
	"dbml/internal/syntax"
)

var settingListKinds = [...]syntax.Kind{
	ctxTable:        syntax.TableSettingListClause,
	ctxColumn:       syntax.ColumnSettingListClause,
	ctxIndex:        syntax.IndexSettingListClause,
	ctxEnumEntry:    syntax.EnumEntrySettingListClause,
	ctxRelationship: syntax.RelationshipSettingListClause,
}

// unknownSettings: вид узла, код и название контекста для неизвестной настройки.
var unknownSettings = map[parseContext]struct {
	kind  syntax.Kind
	code  diag.Code
	label string
}{
	ctxColumn:       {syntax.UnknownColumnSettingClause, diag.SemUnknownColumnSetting, "column setting"},
	ctxTable:        {syntax.UnknownTableSettingClause, diag.SemUnknownTableSetting, "table setting"},
	ctxIndex:        {syntax.UnknownIndexSettingClause, diag.SemUnknownIndexSetting, "index setting"},
	ctxEnumEntry:    {syntax.UnknownEnumEntrySettingClause, diag.SemUnknownEnumEntrySetting, "enum entry setting"},
	ctxRelationship: {syntax.UnknownRelationshipSettingClause, diag.SemUnknownRelationSetting, "relationship setting"},
	ctxGlobal:       {syntax.UnknownProjectSettingClause, diag.SemUnknownProjectSetting, "Project setting"},
}

// parseSettingList: '[' Setting (',' Setting)* ']'
func (p *Parser) parseSettingList(ctx parseContext) *syntax.SettingList {
	open := p.matchToken(syntax.OpenBracketToken)
	if p.at(syntax.CloseBracketToken) {
		// пустой список: нужна хотя бы одна настройка
		p.matchToken(syntax.IdentifierToken)
	}
	list := parseSeparatedList(p, syntax.CloseBracketToken, syntax.CommaToken, func() syntax.Setting {
		return p.parseSetting(ctx)
	})
	closeTok := p.matchToken(syntax.CloseBracketToken)
	p.checkDuplicateSettings(list.Nodes())
	return syntax.NewSettingList(settingListKinds[ctx], open, list, closeTok)
}

// parseSetting: фиксированный выбор по текущему токену и одному токену вперёд.
// Ключевые слова со значением выбираются только перед ':', 'primary' только с 'key',
// 'not' только с 'null'; иначе работает правило неизвестной настройки.
func (p *Parser) parseSetting(ctx parseContext) syntax.Setting {
	switch ctx {
	case ctxColumn:
		return p.parseColumnSetting()
	case ctxIndex:
		return p.parseIndexSetting()
	case ctxTable:
		if p.atValue(syntax.NoteKeyword) {
			return p.parseValueSetting(syntax.NoteTableSettingClause, p.parseStringValue)
		}
	case ctxEnumEntry:
		if p.atValue(syntax.NoteKeyword) {
			return p.parseValueSetting(syntax.NoteEnumEntrySettingClause, p.parseStringValue)
		}
	case ctxRelationship:
		if p.atValue(syntax.DeleteKeyword) || p.atValue(syntax.UpdateKeyword) {
			return p.parseActionSetting()
		}
	}
	return p.parseUnknownSetting(ctx)
}

func (p *Parser) parseColumnSetting() syntax.Setting {
	switch {
	case p.at(syntax.PkKeyword):
		return syntax.NewFlagSetting(syntax.PrimaryKeyColumnSettingClause, p.advance(), nil)
	case p.at(syntax.PrimaryKeyword) && p.peek(1).Kind() == syntax.KeyKeyword:
		return syntax.NewFlagSetting(syntax.PrimaryKeyColumnSettingClause, p.advance(), p.advance())
	case p.at(syntax.NullKeyword):
		return syntax.NewFlagSetting(syntax.NullColumnSettingClause, p.advance(), nil)
	case p.at(syntax.NotKeyword) && p.peek(1).Kind() == syntax.NullKeyword:
		return syntax.NewFlagSetting(syntax.NotNullColumnSettingClause, p.advance(), p.advance())
	case p.at(syntax.UniqueKeyword):
		return syntax.NewFlagSetting(syntax.UniqueColumnSettingClause, p.advance(), nil)
	case p.at(syntax.IncrementKeyword):
		return syntax.NewFlagSetting(syntax.IncrementColumnSettingClause, p.advance(), nil)
	case p.atValue(syntax.DefaultKeyword):
		s := p.parseValueSetting(syntax.DefaultColumnSettingClause, p.parseExpression)
		p.checkDefaultValue(s.Value)
		return s
	case p.atValue(syntax.NoteKeyword):
		return p.parseValueSetting(syntax.NoteColumnSettingClause, p.parseStringValue)
	case p.atValue(syntax.RefKeyword):
		ref := p.advance()
		colon := p.advance()
		op := p.parseRelOp()
		return syntax.NewInlineRefSetting(ref, colon, op, p.parseColumnRef())
	}
	return p.parseUnknownSetting(ctxColumn)
}

func (p *Parser) parseIndexSetting() syntax.Setting {
	switch {
	case p.at(syntax.PkKeyword):
		return syntax.NewFlagSetting(syntax.PrimaryKeyIndexSettingClause, p.advance(), nil)
	case p.at(syntax.UniqueKeyword):
		return syntax.NewFlagSetting(syntax.UniqueIndexSettingClause, p.advance(), nil)
	case p.atValue(syntax.NameKeyword):
		return p.parseValueSetting(syntax.NameIndexSettingClause, p.parseStringValue)
	case p.atValue(syntax.TypeKeyword):
		kw := p.advance()
		colon := p.advance()
		value := syntax.NewNameExpr(p.matchName())
		p.checkIndexType(value)
		return syntax.NewValueSetting(syntax.TypeIndexSettingClause, kw, colon, value)
	case p.atValue(syntax.NoteKeyword):
		return p.parseValueSetting(syntax.NoteIndexSettingClause, p.parseStringValue)
	}
	return p.parseUnknownSetting(ctxIndex)
}

// parseProjectSetting: 'database_type' ':' String | NoteDecl | Name (':' Expression)?
func (p *Parser) parseProjectSetting() syntax.Setting {
	switch next := p.peek(1).Kind(); {
	case p.atValue(syntax.DatabaseTypeKeyword):
		return p.parseValueSetting(syntax.DatabaseProviderProjectSettingClause, p.parseStringValue)
	case p.at(syntax.NoteKeyword) && (next == syntax.ColonToken || next == syntax.OpenBraceToken):
		return p.parseNote()
	}
	return p.parseUnknownSetting(ctxGlobal)
}

// parseValueSetting: kw ':' value; вызывается только когда atValue.
func (p *Parser) parseValueSetting(kind syntax.Kind, parseValue func() syntax.Expression) *syntax.ValueSetting {
	kw := p.advance()
	colon := p.advance()
	return syntax.NewValueSetting(kind, kw, colon, parseValue())
}

// parseActionSetting: ('delete'|'update') ':' action; action: одно или два слова.
func (p *Parser) parseActionSetting() *syntax.ActionSetting {
	kw := p.advance()
	colon := p.advance()

	first := p.matchName()
	action := []*syntax.Token{first}
	switch first.Text {
	case "set":
		if p.at(syntax.NullKeyword) || p.at(syntax.DefaultKeyword) {
			action = append(action, p.advance())
		}
	case "no":
		if p.current().Text == "action" {
			action = append(action, p.advance())
		}
	}

	s := syntax.NewActionSetting(kw, colon, action)
	p.checkRelationAction(s)
	return s
}

// parseUnknownSetting: Name (':' Expression)? с предупреждением.
func (p *Parser) parseUnknownSetting(ctx parseContext) *syntax.UnknownSetting {
	u := unknownSettings[ctx]
	name := p.matchName()
	if name.Missing {
		return syntax.NewUnknownSetting(u.kind, name, nil, nil)
	}

	var (
		colon *syntax.Token
		value syntax.Expression
	)
	if p.at(syntax.ColonToken) {
		colon = p.advance()
		value = p.parseExpression()
	}
	p.warn(u.code, name.Span(), "Unknown "+u.label+" '"+name.ValueText()+"'.")
	return syntax.NewUnknownSetting(u.kind, name, colon, value)
}
