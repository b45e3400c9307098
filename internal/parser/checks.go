package parser

import (
	"fmt"
	"slices"

	"dbml/internal/diag"
	"dbml/internal/syntax"
)

// parseContext определяет, как разбираются операторы блока и элементы списков настроек.
type parseContext uint8

const (
	ctxGlobal parseContext = iota
	ctxTable
	ctxEnum
	ctxColumn
	ctxIndex
	ctxEnumEntry
	ctxRelationship
)

var (
	indexTypes      = []string{"btree", "gin", "gist", "hash"}
	relationActions = []string{"cascade", "restrict", "no action", "set null", "set default"}
)

// declare регистрирует имя в области документа; повтор: предупреждение
// на втором идентификаторе.
func (p *Parser) declare(scope map[string]struct{}, id *syntax.QualifiedName, code diag.Code, format string) {
	name := id.QualifiedName()
	if _, dup := scope[name]; dup {
		p.warn(code, id.Span(), fmt.Sprintf(format, name))
		return
	}
	scope[name] = struct{}{}
}

// checkDuplicateSettings: одно имя настройки в пределах одного списка.
func (p *Parser) checkDuplicateSettings(settings []syntax.Setting) {
	seen := make(map[string]struct{}, len(settings))
	for _, s := range settings {
		name := s.SettingName()
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			p.warn(diag.SemDuplicateSetting, s.Span(), "Setting '"+name+"' already declared.")
			continue
		}
		seen[name] = struct{}{}
	}
}

// checkDuplicateMembers: колонки в теле таблицы, элементы в теле enum.
func (p *Parser) checkDuplicateMembers(ctx parseContext, stmts []syntax.Statement) {
	seen := make(map[string]struct{})
	check := func(name *syntax.Token, code diag.Code, format string) {
		if name.Missing {
			return
		}
		text := name.ValueText()
		if _, dup := seen[text]; dup {
			p.warn(code, name.Span(), fmt.Sprintf(format, text))
			return
		}
		seen[text] = struct{}{}
	}
	for _, s := range stmts {
		switch n := s.(type) {
		case *syntax.ColumnDecl:
			if ctx == ctxTable {
				check(n.Name, diag.SemDuplicateColumn, "Column '%s' already declared.")
			}
		case *syntax.EnumEntryDecl:
			if ctx == ctxEnum {
				check(n.Name, diag.SemDuplicateEnumEntry, "Enum entry '%s' already declared.")
			}
		}
	}
}

// checkIndexType: значение type должно быть из фиксированного набора (точное совпадение).
func (p *Parser) checkIndexType(value *syntax.NameExpr) {
	if value.Identifier.Missing {
		return
	}
	if name := value.Name(); !slices.Contains(indexTypes, name) {
		p.warn(diag.SemUnknownIndexType, value.Span(),
			"Unknown index setting type '"+name+"'. Allowed index types: btree, gin, gist, hash.")
	}
}

// checkRelationAction: delete/update принимают фиксированный набор действий.
func (p *Parser) checkRelationAction(s *syntax.ActionSetting) {
	if len(s.Action) == 0 || s.Action[0].Missing {
		return
	}
	if action := s.ActionText(); !slices.Contains(relationActions, action) {
		sp := s.Action[0].Span().Cover(s.Action[len(s.Action)-1].Span())
		p.warn(diag.SemUnknownRelationshipAction, sp,
			"Unknown relationship action '"+action+"'. Allowed actions: cascade, restrict, no action, set null, set default.")
	}
}

// checkDefaultValue: литерал, null или выражение в обратных кавычках.
func (p *Parser) checkDefaultValue(value syntax.Expression) {
	switch v := value.(type) {
	case *syntax.LiteralExpr, *syntax.NullExpr, *syntax.BacktickExpr:
		return
	case *syntax.NameExpr:
		if v.Identifier.Missing {
			return
		}
	}
	p.warn(diag.SemDisallowedDefaultValue, value.Span(),
		"Column setting default value '"+p.text.Slice(value.Span())+"' is not allowed.")
}
