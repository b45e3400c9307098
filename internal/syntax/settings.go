package syntax

import (
	"strings"

	"dbml/internal/source"
)

// FlagSetting is a keyword setting without value: pk, primary key,
// null, not null, unique, increment. Kind tells the context.
type FlagSetting struct {
	nodeBase
	kind          Kind
	Keyword       *Token
	SecondKeyword *Token // key in "primary key", null in "not null"
}

// NewFlagSetting panics if kind is not a flag setting kind.
func NewFlagSetting(kind Kind, kw, second *Token) *FlagSetting {
	switch kind {
	case PrimaryKeyColumnSettingClause, NullColumnSettingClause, NotNullColumnSettingClause,
		UniqueColumnSettingClause, IncrementColumnSettingClause,
		PrimaryKeyIndexSettingClause, UniqueIndexSettingClause:
	default:
		panic("syntax: not a flag setting kind: " + kind.String())
	}
	return &FlagSetting{kind: kind, Keyword: kw, SecondKeyword: second}
}

func (n *FlagSetting) Kind() Kind        { return n.kind }
func (n *FlagSetting) Span() source.Span { return spanOf(n) }
func (n *FlagSetting) Children() []Node  { return tokens(nil, n.Keyword, n.SecondKeyword) }

func (n *FlagSetting) SettingName() string {
	if n.SecondKeyword == nil {
		return keywordName(n.Keyword)
	}
	return keywordName(n.Keyword) + " " + keywordName(n.SecondKeyword)
}

// ValueSetting is keyword ':' value: default, note, name, type, database_type.
type ValueSetting struct {
	nodeBase
	kind    Kind
	Keyword *Token
	Colon   *Token
	Value   Expression
}

// NewValueSetting panics if kind is not a value setting kind.
func NewValueSetting(kind Kind, kw, colon *Token, value Expression) *ValueSetting {
	switch kind {
	case DefaultColumnSettingClause, NoteColumnSettingClause, NoteTableSettingClause,
		NameIndexSettingClause, TypeIndexSettingClause, NoteIndexSettingClause,
		NoteEnumEntrySettingClause, DatabaseProviderProjectSettingClause:
	default:
		panic("syntax: not a value setting kind: " + kind.String())
	}
	return &ValueSetting{kind: kind, Keyword: kw, Colon: colon, Value: value}
}

func (n *ValueSetting) Kind() Kind          { return n.kind }
func (n *ValueSetting) Span() source.Span   { return spanOf(n) }
func (n *ValueSetting) Children() []Node    { return []Node{n.Keyword, n.Colon, n.Value} }
func (n *ValueSetting) SettingName() string { return keywordName(n.Keyword) }

// StringValue returns the value when it is a string literal.
func (n *ValueSetting) StringValue() (string, bool) {
	if lit, ok := n.Value.(*LiteralExpr); ok {
		s, ok := lit.Value().(string)
		return s, ok
	}
	return "", false
}

// InlineRefSetting is the inline 'ref' ':' RelOp ColumnId column setting.
type InlineRefSetting struct {
	nodeBase
	RefKeyword *Token
	Colon      *Token
	Operator   *Token
	Column     *ColumnRef
}

func NewInlineRefSetting(ref, colon, op *Token, column *ColumnRef) *InlineRefSetting {
	return &InlineRefSetting{RefKeyword: ref, Colon: colon, Operator: op, Column: column}
}

func (*InlineRefSetting) Kind() Kind          { return RelationshipColumnSettingClause }
func (n *InlineRefSetting) Span() source.Span { return spanOf(n) }

func (n *InlineRefSetting) Children() []Node {
	return []Node{n.RefKeyword, n.Colon, n.Operator, n.Column}
}

func (n *InlineRefSetting) SettingName() string { return keywordName(n.RefKeyword) }

// ActionSetting is ('delete'|'update') ':' action where
// action is one or two names, e.g. cascade or set null.
type ActionSetting struct {
	nodeBase
	Keyword *Token
	Colon   *Token
	Action  []*Token
}

func NewActionSetting(kw, colon *Token, action []*Token) *ActionSetting {
	return &ActionSetting{Keyword: kw, Colon: colon, Action: action}
}

func (*ActionSetting) Kind() Kind          { return ActionRelationshipSettingClause }
func (n *ActionSetting) Span() source.Span { return spanOf(n) }
func (n *ActionSetting) SettingName() string {
	return keywordName(n.Keyword)
}

func (n *ActionSetting) Children() []Node {
	return tokens([]Node{n.Keyword, n.Colon}, n.Action...)
}

// ActionText returns the action words joined by a single space.
func (n *ActionSetting) ActionText() string {
	parts := make([]string, 0, len(n.Action))
	for _, t := range n.Action {
		if !t.Missing {
			parts = append(parts, t.ValueText())
		}
	}
	return strings.Join(parts, " ")
}

// UnknownSetting is any setting the context does not recognize:
// Name (':' Expression)?. Kind tells the context.
type UnknownSetting struct {
	nodeBase
	kind  Kind
	Name  *Token
	Colon *Token     // optional
	Value Expression // present iff Colon is
}

// NewUnknownSetting panics if kind is not an unknown setting kind.
func NewUnknownSetting(kind Kind, name, colon *Token, value Expression) *UnknownSetting {
	switch kind {
	case UnknownColumnSettingClause, UnknownTableSettingClause, UnknownIndexSettingClause,
		UnknownEnumEntrySettingClause, UnknownRelationshipSettingClause, UnknownProjectSettingClause:
	default:
		panic("syntax: not an unknown setting kind: " + kind.String())
	}
	return &UnknownSetting{kind: kind, Name: name, Colon: colon, Value: value}
}

func (n *UnknownSetting) Kind() Kind          { return n.kind }
func (n *UnknownSetting) Span() source.Span   { return spanOf(n) }
func (n *UnknownSetting) SettingName() string { return n.Name.ValueText() }

func (n *UnknownSetting) Children() []Node {
	out := tokens(nil, n.Name, n.Colon)
	if n.Value != nil {
		out = append(out, n.Value)
	}
	return out
}
