package syntax

import "dbml/internal/source"

// CompUnit is the compilation unit, the root of every tree: Member* EndOfFile.
type CompUnit struct {
	nodeBase
	Members   []Member
	EndOfFile *Token
}

func NewCompUnit(members []Member, eof *Token) *CompUnit {
	return &CompUnit{Members: members, EndOfFile: eof}
}

func (*CompUnit) Kind() Kind          { return CompilationUnit }
func (n *CompUnit) Span() source.Span { return spanOf(n) }

func (n *CompUnit) Children() []Node {
	out := make([]Node, 0, len(n.Members)+1)
	for _, m := range n.Members {
		out = append(out, m)
	}
	return append(out, n.EndOfFile)
}

// Tables returns the table declarations in document order.
func (n *CompUnit) Tables() []*TableDecl {
	var out []*TableDecl
	for _, m := range n.Members {
		if t, ok := m.(*TableDecl); ok {
			out = append(out, t)
		}
	}
	return out
}

// Enums returns the enum declarations in document order.
func (n *CompUnit) Enums() []*EnumDecl {
	var out []*EnumDecl
	for _, m := range n.Members {
		if e, ok := m.(*EnumDecl); ok {
			out = append(out, e)
		}
	}
	return out
}

// GlobalStmt wraps a statement found at top level.
type GlobalStmt struct {
	nodeBase
	Statement Statement
}

func NewGlobalStmt(stmt Statement) *GlobalStmt { return &GlobalStmt{Statement: stmt} }

func (*GlobalStmt) Kind() Kind          { return GlobalStatement }
func (n *GlobalStmt) Span() source.Span { return n.Statement.Span() }
func (n *GlobalStmt) Children() []Node  { return []Node{n.Statement} }
func (*GlobalStmt) memberNode()         {}

// ProjectDecl is 'Project' Name '{' ProjectSetting* '}'.
type ProjectDecl struct {
	nodeBase
	ProjectKeyword *Token
	Name           *Token
	OpenBrace      *Token
	Settings       []Setting
	CloseBrace     *Token
}

func NewProjectDecl(kw, name, open *Token, settings []Setting, closeTok *Token) *ProjectDecl {
	return &ProjectDecl{ProjectKeyword: kw, Name: name, OpenBrace: open, Settings: settings, CloseBrace: closeTok}
}

func (*ProjectDecl) Kind() Kind          { return ProjectDeclaration }
func (n *ProjectDecl) Span() source.Span { return spanOf(n) }
func (*ProjectDecl) memberNode()         {}

func (n *ProjectDecl) Children() []Node {
	out := []Node{n.ProjectKeyword, n.Name, n.OpenBrace}
	for _, s := range n.Settings {
		out = append(out, s)
	}
	return append(out, n.CloseBrace)
}

// ProjectName returns the declared project name.
func (n *ProjectDecl) ProjectName() string { return n.Name.ValueText() }

// TableDecl is 'Table' TableId Alias? SettingList? Block.
type TableDecl struct {
	nodeBase
	TableKeyword *Token
	Identifier   *QualifiedName
	Alias        *AliasClause // optional
	Settings     *SettingList // optional
	Body         *BlockStmt
}

func NewTableDecl(kw *Token, id *QualifiedName, alias *AliasClause, settings *SettingList, body *BlockStmt) *TableDecl {
	return &TableDecl{TableKeyword: kw, Identifier: id, Alias: alias, Settings: settings, Body: body}
}

func (*TableDecl) Kind() Kind          { return TableDeclaration }
func (n *TableDecl) Span() source.Span { return spanOf(n) }
func (*TableDecl) memberNode()         {}

func (n *TableDecl) Children() []Node {
	out := []Node{n.TableKeyword, n.Identifier}
	if n.Alias != nil {
		out = append(out, n.Alias)
	}
	if n.Settings != nil {
		out = append(out, n.Settings)
	}
	return append(out, n.Body)
}

// Columns returns the column declarations of the body, nested blocks excluded.
func (n *TableDecl) Columns() []*ColumnDecl {
	var out []*ColumnDecl
	for _, s := range n.Body.Statements {
		if c, ok := s.(*ColumnDecl); ok {
			out = append(out, c)
		}
	}
	return out
}

// EnumDecl is 'enum' EnumId Block.
type EnumDecl struct {
	nodeBase
	EnumKeyword *Token
	Identifier  *QualifiedName
	Body        *BlockStmt
}

func NewEnumDecl(kw *Token, id *QualifiedName, body *BlockStmt) *EnumDecl {
	return &EnumDecl{EnumKeyword: kw, Identifier: id, Body: body}
}

func (*EnumDecl) Kind() Kind          { return EnumDeclaration }
func (n *EnumDecl) Span() source.Span { return spanOf(n) }
func (n *EnumDecl) Children() []Node  { return []Node{n.EnumKeyword, n.Identifier, n.Body} }
func (*EnumDecl) memberNode()         {}

// Entries returns the entry declarations of the body.
func (n *EnumDecl) Entries() []*EnumEntryDecl {
	var out []*EnumEntryDecl
	for _, s := range n.Body.Statements {
		if e, ok := s.(*EnumEntryDecl); ok {
			out = append(out, e)
		}
	}
	return out
}

// ShortRefDecl is 'ref' Name? ':' Constraint.
type ShortRefDecl struct {
	nodeBase
	RefKeyword   *Token
	Name         *Token // optional
	Colon        *Token
	Relationship *RefConstraint
}

func NewShortRefDecl(ref, name, colon *Token, rel *RefConstraint) *ShortRefDecl {
	return &ShortRefDecl{RefKeyword: ref, Name: name, Colon: colon, Relationship: rel}
}

func (*ShortRefDecl) Kind() Kind          { return ShortFormRelationshipDeclaration }
func (n *ShortRefDecl) Span() source.Span { return spanOf(n) }
func (*ShortRefDecl) memberNode()         {}

func (n *ShortRefDecl) Children() []Node {
	return append(tokens(nil, n.RefKeyword, n.Name, n.Colon), n.Relationship)
}

// LongRefDecl is 'ref' Name? '{' Constraint* '}'.
type LongRefDecl struct {
	nodeBase
	RefKeyword    *Token
	Name          *Token // optional
	OpenBrace     *Token
	Relationships []*RefConstraint
	CloseBrace    *Token
}

func NewLongRefDecl(ref, name, open *Token, rels []*RefConstraint, closeTok *Token) *LongRefDecl {
	return &LongRefDecl{RefKeyword: ref, Name: name, OpenBrace: open, Relationships: rels, CloseBrace: closeTok}
}

func (*LongRefDecl) Kind() Kind          { return LongFormRelationshipDeclaration }
func (n *LongRefDecl) Span() source.Span { return spanOf(n) }
func (*LongRefDecl) memberNode()         {}

func (n *LongRefDecl) Children() []Node {
	out := tokens(nil, n.RefKeyword, n.Name, n.OpenBrace)
	for _, r := range n.Relationships {
		out = append(out, r)
	}
	return append(out, n.CloseBrace)
}
