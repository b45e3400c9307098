package syntax

import "dbml/internal/source"

// Node is implemented by tokens and every composite node in this package.
// The set of implementations is closed.
type Node interface {
	Kind() Kind
	// Span covers the node text without the outer trivia.
	Span() source.Span
	// Children returns the direct children in source order.
	Children() []Node
	// Tree returns the owning tree, or nil before NewTree attached it.
	Tree() *Tree

	base() *nodeBase
}

// Expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Statement nodes.
type Statement interface {
	Node
	statementNode()
}

// IndexDeclaration is a single-field or composite index inside an indexes block.
type IndexDeclaration interface {
	Statement
	indexDeclarationNode()
}

// Member is a top-level element of a compilation unit.
type Member interface {
	Node
	memberNode()
}

// Setting is an entry of a setting list or of a Project body.
type Setting interface {
	Node
	// SettingName is the name used for duplicate detection, e.g. "pk",
	// "primary key", "note" or the text of an unknown setting.
	SettingName() string
}

type nodeBase struct {
	tree *Tree
}

func (b *nodeBase) base() *nodeBase { return b }

func (b *nodeBase) Tree() *Tree { return b.tree }

// spanOf covers the first to the last child.
func spanOf(n Node) source.Span {
	kids := n.Children()
	if len(kids) == 0 {
		return source.Span{}
	}
	first := kids[0].Span()
	last := kids[len(kids)-1].Span()
	return source.FromBounds(first.Start, last.End())
}

// FullSpan covers the node including the leading trivia of its first token
// and the trailing trivia of its last token.
func FullSpan(n Node) source.Span {
	first, last := FirstToken(n), LastToken(n)
	if first == nil || last == nil {
		return n.Span()
	}
	return source.FromBounds(first.FullSpan().Start, last.FullSpan().End())
}

// FirstToken returns the leftmost token of n, missing tokens included.
func FirstToken(n Node) *Token {
	if t, ok := n.(*Token); ok {
		return t
	}
	for _, c := range n.Children() {
		if t := FirstToken(c); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the rightmost token of n.
func LastToken(n Node) *Token {
	if t, ok := n.(*Token); ok {
		return t
	}
	kids := n.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		if t := LastToken(kids[i]); t != nil {
			return t
		}
	}
	return nil
}

// tokens добавляет в out только непустые (non-nil) токены.
func tokens(out []Node, toks ...*Token) []Node {
	for _, t := range toks {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}
