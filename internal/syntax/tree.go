package syntax

import (
	"slices"
	"strings"
	"sync/atomic"

	"dbml/internal/diag"
	"dbml/internal/source"
)

// Tree owns a parsed document: its text, root and diagnostics.
// A Tree is immutable after NewTree returns and safe for concurrent reads.
type Tree struct {
	text        *source.Text
	root        *CompUnit
	diagnostics []diag.Diagnostic

	// parents is built on first Parent call; concurrent builders race
	// through CompareAndSwap and the loser adopts the winner's map.
	parents atomic.Pointer[map[Node]Node]
}

// NewTree creates the owner, runs build to obtain root and diagnostics and
// attaches every node of the root to the owner.
func NewTree(text *source.Text, build func(owner *Tree) (*CompUnit, []diag.Diagnostic)) *Tree {
	t := &Tree{text: text}
	root, diags := build(t)
	if root == nil {
		panic("syntax: tree builder returned nil root")
	}
	t.root = root
	t.diagnostics = diags
	Inspect(root, func(n Node) bool {
		n.base().tree = t
		return true
	})
	return t
}

func (t *Tree) Text() *source.Text { return t.text }

func (t *Tree) Root() *CompUnit { return t.root }

// Diagnostics returns a copy of the diagnostics in discovery order.
func (t *Tree) Diagnostics() []diag.Diagnostic { return slices.Clone(t.diagnostics) }

// HasErrors reports whether any diagnostic has error severity.
func (t *Tree) HasErrors() bool {
	return slices.ContainsFunc(t.diagnostics, diag.Diagnostic.IsError)
}

// Location returns the location of n in the tree text.
func (t *Tree) Location(n Node) source.Location {
	return source.Location{Text: t.text, Span: n.Span()}
}

// TextOf returns the source text covered by n, trivia excluded.
func (t *Tree) TextOf(n Node) string { return t.text.Slice(n.Span()) }

// FullText reconstructs the document from the tokens.
func (t *Tree) FullText() string { return FullText(t.root) }

// Parent returns the parent of n, or nil for the root and foreign nodes.
func (t *Tree) Parent(n Node) Node {
	return t.parentMap()[n]
}

// Ancestors returns the parents of n from the closest up to the root.
func (t *Tree) Ancestors(n Node) []Node {
	parents := t.parentMap()
	var out []Node
	for p := parents[n]; p != nil; p = parents[p] {
		out = append(out, p)
	}
	return out
}

func (t *Tree) parentMap() map[Node]Node {
	if m := t.parents.Load(); m != nil {
		return *m
	}
	m := make(map[Node]Node)
	stack := []Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range n.Children() {
			m[c] = n
			stack = append(stack, c)
		}
	}
	t.parents.CompareAndSwap(nil, &m)
	return *t.parents.Load()
}

// String renders the tree as an indented outline, for debugging.
func (t *Tree) String() string {
	var b strings.Builder
	depth := map[Node]int{}
	Inspect(t.root, func(n Node) bool {
		d := depth[n]
		for _, c := range n.Children() {
			depth[c] = d + 1
		}
		b.WriteString(strings.Repeat("  ", d))
		if tok, ok := n.(*Token); ok {
			b.WriteString(tok.String())
		} else {
			b.WriteString(n.Kind().String())
			b.WriteByte(' ')
			b.WriteString(n.Span().String())
		}
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
