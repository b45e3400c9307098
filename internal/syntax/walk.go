package syntax

import (
	"io"
	"strings"
)

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each child with w,
// followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first source order.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range n.Children() {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if n != nil && f(n) {
		return f
	}
	return nil
}

// Inspect calls f for n and its descendants in source order; f returning
// false prunes the children of that node.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Tokens returns every token under n in source order, missing tokens included.
func Tokens(n Node) []*Token {
	var out []*Token
	Inspect(n, func(c Node) bool {
		if t, ok := c.(*Token); ok {
			out = append(out, t)
			return false
		}
		return true
	})
	return out
}

// WriteFullText writes the text of n including every trivia.
func WriteFullText(w io.Writer, n Node) error {
	for _, t := range Tokens(n) {
		for _, tr := range t.Leading {
			if _, err := io.WriteString(w, tr.Text); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, t.Text); err != nil {
			return err
		}
		for _, tr := range t.Trailing {
			if _, err := io.WriteString(w, tr.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

// FullText returns the text of n including every trivia.
func FullText(n Node) string {
	var b strings.Builder
	for _, t := range Tokens(n) {
		writeToken(&b, t)
	}
	return b.String()
}
