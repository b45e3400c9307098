// Package testkit holds structural checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"
	"strings"

	"dbml/internal/syntax"
)

// CheckTree runs the structural invariants of a finished tree:
//  1. the tokens with their trivia reproduce the source text exactly
//  2. every non-token node has at least one child
//  3. every child span lies inside its parent span, children in source order
//  4. the last token is the only EndOfFileToken and it sits at the end of the text
//  5. missing tokens are empty and their kind is a token kind
func CheckTree(tree *syntax.Tree) error {
	if tree == nil || tree.Root() == nil {
		return fmt.Errorf("nil tree or root")
	}
	if err := CheckRoundTrip(tree); err != nil {
		return err
	}

	var walkErr error
	syntax.Inspect(tree.Root(), func(n syntax.Node) bool {
		if walkErr != nil {
			return false
		}
		walkErr = checkNode(n)
		return walkErr == nil
	})
	if walkErr != nil {
		return walkErr
	}

	toks := syntax.Tokens(tree.Root())
	last := toks[len(toks)-1]
	if last.Kind() != syntax.EndOfFileToken {
		return fmt.Errorf("last token is %s, want EndOfFileToken", last.Kind())
	}
	if end := tree.Text().Len(); last.Start != end {
		return fmt.Errorf("EndOfFileToken at %d, text length %d", last.Start, end)
	}
	for _, t := range toks[:len(toks)-1] {
		if t.Kind() == syntax.EndOfFileToken {
			return fmt.Errorf("EndOfFileToken inside the tree at %d", t.Start)
		}
	}
	return nil
}

// CheckRoundTrip compares the full text of the tree with its source.
func CheckRoundTrip(tree *syntax.Tree) error {
	want := tree.Text().String()
	got := tree.FullText()
	if got == want {
		return nil
	}
	i := 0
	for i < len(got) && i < len(want) && got[i] == want[i] {
		i++
	}
	return fmt.Errorf("round trip differs at offset %d: got %q, want %q",
		i, excerpt(got, i), excerpt(want, i))
}

func checkNode(n syntax.Node) error {
	if t, ok := n.(*syntax.Token); ok {
		if !t.Kind().IsToken() {
			return fmt.Errorf("token with non-token kind %s", t.Kind())
		}
		if t.Missing && t.Text != "" {
			return fmt.Errorf("missing %s has text %q", t.Kind(), t.Text)
		}
		for _, tr := range append(append([]syntax.Trivia(nil), t.Leading...), t.Trailing...) {
			if !tr.Kind.IsTrivia() {
				return fmt.Errorf("trivia of %s has kind %s", t.Kind(), tr.Kind)
			}
		}
		return nil
	}

	kids := n.Children()
	if len(kids) == 0 {
		return fmt.Errorf("%s at %s has no children", n.Kind(), n.Span())
	}
	sp := n.Span()
	prevEnd := sp.Start
	for _, c := range kids {
		csp := c.Span()
		if !sp.Contains(csp) {
			return fmt.Errorf("%s %s is outside %s %s", c.Kind(), csp, n.Kind(), sp)
		}
		if csp.Start < prevEnd {
			return fmt.Errorf("%s %s overlaps its previous sibling in %s", c.Kind(), csp, n.Kind())
		}
		prevEnd = csp.End()
	}
	return nil
}

func excerpt(s string, at int) string {
	end := min(len(s), at+16)
	return strings.ToValidUTF8(s[at:end], "?")
}
