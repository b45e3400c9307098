package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"dbml/internal/syntax"
)

// TreeOpts configures the syntax tree printer.
type TreeOpts struct {
	Color  bool
	Trivia bool // печатать leading/trailing trivia под токенами
}

type treeNode struct {
	label    string
	children []*treeNode
}

type treeStyles struct {
	node, token, missing, trivia, span lipgloss.Style
}

func newTreeStyles(w io.Writer, enabled bool) treeStyles {
	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return treeStyles{
		node:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		token:   r.NewStyle().Foreground(lipgloss.Color("2")),
		missing: r.NewStyle().Foreground(lipgloss.Color("1")).Italic(true),
		trivia:  r.NewStyle().Foreground(lipgloss.Color("8")),
		span:    r.NewStyle().Foreground(lipgloss.Color("7")).Faint(true),
	}
}

func buildTreeNode(n syntax.Node, st treeStyles, opts TreeOpts) *treeNode {
	span := st.span.Render(n.Span().String())
	tok, isToken := n.(*syntax.Token)
	if !isToken {
		node := &treeNode{label: st.node.Render(n.Kind().String()) + " " + span}
		for _, c := range n.Children() {
			node.children = append(node.children, buildTreeNode(c, st, opts))
		}
		return node
	}

	label := st.token.Render(tok.Kind().String()) + " " + span
	switch {
	case tok.Missing:
		label += " " + st.missing.Render("<missing>")
	case tok.Text != "":
		label += " " + fmt.Sprintf("%q", tok.Text)
	}
	node := &treeNode{label: label}
	if opts.Trivia {
		for _, tr := range tok.Leading {
			node.children = append(node.children, &treeNode{
				label: st.trivia.Render(fmt.Sprintf("Leading %s %s %q", tr.Kind, tr.Span(), tr.Text)),
			})
		}
		for _, tr := range tok.Trailing {
			node.children = append(node.children, &treeNode{
				label: st.trivia.Render(fmt.Sprintf("Trailing %s %s %q", tr.Kind, tr.Span(), tr.Text)),
			})
		}
	}
	return node
}

func writeTree(b *strings.Builder, node *treeNode, prefix string) {
	for i, c := range node.children {
		branch, next := "├─ ", "│  "
		if i == len(node.children)-1 {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix + branch + c.label + "\n")
		writeTree(b, c, prefix+next)
	}
}

// FormatTreePretty печатает дерево с корнем n в виде
//
//	CompilationUnit 0..42
//	├─ TableDeclaration 0..42
//	│  ├─ TableKeyword 0..5 "Table"
func FormatTreePretty(w io.Writer, n syntax.Node, opts TreeOpts) error {
	root := buildTreeNode(n, newTreeStyles(w, opts.Color), opts)
	var b strings.Builder
	b.WriteString(root.label + "\n")
	writeTree(&b, root, "")
	_, err := io.WriteString(w, b.String())
	return err
}

type NodeOutput struct {
	Kind     string       `json:"kind"`
	Span     SpanOutput   `json:"span"`
	Text     string       `json:"text,omitempty"`
	Missing  bool         `json:"missing,omitempty"`
	Children []NodeOutput `json:"children,omitempty"`
}

func buildNodeOutput(n syntax.Node) (NodeOutput, error) {
	sp := n.Span()
	start, err := toUint32(sp.Start)
	if err != nil {
		return NodeOutput{}, err
	}
	end, err := toUint32(sp.End())
	if err != nil {
		return NodeOutput{}, err
	}
	out := NodeOutput{Kind: n.Kind().String(), Span: SpanOutput{Start: start, End: end}}
	if tok, ok := n.(*syntax.Token); ok {
		out.Text = tok.Text
		out.Missing = tok.Missing
		return out, nil
	}
	for _, c := range n.Children() {
		child, err := buildNodeOutput(c)
		if err != nil {
			return NodeOutput{}, err
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}

// FormatTreeJSON выводит дерево в JSON; trivia не включаются.
func FormatTreeJSON(w io.Writer, n syntax.Node) error {
	out, err := buildNodeOutput(n)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
