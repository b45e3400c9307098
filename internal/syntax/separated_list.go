package syntax

import "fmt"

// SeparatedList holds items interleaved with separator tokens.
// A list parsed without a separator kind has no separators.
type SeparatedList[T Node] struct {
	nodes      []T
	separators []*Token
}

// NewSeparatedList panics unless separators are absent or exactly one fewer than nodes.
func NewSeparatedList[T Node](nodes []T, separators []*Token) *SeparatedList[T] {
	if len(separators) != 0 && len(separators) != len(nodes)-1 {
		panic(fmt.Sprintf("syntax: separated list with %d nodes and %d separators", len(nodes), len(separators)))
	}
	return &SeparatedList[T]{nodes: nodes, separators: separators}
}

// Len returns the number of items, separators excluded.
func (l *SeparatedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.nodes)
}

// At returns the i-th item.
func (l *SeparatedList[T]) At(i int) T { return l.nodes[i] }

// Nodes returns the items only.
func (l *SeparatedList[T]) Nodes() []T {
	if l == nil {
		return nil
	}
	return append([]T(nil), l.nodes...)
}

// Separators returns the separator tokens only.
func (l *SeparatedList[T]) Separators() []*Token {
	if l == nil {
		return nil
	}
	return append([]*Token(nil), l.separators...)
}

// SeparatorAt returns the separator following the i-th item, or nil.
func (l *SeparatedList[T]) SeparatorAt(i int) *Token {
	if l == nil || i < 0 || i >= len(l.separators) {
		return nil
	}
	return l.separators[i]
}

// NodesAndSeparators returns node0, sep0, node1, ... in source order.
func (l *SeparatedList[T]) NodesAndSeparators() []Node {
	if l == nil {
		return nil
	}
	out := make([]Node, 0, len(l.nodes)+len(l.separators))
	for i, n := range l.nodes {
		out = append(out, n)
		if i < len(l.separators) {
			out = append(out, l.separators[i])
		}
	}
	return out
}
