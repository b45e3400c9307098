package parser

import "dbml/internal/syntax"

// parseSeparatedList разбирает элементы до закрывающего токена или EOF.
// sep == syntax.BadToken означает «без разделителя»: элементы идут подряд,
// и элемент, который ничего не съел, пропускается через skip.
// С разделителем список заканчивается на первом элементе, за которым нет sep;
// после разделителя элемент разбирается всегда, поэтому хвостового разделителя нет.
func parseSeparatedList[T syntax.Node](p *Parser, closeKind, sep syntax.Kind, parseItem func() T) *syntax.SeparatedList[T] {
	var (
		nodes []T
		seps  []*syntax.Token
	)
	if sep == syntax.BadToken {
		for !p.at(closeKind) && !p.at(syntax.EndOfFileToken) {
			start := p.pos
			item := parseItem()
			if p.pos == start {
				p.skip()
				continue
			}
			nodes = append(nodes, item)
		}
		return syntax.NewSeparatedList(nodes, nil)
	}

	if p.at(closeKind) || p.at(syntax.EndOfFileToken) {
		return syntax.NewSeparatedList(nodes, nil)
	}
	for {
		nodes = append(nodes, parseItem())
		if !p.at(sep) {
			break
		}
		seps = append(seps, p.advance())
	}
	return syntax.NewSeparatedList(nodes, seps)
}
