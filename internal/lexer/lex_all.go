package lexer

import "dbml/internal/syntax"

// LexAll лексирует весь текст сразу. BadToken-ы не попадают в результат:
// они (вместе со своими trivia) приклеиваются к leading trivia следующего
// токена как SkippedTokensTrivia. Последний элемент всегда EndOfFileToken.
func LexAll(lx *Lexer) []*syntax.Token {
	var (
		out     []*syntax.Token
		skipped []syntax.Trivia
	)
	for {
		tok := lx.Lex()
		if tok.Kind() == syntax.BadToken {
			skipped = append(skipped, syntax.SkippedTrivia(tok)...)
			continue
		}
		tok = tok.WithLeading(skipped)
		skipped = nil
		out = append(out, tok)
		if tok.Kind() == syntax.EndOfFileToken {
			return out
		}
	}
}
