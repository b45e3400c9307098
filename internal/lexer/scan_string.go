package lexer

import (
	"strings"

	"dbml/internal/diag"
	"dbml/internal/source"
	"dbml/internal/syntax"
)

// scanQuotedString: "..." или '...'. Удвоенный разделитель: экранированный разделитель.
// Перевод строки или EOF до закрывающей кавычки: ошибка на открывающей кавычке,
// токен заканчивается перед переводом строки.
func (lx *Lexer) scanQuotedString(delim byte, kind syntax.Kind) (syntax.Kind, any) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening delimiter

	var b strings.Builder
	for {
		if lx.cursor.EOF() || isLineBreak(lx.cursor.Peek()) {
			lx.errLex(diag.LexUnterminatedString, source.Span{Start: int(start), Length: 1},
				"Unterminated string literal.")
			break
		}
		if lx.cursor.Peek() == delim {
			if lx.cursor.PeekAt(1) == delim {
				lx.cursor.BumpN(2)
				b.WriteByte(delim)
				continue
			}
			lx.cursor.Bump()
			break
		}
		m := lx.cursor.Mark()
		lx.bumpRune()
		b.WriteString(lx.cursor.TextFrom(m))
	}
	return kind, b.String()
}

// scanMultiLineString: строка в тройных одинарных кавычках с escape-последовательностями \\ \' \n \t \r
// и \<перевод строки> (продолжение строки). Ошибки репортятся здесь,
// значение строится отдельно в multiLineValue.
func (lx *Lexer) scanMultiLineString() (syntax.Kind, any) {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(3)
	bodyStart := lx.cursor.Off
	bodyEnd := -1

	for !lx.cursor.EOF() {
		if lx.cursor.Starts("'''") {
			bodyEnd = lx.cursor.Off
			lx.cursor.BumpN(3)
			break
		}
		if lx.cursor.Peek() != '\\' {
			lx.bumpRune()
			continue
		}

		esc := lx.cursor.Mark()
		lx.cursor.Bump() // '\'
		if lx.cursor.EOF() {
			break
		}
		switch c := lx.cursor.Peek(); c {
		case '\\', '\'', 'n', 't', 'r', '\n':
			lx.cursor.Bump()
		case '\r':
			lx.cursor.Bump()
			lx.cursor.Eat('\n')
		default:
			lx.bumpRune()
			seq := lx.cursor.TextFrom(esc)
			lx.errLex(diag.LexUnrecognizedEscape, lx.cursor.SpanFrom(esc),
				"Unrecognized escape sequence '"+seq+"'.")
		}
	}

	if bodyEnd < 0 {
		bodyEnd = lx.cursor.Off
		lx.errLex(diag.LexUnterminatedMultiLineString, source.Span{Start: int(start), Length: 3},
			"Unterminated multi-line string literal.")
	}
	raw := lx.text.Slice(source.FromBounds(bodyStart, bodyEnd))
	return syntax.MultiLineStringToken, multiLineValue(raw)
}

// multiLineValue нормализует тело многострочной строки:
//  1. первый перевод строки сразу после открывающих кавычек отбрасывается;
//  2. общий отступ непустых строк срезается (считается по сырому тексту);
//  3. хвостовые пустые строки удаляются;
//  4. применяются escape-последовательности.
func multiLineValue(raw string) string {
	switch {
	case strings.HasPrefix(raw, "\r\n"):
		raw = raw[2:]
	case strings.HasPrefix(raw, "\n"), strings.HasPrefix(raw, "\r"):
		raw = raw[1:]
	}

	lines, breaks := splitLines(raw)
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
		if len(breaks) > 0 {
			breaks = breaks[:len(breaks)-1]
		}
	}

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	var b strings.Builder
	for i, line := range lines {
		if indent > 0 {
			if len(line) >= indent {
				line = line[indent:]
			} else {
				line = strings.TrimLeft(line, " \t")
			}
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString(breaks[i])
		}
	}
	return unescape(b.String())
}

// splitLines режет текст по \r\n, \r, \n; breaks[i]: разделитель после lines[i].
func splitLines(s string) (lines, breaks []string) {
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				breaks = append(breaks, "\r\n")
				i++
			} else {
				breaks = append(breaks, "\r")
			}
			start = i + 1
		case '\n':
			lines = append(lines, s[start:i])
			breaks = append(breaks, "\n")
			start = i + 1
		}
	}
	return append(lines, s[start:]), breaks
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch c := s[i+1]; c {
		case '\\', '\'':
			b.WriteByte(c)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\n':
		case '\r':
			if i+2 < len(s) && s[i+2] == '\n' {
				i++
			}
		default:
			// нераспознанная последовательность остаётся как есть
			b.WriteByte('\\')
			b.WriteByte(c)
		}
		i++
	}
	return b.String()
}
