package lexer

import "dbml/internal/source"

// Cursor представляет собой позицию в тексте
type Cursor struct {
	Text *source.Text
	Off  int
}

// NewCursor creates a cursor at the start of the text.
func NewCursor(text *source.Text) Cursor {
	return Cursor{Text: text}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.Text.Len()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	return c.Text.At(c.Off)
}

// PeekAt читает байт со смещением n от текущей позиции, иначе 0
func (c *Cursor) PeekAt(n int) byte {
	return c.Text.At(c.Off + n)
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Text.At(c.Off)
	c.Off++
	return b
}

// BumpN перемещает курсор на n байт, не выходя за конец текста
func (c *Cursor) BumpN(n int) {
	c.Off = min(c.Off+n, c.Text.Len())
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark int

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.FromBounds(int(m), c.Off)
}

// TextFrom возвращает текст от метки до текущей позиции
func (c *Cursor) TextFrom(m Mark) string {
	return c.Text.Slice(c.SpanFrom(m))
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = int(m)
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Text.At(c.Off) == b {
		c.Off++
		return true
	}
	return false
}

// Starts reports whether the remaining text begins with s.
func (c *Cursor) Starts(s string) bool {
	for i := 0; i < len(s); i++ {
		if c.Off+i >= c.Text.Len() || c.Text.At(c.Off+i) != s[i] {
			return false
		}
	}
	return true
}
