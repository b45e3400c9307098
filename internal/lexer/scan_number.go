package lexer

import (
	"strings"

	"github.com/shopspring/decimal"

	"dbml/internal/diag"
	"dbml/internal/syntax"
)

// maxIntegerDigits: наибольшая целая часть, представимая 96-битным десятичным.
const maxIntegerDigits = "79228162514264337593543950335"

// maxScale: сколько знаков дробной части сохраняем.
const maxScale = 28

// scanNumber: [0-9_]+ ('.' [0-9_]*)?
// '_' косметические и удаляются перед разбором. Значение: decimal.Decimal;
// при переполнении репортим ошибку и оставляем Value пустым, текст сохраняем.
func (lx *Lexer) scanNumber() (syntax.Kind, any) {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	text := lx.cursor.TextFrom(start)
	value, ok := parseDecimal(text)
	if !ok {
		lx.errLex(diag.LexNumberTooLarge, lx.cursor.SpanFrom(start), "Number '"+text+"' is too large.")
		return syntax.NumberToken, nil
	}
	return syntax.NumberToken, value
}

// parseDecimal strips '_' and parses the rest; ok is false when the integer
// part does not fit the representable range.
func parseDecimal(text string) (decimal.Decimal, bool) {
	digits := strings.ReplaceAll(text, "_", "")
	intPart, fracPart, _ := strings.Cut(digits, ".")

	intPart = strings.TrimLeft(intPart, "0")
	if len(intPart) > len(maxIntegerDigits) ||
		(len(intPart) == len(maxIntegerDigits) && intPart > maxIntegerDigits) {
		return decimal.Decimal{}, false
	}
	if intPart == "" {
		intPart = "0"
	}

	literal := intPart
	if fracPart != "" {
		literal += "." + fracPart
	}
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if len(fracPart) > maxScale {
		d = d.Round(maxScale)
	}
	return d, true
}
