package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"

	"dbml/internal/source"
	"dbml/internal/syntax"
)

type SpanOutput struct {
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

type TokenOutput struct {
	Kind     string     `json:"kind" msgpack:"kind"`
	Text     string     `json:"text,omitempty" msgpack:"text,omitempty"`
	Value    string     `json:"value,omitempty" msgpack:"value,omitempty"`
	Span     SpanOutput `json:"span" msgpack:"span"`
	Missing  bool       `json:"missing,omitempty" msgpack:"missing,omitempty"`
	Leading  []string   `json:"leading,omitempty" msgpack:"leading,omitempty"`
	Trailing []string   `json:"trailing,omitempty" msgpack:"trailing,omitempty"`
}

func triviaKinds(trivia []syntax.Trivia) []string {
	if len(trivia) == 0 {
		return nil
	}
	out := make([]string, len(trivia))
	for i, tr := range trivia {
		out[i] = tr.Kind.String()
	}
	return out
}

// valueString: литеральное значение токена, пусто если его нет.
func valueString(tok *syntax.Token) string {
	switch v := tok.Value.(type) {
	case decimal.Decimal:
		return v.String()
	case string:
		return v
	case bool:
		return fmt.Sprint(v)
	}
	return ""
}

// BuildTokensOutput конвертирует токены в записи для сериализации.
func BuildTokensOutput(tokens []*syntax.Token) ([]TokenOutput, error) {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		start, err := toUint32(tok.Start)
		if err != nil {
			return nil, err
		}
		end, err := toUint32(tok.Span().End())
		if err != nil {
			return nil, err
		}
		out = append(out, TokenOutput{
			Kind:     tok.Kind().String(),
			Text:     tok.Text,
			Value:    valueString(tok),
			Span:     SpanOutput{Start: start, End: end},
			Missing:  tok.Missing,
			Leading:  triviaKinds(tok.Leading),
			Trailing: triviaKinds(tok.Trailing),
		})
	}
	return out, nil
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []*syntax.Token, text *source.Text) error {
	var b strings.Builder
	for i, tok := range tokens {
		sl, sc := lineCol(text, tok.Start)
		el, ec := lineCol(text, tok.Span().End())

		fmt.Fprintf(&b, "%3d: %-32s", i+1, tok.Kind().String())
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", sl, sc, el, ec)
		if v := valueString(tok); v != "" && v != tok.Text {
			fmt.Fprintf(&b, " = %q", v)
		}
		if leading := triviaKinds(tok.Leading); len(leading) > 0 {
			fmt.Fprintf(&b, " (leading: %s)", strings.Join(leading, ", "))
		}
		if trailing := triviaKinds(tok.Trailing); len(trailing) > 0 {
			fmt.Fprintf(&b, " (trailing: %s)", strings.Join(trailing, ", "))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []*syntax.Token) error {
	output, err := BuildTokensOutput(tokens)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatTokensMsgpack пишет те же записи в msgpack.
func FormatTokensMsgpack(w io.Writer, tokens []*syntax.Token) error {
	output, err := BuildTokensOutput(tokens)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(output)
}
