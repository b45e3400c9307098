package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dbml/internal/diag"
	"dbml/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, code, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		code:   color.New(color.FgMagenta),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	if sev == diag.SevError {
		return p.err
	}
	return p.warn
}

// Pretty форматирует диагностики в человекочитаемый вид, в переданном порядке.
// Для каждой печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строки контекста и строку с подчёркиванием ^~~~ по Span.
// Строки и колонки 1-based.
func Pretty(w io.Writer, items []diag.Diagnostic, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	n := limit(len(items), opts.Max)
	for i := range n {
		if err := prettyOne(w, items[i], p, opts); err != nil {
			return err
		}
	}
	if n < len(items) {
		if _, err := fmt.Fprintf(w, "... %d more diagnostics not shown\n", len(items)-n); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, p palette, opts PrettyOpts) error {
	loc := d.Location
	header := fmt.Sprintf("%s:%d:%d: %s %s: %s\n",
		p.path.Sprint(formatPath(loc.FileName(), opts.PathMode, opts.BaseDir)),
		loc.StartLine()+1,
		loc.StartCharacter()+1,
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message,
	)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if loc.Text == nil {
		return nil
	}

	line := loc.StartLine()
	first := max(0, line-opts.Context)
	gutterWidth := len(fmt.Sprint(line + 1))

	var b strings.Builder
	for i := first; i <= line; i++ {
		fmt.Fprintf(&b, "%s %s\n",
			p.gutter.Sprintf("%*d |", gutterWidth, i+1),
			expandTabs(loc.Text.LineText(i)))
	}

	lineText := loc.Text.LineText(line)
	col := min(loc.StartCharacter(), len(lineText))
	end := len(lineText)
	if loc.EndLine() == line {
		end = min(max(loc.EndCharacter(), col), len(lineText))
	}
	pad := runewidth.StringWidth(expandTabs(lineText[:col]))
	width := max(1, runewidth.StringWidth(expandTabs(lineText[col:end])))

	fmt.Fprintf(&b, "%s %s%s\n",
		p.gutter.Sprint(strings.Repeat(" ", gutterWidth)+" |"),
		strings.Repeat(" ", pad),
		p.caret.Sprint("^"+strings.Repeat("~", width-1)))

	_, err := io.WriteString(w, b.String())
	return err
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// Summary returns "N error(s), M warning(s)".
func Summary(items []diag.Diagnostic) string {
	return fmt.Sprintf("%d error(s), %d warning(s)",
		diag.Count(items, diag.SevError),
		diag.Count(items, diag.SevWarning))
}

// lineCol returns 1-based line and column for an offset.
func lineCol(text *source.Text, offset int) (int, int) {
	if text == nil {
		return 0, 0
	}
	line := text.LineIndex(offset)
	return line + 1, offset - text.Line(line).Start + 1
}
