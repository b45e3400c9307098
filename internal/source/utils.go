package source

import (
	"bytes"
	"path/filepath"
)

// buildLines режет текст на строки по \r\n, \r и \n.
// Всегда возвращает хотя бы одну строку, последняя строка есть даже без перевода строки.
func buildLines(content string) []Line {
	lines := make([]Line, 0, 16)
	lineStart := 0
	pos := 0
	for pos < len(content) {
		width := lineBreakWidth(content, pos)
		if width == 0 {
			pos++
			continue
		}
		lines = append(lines, Line{
			Start:                lineStart,
			Length:               pos - lineStart,
			LengthIncludingBreak: pos - lineStart + width,
		})
		pos += width
		lineStart = pos
	}
	if pos >= lineStart {
		lines = append(lines, Line{
			Start:                lineStart,
			Length:               pos - lineStart,
			LengthIncludingBreak: pos - lineStart,
		})
	}
	return lines
}

// lineBreakWidth returns 2 for \r\n, 1 for a lone \r or \n, 0 otherwise.
func lineBreakWidth(content string, pos int) int {
	switch content[pos] {
	case '\r':
		if pos+1 < len(content) && content[pos+1] == '\n' {
			return 2
		}
		return 1
	case '\n':
		return 1
	}
	return 0
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bomUTF8) {
		return content[len(bomUTF8):], true
	}
	return content, false
}

func hasUTF16BOM(content []byte) bool {
	return bytes.HasPrefix(content, bomUTF16LE) || bytes.HasPrefix(content, bomUTF16BE)
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
