package diag

import (
	"fmt"
	"strings"
)

// FormatShort renders diagnostics into a stable, single-line-per-entry form:
//
//	<severity> <CODE> <name>:<line>:<col> <message>
//
// Lines and columns are 1-based here (the model keeps them 0-based).
// Diagnostics are rendered in the given order; callers sort first when they need to.
func FormatShort(items []Diagnostic) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range items {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s",
			d.Severity.Label(),
			d.Code.ID(),
			d.Location.FileName(),
			d.Location.StartLine()+1,
			d.Location.StartCharacter()+1,
			sanitizeMessage(d.Message),
		)
		if i < len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Messages returns just the messages, in order. Handy in tests.
func Messages(items []Diagnostic) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Message
	}
	return out
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
