package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the dbml CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Styled раскрашивает major.minor.patch; суффикс (-dev, +build) остаётся как есть.
func Styled(enabled bool) string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 || !enabled {
		return Version
	}
	return paint(versionMajorColor, parts[0]) + "." +
		paint(versionMinorColor, parts[1]) + "." +
		paint(versionPatchColor, parts[2]) + suffix
}

// paint красит независимо от NO_COLOR и TTY: решение уже принято вызывающим.
func paint(c *color.Color, s string) string {
	cp := *c
	cp.EnableColor()
	return cp.Sprint(s)
}

// Line is the full `dbml version` output line.
func Line(enabled bool) string {
	var b strings.Builder
	b.WriteString("dbml ")
	b.WriteString(Styled(enabled))
	if GitCommit != "" {
		b.WriteString(" (" + GitCommit + ")")
	}
	if BuildDate != "" {
		b.WriteString(" built " + BuildDate)
	}
	return b.String()
}
