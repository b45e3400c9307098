package diagfmt

import (
	"path/filepath"
	"strings"

	"dbml/internal/observ"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short paths and cuts long absolute ones to the basename.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int // строк исходника перед строкой с ошибкой
	PathMode PathMode
	BaseDir  string // для PathModeRelative; пусто: рабочая директория
	Max      int    // обрезка вывода, не Bag
}

// JSONOpts configures JSON and msgpack output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	BaseDir          string
	Max              int
	Timings          *observ.Report // nil: без раздела timings
}

const autoPathLimit = 40

func formatPath(name string, mode PathMode, baseDir string) string {
	if name == "" {
		return "<input>"
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(name); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		base := baseDir
		if base == "" {
			base = "."
		}
		absBase, errBase := filepath.Abs(base)
		absName, errName := filepath.Abs(name)
		if errBase == nil && errName == nil {
			if rel, err := filepath.Rel(absBase, absName); err == nil && !strings.HasPrefix(rel, "..") {
				return filepath.ToSlash(rel)
			}
		}
	case PathModeBasename:
		return filepath.Base(name)
	case PathModeAuto:
		if filepath.IsAbs(name) && len(name) > autoPathLimit {
			return filepath.Base(name)
		}
	}
	return name
}

func limit(n, maxItems int) int {
	if maxItems > 0 && maxItems < n {
		return maxItems
	}
	return n
}
