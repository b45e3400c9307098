package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // reserved for failure dumps; emits no scopes
	LevelPhase               // commands and passes (lex, parse)
	LevelDetail              // plus one span per input file
	LevelDebug               // plus one point per top-level declaration
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

// levelScope: самый подробный scope, который пропускает уровень.
var levelScope = [...]Scope{
	LevelPhase:  ScopePass,
	LevelDetail: ScopeFile,
	LevelDebug:  ScopeNode,
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	if i := slices.Index(levelNames[:], strings.ToLower(s)); i >= 0 {
		return Level(i), nil
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass this level.
func (l Level) ShouldEmit(scope Scope) bool {
	return int(l) < len(levelScope) && scope != 0 && scope <= levelScope[l]
}
