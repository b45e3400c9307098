package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestLine_OptionalFields(t *testing.T) {
	origVersion, origGitCommit, origBuildDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origGitCommit, origBuildDate
	})

	Version, GitCommit, BuildDate = "1.2.3", "", ""
	if got := Line(false); got != "dbml 1.2.3" {
		t.Errorf("Line() = %q", got)
	}

	GitCommit, BuildDate = "abc123", "2024-01-15T10:30:00Z"
	if got := Line(false); got != "dbml 1.2.3 (abc123) built 2024-01-15T10:30:00Z" {
		t.Errorf("Line() = %q", got)
	}
}

func TestStyled(t *testing.T) {
	origVersion := Version
	t.Cleanup(func() { Version = origVersion })

	for _, v := range []string{"0.1.0", "1.0.0-beta.1", "1.2.3-rc.1+build.123", "weird"} {
		Version = v
		if got := Styled(false); got != v {
			t.Errorf("Styled(false) = %q, want %q", got, v)
		}
	}

	Version = "1.2.3-rc.1"
	got := Styled(true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI sequences in %q", got)
	}
	if !strings.HasSuffix(got, "-rc.1") {
		t.Errorf("suffix must stay plain: %q", got)
	}
}
