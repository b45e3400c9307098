package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	path, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, FileName), path)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `
[diagnostics]
max = 5
warnings_as_errors = true

[trace]
level = "phase"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Path)
	require.Equal(t, 5, cfg.Diagnostics.Max)
	require.True(t, cfg.Diagnostics.WarningsAsErrors)
	require.Equal(t, "pretty", cfg.Diagnostics.Format)
	require.Equal(t, "auto", cfg.Output.Color)
	require.Equal(t, "phase", cfg.Trace.Level)
	require.Equal(t, "-", cfg.Trace.Output)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax":  "[diagnostics\nmax = 1",
		"unknown": "[diagnostics]\nmaximum = 1",
		"format":  "[diagnostics]\nformat = \"xml\"",
		"color":   "[output]\ncolor = \"always\"",
		"level":   "[trace]\nlevel = \"verbose\"",
		"max":     "[diagnostics]\nmax = -1",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			writeFile(t, path, content)
			_, err := Load(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadInvalidValueIsWrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output]\ncolor = \"always\"")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestResolve(t *testing.T) {
	empty := t.TempDir()
	cfg, err := Resolve("", empty)
	require.NoError(t, err)
	if cfg.Path == "" {
		require.Equal(t, Default(), cfg)
	}

	explicit := filepath.Join(empty, "custom.toml")
	writeFile(t, explicit, "[output]\ncolor = \"off\"")
	cfg, err = Resolve(explicit, "")
	require.NoError(t, err)
	require.Equal(t, "off", cfg.Output.Color)

	_, err = Resolve(filepath.Join(empty, "nope.toml"), "")
	require.Error(t, err)
}
