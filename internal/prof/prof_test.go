package prof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledConfig(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Heap: "x"}.Enabled())

	s, err := Start(Config{})
	require.NoError(t, err)
	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())

	var nilSession *Session
	assert.NoError(t, nilSession.Stop())
}

func TestProfilesWritten(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CPU:     filepath.Join(dir, "cpu.out"),
		Heap:    filepath.Join(dir, "heap.out"),
		Runtime: filepath.Join(dir, "trace.out"),
	}
	s, err := Start(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Stop())

	for _, p := range []string{cfg.CPU, cfg.Heap, cfg.Runtime} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size(), p)
	}
}

func TestStartFailureLeavesNothingRunning(t *testing.T) {
	dir := t.TempDir()
	_, err := Start(Config{
		CPU:     filepath.Join(dir, "cpu.out"),
		Runtime: filepath.Join(dir, "missing", "trace.out"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime trace")

	// CPU-профиль должен быть остановлен, иначе повторный старт упадёт.
	s, err := Start(Config{CPU: filepath.Join(dir, "cpu2.out")})
	require.NoError(t, err)
	assert.NoError(t, s.Stop())
}
