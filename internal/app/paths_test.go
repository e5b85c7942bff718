package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/data")
	assert.Equal(t, "/data", p.Root)
	assert.Equal(t, filepath.Join("/data", "wce.db"), p.DB)
	assert.Equal(t, filepath.Join("/data", "log"), p.LogDir)
	assert.Equal(t, filepath.Join("/data", "log", "server.log"), p.ServerLog)
	assert.Equal(t, filepath.Join("/data", "run"), p.RunDir)
	assert.Equal(t, filepath.Join("/data", "run", "http.port"), p.PortFile)
}

func TestEnsureDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "wce")
	p := NewPaths(dir)

	require.NoError(t, p.EnsureDirs())
	for _, d := range []string{p.Root, p.LogDir, p.RunDir} {
		info, err := os.Stat(d)
		require.NoError(t, err, "dir %s should exist", d)
		assert.True(t, info.IsDir())
	}

	require.NoError(t, p.EnsureDirs())
}

func TestCleanEphemeral(t *testing.T) {
	p := NewPaths(t.TempDir())
	require.NoError(t, p.EnsureDirs())
	require.NoError(t, os.WriteFile(p.PortFile, []byte("8080"), 0644))

	p.CleanEphemeral()
	_, err := os.Stat(p.PortFile)
	assert.True(t, os.IsNotExist(err))

	p.CleanEphemeral()
}
