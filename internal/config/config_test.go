package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingUsesBuiltins(t *testing.T) {
	v, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	defaults, err := Defaults(v)
	require.NoError(t, err)
	assert.Equal(t, builtinDefaults, defaults)
}

func TestLoadFileOverlayAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arch: backend\ndb: mongodb\n"), 0644))
	t.Setenv("FORGE_PKG", "yarn")

	v, err := LoadFile(path)
	require.NoError(t, err)
	defaults, err := Defaults(v)
	require.NoError(t, err)

	assert.Equal(t, ArchBackend, defaults[KeyArch])
	assert.Equal(t, DBMongo, defaults[KeyDB])
	assert.Equal(t, "yarn", defaults[KeyPkg])
	assert.Equal(t, FrontendReact, defaults[KeyFrontend])

	// Loading never writes the file back.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "arch: backend\ndb: mongodb\n", string(data))
}

func TestDefaultsRejectsBadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pkg: pip\n"), 0644))

	v, err := LoadFile(path)
	require.NoError(t, err)
	_, err = Defaults(v)
	assert.True(t, errors.Is(err, ErrInvalidChoice), "got %v", err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arch: [unclosed\n"), 0644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}
