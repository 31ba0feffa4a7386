package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "automap.toml"))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
	assert.False(t, s.HasConfig())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automap.toml")
	require.NoError(t, os.WriteFile(path, []byte("config = \"grass\"\nseed = 1234\nautomatic = true\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{Config: "grass", Seed: 1234, Automatic: true}, s)
	assert.True(t, s.HasConfig())
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automap.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = \"many\"\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automap.toml")
	want := Settings{Config: "walls", Seed: 42}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
