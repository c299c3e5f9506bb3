package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	saveDir := filepath.Join(dir, "walls")
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(
		"api_key: test-key\n"+
			"base_url: http://localhost:8080/api/v1\n"+
			"save_dir: "+saveDir+"\n"+
			"timeout: 5s\n"), 0o644))

	config, err := ParseConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, "test-key", config.ApiKey)
	assert.Equal(t, "http://localhost:8080/api/v1", config.BaseURL)
	assert.Equal(t, saveDir, config.SaveDir)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.DirExists(t, config.SaveDir)
}

func TestParseConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("api_key: k\n"), 0o644))

	config, err := ParseConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "wallpapers"), config.SaveDir)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.DirExists(t, config.SaveDir)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.True(t, filepath.IsAbs(config.SaveDir))
	assert.Equal(t, 30*time.Second, config.Timeout)
}
