package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skink-lang/skink/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cfg := config.Default()
	assert.Equal(">> ", cfg.Prompt)
	assert.NotEmpty(cfg.HistoryFile)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte("prompt = \"skink> \"\n"), 0o600)
	assert.NoError(err)

	cfg, err := config.LoadFile(path)
	assert.NoError(err)
	assert.Equal("skink> ", cfg.Prompt)
	assert.Equal(config.Default().HistoryFile, cfg.HistoryFile, "unset keys keep their defaults")
}

func TestLoadFileMalformed(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte("prompt = {nope"), 0o600)
	assert.NoError(err)

	_, err = config.LoadFile(path)
	assert.Error(err)
}
