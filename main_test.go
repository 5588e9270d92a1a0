package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battletower/internal/config"
)

func parse(t *testing.T, args ...string) (*cobra.Command, *options) {
	t.Helper()
	opts := &options{}
	cmd := &cobra.Command{Use: "battletower"}
	bindFlags(cmd, opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "[api]\nbase_url = \"http://file.test\"\n\n[form]\npage_size = 10\n")
	t.Setenv(config.EnvBaseURL, "http://env.test")

	cmd, opts := parse(t, "--config", path, "--team-size", "6", "--timeout", "3s")
	cfg, err := loadConfig(cmd, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://env.test", cfg.API.BaseURL, "environment overrides the file")
	assert.Equal(t, 10, cfg.Form.PageSize)
	assert.Equal(t, 6, cfg.Form.TeamSize)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout.Duration)

	cmd, opts = parse(t, "--config", path, "--base-url", "http://flag.test")
	cfg, err = loadConfig(cmd, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://flag.test", cfg.API.BaseURL, "flags override the environment")
}

func TestLoadConfigCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv(config.EnvBaseURL, "")

	cmd, opts := parse(t, "--config", path)
	cfg, err := loadConfig(cmd, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBaseURL, cfg.API.BaseURL)
	assert.FileExists(t, path)
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	path := writeConfig(t, "")

	cmd, opts := parse(t, "--config", path, "--page-size", "0")
	_, err := loadConfig(cmd, opts, nil)
	require.ErrorIs(t, err, config.ErrInvalid)
}
