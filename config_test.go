package main

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziyixi/todoview/testutils"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, opts, err := parseConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "http://localhost:3000/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "en", cfg.Language)
	assert.False(t, opts.ShowVersion)
	assert.Empty(t, opts.ConfigPath)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, opts, err := parseConfig([]string{
		"--base-url", "https://tasks.example.com/api",
		"--timeout", "3s",
		"--lang", "pt-BR",
		"--max-width", "80",
		"--no-color",
		"--log-file", "",
		"--log-level", "debug",
		"--debug-http",
		"--version",
	})
	require.NoError(t, err)

	assert.Equal(t, &Config{
		BaseURL:   "https://tasks.example.com/api",
		Timeout:   3 * time.Second,
		Language:  "pt-BR",
		MaxWidth:  80,
		NoColor:   true,
		LogFile:   "",
		LogLevel:  "debug",
		DebugHTTP: true,
	}, cfg)
	assert.True(t, opts.ShowVersion)
}

func TestParseConfig_FileThenFlags(t *testing.T) {
	path := testutils.TempFile(t, "todoview-*.yaml", `
base_url: http://tasks.internal:8080/api
timeout: 30s
language: pt-BR
max_width: 100
log_level: warn
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, opts, err := parseConfig([]string{"--config", path})
		require.NoError(t, err)

		assert.Equal(t, path, opts.ConfigPath)
		assert.Equal(t, "http://tasks.internal:8080/api", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "pt-BR", cfg.Language)
		assert.Equal(t, 100, cfg.MaxWidth)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "todoview.log", cfg.LogFile)
	})

	t.Run("explicit flags override the file", func(t *testing.T) {
		cfg, _, err := parseConfig([]string{"--config", path, "--lang", "en", "--timeout", "1s"})
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, time.Second, cfg.Timeout)
		assert.Equal(t, "http://tasks.internal:8080/api", cfg.BaseURL)
	})
}

func TestParseConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := parseConfig([]string{"--config", t.TempDir() + "/missing.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := testutils.TempFile(t, "todoview-*.yaml", "timeout: [not a duration")
		_, _, err := parseConfig([]string{"--config", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := parseConfig([]string{"--port", "8080"})
		assert.Error(t, err)
	})

	t.Run("help", func(t *testing.T) {
		_, _, err := parseConfig([]string{"-h"})
		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "https url", modify: func(c *Config) { c.BaseURL = "https://example.com" }},
		{name: "relative url", modify: func(c *Config) { c.BaseURL = "/api" }, wantErr: "invalid base url"},
		{name: "ftp url", modify: func(c *Config) { c.BaseURL = "ftp://example.com" }, wantErr: "invalid base url"},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantErr: "timeout must be positive"},
		{name: "narrow", modify: func(c *Config) { c.MaxWidth = 20 }, wantErr: "max width"},
		{name: "unsupported language", modify: func(c *Config) { c.Language = "ja" }, wantErr: "unsupported language"},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
