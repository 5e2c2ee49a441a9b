package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.InfoLevel)
	})

	t.Run("writes to the log file", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogFile = filepath.Join(t.TempDir(), "todoview.log")
		cfg.LogLevel = "debug"

		closer, err := setupLogging(cfg)
		require.NoError(t, err)

		log.Debug("hello from the test")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(cfg.LogFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from the test")
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	})

	t.Run("empty path disables logging", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogFile = ""

		closer, err := setupLogging(cfg)
		require.NoError(t, err)
		assert.NoError(t, closer.Close())
		assert.Equal(t, io.Discard, log.Out)
	})

	t.Run("unwritable path", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogFile = filepath.Join(t.TempDir(), "missing", "todoview.log")

		_, err := setupLogging(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open log file")
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogLevel = "loud"

		_, err := setupLogging(cfg)
		assert.Error(t, err)
	})
}

func TestSetupApp(t *testing.T) {
	t.Run("builds the shell", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxWidth = 72

		app, err := setupApp(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, 72, app.maxWidth)
		assert.NotNil(t, app.Init())
	})

	t.Run("rejects unknown language", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Language = "xx-invalid-"

		_, err := setupApp(context.Background(), cfg)
		assert.Error(t, err)
	})
}

func TestUserAgent(t *testing.T) {
	original := GitCommit
	t.Cleanup(func() { GitCommit = original })

	GitCommit = ""
	assert.Equal(t, "todoview", userAgent())

	GitCommit = "abc123"
	assert.Equal(t, "todoview/abc123", userAgent())
}
