package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusLogger_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowmon.log")

	log, err := NewLogrusLogger(path, "info")
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("hello")
	require.NoError(t, log.Close())
	assert.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewLogrusLoggerTo(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "flowmon.log")

	log, err := NewLogrusLoggerTo(&console, path, "info")
	require.NoError(t, err)
	log.Error(errors.New("report broken"))
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, console.String(), "report broken")
	assert.Equal(t, console.String(), string(data))
}

func TestNewLogrusLogger_StderrOnly(t *testing.T) {
	log, err := NewLogrusLogger("", "debug")
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.NoError(t, log.Close())
}

func TestNewLogrusLogger_Failure(t *testing.T) {
	t.Run("bad path", func(t *testing.T) {
		_, err := NewLogrusLogger("/invalid-path/does-not-exist.log", "info")
		assert.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewLogrusLogger("", "loud")
		assert.Error(t, err)
	})
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, logrus.DebugLevel)

	log.WithFields(map[string]any{"section": "FlowStats", "flows": 3}).Debug("section read")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "section read", line["msg"])
	assert.Equal(t, "FlowStats", line["section"])
	assert.Equal(t, float64(3), line["flows"])
	assert.Equal(t, "debug", line["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, logrus.InfoLevel)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Error(errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
}

func TestDiscard(t *testing.T) {
	log, ok := Discard().(*LogrusLogger)
	require.True(t, ok)
	assert.Equal(t, io.Discard, log.entry.Logger.Out)
	assert.Equal(t, logrus.PanicLevel, log.entry.Logger.GetLevel())

	log.Error(errors.New("ignored"))
	log.WithFields(map[string]any{"a": 1}).Info("ignored")
}
