package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/dcntforecast/internal/model"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, level(model.LoggingConfig{}))
	assert.Equal(t, zapcore.InfoLevel, level(model.LoggingConfig{File: "x.log"}))
	assert.Equal(t, zapcore.DebugLevel, level(model.LoggingConfig{Verbose: true}))
	assert.Equal(t, zapcore.DebugLevel, level(model.LoggingConfig{Verbose: true, File: "x.log"}))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcntforecast.log")

	logger, err := New(model.LoggingConfig{File: path})
	require.NoError(t, err)

	logger.Info("Pipeline transition")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Pipeline transition"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(model.LoggingConfig{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}
