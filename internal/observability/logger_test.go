// File: internal/observability/logger_test.go
package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pierrepo/principal-axes/internal/config"
)

// syncBuffer adapts bytes.Buffer to zapcore.WriteSyncer.
type syncBuffer struct {
	bytes.Buffer
}

func (b *syncBuffer) Sync() error { return nil }

func TestInitialize_ConsoleFormat(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	Initialize(config.LoggerConfig{
		Level:       "debug",
		Format:      "console",
		ServiceName: "principal-axes",
	}, &buf)

	GetLogger().Info("axes computed", zap.Int("atoms", 42))
	out := buf.String()

	assert.Contains(t, out, "axes computed")
	assert.Contains(t, out, "principal-axes.")
	assert.Contains(t, out, `"atoms": 42`)
}

func TestInitialize_JSONFormat(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	Initialize(config.LoggerConfig{
		Level:       "info",
		Format:      "json",
		ServiceName: "principal-axes",
	}, &buf)

	GetLogger().Warn("degenerate tensor")
	out := buf.String()

	assert.Contains(t, out, `"msg":"degenerate tensor"`)
	assert.Contains(t, out, `"WARN"`)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}

func TestInitialize_LevelFiltering(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	Initialize(config.LoggerConfig{
		Level:       "error",
		Format:      "json",
		ServiceName: "principal-axes",
	}, &buf)

	GetLogger().Info("should be filtered")
	assert.Empty(t, buf.String())

	GetLogger().Error("should pass")
	assert.Contains(t, buf.String(), "should pass")
}

func TestInitialize_InvalidLevelFallsBackToInfo(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	Initialize(config.LoggerConfig{
		Level:       "chatty",
		Format:      "json",
		ServiceName: "principal-axes",
	}, &buf)

	GetLogger().Debug("filtered at info")
	assert.Empty(t, buf.String())
	GetLogger().Info("passes at info")
	assert.Contains(t, buf.String(), "passes at info")
}

func TestInitialize_RunsOnlyOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second syncBuffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "a"}, &first)
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "b"}, &second)

	GetLogger().Info("hello")
	assert.Contains(t, first.String(), "hello")
	assert.Empty(t, second.String())
}

func TestGetLogger_FallbackBeforeInitialization(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
	// A usable core, not a nop.
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel) || logger.Core().Enabled(zapcore.InfoLevel))
}
