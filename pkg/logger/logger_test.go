package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/catalog-service/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Sink(t *testing.T) {
	sink := filepath.Join(t.TempDir(), "catalog.log")
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "test")

	log.Debug("dropped")
	log.Info("kept")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(sink)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"kept"`)
	require.Contains(t, string(data), `"logger":"test"`)
	require.NotContains(t, string(data), "dropped")
}
