package utils

import (
	"testing"

	"artisanhub/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLogLevelFromConfig(t *testing.T) {
	orig := config.AppConfig.LogLevel
	defer func() { config.AppConfig.LogLevel = orig }()

	config.AppConfig.LogLevel = ""
	assert.Equal(t, zapcore.DebugLevel, logLevel(zapcore.DebugLevel))

	config.AppConfig.LogLevel = "warn"
	assert.Equal(t, zapcore.WarnLevel, logLevel(zapcore.InfoLevel))

	config.AppConfig.LogLevel = "error"
	assert.Equal(t, zapcore.ErrorLevel, logLevel(zapcore.DebugLevel))

	config.AppConfig.LogLevel = "nonsense"
	assert.Equal(t, zapcore.InfoLevel, logLevel(zapcore.InfoLevel))
}
