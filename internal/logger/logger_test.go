package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"appealsapi/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		cfg   config.LogConfig
		level zapcore.Level
	}{
		{"explicit level", "development", config.LogConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"bad level falls back to info", "production", config.LogConfig{Level: "loud"}, zapcore.InfoLevel},
		{"production default", "production", config.LogConfig{}, zapcore.InfoLevel},
		{"development default", "development", config.LogConfig{Format: "console"}, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.env, tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.level-1))
			}
		})
	}
}
