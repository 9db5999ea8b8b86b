package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "json info", cfg: Config{Level: "info", Format: "json"}},
		{name: "console debug", cfg: Config{Level: "debug", Format: "console"}},
		{name: "upper format", cfg: Config{Level: "warn", Format: "JSON"}},
		{name: "bad level", cfg: Config{Level: "loud", Format: "json"}, wantErr: true},
		{name: "bad format", cfg: Config{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_SetsLevel(t *testing.T) {
	logger, err := New(Config{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "nope", Format: "json"})
	assert.Error(t, err)
}
