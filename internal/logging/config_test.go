package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/fyrsmithlabs/coinscan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, zapcore.InfoLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Empty(t, cfg.Output.File)
	assert.Equal(t, "coinscan", cfg.Fields["service"])
	assert.Contains(t, cfg.Redaction.Patterns, StellarSeedPattern)
	assert.Contains(t, cfg.Redaction.Patterns, WIFKeyPattern)
	assert.Contains(t, cfg.Redaction.Fields, "seed")
	_, sampled := cfg.Sampling.Levels[zapcore.ErrorLevel]
	assert.False(t, sampled)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"console format", func(c *Config) { c.Format = "console" }, ""},
		{"bad format", func(c *Config) { c.Format = "xml" }, "format must be"},
		{"zero tick", func(c *Config) { c.Sampling.Tick = 0 }, "sampling tick"},
		{"zero tick without sampling", func(c *Config) { c.Sampling.Enabled = false; c.Sampling.Tick = 0 }, ""},
		{"negative caller skip", func(c *Config) { c.Caller.Skip = -1 }, "caller skip"},
		{"bad pattern", func(c *Config) { c.Redaction.Patterns = []string{"("} }, "invalid redaction pattern"},
		{"long pattern", func(c *Config) { c.Redaction.Patterns = []string{strings.Repeat("a", 201)} }, "too long"},
		{"bad pattern ignored when disabled", func(c *Config) {
			c.Redaction.Enabled = false
			c.Redaction.Patterns = []string{"("}
		}, ""},
		{"empty field key", func(c *Config) { c.Fields[""] = "x" }, "key cannot be empty"},
		{"empty field value", func(c *Config) { c.Fields["env"] = "" }, "empty value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
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

func TestFromSettings(t *testing.T) {
	cfg, err := FromSettings(config.LoggingConfig{
		Level:        "DEBUG",
		Format:       "console",
		File:         "/tmp/coinscan.log",
		Sampling:     true,
		SamplingTick: config.Duration(3 * time.Second),
	})
	require.NoError(t, err)

	assert.Equal(t, zapcore.DebugLevel, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "/tmp/coinscan.log", cfg.Output.File)
	assert.True(t, cfg.Sampling.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Sampling.Tick.Duration())
	assert.True(t, cfg.Redaction.Enabled, "redaction is not user-facing and stays on")

	cfg, err = FromSettings(config.LoggingConfig{Level: "trace"})
	require.NoError(t, err)
	assert.Equal(t, TraceLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format, "empty format keeps the default")
	assert.False(t, cfg.Sampling.Enabled)

	_, err = FromSettings(config.LoggingConfig{Level: "loud"})
	assert.ErrorContains(t, err, "invalid log level")

	_, err = FromSettings(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, "format must be")
}
