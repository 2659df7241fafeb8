package config

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Extraction.ValidateChecksums {
		t.Error("Extraction.ValidateChecksums = false, want true")
	}
	if cfg.Extraction.Workers != 0 {
		t.Errorf("Extraction.Workers = %d, want 0", cfg.Extraction.Workers)
	}
	if !cfg.Filter.Enabled {
		t.Error("Filter.Enabled = false, want true")
	}
	if cfg.Filter.ContextWindow != 10 {
		t.Errorf("Filter.ContextWindow = %d, want 10", cfg.Filter.ContextWindow)
	}
	if cfg.Scoring.StrictBase != 80 || cfg.Scoring.PermissiveBase != 60 {
		t.Errorf("Scoring bases = %v/%v, want 80/60", cfg.Scoring.StrictBase, cfg.Scoring.PermissiveBase)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Metrics.Textfile != "" {
		t.Errorf("Metrics.Textfile = %q, want empty", cfg.Metrics.Textfile)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Extraction.Workers = -1 },
			wantErr: "extraction.workers",
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Extraction.Workers = maxWorkers + 1 },
			wantErr: "extraction.workers",
		},
		{
			name: "custom currency without pattern",
			mutate: func(c *Config) {
				c.Extraction.CustomCurrencies = []CustomCurrencyConfig{{Name: "Acme", Symbol: "ACME"}}
			},
			wantErr: "custom_currencies[0]",
		},
		{
			name: "complete custom currency",
			mutate: func(c *Config) {
				c.Extraction.CustomCurrencies = []CustomCurrencyConfig{{Name: "Acme", Symbol: "ACME", Pattern: "ACME[0-9]+"}}
			},
		},
		{
			name:    "invalid filter",
			mutate:  func(c *Config) { c.Filter.MinWordLength = 0 },
			wantErr: "filter:",
		},
		{
			name: "disabled filter skips its checks",
			mutate: func(c *Config) {
				c.Filter.Enabled = false
				c.Filter.MinWordLength = 0
			},
		},
		{
			name:    "negative scoring weight",
			mutate:  func(c *Config) { c.Scoring.BiasScale = -1 },
			wantErr: "scoring:",
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:   "level is case-insensitive",
			mutate: func(c *Config) { c.Logging.Level = "DEBUG" },
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name: "telemetry enabled without endpoint",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Endpoint = ""
			},
			wantErr: "telemetry:",
		},
		{
			name:    "sampling without tick",
			mutate:  func(c *Config) { c.Logging.SamplingTick = 0 },
			wantErr: "sampling_tick",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Duration() != 90*time.Second {
		t.Errorf("Duration() = %v, want 1m30s", d.Duration())
	}

	text, err := d.MarshalText()
	if err != nil || string(text) != "1m30s" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}

	data, err := json.Marshal(d)
	if err != nil || string(data) != `"1m30s"` {
		t.Errorf("json.Marshal() = %s, %v", data, err)
	}

	if err := d.UnmarshalText([]byte("-1s")); err == nil {
		t.Error("UnmarshalText(-1s) error = nil, want error")
	}
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText(soon) error = nil, want error")
	}
}
