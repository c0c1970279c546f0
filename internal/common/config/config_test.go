// internal/common/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "mergington-activities", cfg.App.Name)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "static", cfg.Server.StaticDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, cfg.App.Name, cfg.Observability.ServiceName)

	for _, name := range []string{"list-activities", "signup", "unregister"} {
		hc, ok := cfg.Handlers[name]
		require.True(t, ok, "handler %s missing", name)
		assert.True(t, hc.Enabled, "handler %s disabled by default", name)
		assert.Equal(t, 5000, hc.Timeout, "handler %s timeout", name)
	}
}

func TestApplyDefaults_KeepsExplicitSettings(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 9999},
		Logging: LoggingConfig{Level: "debug"},
		Handlers: map[string]HandlerConfig{
			"signup": {Enabled: false, Timeout: 250},
		},
	}
	applyDefaults(cfg)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Handlers["signup"].Enabled)
	assert.Equal(t, 250, cfg.Handlers["signup"].Timeout)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 99999 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "notifications enabled without region",
			mutate:  func(c *Config) { c.Notifications.Enabled = true },
			wantErr: true,
		},
		{
			name: "notifications enabled without destination",
			mutate: func(c *Config) {
				c.Notifications.Enabled = true
				c.Notifications.AWSRegion = "us-east-1"
			},
			wantErr: true,
		},
		{
			name: "notifications fully configured",
			mutate: func(c *Config) {
				c.Notifications.Enabled = true
				c.Notifications.AWSRegion = "us-east-1"
				c.Notifications.FromAddress = "activities@mergington.edu"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	assert.Equal(t, "127.0.0.1:8000", s.Addr())

	s.Host = ""
	assert.Equal(t, ":8000", s.Addr())
}
