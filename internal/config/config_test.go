package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricirt/webservice/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "WORKERS", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("WORKERS", "4")
	t.Setenv("READ_TIMEOUT", "1s")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("WRITE_TIMEOUT", "soon")

	cfg := config.Load()
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
}

func TestConfig_Validate(t *testing.T) {
	valid := config.Config{Host: "0.0.0.0", Port: 8000, Workers: 2, LogLevel: "info"}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"valid config passes", func(c *config.Config) {}, false},
		{"ephemeral port passes", func(c *config.Config) { c.Port = 0 }, false},
		{"max port passes", func(c *config.Config) { c.Port = 65535 }, false},
		{"negative port", func(c *config.Config) { c.Port = -1 }, true},
		{"port too large", func(c *config.Config) { c.Port = 65536 }, true},
		{"zero workers", func(c *config.Config) { c.Workers = 0 }, true},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "verbose" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			err := c.Validate()
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
