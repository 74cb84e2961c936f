package config

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_FromEnv_defaults(t *testing.T) {
	cfg := NewBuilder(slog.Default()).FromEnv().GetConfig()

	assert.Equal(t, "localhost:3009", cfg.RunAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(10), cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.AuthRequired)
	assert.Empty(t, cfg.RedisAddr)
}

func TestBuilder_sourcesOrder(t *testing.T) {
	dir := t.TempDir()
	dotEnv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotEnv, []byte(
		"DATABASE_URI=postgres://from-dotenv\nLOG_LEVEL=debug\nRATE_LIMIT_REQUESTS=50\n"), 0o600))

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("AUTH_REQUIRED", "true")
	// keep the variables the dot env file sets from leaking into other tests
	t.Setenv("DATABASE_URI", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	require.NoError(t, os.Unsetenv("DATABASE_URI"))
	require.NoError(t, os.Unsetenv("RATE_LIMIT_REQUESTS"))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewBuilder(slog.Default()).
		FromDotEnv(dotEnv, filepath.Join(dir, "missing.env")).
		FromEnv().
		fromFlagSet(fs, []string{"-a", ":9000", "-st", "3s"}).
		GetConfig()

	assert.Equal(t, "postgres://from-dotenv", cfg.DatabaseURI)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over the dot env file")
	assert.Equal(t, int64(50), cfg.RateLimitRequests)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, ":9000", cfg.RunAddr, "flags win over the environment")
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		DatabaseURI:       "postgres://db",
		RateLimitWindow:   time.Minute,
		ShutdownTimeout:   time.Second,
		RateLimitRequests: 10,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no database", mutate: func(c *Config) { c.DatabaseURI = "" }, wantErr: true},
		{
			name:    "auth without secret",
			mutate:  func(c *Config) { c.AuthRequired = true },
			wantErr: true,
		},
		{
			name: "auth with secret",
			mutate: func(c *Config) {
				c.AuthRequired = true
				c.SecretKey = "s3cr3t"
			},
		},
		{name: "zero budget", mutate: func(c *Config) { c.RateLimitRequests = 0 }, wantErr: true},
		{name: "zero window", mutate: func(c *Config) { c.RateLimitWindow = 0 }, wantErr: true},
		{name: "zero shutdown", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
