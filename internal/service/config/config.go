package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

type Config struct {
	RunAddr           string        `env:"RUN_ADDRESS"         envDefault:"localhost:3009"`
	DatabaseURI       string        `env:"DATABASE_URI"        envDefault:""`
	SecretKey         string        `env:"SECRET_KEY"          envDefault:""`
	LogLevel          string        `env:"LOG_LEVEL"           envDefault:"info"`
	RedisAddr         string        `env:"REDIS_ADDRESS"       envDefault:""`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW"   envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"10s"`
	RateLimitRequests int64         `env:"RATE_LIMIT_REQUESTS" envDefault:"10"`
	AuthRequired      bool          `env:"AUTH_REQUIRED"       envDefault:"false"`
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURI == "" {
		errs = append(errs, errors.New("database URI is not set"))
	}
	if c.AuthRequired && c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is required when authentication is enforced"))
	}
	if c.RateLimitRequests < 1 {
		errs = append(errs, fmt.Errorf("rate limit must allow at least one request, got %d",
			c.RateLimitRequests))
	}
	if c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("rate limit window must be positive, got %s", c.RateLimitWindow))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

type Builder struct {
	cfg *Config
	log *slog.Logger
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{},
		log: log,
	}
}

// FromDotEnv loads variables from the given files into the environment.
// Missing files are not an error; variables already set are kept.
func (b *Builder) FromDotEnv(files ...string) *Builder {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			b.log.LogAttrs(context.Background(),
				slog.LevelError, "Failed to load env file",
				slog.String("file", f),
				slog.Any(model.KeyLoggerError, err))
		}
	}
	return b
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromFlags() *Builder {
	return b.fromFlagSet(flag.CommandLine, os.Args[1:])
}

func (b *Builder) fromFlagSet(fs *flag.FlagSet, args []string) *Builder {
	fs.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	fs.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI")
	fs.StringVar(&b.cfg.SecretKey, "k", b.cfg.SecretKey, "Secret key")
	fs.BoolVar(&b.cfg.AuthRequired, "auth", b.cfg.AuthRequired, "Reject requests without a token")
	fs.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	fs.StringVar(&b.cfg.RedisAddr, "redis", b.cfg.RedisAddr, "Redis address for rate limit counters")
	fs.Int64Var(&b.cfg.RateLimitRequests, "rl", b.cfg.RateLimitRequests, "Requests per rate limit window")
	fs.DurationVar(&b.cfg.RateLimitWindow, "rw", b.cfg.RateLimitWindow, "Rate limit window")
	fs.DurationVar(&b.cfg.ShutdownTimeout, "st", b.cfg.ShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse flags", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}
