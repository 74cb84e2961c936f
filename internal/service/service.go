package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talx-hub/gopher-rewards/internal/api/handlers"
	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/repo"
	"github.com/talx-hub/gopher-rewards/internal/service/config"
	"github.com/talx-hub/gopher-rewards/internal/service/dbmanager"
	"github.com/talx-hub/gopher-rewards/internal/service/router"
	"github.com/talx-hub/gopher-rewards/internal/utils/logger"
	"github.com/talx-hub/gopher-rewards/internal/utils/ratelimit"
)

const (
	connectTO         = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type service struct {
	server    *http.Server
	dbManager *dbmanager.DBManager
	redis     *redis.Client
	log       *slog.Logger
	cfg       *config.Config
}

func loadConfig() (*config.Config, error) {
	cfg := config.NewBuilder(slog.Default()).
		FromDotEnv().
		FromEnv().
		FromFlags().
		GetConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func initService(ctx context.Context, cfg *config.Config, log *slog.Logger) (*service, error) {
	s := &service{cfg: cfg, log: log}

	connectCtx, cancel := context.WithTimeout(ctx, connectTO)
	defer cancel()
	s.dbManager = dbmanager.New(cfg.DatabaseURI, log).
		Connect(connectCtx).
		ApplyMigrations(connectCtx).
		Ping(connectCtx)
	if err := s.dbManager.Error(); err != nil {
		s.close()
		return nil, fmt.Errorf("db connection error: %w", err)
	}

	pool, err := s.dbManager.GetPool(connectCtx)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to get DB pool: %w", err)
	}

	limiter, err := s.newLimiter(connectCtx)
	if err != nil {
		s.close()
		return nil, err
	}

	rr := router.New(cfg, log, limiter)
	rr.SetRouter(&struct {
		*handlers.RewardHandler
		*handlers.CashbackHandler
		*handlers.LoyaltyHandler
		*handlers.HealthHandler
	}{
		RewardHandler:   handlers.NewRewardHandler(repo.NewRewardRepository(pool, log), log),
		CashbackHandler: handlers.NewCashbackHandler(repo.NewCashbackRepository(pool, log), log),
		LoyaltyHandler:  handlers.NewLoyaltyHandler(repo.NewLoyaltyRepository(pool, log), log),
		HealthHandler:   handlers.NewHealthHandler(s.dbManager, log),
	})

	s.server = &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           rr.GetRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// newLimiter keeps rate limit counters in Redis when it is configured, in process otherwise.
func (s *service) newLimiter(ctx context.Context) (ratelimit.Limiter, error) {
	if s.cfg.RedisAddr == "" {
		s.log.LogAttrs(ctx,
			slog.LevelWarn,
			"redis is not configured, rate limit counters are kept in process",
		)
		return ratelimit.NewMemoryLimiter(s.cfg.RateLimitRequests, s.cfg.RateLimitWindow), nil
	}

	s.redis = redis.NewClient(&redis.Options{Addr: s.cfg.RedisAddr})
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %w", s.cfg.RedisAddr, err)
	}
	return ratelimit.NewRedisLimiter(s.redis, s.cfg.RateLimitRequests, s.cfg.RateLimitWindow), nil
}

func (s *service) close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.log.LogAttrs(context.TODO(),
				slog.LevelWarn,
				"failed to close redis client",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}
	if s.dbManager != nil {
		s.dbManager.Close()
	}
}

func (s *service) run(ctx context.Context) error {
	defer s.close()

	serveErr := make(chan error, 1)
	go func() {
		s.log.LogAttrs(ctx, slog.LevelInfo, "server started", slog.String("address", s.server.Addr))
		serveErr <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen and serve error: %w", err)
	case <-ctx.Done():
	}

	s.log.LogAttrs(context.TODO(), slog.LevelInfo, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve error: %w", err)
	}
	return nil
}

func RunServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Default().LogAttrs(context.TODO(),
			slog.LevelWarn,
			"falling back to info level",
			slog.Any(model.KeyLoggerError, err),
		)
	}
	log := logger.New(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := initService(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to init service: %w", err)
	}
	return s.run(ctx)
}
