package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/gopher-rewards/internal/api/dto"
	"github.com/talx-hub/gopher-rewards/internal/api/middlewares"
	"github.com/talx-hub/gopher-rewards/internal/service/config"
	"github.com/talx-hub/gopher-rewards/internal/utils/logger"
	"github.com/talx-hub/gopher-rewards/internal/utils/ratelimit"
)

const contentTypeJSON = "application/json"

type CustomRouter struct {
	router  *chi.Mux
	logger  *slog.Logger
	cfg     *config.Config
	limiter ratelimit.Limiter
}

func New(cfg *config.Config, log *slog.Logger, limiter ratelimit.Limiter) *CustomRouter {
	router := &CustomRouter{
		router:  chi.NewRouter(),
		logger:  log,
		cfg:     cfg,
		limiter: limiter,
	}

	return router
}

type RewardHandler interface {
	GetRewardSummary(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	Earn(w http.ResponseWriter, r *http.Request)
	GetRewardHistory(w http.ResponseWriter, r *http.Request)
}

type CashbackHandler interface {
	CalculateCashback(w http.ResponseWriter, r *http.Request)
	GrantCashback(w http.ResponseWriter, r *http.Request)
	GetCashbackSummary(w http.ResponseWriter, r *http.Request)
	GetCashbackTransactions(w http.ResponseWriter, r *http.Request)
}

type LoyaltyHandler interface {
	GetLoyaltyPrograms(w http.ResponseWriter, r *http.Request)
	GetLoyaltyStatus(w http.ResponseWriter, r *http.Request)
	UpgradeTier(w http.ResponseWriter, r *http.Request)
	Enroll(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	RewardHandler
	CashbackHandler
	LoyaltyHandler
	HealthHandler
}

func (cr *CustomRouter) SetRouter(h Handler) {
	cr.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middlewares.RequestLogger(cr.logger),
		middleware.Recoverer,
	)

	cr.router.Route("/api/v1", func(r chi.Router) {
		r.Use(
			middlewares.Authentication([]byte(cr.cfg.SecretKey), cr.cfg.AuthRequired),
			middlewares.RateLimit(cr.limiter),
		)

		r.Route("/rewards", func(r chi.Router) {
			r.With(middleware.AllowContentType(contentTypeJSON)).
				Post("/redeem", h.Redeem)
			r.With(middleware.AllowContentType(contentTypeJSON)).
				Post("/earn", h.Earn)
			r.Get("/{userId}", h.GetRewardSummary)
			r.Get("/{userId}/history", h.GetRewardHistory)
		})

		r.Route("/cashback", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType(contentTypeJSON))
				r.Post("/calculate", h.CalculateCashback)
				r.Post("/grant", h.GrantCashback)
			})
			r.Get("/{userId}/summary", h.GetCashbackSummary)
			r.Get("/{userId}/transactions", h.GetCashbackTransactions)
		})

		r.Route("/loyalty", func(r chi.Router) {
			r.Get("/programs", h.GetLoyaltyPrograms)
			r.Get("/{userId}/status", h.GetLoyaltyStatus)
			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType(contentTypeJSON))
				r.Put("/{userId}/upgrade", h.UpgradeTier)
				r.Post("/{userId}/enroll", h.Enroll)
			})
		})
	})
	cr.router.Get("/ping", h.Ping)

	cr.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteError(r.Context(), logger.FromContext(r.Context()), w,
			http.StatusNotFound, dto.CodeNotFound, "Route not found", r.URL.Path)
	})
	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteError(r.Context(), logger.FromContext(r.Context()), w,
			http.StatusMethodNotAllowed, "", http.StatusText(http.StatusMethodNotAllowed), "")
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
