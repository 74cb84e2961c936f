package middlewares

import (
	"errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/talx-hub/gopher-rewards/internal/api/dto"
	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
	"github.com/talx-hub/gopher-rewards/internal/utils/logger"
	"github.com/talx-hub/gopher-rewards/internal/utils/ratelimit"
)

const (
	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter    = "Retry-After"
)

// RateLimit spends one unit of the client's window budget per request.
// Clients are told apart by identity when authenticated, by address otherwise.
// When the limiter itself fails the request is let through.
func RateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limitFunc := func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())
			key := clientKey(r)

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelError,
					"rate limiter unavailable",
					slog.String("client", key),
					slog.Any(model.KeyLoggerError, err),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderRateLimit, strconv.FormatInt(res.Limit, 10))
			w.Header().Set(HeaderRateRemaining, strconv.FormatInt(res.Remaining, 10))
			var tooMany *serviceerrs.TooManyRequestsError
			if errors.As(res.Err(), &tooMany) {
				seconds := int64(math.Ceil(tooMany.RetryAfter.Seconds()))
				w.Header().Set(HeaderRetryAfter, strconv.FormatInt(max(seconds, 1), 10))
				dto.WriteError(r.Context(), log, w, http.StatusTooManyRequests,
					dto.CodeRateLimited, "Too many requests, please try again later", "")
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(limitFunc)
	}
}

func clientKey(r *http.Request) string {
	if id, ok := UserID(r.Context()); ok {
		return "user:" + id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
