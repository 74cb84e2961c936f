package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-rewards/internal/api/dto"
	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
	"github.com/talx-hub/gopher-rewards/internal/utils/auth"
	"github.com/talx-hub/gopher-rewards/internal/utils/logger"
)

// Authentication puts the user id carried by a valid token into the request context.
// Without required, requests that carry no token pass through anonymously;
// a token that is present but invalid is always rejected.
func Authentication(secret []byte, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authFunc := func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())
			tokenStr, found := auth.TokenFromRequest(r)
			if !found {
				if required {
					log.LogAttrs(r.Context(),
						slog.LevelDebug,
						"failed to find token in request",
					)
					dto.WriteError(r.Context(), log, w, http.StatusUnauthorized,
						dto.CodeUnauthorized, "Authentication required", "")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.CheckToken(tokenStr, secret)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelInfo,
					"authentication failed",
					slog.Any(model.KeyLoggerError, err),
				)
				msg := "Invalid token"
				if errors.Is(err, serviceerrs.ErrTokenExpired) {
					msg = "Token expired"
				}
				dto.WriteError(r.Context(), log, w, http.StatusUnauthorized,
					dto.CodeUnauthorized, msg, "")
				return
			}

			idCtx := context.WithValue(
				r.Context(), model.KeyContextUserID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(idCtx))
		}
		return http.HandlerFunc(authFunc)
	}
}

// UserID returns the authenticated identity, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(model.KeyContextUserID).(string)
	return id, ok && id != ""
}
