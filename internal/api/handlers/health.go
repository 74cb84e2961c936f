package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

type Pinger interface {
	Alive(ctx context.Context) error
}

type HealthHandler struct {
	pinger Pinger
	baseHandler
}

func NewHealthHandler(pinger Pinger, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: baseHandler{logger: log},
		pinger:      pinger,
	}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), model.DefaultTimeout)
	defer cancel()

	if err := h.pinger.Alive(ctx); err != nil {
		h.log(r).LogAttrs(ctx,
			slog.LevelError,
			"storage is not reachable",
			slog.Any(model.KeyLoggerError, err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
