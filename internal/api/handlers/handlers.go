package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-rewards/internal/api/dto"
	"github.com/talx-hub/gopher-rewards/internal/api/middlewares"
	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

var errEmptyBody = errors.New("request body is required")

// resolveUserID takes the user the request names explicitly, falling back to the
// authenticated identity.
func resolveUserID(r *http.Request, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if id, ok := middlewares.UserID(r.Context()); ok {
		return id, nil
	}
	return "", serviceerrs.ErrUnauthorized
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, dto.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

func (h *baseHandler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		dto.WriteError(r.Context(), h.log(r), w, http.StatusRequestEntityTooLarge,
			dto.CodeValidation, "Request body too large", "")
		return
	}
	dto.WriteError(r.Context(), h.log(r), w, http.StatusBadRequest,
		dto.CodeValidation, "Invalid request body", err.Error())
}

func (h *baseHandler) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	dto.WriteError(r.Context(), h.log(r), w, http.StatusBadRequest,
		dto.CodeValidation, err.Error(), "")
}

// writeServiceError maps a repository error to its response. Unknown errors
// become a 500 carrying failMsg and the underlying error as details.
func (h *baseHandler) writeServiceError(w http.ResponseWriter, r *http.Request,
	err error, failMsg string,
) {
	ctx := r.Context()
	log := h.log(r)

	var insufficient *serviceerrs.InsufficientPointsError
	switch {
	case errors.Is(err, serviceerrs.ErrUnauthorized):
		dto.WriteError(ctx, log, w, http.StatusUnauthorized,
			dto.CodeUnauthorized, "Authentication required", "")
	case errors.As(err, &insufficient):
		dto.WriteError(ctx, log, w, http.StatusPaymentRequired,
			dto.CodeInsufficientPoints, insufficient.Error(), "")
	case errors.Is(err, serviceerrs.ErrNotEnrolled):
		dto.WriteError(ctx, log, w, http.StatusNotFound,
			dto.CodeNotFound, "User not enrolled in any active loyalty program", "")
	case errors.Is(err, serviceerrs.ErrProgramNotFound):
		dto.WriteError(ctx, log, w, http.StatusNotFound,
			dto.CodeNotFound, "Loyalty program not found or inactive", "")
	case errors.Is(err, serviceerrs.ErrNotFound):
		dto.WriteError(ctx, log, w, http.StatusNotFound, dto.CodeNotFound, "Not found", "")
	case errors.Is(err, serviceerrs.ErrAlreadyEnrolled):
		dto.WriteError(ctx, log, w, http.StatusConflict,
			dto.CodeAlreadyEnrolled, "User already enrolled in an active loyalty program", "")
	default:
		log.LogAttrs(ctx,
			slog.LevelError,
			failMsg,
			slog.Any(model.KeyLoggerError, err),
		)
		dto.WriteError(ctx, log, w, http.StatusInternalServerError,
			dto.CodeInternal, failMsg, err.Error())
	}
}

type baseHandler struct {
	logger *slog.Logger
}

// log prefers the request scoped logger when the request carries one.
func (h *baseHandler) log(r *http.Request) *slog.Logger {
	if l, ok := r.Context().Value(model.KeyContextLogger).(*slog.Logger); ok {
		return l
	}
	return h.logger
}
