package dto

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

const MessageSuccess = "Success"

// Machine readable error codes.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInsufficientPoints = "INSUFFICIENT_POINTS"
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyEnrolled    = "ALREADY_ENROLLED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
)

type Envelope struct {
	Data       any    `json:"data"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
}

type ErrorEnvelope struct {
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode,omitempty"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
}

func WriteData(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, log, w, status, Envelope{
		Data:       data,
		Message:    MessageSuccess,
		StatusCode: status,
		Success:    true,
	})
}

func WriteError(ctx context.Context, log *slog.Logger, w http.ResponseWriter,
	status int, code, message, details string,
) {
	writeJSON(ctx, log, w, status, ErrorEnvelope{
		Message:    message,
		ErrorCode:  code,
		Details:    details,
		StatusCode: status,
	})
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"failed to encode response",
			slog.Any(model.KeyLoggerError, err),
		)
		w.Header().Set(model.HeaderContentType, "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"statusCode":500,"message":"failed to encode response",` +
			`"errorCode":"INTERNAL_ERROR","success":false}`))
		return
	}

	w.Header().Set(model.HeaderContentType, "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(raw); err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"failed to write response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
