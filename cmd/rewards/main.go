package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/service"
)

func main() {
	if err := service.RunServer(); err != nil {
		slog.Default().LogAttrs(context.Background(),
			slog.LevelError,
			"service stopped",
			slog.Any(model.KeyLoggerError, err),
		)
		os.Exit(1)
	}
}
